package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// fakeRow devuelve err en Scan, o copia id en el primer destino.
type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if p, ok := dest[0].(*int64); ok {
		*p = r.id
	}
	return nil
}

// fakeQuerier solo soporta QueryRow; registra la última sentencia.
type fakeQuerier struct {
	row      fakeRow
	lastSQL  string
	lastArgs []any
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("no soportado")
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no soportado")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL, q.lastArgs = sql, args
	return q.row
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", migrateURL("postgres://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/db", migrateURL("postgresql://u@h/db"))
	assert.Equal(t, "pgx5://ya/db", migrateURL("pgx5://ya/db"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.Join(errors.New("insert"), &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("timeout")))
}

func TestCartRepo_AddProductoInexistente(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: &pgconn.PgError{Code: "23503"}}}
	err := NewCartRepository(q).Add(context.Background(), &entity.CartEntry{UserID: 1, ProductID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_CreateDuplicado(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: &pgconn.PgError{Code: "23505"}}}
	err := NewUserRepository(q).Create(context.Background(), &entity.User{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestUserRepo_CreateAsignaID(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{id: 7}}
	u := &entity.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	require.NoError(t, NewUserRepository(q).Create(context.Background(), u))
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, []any{"Ana", "ana@example.com", "secret"}, q.lastArgs)
}

func TestUserRepo_GetByEmailAusente(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	u, err := NewUserRepository(q).GetByEmail(context.Background(), "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_ErrorDeStoreEnvuelto(t *testing.T) {
	boom := errors.New("connection reset")
	q := &fakeQuerier{row: fakeRow{err: boom}}
	_, err := NewUserRepository(q).GetByEmail(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, boom)
	assert.False(t, domain.IsAuth(err))
}
