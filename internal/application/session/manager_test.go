package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/session"
	infrasession "github.com/jhoicas/storefront-api/internal/infrastructure/session"
)

func TestManager_CreateResolveDestroy(t *testing.T) {
	m := session.NewManager(infrasession.NewMemoryStore())
	ctx := context.Background()

	token, err := m.Create(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, ok, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ana@example.com", email)

	require.NoError(t, m.Destroy(ctx, token))

	_, ok, err = m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok, "un token destruido ya no resuelve")
}

func TestManager_TokensDistintosPorCreate(t *testing.T) {
	m := session.NewManager(infrasession.NewMemoryStore())
	ctx := context.Background()

	a, err := m.Create(ctx, "ana@example.com")
	require.NoError(t, err)
	b, err := m.Create(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	require.NoError(t, m.Destroy(ctx, a))
	_, ok, err := m.Resolve(ctx, b)
	require.NoError(t, err)
	assert.True(t, ok, "destruir un token no afecta a otros")
}

func TestManager_DestroyTokenInvalidoEsNoOp(t *testing.T) {
	m := session.NewManager(infrasession.NewMemoryStore())
	ctx := context.Background()

	assert.NoError(t, m.Destroy(ctx, "no-existe"))
	assert.NoError(t, m.Destroy(ctx, ""))

	token, err := m.Create(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, m.Destroy(ctx, token))
	assert.NoError(t, m.Destroy(ctx, token), "destruir dos veces no es error")
}

func TestManager_ResolveTokenVacio(t *testing.T) {
	m := session.NewManager(infrasession.NewMemoryStore())

	_, ok, err := m.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, string) error { return errors.New("down") }
func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("down")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("down") }

func TestManager_PropagaErroresDelStore(t *testing.T) {
	m := session.NewManager(failingStore{})
	ctx := context.Background()

	_, err := m.Create(ctx, "ana@example.com")
	assert.Error(t, err)
	_, _, err = m.Resolve(ctx, "x")
	assert.Error(t, err)
	assert.Error(t, m.Destroy(ctx, "x"))
}
