package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/infrastructure/sqlite"
)

// newCart monta el caso de uso sobre SQLite en memoria con un producto cargado.
func newCart(t *testing.T, pdf cart.SummaryPDFGenerator) (*cart.CartUseCase, *entity.Product) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	p := &entity.Product{
		Name: "Linen shirt", Category: "men", Price: decimal.RequireFromString("19.99"),
		Description: "Camisa de lino", Image: "/uploads/1.jpg",
	}
	require.NoError(t, sqlite.NewProductRepository(db, false).Create(ctx, p))
	return cart.NewCartUseCase(sqlite.NewCartRepository(db), pdf), p
}

func TestAdd_NoEsIdempotente(t *testing.T) {
	uc, p := newCart(t, nil)
	ctx := context.Background()

	a, err := uc.Add(ctx, 1, p.ID)
	require.NoError(t, err)
	b, err := uc.Add(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	lines, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2, "dos grupos, no uno con quantity 2")
	assert.Equal(t, int64(1), lines[0].Quantity)
	assert.Equal(t, int64(1), lines[1].Quantity)
}

func TestList_UneCamposDelProducto(t *testing.T) {
	uc, p := newCart(t, nil)
	ctx := context.Background()

	entry, err := uc.Add(ctx, 1, p.ID)
	require.NoError(t, err)

	lines, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	l := lines[0]
	assert.Equal(t, entry.ID, l.CartID)
	assert.Equal(t, p.ID, l.ID)
	assert.Equal(t, "Linen shirt", l.Name)
	assert.Equal(t, "/uploads/1.jpg", l.Image)
	assert.True(t, p.Price.Equal(l.Price))
}

func TestRemove(t *testing.T) {
	uc, p := newCart(t, nil)
	ctx := context.Background()

	entry, err := uc.Add(ctx, 1, p.ID)
	require.NoError(t, err)

	require.NoError(t, uc.Remove(ctx, 999), "id inexistente no es error")
	lines, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	require.NoError(t, uc.Remove(ctx, entry.ID))
	lines, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = uc.Get(ctx, entry.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateQuantity_SinValidacion(t *testing.T) {
	uc, p := newCart(t, nil)
	ctx := context.Background()

	entry, err := uc.Add(ctx, 1, p.ID)
	require.NoError(t, err)

	require.NoError(t, uc.UpdateQuantity(ctx, entry.ID, "-2"))
	got, err := uc.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), got.Quantity)

	require.NoError(t, uc.UpdateQuantity(ctx, 12345, "3"), "fila inexistente: cero filas, sin error")
	lines, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

type fakePDF struct {
	got []*entity.CartLine
	err error
}

func (f *fakePDF) GenerateCartPDF(_ context.Context, lines []*entity.CartLine) ([]byte, error) {
	f.got = lines
	return []byte("%PDF-fake"), f.err
}

func TestPDF_UsaElListado(t *testing.T) {
	gen := &fakePDF{}
	uc, p := newCart(t, gen)
	ctx := context.Background()
	_, err := uc.Add(ctx, 1, p.ID)
	require.NoError(t, err)

	out, err := uc.PDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	require.Len(t, gen.got, 1)
	assert.Equal(t, "Linen shirt", gen.got[0].Name)

	gen.err = errors.New("boom")
	_, err = uc.PDF(ctx)
	assert.Error(t, err)
}

func TestPDF_SinGenerador(t *testing.T) {
	uc, _ := newCart(t, nil)
	_, err := uc.PDF(context.Background())
	assert.Error(t, err)
}
