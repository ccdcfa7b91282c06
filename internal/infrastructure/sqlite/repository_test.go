package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err, "la base en memoria debe abrir y migrar")
	t.Cleanup(func() { db.Close() })
	return db
}

func seedProducts(t *testing.T, repo *sqlite.ProductRepo, names ...string) []*entity.Product {
	t.Helper()
	out := make([]*entity.Product, 0, len(names))
	for i, n := range names {
		category := entity.CategoryMen
		if i%2 == 1 {
			category = entity.CategoryWomen
		}
		p := &entity.Product{
			Name:        n,
			Category:    category,
			Price:       decimal.RequireFromString("19.99"),
			Description: "desc " + n,
			Image:       "/uploads/" + n + ".jpg",
		}
		require.NoError(t, repo.Create(context.Background(), p))
		require.NotZero(t, p.ID)
		out = append(out, p)
	}
	return out
}

func names(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_CreateYGetByEmail(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := &entity.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *u, *got)

	missing, err := repo.GetByEmail(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "Ana", Email: "ana@example.com", Password: "a"}))
	err := repo.Create(ctx, &entity.User{Name: "Otra", Email: "ana@example.com", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_GetByIDConservaCampos(t *testing.T) {
	repo := sqlite.NewProductRepository(openTestDB(t), false)
	p := seedProducts(t, repo, "Linen shirt")[0]

	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)
	assert.True(t, p.Price.Equal(got.Price), "el precio decimal debe sobrevivir el round trip")
	assert.Equal(t, p.Image, got.Image)

	missing, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_ListByCategoryEsIgualdadExacta(t *testing.T) {
	repo := sqlite.NewProductRepository(openTestDB(t), false)
	seedProducts(t, repo, "A", "B", "C")
	ctx := context.Background()

	men, err := repo.ListByCategory(ctx, "men")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "C"}, names(men))

	upper, err := repo.ListByCategory(ctx, "MEN")
	require.NoError(t, err)
	assert.Empty(t, upper, "la categoría no se normaliza")
}

func TestProductRepo_SearchSinDistinguirMayusculas(t *testing.T) {
	repo := sqlite.NewProductRepository(openTestDB(t), false)
	seedProducts(t, repo, "Linen shirt", "Denim jacket", "T-Shirt basic", "Sweatshirt", "Skirt")

	got, err := repo.SearchByName(context.Background(), "shirt")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Linen shirt", "T-Shirt basic", "Sweatshirt"}, names(got))
}

func TestProductRepo_SearchDistinguiendoMayusculas(t *testing.T) {
	repo := sqlite.NewProductRepository(openTestDB(t), true)
	seedProducts(t, repo, "Linen shirt", "Denim jacket", "T-Shirt basic", "Sweatshirt", "Skirt")

	got, err := repo.SearchByName(context.Background(), "shirt")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Linen shirt", "Sweatshirt"}, names(got))
}

func TestProductRepo_SearchSinCoincidencias(t *testing.T) {
	repo := sqlite.NewProductRepository(openTestDB(t), false)
	seedProducts(t, repo, "Linen shirt")

	got, err := repo.SearchByName(context.Background(), "boots")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCartRepo_AddDosVecesCreaDosFilas(t *testing.T) {
	db := openTestDB(t)
	products := sqlite.NewProductRepository(db, false)
	cart := sqlite.NewCartRepository(db)
	ctx := context.Background()
	p := seedProducts(t, products, "Linen shirt")[0]

	first := &entity.CartEntry{UserID: 1, ProductID: p.ID}
	second := &entity.CartEntry{UserID: 1, ProductID: p.ID}
	require.NoError(t, cart.Add(ctx, first))
	require.NoError(t, cart.Add(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(1), first.Quantity)

	lines, err := cart.ListLines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2, "cada fila es su propio grupo")
	for _, l := range lines {
		assert.Equal(t, int64(1), l.Quantity)
		assert.Equal(t, p.ID, l.ProductID)
		assert.Equal(t, "Linen shirt", l.Name)
		assert.Equal(t, p.Image, l.Image)
		assert.True(t, p.Price.Equal(l.Price))
	}
}

func TestCartRepo_ListIgnoraCantidadAlmacenada(t *testing.T) {
	db := openTestDB(t)
	cart := sqlite.NewCartRepository(db)
	ctx := context.Background()
	p := seedProducts(t, sqlite.NewProductRepository(db, false), "Linen shirt")[0]

	e := &entity.CartEntry{UserID: 1, ProductID: p.ID}
	require.NoError(t, cart.Add(ctx, e))
	require.NoError(t, cart.UpdateQuantity(ctx, e.ID, "4"))

	lines, err := cart.ListLines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Quantity, "el listado cuenta filas, no la columna quantity")
}

func TestCartRepo_UpdateQuantityPersisteValor(t *testing.T) {
	db := openTestDB(t)
	cart := sqlite.NewCartRepository(db)
	ctx := context.Background()
	p := seedProducts(t, sqlite.NewProductRepository(db, false), "Linen shirt")[0]

	e := &entity.CartEntry{UserID: 1, ProductID: p.ID}
	require.NoError(t, cart.Add(ctx, e))

	for _, tc := range []struct {
		in   string
		want int64
	}{
		{"5", 5},
		{"-3", -3},
		{"0", 0},
	} {
		require.NoError(t, cart.UpdateQuantity(ctx, e.ID, tc.in))
		got, err := cart.GetByID(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, tc.want, got.Quantity, "quantity=%s", tc.in)
	}

	lines, err := cart.ListLines(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1, "update no inserta ni borra filas")
}

func TestCartRepo_DeleteInexistenteNoFalla(t *testing.T) {
	db := openTestDB(t)
	cart := sqlite.NewCartRepository(db)
	ctx := context.Background()
	p := seedProducts(t, sqlite.NewProductRepository(db, false), "Linen shirt")[0]

	require.NoError(t, cart.Add(ctx, &entity.CartEntry{UserID: 1, ProductID: p.ID}))
	require.NoError(t, cart.Delete(ctx, 424242))

	lines, err := cart.ListLines(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1, "el store queda igual")
}

func TestCartRepo_AddProductoInexistenteEsNotFound(t *testing.T) {
	db := openTestDB(t)
	cart := sqlite.NewCartRepository(db)
	ctx := context.Background()

	err := cart.Add(ctx, &entity.CartEntry{UserID: 1, ProductID: 777})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la fila debe referenciar un producto existente")

	lines, err := cart.ListLines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
