package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, price, description, image`

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
// LIKE de SQLite ignora mayúsculas solo en ASCII; el modo sensible usa instr().
type ProductRepo struct {
	q                   Querier
	caseSensitiveSearch bool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier, caseSensitiveSearch bool) *ProductRepo {
	return &ProductRepo{q: q, caseSensitiveSearch: caseSensitiveSearch}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRowContext(ctx,
		`INSERT INTO products (name, category, price, description, image) VALUES (?, ?, ?, ?, ?) RETURNING id`,
		p.Name, p.Category, p.Price.String(), p.Description, p.Image,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return r.list(ctx, "list products by category",
		`SELECT `+productColumns+` FROM products WHERE category = ? ORDER BY id`, category)
}

func (r *ProductRepo) SearchByName(ctx context.Context, query string) ([]*entity.Product, error) {
	stmt := `SELECT ` + productColumns + ` FROM products WHERE name LIKE '%' || ? || '%' ORDER BY id`
	if r.caseSensitiveSearch {
		stmt = `SELECT ` + productColumns + ` FROM products WHERE instr(name, ?) > 0 ORDER BY id`
	}
	return r.list(ctx, "search products", stmt, query)
}

func (r *ProductRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
