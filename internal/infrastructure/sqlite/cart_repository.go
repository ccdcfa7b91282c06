package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre SQLite.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para el carrito.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

func (r *CartRepo) Add(ctx context.Context, e *entity.CartEntry) error {
	err := r.q.QueryRowContext(ctx,
		`INSERT INTO cart (user_id, product_id) VALUES (?, ?) RETURNING id, quantity`,
		e.UserID, e.ProductID,
	).Scan(&e.ID, &e.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, e.ProductID)
		}
		return fmt.Errorf("insert cart entry: %w", err)
	}
	return nil
}

func (r *CartRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM cart WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}
	return nil
}

// UpdateQuantity: CAST de SQLite convierte texto no numérico en 0 en lugar de fallar.
func (r *CartRepo) UpdateQuantity(ctx context.Context, id int64, quantity string) error {
	if _, err := r.q.ExecContext(ctx, `UPDATE cart SET quantity = CAST(? AS INTEGER) WHERE id = ?`, quantity, id); err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

func (r *CartRepo) GetByID(ctx context.Context, id int64) (*entity.CartEntry, error) {
	var e entity.CartEntry
	err := r.q.QueryRowContext(ctx, `SELECT id, user_id, product_id, quantity FROM cart WHERE id = ?`, id).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart entry: %w", err)
	}
	return &e, nil
}

func (r *CartRepo) ListLines(ctx context.Context) ([]*entity.CartLine, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT c.id, p.id, p.name, p.category, p.price, p.description, p.image, COUNT(c.product_id)
		FROM cart c
		JOIN products p ON c.product_id = p.id
		GROUP BY c.id, p.id
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()
	lines := make([]*entity.CartLine, 0)
	for rows.Next() {
		var l entity.CartLine
		if err := rows.Scan(&l.CartID, &l.ProductID, &l.Name, &l.Category, &l.Price, &l.Description, &l.Image, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}
