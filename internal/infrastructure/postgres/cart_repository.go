package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para el carrito.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Add inserta una fila nueva; nunca acumula sobre una existente.
// Un producto inexistente devuelve domain.ErrNotFound.
func (r *CartRepo) Add(ctx context.Context, e *entity.CartEntry) error {
	query := `
		INSERT INTO cart (user_id, product_id)
		VALUES ($1, $2)
		RETURNING id, quantity`
	if err := r.q.QueryRow(ctx, query, e.UserID, e.ProductID).Scan(&e.ID, &e.Quantity); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, e.ProductID)
		}
		return fmt.Errorf("insert cart entry: %w", err)
	}
	return nil
}

// Delete elimina la fila; si no existe no hace nada.
func (r *CartRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM cart WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}
	return nil
}

// UpdateQuantity delega en PostgreSQL la conversión texto -> entero.
func (r *CartRepo) UpdateQuantity(ctx context.Context, id int64, quantity string) error {
	_, err := r.q.Exec(ctx, `UPDATE cart SET quantity = CAST($1::text AS INTEGER) WHERE id = $2`, quantity, id)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

// GetByID obtiene una fila del carrito.
func (r *CartRepo) GetByID(ctx context.Context, id int64) (*entity.CartEntry, error) {
	var e entity.CartEntry
	err := r.q.QueryRow(ctx, `SELECT id, user_id, product_id, quantity FROM cart WHERE id = $1`, id).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart entry: %w", err)
	}
	return &e, nil
}

// ListLines agrupa por cart.id: cada fila es su propio grupo y quantity cuenta filas del grupo.
func (r *CartRepo) ListLines(ctx context.Context) ([]*entity.CartLine, error) {
	query := `
		SELECT c.id, p.id, p.name, p.category, p.price, p.description, p.image, COUNT(c.product_id)
		FROM cart c
		JOIN products p ON c.product_id = p.id
		GROUP BY c.id, p.id
		ORDER BY c.id`
	rows, err := r.q.Query(ctx, query)
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
