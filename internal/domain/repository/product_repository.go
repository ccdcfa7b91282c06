package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	// SearchByName devuelve los productos cuyo nombre contiene query.
	SearchByName(ctx context.Context, query string) ([]*entity.Product, error)
}
