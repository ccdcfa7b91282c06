package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// CartRepository define el puerto de persistencia para las filas del carrito (DIP).
type CartRepository interface {
	// Add inserta siempre una fila nueva y asigna entry.ID.
	Add(ctx context.Context, entry *entity.CartEntry) error
	// Delete borra la fila; un id inexistente no es error.
	Delete(ctx context.Context, id int64) error
	// UpdateQuantity sobrescribe quantity con el valor crudo recibido; la conversión
	// la hace el motor de base de datos.
	UpdateQuantity(ctx context.Context, id int64, quantity string) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.CartEntry, error)
	// ListLines lista todas las filas unidas a su producto, agrupadas por id de fila.
	ListLines(ctx context.Context) ([]*entity.CartLine, error)
}
