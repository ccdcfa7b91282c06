package entity

import "github.com/shopspring/decimal"

// CartEntry una fila del carrito: una adición de un producto, no un acumulador.
type CartEntry struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int64
}

// CartLine fila del listado del carrito: producto + id de la fila.
// Quantity es el conteo de filas del grupo (el listado agrupa por id de fila),
// no la columna quantity almacenada.
type CartLine struct {
	CartID      int64
	ProductID   int64
	Name        string
	Category    string
	Price       decimal.Decimal
	Description string
	Image       string
	Quantity    int64
}
