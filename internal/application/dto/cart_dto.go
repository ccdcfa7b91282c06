package dto

import "github.com/shopspring/decimal"

// CartLineResponse fila del listado del carrito: campos del producto más
// cart_id y quantity (conteo de filas del grupo).
type CartLineResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	CartID      int64           `json:"cart_id"`
	Quantity    int64           `json:"quantity"`
}

// CartEntryResponse fila almacenada del carrito.
type CartEntryResponse struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}
