package entity

import "github.com/shopspring/decimal"

// Categorías publicadas en la tienda.
const (
	CategoryMen   = "men"
	CategoryWomen = "women"
)

// Product artículo del catálogo. Solo lectura una vez creado.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Price       decimal.Decimal
	Description string
	Image       string // ruta pública, ej. /uploads/1700000000000.jpg
}
