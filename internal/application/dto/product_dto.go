package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. ImagePath lo rellena
// el handler después de guardar la imagen subida.
type CreateProductRequest struct {
	Name        string
	Price       string
	Description string
	Category    string
	ImagePath   string
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}

// SearchResponse resultados de /search con la consulta devuelta tal cual.
type SearchResponse struct {
	Products []ProductResponse `json:"products"`
	Query    string            `json:"query"`
}
