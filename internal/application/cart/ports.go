package cart

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// SummaryPDFGenerator genera el resumen imprimible del carrito.
type SummaryPDFGenerator interface {
	GenerateCartPDF(ctx context.Context, lines []*entity.CartLine) ([]byte, error)
}
