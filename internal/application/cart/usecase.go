package cart

import (
	"context"
	"errors"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// CartUseCase libro del carrito. Cada operación es una única sentencia
// independiente contra el store, sin transacción.
type CartUseCase struct {
	repo repository.CartRepository
	pdf  SummaryPDFGenerator
}

// NewCartUseCase construye el caso de uso. pdf puede ser nil si no se expone /cart.pdf.
func NewCartUseCase(repo repository.CartRepository, pdf SummaryPDFGenerator) *CartUseCase {
	return &CartUseCase{repo: repo, pdf: pdf}
}

// Add inserta una fila nueva aunque ya exista otra para el mismo (usuario, producto).
func (uc *CartUseCase) Add(ctx context.Context, userID, productID int64) (*dto.CartEntryResponse, error) {
	e := &entity.CartEntry{UserID: userID, ProductID: productID}
	if err := uc.repo.Add(ctx, e); err != nil {
		return nil, err
	}
	return toEntryResponse(e), nil
}

// Remove borra la fila por id. Un id inexistente no es error.
func (uc *CartUseCase) Remove(ctx context.Context, cartID int64) error {
	return uc.repo.Delete(ctx, cartID)
}

// UpdateQuantity sobrescribe la cantidad con el valor recibido, sin validarlo.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, cartID int64, quantity string) error {
	return uc.repo.UpdateQuantity(ctx, cartID, quantity)
}

// Get devuelve la fila almacenada o domain.ErrNotFound.
func (uc *CartUseCase) Get(ctx context.Context, cartID int64) (*dto.CartEntryResponse, error) {
	e, err := uc.repo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEntryResponse(e), nil
}

// List todas las filas unidas a su producto, agrupadas por id de fila.
// quantity es el número de filas del grupo (siempre 1), no la cantidad almacenada.
func (uc *CartUseCase) List(ctx context.Context) ([]dto.CartLineResponse, error) {
	lines, err := uc.repo.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CartLineResponse{
			ID:          l.ProductID,
			Name:        l.Name,
			Category:    l.Category,
			Price:       l.Price,
			Description: l.Description,
			Image:       l.Image,
			CartID:      l.CartID,
			Quantity:    l.Quantity,
		})
	}
	return out, nil
}

// PDF resumen imprimible del mismo listado.
func (uc *CartUseCase) PDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, errors.New("cart: generador PDF no configurado")
	}
	lines, err := uc.repo.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCartPDF(ctx, lines)
}

func toEntryResponse(e *entity.CartEntry) *dto.CartEntryResponse {
	return &dto.CartEntryResponse{ID: e.ID, UserID: e.UserID, ProductID: e.ProductID, Quantity: e.Quantity}
}
