package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// CatalogUseCase consultas del catálogo y alta de productos.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListByCategory productos cuya categoría coincide exactamente (sin normalizar).
func (uc *CatalogUseCase) ListByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search productos cuyo nombre contiene query.
func (uc *CatalogUseCase) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	list, err := uc.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	return &dto.SearchResponse{Products: toProductResponses(list), Query: query}, nil
}

// SearchSuggestions mismo filtro que Search, sin ranking ni límite, para autocompletado.
func (uc *CatalogUseCase) SearchSuggestions(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID devuelve domain.ErrNotFound si el producto no existe.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// AddProduct valida la imagen y el precio antes de tocar el store.
func (uc *CatalogUseCase) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.ImagePath) == "" {
		return nil, domain.ErrMissingUpload
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return nil, fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, in.Price)
	}
	p := &entity.Product{
		Name:        in.Name,
		Category:    in.Category,
		Price:       price,
		Description: in.Description,
		Image:       in.ImagePath,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
	}
}
