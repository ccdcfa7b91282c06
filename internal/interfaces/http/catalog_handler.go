package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
)

// ImageStorage guarda la imagen subida y devuelve su ruta pública.
type ImageStorage interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(publicPath string) error
}

// CatalogHandler maneja listados, búsqueda, detalle y alta de productos.
type CatalogHandler struct {
	uc      *catalog.CatalogUseCase
	uploads ImageStorage
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase, uploads ImageStorage) *CatalogHandler {
	return &CatalogHandler{uc: uc, uploads: uploads}
}

// ListCategory devuelve un handler que lista la categoría fija indicada.
//
// @Summary      Productos por categoría
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /men-apparel [get]
// @Router       /women-apparel [get]
func (h *CatalogHandler) ListCategory(category string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.ListByCategory(c.UserContext(), category)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

// Search godoc
// @Summary      Buscar productos por nombre
// @Tags         catalog
// @Produce      json
// @Param        query  query  string  false  "Texto a buscar"
// @Success      200  {object}  dto.SearchResponse
// @Router       /search [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SearchSuggestions godoc
// @Summary      Sugerencias de búsqueda
// @Tags         catalog
// @Produce      json
// @Param        query  query  string  false  "Texto a buscar"
// @Success      200  {array}  dto.ProductResponse
// @Router       /search-suggestions [get]
func (h *CatalogHandler) SearchSuggestions(c *fiber.Ctx) error {
	out, err := h.uc.SearchSuggestions(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de producto
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {string}  string  "Product not found"
// @Router       /product/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return err
	}
	return c.JSON(out)
}

// AddProduct godoc
// @Summary      Alta de producto
// @Description  Acepta name|productName, price|productPrice y description|productDescription.
// @Tags         catalog
// @Accept       multipart/form-data
// @Param        name         formData  string  true  "Nombre"
// @Param        price        formData  string  true  "Precio"
// @Param        description  formData  string  false "Descripción"
// @Param        category     formData  string  true  "Categoría"
// @Param        image        formData  file    true  "Imagen"
// @Success      302
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /add-product [post]
func (h *CatalogHandler) AddProduct(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return domain.ErrMissingUpload
	}
	image, err := h.uploads.Save(file)
	if err != nil {
		return err
	}
	in := dto.CreateProductRequest{
		Name:        formValue(c, "name", "productName"),
		Price:       formValue(c, "price", "productPrice"),
		Description: formValue(c, "description", "productDescription"),
		Category:    c.FormValue("category"),
		ImagePath:   image,
	}
	if _, err := h.uc.AddProduct(c.UserContext(), in); err != nil {
		// Sin producto la imagen queda huérfana.
		if rmErr := h.uploads.Remove(image); rmErr != nil {
			return errors.Join(err, rmErr)
		}
		return err
	}
	return c.Redirect("/home")
}
