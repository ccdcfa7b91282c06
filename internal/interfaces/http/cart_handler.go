package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/cart"
)

// CartHandler maneja el carrito. Todas las filas nuevas van al usuario demo.
type CartHandler struct {
	uc         *cart.CartUseCase
	demoUserID int64
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.CartUseCase, demoUserID int64) *CartHandler {
	return &CartHandler{uc: uc, demoUserID: demoUserID}
}

// List godoc
// @Summary      Listado del carrito
// @Tags         cart
// @Produce      json
// @Success      200  {array}  dto.CartLineResponse
// @Router       /cart [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Resumen del carrito en PDF
// @Tags         cart
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /cart.pdf [get]
func (h *CartHandler) PDF(c *fiber.Ctx) error {
	out, err := h.uc.PDF(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="cart.pdf"`)
	return c.Send(out)
}

// Add godoc
// @Summary      Añadir al carrito
// @Tags         cart
// @Accept       x-www-form-urlencoded
// @Param        product_id  formData  int  true  "ID del producto"
// @Success      302
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /add-to-cart [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	productID, err := formInt64(c, "product_id")
	if err != nil {
		return err
	}
	if _, err := h.uc.Add(c.UserContext(), h.demoUserID, productID); err != nil {
		return err
	}
	return c.Redirect("/home")
}

// Remove godoc
// @Summary      Quitar fila del carrito
// @Tags         cart
// @Accept       x-www-form-urlencoded
// @Param        cart_id  formData  int  true  "ID de la fila"
// @Success      302
// @Router       /remove-from-cart [post]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	cartID, err := formInt64(c, "cart_id")
	if err != nil {
		return err
	}
	if err := h.uc.Remove(c.UserContext(), cartID); err != nil {
		return err
	}
	return c.Redirect("/cart")
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una fila
// @Description  La cantidad se guarda tal cual llega, sin validar rango.
// @Tags         cart
// @Accept       x-www-form-urlencoded
// @Param        cart_id   formData  int     true  "ID de la fila"
// @Param        quantity  formData  string  true  "Cantidad"
// @Success      302
// @Router       /update-quantity [post]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	cartID, err := formInt64(c, "cart_id")
	if err != nil {
		return err
	}
	if err := h.uc.UpdateQuantity(c.UserContext(), cartID, c.FormValue("quantity")); err != nil {
		return err
	}
	return c.Redirect("/cart")
}
