package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
)

// Mensajes visibles del formulario de login.
const (
	MsgUnregisteredEmail = "Unregistered email. Please create an account."
	MsgIncorrectPassword = "Incorrect password. Please try again."
	MsgDuplicateAccount  = "An account with this email already exists."
)

// CookieConfig cookie de sesión.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler maneja registro, login, logout y perfil.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Register godoc
// @Summary      Crear cuenta
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name      formData  string  true  "Nombre"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Contraseña"
// @Success      302
// @Failure      409  {object}  dto.ViewResponse
// @Router       /create-account [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.RegisterUser(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return c.Status(fiber.StatusConflict).JSON(dto.ViewResponse{View: "create-account", ErrorMessage: MsgDuplicateAccount})
		}
		return err
	}
	return c.Redirect("/login")
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Con credenciales válidas fija la cookie de sesión y redirige a /home.
// @Description  Si fallan, responde 200 con la vista de login y el mensaje de error.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Contraseña"
// @Success      302
// @Success      200  {object}  dto.ViewResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if msg, ok := loginMessage(err); ok {
			return c.JSON(dto.ViewResponse{View: "login", ErrorMessage: msg})
		}
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/home")
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetSessionToken(c)); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/login")
}

// Profile godoc
// @Summary      Perfil de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Success      302
// @Router       /profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	email := GetSessionEmail(c)
	if email == "" {
		return c.Redirect("/login")
	}
	return c.JSON(dto.ProfileResponse{Email: email})
}

func loginMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrUnregisteredEmail):
		return MsgUnregisteredEmail, true
	case errors.Is(err, domain.ErrIncorrectPassword):
		return MsgIncorrectPassword, true
	}
	return "", false
}
