package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/dto"
)

// Locals keys para el token de sesión y el email resuelto.
const (
	LocalSessionToken = "session_token"
	LocalSessionEmail = "session_email"
)

// profileResolver lo implementa *auth.AuthUseCase.
type profileResolver interface {
	Profile(ctx context.Context, token string) (*dto.ProfileResponse, bool, error)
}

// SessionMiddleware lee la cookie de sesión y, si el token es válido, deja el
// email en c.Locals. No corta la petición: cada handler decide qué hacer sin sesión.
func SessionMiddleware(resolver profileResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}
		c.Locals(LocalSessionToken, token)

		profile, ok, err := resolver.Profile(c.UserContext(), token)
		if err != nil {
			return err
		}
		if ok {
			c.Locals(LocalSessionEmail, profile.Email)
		}
		return c.Next()
	}
}

// GetSessionToken devuelve el token de la cookie (puede no ser válido).
func GetSessionToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionToken).(string)
	return s
}

// GetSessionEmail devuelve el email autenticado o "" si no hay sesión.
func GetSessionEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionEmail).(string)
	return s
}
