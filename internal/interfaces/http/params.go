package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/domain"
)

func paramInt64(c *fiber.Ctx, key string) (int64, error) {
	return parseID(key, c.Params(key))
}

func formInt64(c *fiber.Ctx, key string) (int64, error) {
	return parseID(key, c.FormValue(key))
}

func parseID(key, raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q no es numérico", domain.ErrInvalidInput, key, raw)
	}
	return n, nil
}

// formValue devuelve el primer campo no vacío entre keys.
func formValue(c *fiber.Ctx, keys ...string) string {
	for _, k := range keys {
		if v := c.FormValue(k); v != "" {
			return v
		}
	}
	return ""
}
