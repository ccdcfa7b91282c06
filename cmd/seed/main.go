// seed carga la cuenta demo y un catálogo de ejemplo en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DB_DRIVER, DATABASE_URL, SQLITE_PATH...).
// Es idempotente: no duplica la cuenta ni los productos de una categoría ya poblada.
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/infrastructure/store"
	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

var demoUser = entity.User{Name: "Demo", Email: "demo@example.com", Password: "demo1234"}

var sampleProducts = []entity.Product{
	{Name: "Linen shirt", Category: entity.CategoryMen, Price: decimal.RequireFromString("29.90"), Description: "Camisa de lino manga larga", Image: "/uploads/linen-shirt.jpg"},
	{Name: "Denim jacket", Category: entity.CategoryMen, Price: decimal.RequireFromString("79.00"), Description: "Chaqueta de jean", Image: "/uploads/denim-jacket.jpg"},
	{Name: "Chino trousers", Category: entity.CategoryMen, Price: decimal.RequireFromString("45.50"), Description: "Pantalón chino", Image: "/uploads/chino.jpg"},
	{Name: "Silk dress", Category: entity.CategoryWomen, Price: decimal.RequireFromString("120.00"), Description: "Vestido de seda", Image: "/uploads/silk-dress.jpg"},
	{Name: "Cotton T-Shirt", Category: entity.CategoryWomen, Price: decimal.RequireFromString("15.99"), Description: "Camiseta de algodón", Image: "/uploads/cotton-tshirt.jpg"},
	{Name: "Wool coat", Category: entity.CategoryWomen, Price: decimal.RequireFromString("150.00"), Description: "Abrigo de lana", Image: "/uploads/wool-coat.jpg"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).With("component", "seed")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("seed abortado")
	}
	log.Info().Msg("seed completado")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	repos, err := store.Open(ctx, cfg.DB, cfg.Catalog.SearchCaseSensitive)
	if err != nil {
		return fmt.Errorf("conexión al almacenamiento (%s): %w", cfg.DB.Driver, err)
	}
	defer repos.Close()

	passwords, err := auth.NewPasswordMatcher(cfg.Auth.PasswordMode)
	if err != nil {
		return fmt.Errorf("modo de contraseñas: %w", err)
	}

	u := demoUser
	if u.Password, err = passwords.Hash(u.Password); err != nil {
		return fmt.Errorf("hash de contraseña demo: %w", err)
	}
	switch err := repos.Users.Create(ctx, &u); {
	case errors.Is(err, domain.ErrDuplicateAccount):
		log.Info().Str("email", u.Email).Msg("cuenta demo ya existe")
	case err != nil:
		return fmt.Errorf("crear cuenta demo: %w", err)
	default:
		log.Info().Int64("id", u.ID).Str("email", u.Email).Msg("cuenta demo creada")
		if u.ID != cfg.Cart.DemoUserID {
			log.Warn().Int64("id", u.ID).Int64("cart_demo_user_id", cfg.Cart.DemoUserID).
				Msg("la cuenta demo no coincide con CART_DEMO_USER_ID")
		}
	}

	for _, category := range []string{entity.CategoryMen, entity.CategoryWomen} {
		existing, err := repos.Products.ListByCategory(ctx, category)
		if err != nil {
			return fmt.Errorf("listar productos %s: %w", category, err)
		}
		if len(existing) > 0 {
			log.Info().Str("category", category).Int("count", len(existing)).Msg("categoría ya poblada")
			continue
		}
		for _, p := range sampleProducts {
			if p.Category != category {
				continue
			}
			if err := repos.Products.Create(ctx, &p); err != nil {
				return fmt.Errorf("crear producto %s: %w", p.Name, err)
			}
			log.Info().Int64("id", p.ID).Str("product", p.Name).Msg("producto creado")
		}
	}
	return nil
}
