package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CatalogUC  *catalog.CatalogUseCase
	CartUC     *cart.CartUseCase
	Uploads    ImageStorage
	Log        *logger.Logger
	Cookie     CookieConfig
	DemoUserID int64
	PublicDir  string // vacío = sin archivos estáticos
}

// AppConfig opciones del servidor fiber.
type AppConfig struct {
	Name        string
	SwaggerFile string // vacío = sin /docs
}

// NewApp crea la app fiber con logging, recover, frontera de errores y todas las rutas.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: ErrorHandler(deps.Log),
	})
	app.Use(RequestLogger(deps.Log))
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SwaggerFile,
			Path:     "docs",
			Title:    cfg.Name,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la tienda.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Uploads)
	cartHandler := NewCartHandler(deps.CartUC, deps.DemoUserID)
	session := SessionMiddleware(deps.AuthUC, deps.Cookie.Name)

	// Vistas sin datos
	app.Get("/", view("index"))
	app.Get("/home", view("home"))
	app.Get("/login", view("login"))
	app.Get("/create-account", view("create-account"))
	app.Get("/add-product", view("add-product"))

	// Auth
	app.Post("/create-account", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", session, authHandler.Logout)
	app.Get("/profile", session, authHandler.Profile)

	// Catálogo
	app.Get("/men-apparel", catalogHandler.ListCategory(entity.CategoryMen))
	app.Get("/women-apparel", catalogHandler.ListCategory(entity.CategoryWomen))
	app.Get("/search", catalogHandler.Search)
	app.Get("/search-suggestions", catalogHandler.SearchSuggestions)
	app.Get("/product/:id", catalogHandler.GetByID)
	app.Post("/add-product", catalogHandler.AddProduct)

	// Carrito
	app.Get("/cart", cartHandler.List)
	app.Get("/cart.pdf", cartHandler.PDF)
	app.Post("/add-to-cart", cartHandler.Add)
	app.Post("/remove-from-cart", cartHandler.Remove)
	app.Post("/update-quantity", cartHandler.UpdateQuantity)

	// Estáticos e imágenes subidas
	if deps.PublicDir != "" {
		app.Static("/", deps.PublicDir)
	}
}

func view(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.ViewResponse{View: name})
	}
}
