package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/session"
	infrapdf "github.com/jhoicas/storefront-api/internal/infrastructure/pdf"
	infrasession "github.com/jhoicas/storefront-api/internal/infrastructure/session"
	"github.com/jhoicas/storefront-api/internal/infrastructure/store"
	"github.com/jhoicas/storefront-api/internal/infrastructure/upload"
	httpRouter "github.com/jhoicas/storefront-api/internal/interfaces/http"
	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando aplicación")

	// run cierra almacenamiento y Redis antes de volver; Fatal solo después.
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("aplicación abortada")
	}
	log.Info().Msg("aplicación detenida")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()
	repos, err := store.Open(ctx, cfg.DB, cfg.Catalog.SearchCaseSensitive)
	if err != nil {
		return fmt.Errorf("conexión al almacenamiento (%s): %w", cfg.DB.Driver, err)
	}
	defer repos.Close()

	var sessionStore session.Store
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := infrasession.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("conexión a Redis %s: %w", cfg.Redis.Addr, err)
		}
		defer client.Close()
		sessionStore = infrasession.NewRedisStore(client)
	default:
		sessionStore = infrasession.NewMemoryStore()
	}
	sessions := session.NewManager(sessionStore)

	passwords, err := auth.NewPasswordMatcher(cfg.Auth.PasswordMode)
	if err != nil {
		return fmt.Errorf("modo de contraseñas: %w", err)
	}
	if cfg.Auth.PasswordMode == auth.PasswordModePlain {
		log.Warn().Msg("contraseñas en texto plano (AUTH_PASSWORD_MODE=plain)")
	}

	uploads, err := upload.NewDiskStorage(cfg.Storage.UploadDir, "/uploads")
	if err != nil {
		return fmt.Errorf("directorio de subidas: %w", err)
	}

	authUC := auth.NewAuthUseCase(repos.Users, sessions, passwords)
	catalogUC := catalog.NewCatalogUseCase(repos.Products)
	cartUC := cart.NewCartUseCase(repos.Cart, infrapdf.NewMarotoCartPDFGenerator(cfg.App.Name))

	appCfg := httpRouter.AppConfig{Name: cfg.App.Name}
	if cfg.Swagger.Enabled {
		appCfg.SwaggerFile = cfg.Swagger.FilePath
	}
	app := httpRouter.NewApp(appCfg, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		CartUC:     cartUC,
		Uploads:    uploads,
		Log:        log.With("component", "http"),
		Cookie:     httpRouter.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
		DemoUserID: cfg.Cart.DemoUserID,
		PublicDir:  cfg.Storage.PublicDir,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	return nil
}
