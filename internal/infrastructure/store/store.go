// Package store elige el backend de persistencia según DB_DRIVER y expone
// los repositorios listos para inyectar en los casos de uso.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/internal/infrastructure/postgres"
	"github.com/jhoicas/storefront-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/storefront-api/pkg/config"
)

// Repositories repositorios sobre una única conexión compartida.
type Repositories struct {
	Driver   string
	Users    repository.UserRepository
	Products repository.ProductRepository
	Cart     repository.CartRepository
	close    func() error
}

// Close libera el pool o la base SQLite.
func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// Open aplica las migraciones y abre la conexión del driver configurado.
func Open(ctx context.Context, cfg config.DBConfig, caseSensitiveSearch bool) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if err := postgres.RunMigrations(cfg.ConnectionString()); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Driver:   cfg.Driver,
			Users:    postgres.NewUserRepository(pool),
			Products: postgres.NewProductRepository(pool, caseSensitiveSearch),
			Cart:     postgres.NewCartRepository(pool),
			close:    func() error { pool.Close(); return nil },
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Driver:   cfg.Driver,
			Users:    sqlite.NewUserRepository(db),
			Products: sqlite.NewProductRepository(db, caseSensitiveSearch),
			Cart:     sqlite.NewCartRepository(db),
			close:    db.Close,
		}, nil
	}
	return nil, fmt.Errorf("store: driver desconocido %q", cfg.Driver)
}
