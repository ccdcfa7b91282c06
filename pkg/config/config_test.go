package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, config.SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, "storefront_session", cfg.Session.CookieName)
	assert.Equal(t, int64(1), cfg.Cart.DemoUserID)
	assert.Equal(t, "plain", cfg.Auth.PasswordMode)
	assert.False(t, cfg.Catalog.SearchCaseSensitive)
	assert.Equal(t, "public/uploads", cfg.Storage.UploadDir)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "SQLite")
	v.Set("SQLITE_PATH", ":memory:")
	v.Set("PORT", "8081")
	v.Set("CART_DEMO_USER_ID", "7")
	v.Set("CATALOG_SEARCH_CASE_SENSITIVE", "true")
	v.Set("SESSION_STORE", "redis")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.SQLitePath)
	assert.Equal(t, 8081, cfg.HTTP.Port, "PORT se usa cuando HTTP_PORT no está definido")
	assert.Equal(t, int64(7), cfg.Cart.DemoUserID)
	assert.True(t, cfg.Catalog.SearchCaseSensitive)
	assert.Equal(t, config.SessionStoreRedis, cfg.Session.Store)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "shop", Password: "p@ss word", DBName: "ecommerce", SSLMode: "disable"}
	assert.Equal(t, "postgres://shop:p%40ss%20word@db:5432/ecommerce?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
