package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoragePostgres, cfg.DB.Driver)
	assert.Equal(t, 12, cfg.Catalog.PageSize)
	assert.Equal(t, "/media/", cfg.Media.URL)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("CATALOG_PAGE_SIZE", "5")
	v.Set("MEDIA_URL", "/static/img")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.DB.Driver)
	assert.Equal(t, 5, cfg.Catalog.PageSize)
	assert.Equal(t, "/static/img/", cfg.Media.URL, "MEDIA_URL siempre termina en /")
}

func TestFromViper_RechazaDriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mysql")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_RechazaPageSizeInvalido(t *testing.T) {
	v := viper.New()
	v.Set("CATALOG_PAGE_SIZE", 0)

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "catalogo", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/catalogo?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
