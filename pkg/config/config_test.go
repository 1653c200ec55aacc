package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/pkg/config"
)

// El DSN construido codifica caracteres especiales de la contraseña.
func TestDSN_CodificaPassword(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:w/ord",
		DBName: "bodega", SSLMode: "require",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aw%2Ford")
	assert.Contains(t, dsn, "/bodega?sslmode=require")
}

// DATABASE_URL definido tiene prioridad sobre los campos discretos.
func TestConnectionString_PrioridadDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@remoto:5432/x",
		Host:        "localhost", Port: 5432, DBName: "otro",
	}
	assert.Equal(t, "postgresql://u:p@remoto:5432/x", db.ConnectionString())
}

func TestHTTPAddr(t *testing.T) {
	h := config.HTTPConfig{Host: "0.0.0.0", Port: 8000}
	assert.Equal(t, "0.0.0.0:8000", h.Addr())
}

// Las env vars pisan los valores por defecto.
func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("DB_NAME", "bodega_test")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, "bodega_test", cfg.DB.DBName)
}
