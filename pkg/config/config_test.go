package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/pkg/config"
)

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err, "sin JWT_SECRET la carga debe fallar")
}

func TestLoad_ValoresPorDefectoYEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.Equal(t, 5, cfg.JWT.AccessMinutes)
	assert.Equal(t, 1440, cfg.JWT.RefreshMinutes)
	assert.True(t, cfg.JWT.UpdateLastLogin)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.False(t, cfg.Metrics.Enabled)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "restaurante", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/restaurante?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestLoadDB_NoExigeSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_HOST", "pg.interno")
	t.Setenv("DB_PORT", "6543")

	db := config.LoadDB()
	assert.Equal(t, "pg.interno", db.Host)
	assert.Equal(t, 6543, db.Port)
	assert.Equal(t, "restaurante", db.DBName)
}
