package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verboso"))
}

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "warn", App: "restaurante-api", Output: &buf})

	log.Info().Msg("descartado")
	log.Warn().Int64("client_id", 7).Msg("login rechazado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "una sola línea JSON")
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "restaurante-api", line["app"])
	assert.Equal(t, float64(7), line["client_id"])
}
