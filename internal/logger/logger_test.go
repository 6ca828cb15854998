package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/reqvalidate/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultObservabilityConfig()

	log := NewWithWriter(cfg, &buf)
	log.Info().Str("path", "/status").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "development", entry["environment"])
	assert.Equal(t, "/status", entry["path"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	log := NewWithWriter(cfg, &buf)
	log.Info().Msg("dropped")

	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	assert.Empty(t, buf.String())
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"

	log := NewWithWriter(cfg, &buf)
	log.Info().Msg("hello console")

	assert.Contains(t, buf.String(), "hello console")
	assert.False(t, json.Valid(buf.Bytes()))
}
