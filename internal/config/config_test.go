package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "2M", cfg.Server.BodyLimit)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("REQVALIDATE_PRIMARY__ENV", "production")
	t.Setenv("REQVALIDATE_SERVER__PORT", "9090")
	t.Setenv("REQVALIDATE_SERVER__READ_TIMEOUT", "5")
	t.Setenv("REQVALIDATE_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("REQVALIDATE_OBSERVABILITY__LOGGING__FORMAT", "console")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout, "unset keys keep their default")
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "console", cfg.Observability.Logging.Format)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log level", key: "REQVALIDATE_OBSERVABILITY__LOGGING__LEVEL", value: "verbose"},
		{name: "unknown log format", key: "REQVALIDATE_OBSERVABILITY__LOGGING__FORMAT", value: "xml"},
		{name: "zero read timeout", key: "REQVALIDATE_SERVER__READ_TIMEOUT", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()

			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("REQVALIDATE_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.logging.level", envKey("REQVALIDATE_OBSERVABILITY__LOGGING__LEVEL"))
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}
