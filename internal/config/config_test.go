package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insights-api/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "/api", cfg.HTTP.BasePath)
	assert.Equal(t, "/internal/metrics", cfg.HTTP.MetricsPath)
	assert.Equal(t, configs.StoreMemory, cfg.Store.Driver)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Contains(t, cfg.AI.APIURL, "gemini-pro:generateContent")
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/insights?sslmode=disable")
	t.Setenv("PSQL_SEED", "true")
	t.Setenv("AI_ENABLED", "true")
	t.Setenv("AI_API_KEY", "k")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("AI_RATE_LIMIT_RPS", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9000), cfg.HTTP.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, configs.StorePostgres, cfg.Store.Driver)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Psql.Seed)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "k", cfg.AI.APIKey)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 0.5, cfg.AI.RateLimitRPS)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown driver")
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(configs.Logger{Level: "warn", Format: "JSON"}.Handler(&buf))

	l.Info("hidden")
	l.Warn("shown", slog.String("k", "v"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "v", line["k"])

	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "nope"}.SlogLevel())
	assert.Equal(t, "text", configs.Logger{Format: "xml"}.SlogFormat())
}
