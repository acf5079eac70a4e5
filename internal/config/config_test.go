package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 95, cfg.Predictor.MaxResults)
	assert.Equal(t, 20, cfg.Predictor.RecommendationLimit)
	assert.Equal(t, "10m", cfg.Cache.TTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  dsn: /tmp/eamcet.db
predictor:
  max_results: 40
cors:
  allowed_origins: ["https://a.example"]
`)
	t.Setenv("PREDICTOR_SIMILAR_LIMIT", "5")
	t.Setenv("CORS_ALLOWED_METHODS", "GET, POST")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 40, cfg.Predictor.MaxResults)
	assert.Equal(t, 5, cfg.Predictor.SimilarLimit)
	assert.Equal(t, []string{"https://a.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST"}, cfg.CORS.AllowedMethods)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown driver", body: "database:\n  driver: oracle\n"},
		{name: "sqlite without dsn", body: "database:\n  driver: sqlite\n  dsn: \"\"\n"},
		{name: "memory without seed", body: "database:\n  driver: memory\n"},
		{name: "zero limit", body: "predictor:\n  max_results: 0\n"},
		{name: "bad ttl", body: "cache:\n  ttl: soon\n"},
		{name: "bad rate window", body: "rate_limit:\n  enabled: true\n  window: later\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "eamcet"

	assert.Equal(t, "postgres://u:p@db:5432/eamcet?sslmode=disable", cfg.GetPostgresConnectionString())
}
