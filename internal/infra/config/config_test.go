package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, SourceFile, cfg.College.Source)
	require.Equal(t, "data/college_details.json", cfg.College.DataPath)
	require.Equal(t, []string{"vnr", "vnrvjiet", "vjiet"}, cfg.Helpdesk.CollegeAliases)
}

func TestLoadReadsFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
college:
  dataPath: "fixtures/college.json"
helpdesk:
  collegeAliases: ["gie"]
  topTrending: 5
stats:
  retention: 24h
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HELPDESK_TOP_TRENDING", "7")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "fixtures/college.json", cfg.College.DataPath)
	require.Equal(t, []string{"gie"}, cfg.Helpdesk.CollegeAliases)
	require.Equal(t, 7, cfg.Helpdesk.TopTrending)
	require.Equal(t, 24*time.Hour, cfg.Stats.Retention)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.True(t, cfg.HTTP.RateLimit.Enabled, "defaults survive a partial file")
}

func TestEnvOverridesSource(t *testing.T) {
	cfg := defaultConfig()
	t.Setenv("COLLEGE_SOURCE", " Postgres ")
	t.Setenv("COLLEGE_POSTGRES_DSN", "postgres://localhost/helpdesk")
	t.Setenv("STATS_REDIS_ENABLED", "1")
	t.Setenv("STATS_REDIS_ADDR", "localhost:6379")
	t.Setenv("PORT", "3000")

	applyEnvOverrides(cfg)
	require.Equal(t, SourcePostgres, cfg.College.Source)
	require.Equal(t, ":3000", cfg.HTTP.Address)
	require.True(t, cfg.Stats.Redis.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":         func(c *Config) { c.HTTP.Address = "" },
		"unknown source":        func(c *Config) { c.College.Source = "ftp" },
		"file without path":     func(c *Config) { c.College.DataPath = " " },
		"postgres without dsn":  func(c *Config) { c.College.Source = SourcePostgres },
		"objectstore no bucket": func(c *Config) { c.College.Source = SourceObjectStore },
		"redis without addr":    func(c *Config) { c.Stats.Redis.Enabled = true },
		"negative trending":     func(c *Config) { c.Helpdesk.TopTrending = -1 },
		"zero rate limit":       func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 },
		"zero retry attempts":   func(c *Config) { c.HTTP.Retry.MaxAttempts = 0 },
	}
	for name, mutate := range cases {
		cfg := defaultConfig()
		mutate(cfg)
		require.Error(t, cfg.Validate(), name)
	}
}
