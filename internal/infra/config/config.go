package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Source kinds for the college document.
const (
	SourceFile        = "file"
	SourcePostgres    = "postgres"
	SourceObjectStore = "objectstore"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	College  CollegeConfig  `yaml:"college"`
	Helpdesk HelpdeskConfig `yaml:"helpdesk"`
	Stats    StatsConfig    `yaml:"stats"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// CollegeConfig locates the college document.
type CollegeConfig struct {
	Source      string            `yaml:"source"`
	DataPath    string            `yaml:"dataPath"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	ObjectStore ObjectStoreConfig `yaml:"objectStore"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	Slug     string `yaml:"slug"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ObjectStoreConfig points at an S3-compatible bucket (R2, MinIO, S3).
type ObjectStoreConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Object    string `yaml:"object"`
	Region    string `yaml:"region"`
}

// HelpdeskConfig tunes the question answering service.
type HelpdeskConfig struct {
	CollegeAliases []string `yaml:"collegeAliases"`
	RecordQueries  bool     `yaml:"recordQueries"`
	TopTrending    int      `yaml:"topTrending"`
}

// StatsConfig controls where query counts are kept.
type StatsConfig struct {
	Redis     RedisConfig   `yaml:"redis"`
	Prefix    string        `yaml:"prefix"`
	Retention time.Duration `yaml:"retention"`
}

// RedisConfig contains connection information for the stats store.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	} else if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("COLLEGE_SOURCE"); v != "" {
		cfg.College.Source = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("COLLEGE_DATA_PATH"); v != "" {
		cfg.College.DataPath = v
	}
	if v := os.Getenv("COLLEGE_POSTGRES_DSN"); v != "" {
		cfg.College.Postgres.DSN = v
	}
	if v := os.Getenv("COLLEGE_POSTGRES_SLUG"); v != "" {
		cfg.College.Postgres.Slug = v
	}
	if v := os.Getenv("COLLEGE_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.College.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("COLLEGE_OBJECT_ENDPOINT"); v != "" {
		cfg.College.ObjectStore.Endpoint = v
	}
	if v := os.Getenv("COLLEGE_OBJECT_ACCESS_KEY"); v != "" {
		cfg.College.ObjectStore.AccessKey = v
	}
	if v := os.Getenv("COLLEGE_OBJECT_SECRET_KEY"); v != "" {
		cfg.College.ObjectStore.SecretKey = v
	}
	if v := os.Getenv("COLLEGE_OBJECT_BUCKET"); v != "" {
		cfg.College.ObjectStore.Bucket = v
	}
	if v := os.Getenv("COLLEGE_OBJECT_KEY"); v != "" {
		cfg.College.ObjectStore.Object = v
	}
	if v := os.Getenv("COLLEGE_OBJECT_REGION"); v != "" {
		cfg.College.ObjectStore.Region = v
	}
	if v := os.Getenv("HELPDESK_COLLEGE_ALIASES"); v != "" {
		cfg.Helpdesk.CollegeAliases = splitList(v)
	}
	if v := os.Getenv("HELPDESK_RECORD_QUERIES"); v != "" {
		cfg.Helpdesk.RecordQueries = parseBool(v)
	}
	if v := os.Getenv("HELPDESK_TOP_TRENDING"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Helpdesk.TopTrending = parsed
		}
	}
	if v := os.Getenv("STATS_REDIS_ENABLED"); v != "" {
		cfg.Stats.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("STATS_REDIS_ADDR"); v != "" {
		cfg.Stats.Redis.Addr = v
	}
	if v := os.Getenv("STATS_RETENTION"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Stats.Retention = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 100 * time.Millisecond,
				Exclude: []string{
					"/metrics",
				},
			},
		},
		College: CollegeConfig{
			Source:   SourceFile,
			DataPath: "data/college_details.json",
			Postgres: PostgresConfig{
				Slug:     "default",
				MaxConns: 2,
			},
			ObjectStore: ObjectStoreConfig{
				Object: "college_details.json",
				Region: "auto",
			},
		},
		Helpdesk: HelpdeskConfig{
			CollegeAliases: []string{"vnr", "vnrvjiet", "vjiet"},
			RecordQueries:  true,
			TopTrending:    10,
		},
		Stats: StatsConfig{
			Prefix: "helpdesk",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	switch c.College.Source {
	case SourceFile:
		if strings.TrimSpace(c.College.DataPath) == "" {
			return errors.New("college.dataPath cannot be empty for the file source")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.College.Postgres.DSN) == "" {
			return errors.New("college.postgres.dsn cannot be empty for the postgres source")
		}
		if strings.TrimSpace(c.College.Postgres.Slug) == "" {
			return errors.New("college.postgres.slug cannot be empty")
		}
	case SourceObjectStore:
		store := c.College.ObjectStore
		if strings.TrimSpace(store.Endpoint) == "" || strings.TrimSpace(store.Bucket) == "" || strings.TrimSpace(store.Object) == "" {
			return errors.New("college.objectStore endpoint, bucket and object are required for the objectstore source")
		}
	default:
		return fmt.Errorf("college.source %q is not one of file, postgres, objectstore", c.College.Source)
	}
	if c.Helpdesk.TopTrending < 0 {
		return errors.New("helpdesk.topTrending cannot be negative")
	}
	if c.Stats.Redis.Enabled && strings.TrimSpace(c.Stats.Redis.Addr) == "" {
		return errors.New("stats.redis.addr cannot be empty when redis stats are enabled")
	}
	if c.Stats.Retention < 0 {
		return errors.New("stats.retention cannot be negative")
	}
	return nil
}
