package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/campus-helpdesk/internal/domain/college"
	"github.com/yanqian/campus-helpdesk/internal/domain/helpdesk"
	"github.com/yanqian/campus-helpdesk/internal/infra/collegesource"
	"github.com/yanqian/campus-helpdesk/internal/infra/config"
	"github.com/yanqian/campus-helpdesk/internal/infra/querystats"
	"github.com/yanqian/campus-helpdesk/pkg/metrics"
)

const catalogLoadTimeout = 15 * time.Second

func provideCollegeSource(cfg *config.Config) (college.Source, error) {
	switch cfg.College.Source {
	case config.SourcePostgres:
		pool, err := newPostgresPool(cfg.College.Postgres)
		if err != nil {
			return nil, err
		}
		return collegesource.NewPostgresSource(pool, cfg.College.Postgres.Slug), nil
	case config.SourceObjectStore:
		store := cfg.College.ObjectStore
		src, err := collegesource.NewObjectStoreSource(collegesource.ObjectStoreConfig{
			Endpoint:  store.Endpoint,
			AccessKey: store.AccessKey,
			SecretKey: store.SecretKey,
			Bucket:    store.Bucket,
			Object:    store.Object,
			Region:    store.Region,
		})
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return collegesource.NewFileSource(cfg.College.DataPath), nil
	}
}

func newPostgresPool(cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("init postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return pool, nil
}

// provideCatalog loads the document once at startup. A missing or broken
// document stops the process. Sources holding connections are closed once
// loading finishes.
func provideCatalog(src college.Source, logger *slog.Logger) (*college.Catalog, error) {
	if closer, ok := src.(interface{ Close() }); ok {
		defer closer.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()
	catalog, err := college.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load college document from %s: %w", src.Describe(), err)
	}
	logger.Info("college document loaded",
		"source", src.Describe(),
		"college", catalog.Name(),
		"departments", len(catalog.DepartmentKeys()),
		"routes", len(catalog.Routes()),
		"events", len(catalog.Events()),
	)
	return catalog, nil
}

func provideAliasTable() helpdesk.AliasTable {
	return helpdesk.NewAliasTable(helpdesk.DefaultAliases())
}

func provideHelpdesk(cfg *config.Config, catalog *college.Catalog, aliases helpdesk.AliasTable) *helpdesk.Helpdesk {
	return helpdesk.NewHelpdesk(catalog, aliases, cfg.Helpdesk.CollegeAliases...)
}

func provideHelpdeskConfig(cfg *config.Config) helpdesk.Config {
	return helpdesk.Config{
		CollegeAliases: cfg.Helpdesk.CollegeAliases,
		RecordQueries:  cfg.Helpdesk.RecordQueries,
		TopTrending:    cfg.Helpdesk.TopTrending,
	}
}

func provideStatsStore(cfg *config.Config, logger *slog.Logger) helpdesk.StatsStore {
	if cfg.Stats.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg.Stats.Redis.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return querystats.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return querystats.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("query stats valkey store enabled", "addr", cfg.Stats.Redis.Addr)
			return querystats.NewValkeyStore(client, cfg.Stats.Prefix, cfg.Stats.Retention)
		}
	}
	return querystats.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideMetricsRecorder() *metrics.Recorder {
	return metrics.NewRecorder(prometheus.DefaultRegisterer)
}

func provideGatherer() prometheus.Gatherer {
	return prometheus.DefaultGatherer
}
