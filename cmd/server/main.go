package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juristech/lexkit/internal/api"
	"github.com/juristech/lexkit/pkg/config"
	"github.com/juristech/lexkit/pkg/entitlement"
	"github.com/juristech/lexkit/pkg/httpserver"
	"github.com/juristech/lexkit/pkg/logger"
	"github.com/juristech/lexkit/pkg/notification"
	"github.com/juristech/lexkit/pkg/pg"
	"github.com/juristech/lexkit/pkg/plan"
	"github.com/juristech/lexkit/pkg/redis"
	"github.com/juristech/lexkit/pkg/session"
	"github.com/juristech/lexkit/pkg/subscription"
	"github.com/juristech/lexkit/pkg/usage"
)

type appConfig struct {
	AppName string `env:"APP_NAME" envDefault:"lexkit"`

	// StoreDriver selects the subscription and usage backend:
	// "memory" for local development, "postgres" for production.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`

	// CatalogPath optionally overrides the built-in plan catalog with a
	// YAML document.
	CatalogPath string `env:"PLAN_CATALOG_PATH"`

	UsageCacheTTL  time.Duration `env:"USAGE_CACHE_TTL" envDefault:"15s"`
	UsageCacheOn   bool          `env:"USAGE_CACHE_ENABLED" envDefault:"false"`
	BillingEnabled bool          `env:"BILLING_ENABLED" envDefault:"false"`
}

func main() {
	ctx := context.Background()

	var logCfg logger.Config
	config.MustLoad(&logCfg)

	var appCfg appConfig
	config.MustLoad(&appCfg)

	log := logger.New(logCfg, logger.WithAttr(slog.String("app", appCfg.AppName)))
	slog.SetDefault(log)

	if err := run(ctx, appCfg, log); err != nil {
		log.ErrorContext(ctx, "server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg appConfig, log *slog.Logger) error {
	catalog, err := loadCatalog(ctx, appCfg)
	if err != nil {
		return err
	}

	store, usageSrc, cleanup, err := buildStores(ctx, appCfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	manager := subscription.NewManager(store)
	engine := entitlement.NewEngine(catalog, usageSrc, store.Get)
	facade := session.NewFacade(engine, manager, buildNotifier(log), log)

	var provider subscription.BillingProvider
	if appCfg.BillingEnabled {
		var paddleCfg subscription.PaddleConfig
		config.MustLoad(&paddleCfg)
		p, err := subscription.NewPaddleProvider(paddleCfg)
		if err != nil {
			return err
		}
		provider = p
	}

	handler := api.NewHandler(catalog, engine, facade, manager, provider, log)

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)

	srv := httpserver.New(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, handler.Router())
}

func loadCatalog(ctx context.Context, appCfg appConfig) (plan.Catalog, error) {
	if appCfg.CatalogPath == "" {
		return plan.Default(), nil
	}
	return plan.NewYAMLSource(appCfg.CatalogPath).Load(ctx)
}

// buildStores wires the subscription store and usage source for the
// configured driver. The returned cleanup closes any opened pools.
func buildStores(ctx context.Context, appCfg appConfig, log *slog.Logger) (subscription.Store, usage.Source, func(), error) {
	if appCfg.StoreDriver != "postgres" {
		store := subscription.NewInMemStore()
		src := usage.NewStaticSource(tierResolver(store))
		return store, src, func() {}, nil
	}

	var pgCfg pg.Config
	config.MustLoad(&pgCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() { pool.Close() }

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	store := subscription.NewPGStore(pool)
	src, err := buildUsageSource(ctx, appCfg, pool, log)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return store, src, cleanup, nil
}

func buildUsageSource(ctx context.Context, appCfg appConfig, pool *pgxpool.Pool, log *slog.Logger) (usage.Source, error) {
	src := usage.NewPGSource(pool)
	if !appCfg.UsageCacheOn {
		return src, nil
	}

	var redisCfg redis.Config
	config.MustLoad(&redisCfg)

	client, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "usage counter cache enabled", "ttl", appCfg.UsageCacheTTL)
	return usage.NewCachedSource(src, client, appCfg.UsageCacheTTL), nil
}

// buildNotifier prefers Postmark when a server token is configured and
// falls back to the noop notifier otherwise.
func buildNotifier(log *slog.Logger) notification.Notifier {
	var cfg notification.Config
	config.MustLoad(&cfg)

	if cfg.PostmarkServerToken == "" {
		return notification.NewNoopNotifier()
	}
	n, err := notification.NewPostmarkNotifier(cfg)
	if err != nil {
		log.Warn("postmark notifier misconfigured, notifications disabled", "error", err)
		return notification.NewNoopNotifier()
	}
	return n
}

// tierResolver maps a tenant to its subscribed tier for the simulated
// usage source used by the in-memory driver.
func tierResolver(store subscription.Store) usage.TierResolver {
	return func(ctx context.Context, tenantID uuid.UUID) (plan.Tier, error) {
		sub, err := store.Get(ctx, tenantID)
		if err != nil {
			return "", err
		}
		return sub.Tier, nil
	}
}
