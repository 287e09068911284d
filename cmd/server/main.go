package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	billingmod "github.com/prospectly/platform/modules/billing"
	"github.com/prospectly/platform/modules/workspace"
	"github.com/prospectly/platform/pkg/billing"
	"github.com/prospectly/platform/pkg/config"
	"github.com/prospectly/platform/pkg/httpserver"
	"github.com/prospectly/platform/pkg/logger"
	"github.com/prospectly/platform/pkg/pg"
	"github.com/prospectly/platform/pkg/redis"
	"github.com/prospectly/platform/pkg/session"
	"github.com/prospectly/platform/pkg/tier"
	"github.com/prospectly/platform/pkg/usage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg)
	logger.SetAsDefault(log)

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		pgCfg     pg.Config
		redisCfg  redis.Config
		httpCfg   httpserver.Config
		paddleCfg billing.PaddleConfig
	)
	config.MustLoad(&pgCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&paddleCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	provider, err := billing.NewPaddleProvider(paddleCfg)
	if err != nil {
		return err
	}

	sessions := session.NewRedisStore(redisClient)
	store := tier.NewPostgresStore(pool)

	registry := usage.NewRegistry()
	usage.RegisterPostgresCounters(registry, pool)
	tierSvc := tier.NewService(store, store, usage.NewReader(registry))

	syncer := billing.NewSyncer(store, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))

	r.Mount("/api/workspace", workspace.Router(sessions, workspace.NewHandler(tierSvc, log)))
	r.Mount("/api/billing", billingmod.Router(billingmod.NewHandler(provider, syncer, log)))

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
