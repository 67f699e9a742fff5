package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/onetech-shop/onetech-backend/internal/api/handlers"
	apimw "github.com/onetech-shop/onetech-backend/internal/api/middleware"
	"github.com/onetech-shop/onetech-backend/internal/auth"
	"github.com/onetech-shop/onetech-backend/internal/cache"
	"github.com/onetech-shop/onetech-backend/internal/config"
	"github.com/onetech-shop/onetech-backend/internal/engine"
	"github.com/onetech-shop/onetech-backend/internal/notify"
	"github.com/onetech-shop/onetech-backend/internal/store"
	"github.com/onetech-shop/onetech-backend/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and cache warm scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	ctx := cmd.Context()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	catalogCache, err := buildCache(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("connecting to cache: %w", err)
	}
	defer func() {
		if err := catalogCache.Close(); err != nil {
			log.Warn("closing cache", "error", err)
		}
	}()

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
	notifier := buildNotifier(cfg, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(apimw.RequestLog(log))
	e.Use(apimw.Recovery(log))
	e.Use(apimw.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Onetech Backend API", Version))
	handlers.RegisterCatalogRoutes(api,
		handlers.NewCatalogHandler(st, catalogCache, logger.Component(log, "catalog")))
	handlers.RegisterAuthRoutes(api, handlers.NewAuthHandler(st, tokens))

	authMW := tokens.Middleware()
	adminMW := auth.AdminOnly()
	handlers.RegisterProductRoutes(e,
		handlers.NewProductHandler(st, catalogCache, logger.Component(log, "products")),
		authMW, adminMW)
	handlers.RegisterCartRoutes(e, handlers.NewCartHandler(st), authMW)
	handlers.RegisterOrderRoutes(e,
		handlers.NewOrderHandler(st, notifier, logger.Component(log, "orders")),
		authMW, adminMW)

	warmer := engine.NewWarmer(st, catalogCache,
		engine.WithLogger(logger.Component(log, "warmer")))
	scheduler, err := engine.NewScheduler(
		warmer, cfg.Schedule.CacheWarmInterval, logger.Component(log, "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	scheduler.Start()

	// Warm the catalog cache once at startup so early requests are served
	// from Redis instead of all falling through to Postgres.
	go func() {
		warmCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := warmer.WarmAll(warmCtx); err != nil {
			log.Warn("initial cache warm", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Let in-flight warm cycles finish before tearing down the cache.
	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func buildCache(ctx context.Context, cfg *config.Config, log *slog.Logger) (cache.Cache, error) {
	if !cfg.Cache.Enabled {
		return cache.NewNoop(), nil
	}

	r, err := cache.NewRedis(
		ctx,
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Cache.TTL,
		cache.WithLogger(logger.Component(log, "cache")),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	wh := cfg.Notifications.Webhook
	if !wh.Enabled {
		return notify.NewNoOpNotifier(logger.Component(log, "notify"))
	}

	return notify.NewWebhookNotifier(
		wh.URL,
		notify.WithHeaders(wh.Headers),
		notify.WithRateLimit(wh.RateLimit.PerSecond, wh.RateLimit.Burst),
	)
}
