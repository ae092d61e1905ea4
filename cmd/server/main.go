package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	feedapp "github.com/ovesio/feed-exporter/internal/application/feed"
	"github.com/ovesio/feed-exporter/internal/domain/feed"
	"github.com/ovesio/feed-exporter/internal/infrastructure/config"
	"github.com/ovesio/feed-exporter/internal/infrastructure/logger"
	"github.com/ovesio/feed-exporter/internal/infrastructure/persistence"
	"github.com/ovesio/feed-exporter/internal/interfaces/http/handler"
	"github.com/ovesio/feed-exporter/internal/interfaces/http/middleware"
	"github.com/ovesio/feed-exporter/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting feed exporter",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	settings := feed.Settings{
		Enabled:              cfg.Feed.Enabled,
		AccessHash:           cfg.Feed.AccessHash,
		ExportDurationMonths: cfg.Feed.ExportDurationMonths,
		OrderStatuses:        cfg.Feed.OrderStatuses,
		Currency:             cfg.Feed.Currency,
	}

	catalogReader := persistence.NewGormCatalogReader(db.DB)
	orderReader := persistence.NewGormOrderReader(db.DB, cfg.Feed.CompatOrderLookup)
	linkResolver := persistence.NewSiteLinkResolver(db.DB, cfg.Feed.BaseURL)

	productExporter := feedapp.NewProductExporter(catalogReader, linkResolver, settings, log)
	orderExporter := feedapp.NewOrderExporter(orderReader, settings, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Secure(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	r := router.NewRouter(engine)
	r.Register(handler.NewFeedHandler(productExporter, orderExporter, settings))
	r.Register(handler.NewSystemHandler(db))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
