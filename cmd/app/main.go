package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/catalog-sync/internal/application/handler"
	"github.com/TemirB/catalog-sync/internal/application/scheduler"
	"github.com/TemirB/catalog-sync/internal/application/service"
	"github.com/TemirB/catalog-sync/internal/config"
	"github.com/TemirB/catalog-sync/internal/database"
	"github.com/TemirB/catalog-sync/internal/datastore"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/httpapi"
	"github.com/TemirB/catalog-sync/internal/kafka"
	"github.com/TemirB/catalog-sync/internal/observability"
	"github.com/TemirB/catalog-sync/internal/pkg/breaker"
	"github.com/TemirB/catalog-sync/internal/pkg/pool"
	"github.com/TemirB/catalog-sync/internal/pkg/ratelimit"
	"github.com/TemirB/catalog-sync/internal/pos"
	"github.com/TemirB/catalog-sync/internal/storefront"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewInmem(512)

	// POS: every outbound call goes through the rate limiter.
	limiter := ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Window, cfg.RateLimit.Buffer,
		ratelimit.WithLogger(logger.Named("ratelimit")),
		ratelimit.WithObserver(metrics),
	)
	posHTTP := &http.Client{Timeout: cfg.RequestTimeout, Transport: limiter.Transport(nil)}
	posClient := pos.NewClient(cfg.POS, posHTTP, cfg.Retry, breaker.New(cfg.Breaker), logger.Named("pos"), metrics)

	shopHTTP := &http.Client{Timeout: cfg.RequestTimeout}
	shopClient := storefront.NewClient(cfg.Storefront.GraphQLURL(), cfg.Storefront, shopHTTP, cfg.Retry, breaker.New(cfg.Breaker), logger.Named("storefront"), metrics)

	workers := pool.New(cfg.POS.Workers)
	defer workers.Close()

	storeOpts := []datastore.Option{
		datastore.WithReadOnly(cfg.ReadOnly),
		datastore.WithRefreshObserver(metrics),
		datastore.WithHitObserver(metrics),
		datastore.WithBaseContext(ctx),
	}
	posStore := datastore.NewPOSStore(posClient, workers, logger.Named("pos-store"), storeOpts...)
	shopStore, err := datastore.NewStorefrontStore(shopClient, cfg.IndexCap, logger.Named("storefront-store"), storeOpts...)
	if err != nil {
		logger.Fatal("storefront store", zap.Error(err))
	}
	if cfg.ReadOnly {
		logger.Warn("read-only mode: remote mutations are skipped")
	}

	// Warm both mirrors in the background; reads block until the first load.
	posStore.Refresh()
	shopStore.Refresh()

	db := database.Connect(ctx, cfg.DSN(), logger.Named("pgx"))
	defer db.Close()
	records := database.NewCachedSyncRepo(database.NewSyncRepo(db, cfg.Tables), cfg.SyncCache, logger.Named("sync-cache"))

	xref := service.NewService(posStore, shopStore, records, logger.Named("service"), metrics)

	refreshers := map[string]handler.Refresher{
		domain.CatalogPOS:        posStore,
		domain.CatalogStorefront: shopStore,
	}
	events := handler.NewHandler(refreshers, breaker.New(cfg.Breaker), cfg.Retry, metrics, logger.Named("handler"))

	if err := kafka.EnsureTopic(ctx, cfg.Kafka, logger.Named("kafka")); err != nil {
		logger.Fatal("ensure topic", zap.Error(err))
	}
	reader := kafka.NewReader(cfg.Kafka)
	defer reader.Close()
	consumer := kafka.NewConsumer(events, reader, cfg.Kafka.Workers, logger.Named("consumer"))

	sched := scheduler.New(map[string]scheduler.Store{
		domain.CatalogPOS:        posStore,
		domain.CatalogStorefront: shopStore,
	}, cfg.RefreshInterval, logger.Named("scheduler"))

	server := httpapi.New(xref, posStore, shopStore, map[string]httpapi.Refresher{
		domain.CatalogPOS:        posStore,
		domain.CatalogStorefront: shopStore,
	}, logger.Named("http"), metrics)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		consumer.Start(gctx)
		return nil
	})
	g.Go(func() error {
		sched.Run(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		return server.ListenAndServe(gctx, cfg.HTTPAddr, 10*time.Second)
	})

	if err := g.Wait(); err != nil {
		logger.Error("stopped with error", zap.Error(err))
		return
	}
	logger.Info("stopped")
}

func newLogger(level string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
