package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/config"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/observability"
	"github.com/TemirB/catalog-sync/internal/pkg/retry"
)

//go:generate mockgen -source internal/application/handler/handler.go -destination=internal/application/handler/handler_mock_test.go -package=handler

var (
	ErrBadEvent    = errors.New("bad refresh event")
	ErrRefresh     = errors.New("refresh failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// Refresher is a store that can reload its snapshot.
type Refresher interface {
	RefreshAndAwait(ctx context.Context) error
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

type Handler struct {
	stores      map[string]Refresher
	breaker     brk
	logger      *zap.Logger
	metrics     observability.Metrics
	retryPolicy config.Retry
}

// NewHandler serves refresh events for stores, keyed by catalog name.
func NewHandler(stores map[string]Refresher, brk brk, retryPolicy config.Retry, metrics observability.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		stores:      stores,
		breaker:     brk,
		logger:      logger,
		metrics:     metrics,
		retryPolicy: retryPolicy,
	}
}

// Handle is called by the consumer for a single message. The consumer
// commits the offset itself after Handle returns nil.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	start := time.Now()
	err := h.handle(ctx, message)
	h.metrics.ObserveKafka(float64(time.Since(start).Microseconds())/1000.0, err == nil)
	return err
}

func (h *Handler) handle(ctx context.Context, message kafkago.Message) error {
	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	var event domain.RefreshEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.logger.Error("bad json format",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return ErrBadEvent
	}
	targets, err := h.targets(event.Catalog)
	if err != nil {
		h.logger.Error("unknown catalog",
			zap.String("catalog", event.Catalog),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return err
	}

	for _, name := range targets {
		store := h.stores[name]
		if err := retry.Do(ctx, h.retryPolicy, func() error {
			return store.RefreshAndAwait(ctx)
		}); err != nil {
			h.logger.Error("refresh failed after retries",
				zap.String("catalog", name),
				zap.String("reason", event.Reason),
				zap.Error(err),
				zap.Int("partition", message.Partition),
				zap.Int64("offset", message.Offset),
			)
			h.breaker.Failure()
			return fmt.Errorf("%w: %s: %v", ErrRefresh, name, err)
		}
	}

	h.breaker.Success()
	h.logger.Info("catalog refreshed",
		zap.Strings("catalogs", targets),
		zap.String("reason", event.Reason),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
	)
	return nil
}

func (h *Handler) targets(catalog string) ([]string, error) {
	if catalog == domain.CatalogAll {
		names := make([]string, 0, len(h.stores))
		for name := range h.stores {
			names = append(names, name)
		}
		slices.Sort(names)
		return names, nil
	}
	if _, ok := h.stores[catalog]; !ok {
		return nil, fmt.Errorf("%w: unknown catalog %q", ErrBadEvent, catalog)
	}
	return []string{catalog}, nil
}
