// Package datastore mirrors the POS and storefront catalogs in memory and
// serializes writes against them.
package datastore

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/cache"
)

// ErrWriterClosed is returned by writers used after WithLockAndRefresh returned.
var ErrWriterClosed = errors.New("datastore: writer used outside its lock")

type Option func(*settings)

type settings struct {
	readOnly bool
	observer cache.RefreshObserver
	hits     cache.HitObserver
	base     context.Context
}

// WithReadOnly makes writes skip the remote and fabricate identities.
func WithReadOnly(v bool) Option { return func(s *settings) { s.readOnly = v } }

func WithRefreshObserver(o cache.RefreshObserver) Option {
	return func(s *settings) { s.observer = o }
}

// WithHitObserver reports barcode index hits and misses.
func WithHitObserver(o cache.HitObserver) Option { return func(s *settings) { s.hits = o } }

// WithBaseContext sets the context background fetches run on.
func WithBaseContext(ctx context.Context) Option { return func(s *settings) { s.base = ctx } }

func newSettings(opts []Option) settings {
	s := settings{base: context.Background()}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func (s settings) cacheOptions(logger *zap.Logger) []cache.Option {
	out := []cache.Option{cache.WithBaseContext(s.base), cache.WithLogger(logger)}
	if s.observer != nil {
		out = append(out, cache.WithObserver(s.observer))
	}
	return out
}
