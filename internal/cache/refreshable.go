package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// FetchFunc loads a complete snapshot of a remote collection.
type FetchFunc[T any] func(ctx context.Context) (T, error)

type RefreshObserver interface {
	ObserveRefresh(name string, ms float64, ok bool)
}

// outcome is the stored result of the latest completed fetch. last keeps the
// most recent good value so callers can degrade to it after a failure.
type outcome[T any] struct {
	value   T
	err     error
	last    T
	hasLast bool
}

type call struct {
	done chan struct{}
	err  error
	gen  uint64
}

// Refreshable holds the latest snapshot of a remote collection. At most one
// fetch runs at a time; Refresh joins the running fetch instead of starting a
// second one. A failed fetch is stored and returned by Get until a later fetch
// succeeds.
type Refreshable[T any] struct {
	name  string
	fetch FetchFunc[T]
	base  context.Context

	state atomic.Pointer[outcome[T]]

	mu        sync.Mutex
	inflight  *call
	listeners []func(T, error)
	// gen counts Replace calls. A fetch started under an older gen may have
	// read the remote before the write and is not published.
	gen uint64

	logger   *zap.Logger
	observer RefreshObserver
}

type Option func(*options)

type options struct {
	base     context.Context
	logger   *zap.Logger
	observer RefreshObserver
}

// WithBaseContext sets the context fetches run on. Its cancellation is
// ignored; values such as loggers or trace ids are kept.
func WithBaseContext(ctx context.Context) Option { return func(o *options) { o.base = ctx } }

func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

func WithObserver(m RefreshObserver) Option { return func(o *options) { o.observer = m } }

// NewRefreshable creates the cache and starts the initial fetch.
func NewRefreshable[T any](name string, fetch FetchFunc[T], opts ...Option) *Refreshable[T] {
	o := options{base: context.Background(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Refreshable[T]{
		name:     name,
		fetch:    fetch,
		base:     context.WithoutCancel(o.base),
		logger:   o.logger,
		observer: o.observer,
	}
	r.Refresh()
	return r
}

// Get returns the current snapshot. Before the first fetch completes it waits
// for it or for ctx.
func (r *Refreshable[T]) Get(ctx context.Context) (T, error) {
	if s := r.state.Load(); s != nil {
		return s.value, s.err
	}

	r.mu.Lock()
	if s := r.state.Load(); s != nil {
		r.mu.Unlock()
		return s.value, s.err
	}
	c := r.inflight
	r.mu.Unlock()

	var zero T
	select {
	case <-c.done:
	case <-ctx.Done():
		return zero, ctx.Err()
	}
	s := r.state.Load()
	return s.value, s.err
}

// Peek returns the last good snapshot without blocking.
func (r *Refreshable[T]) Peek() (T, bool) {
	s := r.state.Load()
	if s == nil || !s.hasLast {
		var zero T
		return zero, false
	}
	return s.last, true
}

// Loaded reports whether a fetch has completed, successfully or not.
func (r *Refreshable[T]) Loaded() bool { return r.state.Load() != nil }

// Pending is a handle to a running or finished fetch.
type Pending struct{ c *call }

// Wait blocks until the fetch finishes and returns its error.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.c.done:
		return p.c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when the fetch finishes.
func (p *Pending) Done() <-chan struct{} { return p.c.done }

// Refresh starts a fetch unless one is already running, in which case the
// running one is returned.
func (r *Refreshable[T]) Refresh() *Pending {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inflight == nil {
		c := &call{done: make(chan struct{}), gen: r.gen}
		r.inflight = c
		go r.run(c)
	}
	return &Pending{c: r.inflight}
}

// RefreshAndAwait refreshes and returns the resulting snapshot.
func (r *Refreshable[T]) RefreshAndAwait(ctx context.Context) (T, error) {
	if err := r.Refresh().Wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return r.Get(ctx)
}

// Replace installs v as the current snapshot. Write paths use it to publish
// their own changes without waiting for the next fetch. A fetch that is in
// flight when Replace is called completes without overwriting v.
func (r *Refreshable[T]) Replace(v T) {
	r.mu.Lock()
	r.gen++
	r.state.Store(&outcome[T]{value: v, last: v, hasLast: true})
	listeners := r.listeners
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(v, nil)
	}
}

// OnChange registers fn to be called after every fetch that completes and
// every Replace made after registration.
func (r *Refreshable[T]) OnChange(fn func(T, error)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

func (r *Refreshable[T]) run(c *call) {
	start := time.Now()
	v, err := r.fetch(r.base)
	elapsed := time.Since(start)

	next := &outcome[T]{value: v, err: err}
	if err == nil {
		next.last, next.hasLast = v, true
	} else {
		var zero T
		next.value = zero
	}

	// Publishing the snapshot and clearing the in-flight call happen together,
	// so a caller that observed the new snapshot never joins the finished call.
	r.mu.Lock()
	stale := c.gen != r.gen
	var listeners []func(T, error)
	if !stale {
		if err != nil {
			if prev := r.state.Load(); prev != nil {
				next.last, next.hasLast = prev.last, prev.hasLast
			}
		}
		r.state.Store(next)
		listeners = r.listeners
	}
	r.inflight = nil
	r.mu.Unlock()

	if stale {
		c.err = nil
		close(c.done)
		r.logger.Debug("discarding fetch older than local write",
			zap.String("cache", r.name),
			zap.Duration("elapsed", elapsed),
			zap.NamedError("fetch_error", err),
		)
		return
	}

	c.err = err
	close(c.done)

	if r.observer != nil {
		r.observer.ObserveRefresh(r.name, float64(elapsed.Microseconds())/1000.0, err == nil)
	}
	if err != nil {
		r.logger.Error("refresh failed",
			zap.String("cache", r.name),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
	} else {
		r.logger.Info("refresh completed",
			zap.String("cache", r.name),
			zap.Duration("elapsed", elapsed),
		)
	}
	for _, fn := range listeners {
		fn(next.value, err)
	}
}
