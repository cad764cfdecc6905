package ratelimit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WaitObserver receives the time a caller spent blocked in Acquire.
type WaitObserver interface {
	ObserveRateLimitWait(ms float64)
}

// Limiter allows at most limit calls within any trailing window. Callers over
// quota are delayed until the oldest recorded call leaves the window, plus a
// buffer; they are never rejected.
type Limiter struct {
	mu     sync.Mutex
	calls  []time.Time // ascending
	limit  int
	window time.Duration
	buffer time.Duration

	now      func() time.Time
	logger   *zap.Logger
	observer WaitObserver
}

type Option func(*Limiter)

func WithLogger(l *zap.Logger) Option { return func(r *Limiter) { r.logger = l } }

func WithObserver(o WaitObserver) Option { return func(r *Limiter) { r.observer = o } }

func WithClock(now func() time.Time) Option { return func(r *Limiter) { r.now = now } }

func New(limit int, window, buffer time.Duration, opts ...Option) *Limiter {
	if limit < 1 {
		limit = 1
	}
	l := &Limiter{
		limit:  limit,
		window: window,
		buffer: buffer,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Acquire blocks until the call fits into the window. It only fails when ctx
// is done while waiting.
func (l *Limiter) Acquire(ctx context.Context) error {
	start := time.Now()
	defer func() {
		if l.observer != nil {
			l.observer.ObserveRateLimitWait(float64(time.Since(start).Microseconds()) / 1000.0)
		}
	}()

	for {
		delay, ok := l.tryRecord()
		if ok {
			return nil
		}

		l.logger.Debug("rate limit reached, delaying call",
			zap.Int("limit", l.limit),
			zap.Duration("window", l.window),
			zap.Duration("delay", delay),
		)

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (l *Limiter) tryRecord() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	i := 0
	for i < len(l.calls) && l.calls[i].Before(cutoff) {
		i++
	}
	l.calls = l.calls[i:]

	if len(l.calls) < l.limit {
		l.calls = append(l.calls, now)
		return 0, true
	}

	delay := l.window - now.Sub(l.calls[0]) + l.buffer
	if delay <= 0 {
		delay = time.Millisecond
	}
	return delay, false
}

// Recorded returns the number of calls currently inside the window.
func (l *Limiter) Recorded() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}
