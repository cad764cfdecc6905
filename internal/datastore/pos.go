package datastore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/catalog-sync/internal/cache"
	"github.com/TemirB/catalog-sync/internal/catalog"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/pkg/paging"
	"github.com/TemirB/catalog-sync/internal/pkg/pool"
)

// POSSnapshot is one consistent view of the POS catalog.
type POSSnapshot struct {
	Groups []*domain.Group
	Items  []*domain.Item
	Tree   *catalog.Tree
}

func newPOSSnapshot(groups []*domain.Group, items []*domain.Item) *POSSnapshot {
	return &POSSnapshot{Groups: groups, Items: items, Tree: catalog.Build(groups, items)}
}

// POSStore caches the POS catalog and serializes writes to it. In read-only
// mode created groups and items get negative ids counting down from -1, so
// dry-run products show up as "product--1" and groups as "group--2".
type POSStore struct {
	remote   POSRemote
	cache    *cache.Refreshable[*POSSnapshot]
	pool     *pool.Pool
	readOnly bool
	logger   *zap.Logger

	mu     sync.Mutex
	dryRun atomic.Int64
}

// NewPOSStore starts loading the catalog right away. Variation pushes of
// UpdateProduct run on p.
func NewPOSStore(remote POSRemote, p *pool.Pool, logger *zap.Logger, opts ...Option) *POSStore {
	st := newSettings(opts)
	s := &POSStore{
		remote:   remote,
		pool:     p,
		readOnly: st.readOnly,
		logger:   logger.With(zap.String("store", "pos")),
	}
	s.cache = cache.NewRefreshable[*POSSnapshot]("pos", s.fetch, st.cacheOptions(s.logger)...)
	return s
}

// fetch loads groups and items concurrently and builds the tree once both
// are complete.
func (s *POSStore) fetch(ctx context.Context) (*POSSnapshot, error) {
	var (
		groups []*domain.Group
		items  []*domain.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = paging.Collect(paging.Offset[*domain.Group](gctx, s.remote.ListGroups))
		return err
	})
	g.Go(func() error {
		var err error
		items, err = paging.Collect(paging.Offset[*domain.Item](gctx, func(ctx context.Context, page int) ([]*domain.Item, error) {
			return s.remote.ListItems(ctx, page, "")
		}))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load pos catalog: %w", err)
	}

	s.logger.Debug("pos catalog loaded", zap.Int("groups", len(groups)), zap.Int("items", len(items)))
	return newPOSSnapshot(groups, items), nil
}

// Snapshot returns the current snapshot, or the last good one when the latest
// refresh failed.
func (s *POSStore) Snapshot(ctx context.Context) (*POSSnapshot, error) {
	snap, err := s.cache.Get(ctx)
	if err == nil {
		return snap, nil
	}
	if last, ok := s.cache.Peek(); ok {
		s.logger.Warn("serving last good snapshot", zap.Error(err))
		return last, nil
	}
	return nil, err
}

func (s *POSStore) Refresh() *cache.Pending { return s.cache.Refresh() }

func (s *POSStore) RefreshAndAwait(ctx context.Context) error {
	_, err := s.cache.RefreshAndAwait(ctx)
	return err
}

// OnChange registers fn for every new snapshot.
func (s *POSStore) OnChange(fn func(*POSSnapshot, error)) { s.cache.OnChange(fn) }

func (s *POSStore) FindAllProducts(ctx context.Context) ([]catalog.Product, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Tree.AllProducts(), nil
}

func (s *POSStore) RootCategories(ctx context.Context) ([]*catalog.Category, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(snap.Tree.Roots), nil
}

func (s *POSStore) FindProductByID(ctx context.Context, id string) (catalog.Product, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := snap.Tree.FindProductByID(id)
	if !ok {
		return nil, fmt.Errorf("pos product %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (s *POSStore) FindProductByBarcode(ctx context.Context, barcode string) (catalog.Product, error) {
	v, err := s.FindVariationByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	return v.Product(), nil
}

func (s *POSStore) FindVariationByBarcode(ctx context.Context, barcode string) (*catalog.Variation, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	v, ok := snap.Tree.FindVariationByBarcode(barcode)
	if !ok {
		return nil, fmt.Errorf("pos barcode %q: %w", barcode, domain.ErrNotFound)
	}
	return v, nil
}

func (s *POSStore) FindProductsByBarcodes(ctx context.Context, barcodes []string) ([]catalog.Product, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Tree.FindProductsByBarcodes(barcodes), nil
}

func (s *POSStore) FindCategoriesByProduct(ctx context.Context, p catalog.Product) ([]*catalog.Category, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Tree.FindCategoriesByProduct(p), nil
}

// SearchItems asks the remote for items by name, bypassing the snapshot.
func (s *POSStore) SearchItems(ctx context.Context, name string) ([]*domain.Item, error) {
	return paging.Collect(paging.Offset[*domain.Item](ctx, func(ctx context.Context, page int) ([]*domain.Item, error) {
		return s.remote.ListItems(ctx, page, name)
	}))
}

// WithLockAndRefresh runs fn with exclusive write access to the store. The
// snapshot is refreshed first so fn works on current remote state; changes
// made through the writer are published when fn returns. If fn fails after
// pushing edits the store resyncs from the remote.
func (s *POSStore) WithLockAndRefresh(ctx context.Context, fn func(ctx context.Context, w *POSWriter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.cache.RefreshAndAwait(ctx)
	if err != nil {
		return fmt.Errorf("refresh before write: %w", err)
	}

	w := &POSWriter{
		store:  s,
		groups: slices.Clone(snap.Groups),
		items:  slices.Clone(snap.Items),
		tree:   snap.Tree,
	}
	w.open.Store(true)
	err = fn(ctx, w)
	w.open.Store(false)

	switch {
	case err != nil && w.edited.Load():
		if _, rerr := s.cache.RefreshAndAwait(ctx); rerr != nil {
			s.logger.Error("resync after failed write", zap.Error(rerr))
		}
	case w.changed.Load():
		s.cache.Replace(newPOSSnapshot(w.groups, w.items))
	}
	return err
}

// nextDryRunID returns negative ids so they never collide with remote ones.
func (s *POSStore) nextDryRunID() int { return int(s.dryRun.Add(-1)) }
