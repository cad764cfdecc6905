package datastore

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/cache"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/pkg/paging"
	"github.com/TemirB/catalog-sync/internal/storefront"
)

// ProductSet is one snapshot of the storefront catalog.
type ProductSet struct {
	Products []*domain.Product
}

// variantsByBarcode yields every barcoded variant of the set, keyed for the
// barcode index. The first variant wins for duplicated barcodes, matching
// FindVariantByBarcode.
func (set *ProductSet) variantsByBarcode() iter.Seq2[indexKey, VariantRef] {
	return func(yield func(indexKey, VariantRef) bool) {
		seen := make(map[string]bool)
		for _, p := range set.Products {
			for _, v := range p.Variants() {
				if v.Barcode() == "" || seen[v.Barcode()] {
					continue
				}
				seen[v.Barcode()] = true
				if !yield(indexKey{set: set, barcode: v.Barcode()}, VariantRef{Product: p, Variant: v}) {
					return
				}
			}
		}
	}
}

// VariantRef is a variant with its owning product.
type VariantRef struct {
	Product *domain.Product
	Variant *domain.Variant
}

// indexKey ties cached lookups to the snapshot they were computed from.
type indexKey struct {
	set     *ProductSet
	barcode string
}

type StorefrontStore struct {
	remote   StorefrontRemote
	cache    *cache.Refreshable[*ProductSet]
	location *cache.Refreshable[storefront.Location]
	index    *cache.Index[indexKey, VariantRef]
	readOnly bool
	logger   *zap.Logger

	mu sync.Mutex
}

// NewStorefrontStore starts loading the catalog and the primary location.
// Barcode lookups are memoized in an index of indexSize entries that is
// purged and warmed again on every new snapshot.
func NewStorefrontStore(remote StorefrontRemote, indexSize int, logger *zap.Logger, opts ...Option) (*StorefrontStore, error) {
	st := newSettings(opts)
	index, err := cache.NewIndex[indexKey, VariantRef](indexSize, st.hits)
	if err != nil {
		return nil, fmt.Errorf("barcode index: %w", err)
	}
	s := &StorefrontStore{
		remote:   remote,
		index:    index,
		readOnly: st.readOnly,
		logger:   logger.With(zap.String("store", "storefront")),
	}
	s.cache = cache.NewRefreshable[*ProductSet]("storefront", s.fetch, st.cacheOptions(s.logger)...)
	s.cache.OnChange(func(set *ProductSet, err error) {
		s.index.Purge()
		if err == nil {
			s.index.Warm(set.variantsByBarcode())
		}
	})
	s.location = cache.NewRefreshable[storefront.Location]("storefront-location", remote.PrimaryLocation, st.cacheOptions(s.logger)...)
	return s, nil
}

func (s *StorefrontStore) fetch(ctx context.Context) (*ProductSet, error) {
	products, err := paging.Collect(paging.Cursor[*domain.Product](ctx, s.remote.ListProducts))
	if err != nil {
		return nil, fmt.Errorf("load storefront catalog: %w", err)
	}
	s.logger.Debug("storefront catalog loaded", zap.Int("products", len(products)))
	return &ProductSet{Products: products}, nil
}

// Snapshot returns the current product set, or the last good one when the
// latest refresh failed.
func (s *StorefrontStore) Snapshot(ctx context.Context) (*ProductSet, error) {
	set, err := s.cache.Get(ctx)
	if err == nil {
		return set, nil
	}
	if last, ok := s.cache.Peek(); ok {
		s.logger.Warn("serving last good snapshot", zap.Error(err))
		return last, nil
	}
	return nil, err
}

func (s *StorefrontStore) Refresh() *cache.Pending { return s.cache.Refresh() }

func (s *StorefrontStore) RefreshAndAwait(ctx context.Context) error {
	_, err := s.cache.RefreshAndAwait(ctx)
	return err
}

func (s *StorefrontStore) FindAllProducts(ctx context.Context) ([]*domain.Product, error) {
	set, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(set.Products), nil
}

func (s *StorefrontStore) FindProductByID(ctx context.Context, id string) (*domain.Product, error) {
	set, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range set.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("storefront product %q: %w", id, domain.ErrNotFound)
}

func (s *StorefrontStore) FindVariantByBarcode(ctx context.Context, barcode string) (VariantRef, error) {
	set, err := s.Snapshot(ctx)
	if err != nil {
		return VariantRef{}, err
	}
	ref, ok := s.index.GetOrLoad(indexKey{set: set, barcode: barcode}, func() (VariantRef, bool) {
		for _, p := range set.Products {
			if v, ok := p.FindVariantByBarcode(barcode); ok {
				return VariantRef{Product: p, Variant: v}, true
			}
		}
		return VariantRef{}, false
	})
	if !ok {
		return VariantRef{}, fmt.Errorf("storefront barcode %q: %w", barcode, domain.ErrNotFound)
	}
	return ref, nil
}

func (s *StorefrontStore) FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	ref, err := s.FindVariantByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	return ref.Product, nil
}

// PrimaryLocation is cached separately from the catalog.
func (s *StorefrontStore) PrimaryLocation(ctx context.Context) (storefront.Location, error) {
	return s.location.Get(ctx)
}

// WithLockAndRefresh runs fn with exclusive write access to the store. See
// POSStore.WithLockAndRefresh.
func (s *StorefrontStore) WithLockAndRefresh(ctx context.Context, fn func(ctx context.Context, w *StorefrontWriter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.cache.RefreshAndAwait(ctx)
	if err != nil {
		return fmt.Errorf("refresh before write: %w", err)
	}

	w := &StorefrontWriter{store: s, products: slices.Clone(set.Products)}
	w.open.Store(true)
	err = fn(ctx, w)
	w.open.Store(false)

	switch {
	case err != nil && w.edited:
		if _, rerr := s.cache.RefreshAndAwait(ctx); rerr != nil {
			s.logger.Error("resync after failed write", zap.Error(rerr))
		}
	case w.changed:
		s.cache.Replace(&ProductSet{Products: w.products})
	}
	return err
}
