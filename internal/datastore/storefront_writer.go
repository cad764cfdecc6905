package datastore

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/pkg/dirty"
	"github.com/TemirB/catalog-sync/internal/storefront"
)

// StorefrontWriter mutates the storefront catalog. It is valid only inside
// the WithLockAndRefresh callback that received it. Writes are sequential,
// so the flags need no synchronization.
type StorefrontWriter struct {
	store    *StorefrontStore
	products []*domain.Product

	open    atomic.Bool
	changed bool
	edited  bool
}

// Products is the catalog as refreshed when the lock was taken.
func (w *StorefrontWriter) Products() []*domain.Product { return slices.Clone(w.products) }

func (w *StorefrontWriter) FindProductByID(id string) (*domain.Product, bool) {
	for _, p := range w.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (w *StorefrontWriter) check() error {
	if !w.open.Load() {
		return ErrWriterClosed
	}
	return nil
}

// CreateProduct creates p. In read-only mode the product and its default
// variant get uid:// identities.
func (w *StorefrontWriter) CreateProduct(ctx context.Context, p domain.UnsavedProduct) (*domain.Product, error) {
	if err := w.check(); err != nil {
		return nil, err
	}

	var created *domain.Product
	if w.store.readOnly {
		def := domain.NewVariant(domain.NewDryRunID(), domain.DefaultVariantTitle, domain.UnsavedVariant{})
		created = domain.NewProduct(domain.NewDryRunID(), p, []*domain.Variant{def}, true)
	} else {
		var err error
		if created, err = w.store.remote.CreateProduct(ctx, p); err != nil {
			return nil, fmt.Errorf("create product: %w", err)
		}
	}

	w.products = append(w.products, created)
	w.changed = true
	w.store.logger.Info("product created", zap.String("id", created.ID), zap.Bool("dry_run", w.store.readOnly))
	return created, nil
}

// UpdateProduct pushes p, including its options and metafields, if anything
// in it has pending changes.
func (w *StorefrontWriter) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if err := w.check(); err != nil {
		return err
	}
	return dirty.IfDirty(ctx, p, func(ctx context.Context, p *domain.Product) error {
		w.edited = true
		if !w.store.readOnly {
			if _, err := w.store.remote.UpdateProduct(ctx, p.ID, p.Values()); err != nil {
				return fmt.Errorf("update product %s: %w", p.ID, err)
			}
		}
		w.changed = true
		return nil
	})
}

func (w *StorefrontWriter) DeleteProduct(ctx context.Context, id string) error {
	if err := w.check(); err != nil {
		return err
	}
	if !w.store.readOnly {
		if err := w.store.remote.DeleteProduct(ctx, id); err != nil {
			return fmt.Errorf("delete product %s: %w", id, err)
		}
	}
	w.products = slices.DeleteFunc(w.products, func(p *domain.Product) bool { return p.ID == id })
	w.changed = true
	return nil
}

// CreateVariants adds vs to p. A product that only has its default variant
// loses it: the new variants replace it.
func (w *StorefrontWriter) CreateVariants(ctx context.Context, p *domain.Product, vs []domain.UnsavedVariant) ([]*domain.Variant, error) {
	if err := w.check(); err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return nil, nil
	}

	strategy := storefront.StrategyDefault
	if p.HasOnlyDefaultVariant() {
		strategy = storefront.StrategyRemoveStandalone
	}

	var created []*domain.Variant
	if w.store.readOnly {
		for _, v := range vs {
			created = append(created, domain.NewVariant(domain.NewDryRunID(), v.Title(), v))
		}
	} else {
		loc, err := w.location(ctx)
		if err != nil {
			return nil, err
		}
		if created, err = w.store.remote.CreateVariants(ctx, p.ID, vs, strategy, loc.ID); err != nil {
			return nil, fmt.Errorf("create variants of %s: %w", p.ID, err)
		}
	}

	if strategy == storefront.StrategyRemoveStandalone {
		p.SetVariants(created...)
		p.SetHasOnlyDefaultVariant(false)
	} else {
		p.AddVariants(created...)
	}
	w.changed = true
	return created, nil
}

func (w *StorefrontWriter) location(ctx context.Context) (storefront.Location, error) {
	loc, err := w.store.location.Get(ctx)
	if err == nil {
		return loc, nil
	}
	if loc, err = w.store.location.RefreshAndAwait(ctx); err != nil {
		return storefront.Location{}, fmt.Errorf("primary location: %w", err)
	}
	return loc, nil
}

// UpdateVariants pushes the variants of p that have pending changes.
func (w *StorefrontWriter) UpdateVariants(ctx context.Context, p *domain.Product, vs []*domain.Variant) error {
	if err := w.check(); err != nil {
		return err
	}

	var pending []*domain.Variant
	for _, v := range vs {
		if v.Tracker().GetDirtyAndReset() {
			pending = append(pending, v)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	w.edited = true
	if !w.store.readOnly {
		if _, err := w.store.remote.UpdateVariants(ctx, p.ID, pending); err != nil {
			return fmt.Errorf("update variants of %s: %w", p.ID, err)
		}
	}
	w.changed = true
	return nil
}

func (w *StorefrontWriter) DeleteVariants(ctx context.Context, p *domain.Product, ids ...string) error {
	if err := w.check(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if !w.store.readOnly {
		if err := w.store.remote.DeleteVariants(ctx, p.ID, ids); err != nil {
			return fmt.Errorf("delete variants of %s: %w", p.ID, err)
		}
	}
	p.RemoveVariants(ids...)
	w.changed = true
	return nil
}

func (w *StorefrontWriter) DeleteMetafields(ctx context.Context, p *domain.Product, ms []*domain.Metafield) error {
	if err := w.check(); err != nil {
		return err
	}
	if len(ms) == 0 {
		return nil
	}
	if !w.store.readOnly {
		refs := make([]storefront.MetafieldRef, 0, len(ms))
		for _, m := range ms {
			refs = append(refs, storefront.MetafieldRef{OwnerID: p.ID, Namespace: m.Namespace, Key: m.Key})
		}
		if err := w.store.remote.DeleteMetafields(ctx, refs); err != nil {
			return fmt.Errorf("delete metafields of %s: %w", p.ID, err)
		}
	}
	p.RemoveMetafields(ms)
	w.changed = true
	return nil
}
