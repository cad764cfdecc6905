package datastore

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/catalog"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/pkg/dirty"
	"github.com/TemirB/catalog-sync/internal/pkg/pool"
)

// POSWriter mutates the POS catalog. It is valid only inside the
// WithLockAndRefresh callback that received it.
type POSWriter struct {
	store  *POSStore
	groups []*domain.Group
	items  []*domain.Item
	tree   *catalog.Tree

	open    atomic.Bool
	changed atomic.Bool
	edited  atomic.Bool
}

// Tree is the catalog as refreshed when the lock was taken. Edit products
// obtained from it, then push them with UpdateProduct.
func (w *POSWriter) Tree() *catalog.Tree { return w.tree }

func (w *POSWriter) check() error {
	if !w.open.Load() {
		return ErrWriterClosed
	}
	return nil
}

func (w *POSWriter) CreateItem(ctx context.Context, it domain.UnsavedItem) (*domain.Item, error) {
	if err := w.check(); err != nil {
		return nil, err
	}

	var created *domain.Item
	if w.store.readOnly {
		created = domain.NewItem(w.store.nextDryRunID(), it)
	} else {
		var err error
		if created, err = w.store.remote.CreateItem(ctx, it); err != nil {
			return nil, fmt.Errorf("create item: %w", err)
		}
	}

	w.items = append(w.items, created)
	w.changed.Store(true)
	w.store.logger.Info("item created", zap.Int("id", created.ID), zap.Bool("dry_run", w.store.readOnly))
	return created, nil
}

// UpdateItem pushes it if it has pending changes.
func (w *POSWriter) UpdateItem(ctx context.Context, it *domain.Item) error {
	if err := w.check(); err != nil {
		return err
	}
	return dirty.IfDirty(ctx, it, w.pushItem)
}

func (w *POSWriter) pushItem(ctx context.Context, it *domain.Item) error {
	w.edited.Store(true)
	if !w.store.readOnly {
		if _, err := w.store.remote.UpdateItem(ctx, it.ID, it.Values()); err != nil {
			return fmt.Errorf("update item %d: %w", it.ID, err)
		}
	}
	w.changed.Store(true)
	w.store.logger.Debug("item pushed", zap.Int("id", it.ID))
	return nil
}

func (w *POSWriter) DeleteItem(ctx context.Context, id int) error {
	if err := w.check(); err != nil {
		return err
	}
	if !w.store.readOnly {
		if err := w.store.remote.DeleteItem(ctx, id); err != nil {
			return fmt.Errorf("delete item %d: %w", id, err)
		}
	}
	w.items = slices.DeleteFunc(w.items, func(it *domain.Item) bool { return it.ID == id })
	w.changed.Store(true)
	return nil
}

func (w *POSWriter) CreateGroup(ctx context.Context, g domain.UnsavedGroup) (*domain.Group, error) {
	if err := w.check(); err != nil {
		return nil, err
	}

	var created *domain.Group
	if w.store.readOnly {
		created = domain.NewGroup(w.store.nextDryRunID(), g)
	} else {
		var err error
		if created, err = w.store.remote.CreateGroup(ctx, g); err != nil {
			return nil, fmt.Errorf("create group: %w", err)
		}
	}

	w.groups = append(w.groups, created)
	w.changed.Store(true)
	w.store.logger.Info("group created", zap.Int("id", created.ID), zap.Bool("dry_run", w.store.readOnly))
	return created, nil
}

// UpdateGroup pushes g if it has pending changes.
func (w *POSWriter) UpdateGroup(ctx context.Context, g *domain.Group) error {
	if err := w.check(); err != nil {
		return err
	}
	return dirty.IfDirty(ctx, g, w.pushGroup)
}

func (w *POSWriter) pushGroup(ctx context.Context, g *domain.Group) error {
	w.edited.Store(true)
	if !w.store.readOnly {
		if _, err := w.store.remote.UpdateGroup(ctx, g.ID, g.Values()); err != nil {
			return fmt.Errorf("update group %d: %w", g.ID, err)
		}
	}
	w.changed.Store(true)
	return nil
}

func (w *POSWriter) DeleteGroup(ctx context.Context, id int) error {
	if err := w.check(); err != nil {
		return err
	}
	if !w.store.readOnly {
		if err := w.store.remote.DeleteGroup(ctx, id); err != nil {
			return fmt.Errorf("delete group %d: %w", id, err)
		}
	}
	w.groups = slices.DeleteFunc(w.groups, func(g *domain.Group) bool { return g.ID == id })
	w.changed.Store(true)
	return nil
}

// UpdateProduct pushes the dirty parts of p. For a Group the container is
// pushed first, then every dirty variation item concurrently on the pool.
func (w *POSWriter) UpdateProduct(ctx context.Context, p catalog.Product) error {
	if err := w.check(); err != nil {
		return err
	}

	switch p := p.(type) {
	case *catalog.Single:
		return dirty.IfDirty(ctx, p.Item(), w.pushItem)
	case *catalog.Group:
		if err := dirty.IfDirty(ctx, p.Group(), w.pushGroup); err != nil {
			return err
		}
		return pool.ForEach(ctx, w.store.pool, catalog.Items(p), func(ctx context.Context, it *domain.Item) error {
			return dirty.IfDirty(ctx, it, w.pushItem)
		})
	}
	return fmt.Errorf("update product: unsupported type %T", p)
}
