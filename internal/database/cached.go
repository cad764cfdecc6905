package database

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/viccon/sturdyc"
	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/config"
	"github.com/TemirB/catalog-sync/internal/domain"
)

//go:generate mockgen -source internal/domain/repo.go -destination=internal/database/database_mock_test.go -package=database

const (
	numShards          = 16
	evictionPercentage = 10
)

// CachedSyncRepo is a read-through cache over a SyncRepository. Concurrent
// lookups of the same key share one database query. Any successful update
// drops every cached entry that may contain the updated record.
type CachedSyncRepo struct {
	base    domain.SyncRepository
	records *sturdyc.Client[*domain.SyncProduct]
	lists   *sturdyc.Client[[]*domain.SyncProduct]
	logger  *zap.Logger
}

var _ domain.SyncRepository = (*CachedSyncRepo)(nil)

func NewCachedSyncRepo(base domain.SyncRepository, cfg config.SyncCache, logger *zap.Logger) *CachedSyncRepo {
	capacity := max(cfg.Capacity, numShards)
	return &CachedSyncRepo{
		base:    base,
		records: sturdyc.New[*domain.SyncProduct](capacity, numShards, cfg.TTL, evictionPercentage),
		lists:   sturdyc.New[[]*domain.SyncProduct](capacity, numShards, cfg.TTL, evictionPercentage),
		logger:  logger,
	}
}

func (c *CachedSyncRepo) FindByArtooID(ctx context.Context, artooID string) (*domain.SyncProduct, error) {
	return c.records.GetOrFetch(ctx, "artoo:"+artooID, func(ctx context.Context) (*domain.SyncProduct, error) {
		return c.base.FindByArtooID(ctx, artooID)
	})
}

func (c *CachedSyncRepo) FindByShopifyID(ctx context.Context, shopifyID string) (*domain.SyncProduct, error) {
	return c.records.GetOrFetch(ctx, "shopify:"+shopifyID, func(ctx context.Context) (*domain.SyncProduct, error) {
		return c.base.FindByShopifyID(ctx, shopifyID)
	})
}

func (c *CachedSyncRepo) FindByBarcodes(ctx context.Context, barcodes []string) ([]*domain.SyncProduct, error) {
	if len(barcodes) == 0 {
		return nil, nil
	}
	key := slices.Clone(barcodes)
	slices.Sort(key)
	key = slices.Compact(key)
	return c.lists.GetOrFetch(ctx, "barcodes:"+strings.Join(key, ","), func(ctx context.Context) ([]*domain.SyncProduct, error) {
		return c.base.FindByBarcodes(ctx, barcodes)
	})
}

func (c *CachedSyncRepo) FindSynced(ctx context.Context) ([]*domain.SyncProduct, error) {
	return c.lists.GetOrFetch(ctx, "synced", c.base.FindSynced)
}

func (c *CachedSyncRepo) ApplyUpdates(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if err := c.base.ApplyUpdates(ctx, id, updates); err != nil {
		return err
	}
	c.invalidate(id)
	return nil
}

// invalidate drops the cached records of id and every cached list, since an
// update can move a record in or out of any of them.
func (c *CachedSyncRepo) invalidate(id uuid.UUID) {
	dropped := 0
	for _, key := range c.records.ScanKeys() {
		if p, ok := c.records.Get(key); ok && p != nil && p.ID == id {
			c.records.Delete(key)
			dropped++
		}
	}
	for _, key := range c.lists.ScanKeys() {
		c.lists.Delete(key)
		dropped++
	}
	c.logger.Debug("sync cache invalidated", zap.Stringer("id", id), zap.Int("keys", dropped))
}
