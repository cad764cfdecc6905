package domain

import (
	"context"

	"github.com/google/uuid"
)

// SyncRepository reads sync records and applies field updates to them.
type SyncRepository interface {
	FindByArtooID(ctx context.Context, artooID string) (*SyncProduct, error)
	FindByShopifyID(ctx context.Context, shopifyID string) (*SyncProduct, error)
	FindByBarcodes(ctx context.Context, barcodes []string) ([]*SyncProduct, error)
	FindSynced(ctx context.Context) ([]*SyncProduct, error)
	ApplyUpdates(ctx context.Context, id uuid.UUID, updates map[string]any) error
}
