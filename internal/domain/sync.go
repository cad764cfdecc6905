package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncProduct links a POS product to its storefront counterpart.
type SyncProduct struct {
	ID        uuid.UUID
	ArtooID   *string
	ShopifyID *string
	Vendor    string
	Type      string
	Tags      []string
	Synced    bool
	UpdatedAt time.Time
	Variants  []SyncVariant
}

// SyncVariant links variants of both catalogs by barcode.
type SyncVariant struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Barcode   string
}

func NewSyncProduct() *SyncProduct {
	return &SyncProduct{ID: uuid.New()}
}

func (p *SyncProduct) Barcodes() []string {
	out := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		out = append(out, v.Barcode)
	}
	return out
}
