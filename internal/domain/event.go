package domain

import "time"

// Catalog names used in refresh events.
const (
	CatalogPOS        = "pos"
	CatalogStorefront = "storefront"
	CatalogAll        = "all"
)

// RefreshEvent asks the service to reload one catalog, or both with CatalogAll.
type RefreshEvent struct {
	Catalog string    `json:"catalog"`
	Reason  string    `json:"reason,omitempty"`
	At      time.Time `json:"at"`
}
