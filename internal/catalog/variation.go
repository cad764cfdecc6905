package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/TemirB/catalog-sync/internal/domain"
)

// Variation proxies an item. Reads and writes go straight to the item, so
// edits are visible to the item's tracker.
type Variation struct {
	item      *domain.Item
	isDefault bool
	parent    Product
}

func newVariation(item *domain.Item, isDefault bool) *Variation {
	return &Variation{item: item, isDefault: isDefault}
}

func (v *Variation) setParent(p Product) {
	if v.parent != nil {
		panic("catalog: variation parent already set")
	}
	v.parent = p
}

// Product returns the product owning v.
func (v *Variation) Product() Product { return v.parent }

func (v *Variation) Item() *domain.Item { return v.item }

func (v *Variation) IsDefault() bool { return v.isDefault }

func (v *Variation) ID() int { return v.item.ID }

// Name is the POS display name of the item.
func (v *Variation) Name() string     { return v.item.AlternativeName() }
func (v *Variation) SetName(s string) { v.item.SetAlternativeName(s) }

func (v *Variation) ItemNumber() string     { return v.item.ItemNumber() }
func (v *Variation) SetItemNumber(s string) { v.item.SetItemNumber(s) }

func (v *Variation) Barcode() string     { return v.item.Barcode() }
func (v *Variation) SetBarcode(s string) { v.item.SetBarcode(s) }

func (v *Variation) Price() decimal.Decimal     { return v.item.Price() }
func (v *Variation) SetPrice(d decimal.Decimal) { v.item.SetPrice(d) }

func (v *Variation) Stock() decimal.Decimal     { return v.item.StockValue() }
func (v *Variation) SetStock(d decimal.Decimal) { v.item.SetStockValue(d) }
