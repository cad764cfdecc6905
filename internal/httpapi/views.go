package httpapi

import (
	"github.com/shopspring/decimal"

	"github.com/TemirB/catalog-sync/internal/application/service"
	"github.com/TemirB/catalog-sync/internal/catalog"
	"github.com/TemirB/catalog-sync/internal/domain"
)

type variationView struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	ItemNumber string          `json:"item_number,omitempty"`
	Barcode    string          `json:"barcode,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Stock      decimal.Decimal `json:"stock"`
	IsDefault  bool            `json:"is_default,omitempty"`
}

type posProductView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Categories  []string        `json:"categories,omitempty"`
	Variations  []variationView `json:"variations"`
}

func newVariationView(v *catalog.Variation) variationView {
	return variationView{
		ID:         v.ID(),
		Name:       v.Name(),
		ItemNumber: v.ItemNumber(),
		Barcode:    v.Barcode(),
		Price:      v.Price(),
		Stock:      v.Stock(),
		IsDefault:  v.IsDefault(),
	}
}

func newPOSProductView(p catalog.Product, path []*catalog.Category) posProductView {
	out := posProductView{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
	}
	for _, c := range path {
		out.Categories = append(out.Categories, c.Name())
	}
	for _, v := range p.Variations() {
		out.Variations = append(out.Variations, newVariationView(v))
	}
	return out
}

type categoryView struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Products []string       `json:"products,omitempty"`
	Children []categoryView `json:"children,omitempty"`
}

func newCategoryView(c *catalog.Category) categoryView {
	out := categoryView{ID: c.ID(), Name: c.Name()}
	for _, p := range c.Products() {
		out.Products = append(out.Products, p.ID())
	}
	for _, child := range c.Children() {
		out.Children = append(out.Children, newCategoryView(child))
	}
	return out
}

type variantView struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	SKU     string          `json:"sku,omitempty"`
	Barcode string          `json:"barcode,omitempty"`
	Price   decimal.Decimal `json:"price"`
}

type storefrontProductView struct {
	ID                    string        `json:"id"`
	Title                 string        `json:"title"`
	Vendor                string        `json:"vendor,omitempty"`
	ProductType           string        `json:"product_type,omitempty"`
	Status                string        `json:"status"`
	Tags                  []string      `json:"tags,omitempty"`
	HasOnlyDefaultVariant bool          `json:"has_only_default_variant"`
	DryRun                bool          `json:"dry_run,omitempty"`
	Variants              []variantView `json:"variants"`
}

func newVariantView(v *domain.Variant) variantView {
	return variantView{ID: v.ID, Title: v.Title, SKU: v.SKU(), Barcode: v.Barcode(), Price: v.Price()}
}

func newStorefrontProductView(p *domain.Product) storefrontProductView {
	out := storefrontProductView{
		ID:                    p.ID,
		Title:                 p.Title(),
		Vendor:                p.Vendor(),
		ProductType:           p.ProductType(),
		Status:                string(p.Status()),
		Tags:                  p.Tags(),
		HasOnlyDefaultVariant: p.HasOnlyDefaultVariant(),
		DryRun:                domain.IsDryRun(p.ID),
	}
	for _, v := range p.Variants() {
		out.Variants = append(out.Variants, newVariantView(v))
	}
	return out
}

type syncView struct {
	ID        string   `json:"id"`
	ArtooID   *string  `json:"artoo_id,omitempty"`
	ShopifyID *string  `json:"shopify_id,omitempty"`
	Vendor    string   `json:"vendor,omitempty"`
	Type      string   `json:"type,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Synced    bool     `json:"synced"`
	Barcodes  []string `json:"barcodes,omitempty"`
}

type matchView struct {
	Barcode    string     `json:"barcode"`
	Linked     bool       `json:"linked"`
	POS        *matchPOS  `json:"pos,omitempty"`
	Storefront *matchShop `json:"storefront,omitempty"`
	Sync       *syncView  `json:"sync,omitempty"`
}

type matchPOS struct {
	ProductID string        `json:"product_id"`
	Variation variationView `json:"variation"`
}

type matchShop struct {
	ProductID string      `json:"product_id"`
	Title     string      `json:"title"`
	Variant   variantView `json:"variant"`
}

func newMatchView(m *service.Match) matchView {
	out := matchView{Barcode: m.Barcode, Linked: m.Linked()}
	if m.POS != nil {
		out.POS = &matchPOS{ProductID: m.POS.Product().ID(), Variation: newVariationView(m.POS)}
	}
	if m.Storefront != nil {
		out.Storefront = &matchShop{
			ProductID: m.Storefront.Product.ID,
			Title:     m.Storefront.Product.Title(),
			Variant:   newVariantView(m.Storefront.Variant),
		}
	}
	if r := m.Sync; r != nil {
		out.Sync = &syncView{
			ID:        r.ID.String(),
			ArtooID:   r.ArtooID,
			ShopifyID: r.ShopifyID,
			Vendor:    r.Vendor,
			Type:      r.Type,
			Tags:      r.Tags,
			Synced:    r.Synced,
			Barcodes:  r.Barcodes(),
		}
	}
	return out
}
