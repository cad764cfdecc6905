package catalog

import (
	"slices"

	"github.com/TemirB/catalog-sync/internal/domain"
)

// Category is a Standard group with its sub-categories and products.
type Category struct {
	group    *domain.Group
	children []*Category
	products []Product
}

func (c *Category) Group() *domain.Group { return c.group }

func (c *Category) ID() int { return c.group.ID }

func (c *Category) Name() string { return c.group.Name() }

func (c *Category) Children() []*Category {
	out := make([]*Category, len(c.children))
	copy(out, c.children)
	return out
}

func (c *Category) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// AllProducts lists the products of c and of all its descendants,
// depth first.
func (c *Category) AllProducts() []Product {
	out := c.Products()
	for _, ch := range c.children {
		out = append(out, ch.AllProducts()...)
	}
	return out
}

// ContainsProduct reports whether p is in c or a descendant.
func (c *Category) ContainsProduct(p Product) bool {
	for _, q := range c.products {
		if q.ID() == p.ID() {
			return true
		}
	}
	for _, ch := range c.children {
		if ch.ContainsProduct(p) {
			return true
		}
	}
	return false
}

func (c *Category) FindProductByID(id string) (Product, bool) {
	for _, p := range c.AllProducts() {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

func (c *Category) FindVariationByID(id int) (*Variation, bool) {
	for _, p := range c.AllProducts() {
		if v, ok := FindVariationByItemID(p, id); ok {
			return v, true
		}
	}
	return nil, false
}

func (c *Category) FindVariationByBarcode(barcode string) (*Variation, bool) {
	for _, p := range c.AllProducts() {
		if v, ok := FindVariationByBarcode(p, barcode); ok {
			return v, true
		}
	}
	return nil, false
}

func (c *Category) FindProductsByBarcodes(barcodes []string) []Product {
	var out []Product
	for _, p := range c.AllProducts() {
		if slices.ContainsFunc(p.Barcodes(), func(b string) bool { return slices.Contains(barcodes, b) }) {
			out = append(out, p)
		}
	}
	return out
}
