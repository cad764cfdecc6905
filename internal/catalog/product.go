// Package catalog derives the POS category tree from flat groups and items.
package catalog

import (
	"strconv"

	"github.com/TemirB/catalog-sync/internal/domain"
)

// Product is either a *Single or a *Group.
type Product interface {
	ID() string
	Name() string
	SetName(v string)
	Description() string
	SetDescription(v string)
	HasOnlyDefaultVariant() bool
	Variations() []*Variation
	Barcodes() []string
	ItemNumbers() []string

	sealed()
}

const (
	singlePrefix = "product-"
	groupPrefix  = "group-"
)

// Single wraps one item; its only variation is the default one.
type Single struct {
	item      *domain.Item
	variation *Variation
}

func newSingle(item *domain.Item) *Single {
	s := &Single{item: item}
	s.variation = newVariation(item, true)
	s.variation.setParent(s)
	return s
}

func (s *Single) sealed() {}

func (s *Single) Item() *domain.Item { return s.item }

func (s *Single) ID() string { return singlePrefix + strconv.Itoa(s.item.ID) }

func (s *Single) Name() string     { return s.item.Name() }
func (s *Single) SetName(v string) { s.item.SetName(v) }

func (s *Single) Description() string     { return s.item.Description() }
func (s *Single) SetDescription(v string) { s.item.SetDescription(v) }

func (s *Single) HasOnlyDefaultVariant() bool { return true }

func (s *Single) Variations() []*Variation { return []*Variation{s.variation} }

func (s *Single) Barcodes() []string { return barcodes(s.Variations()) }

func (s *Single) ItemNumbers() []string { return itemNumbers(s.Variations()) }

// Group is a variant container with its variations sorted by name.
type Group struct {
	group      *domain.Group
	variations []*Variation
}

func newGroup(g *domain.Group, items []*domain.Item) *Group {
	p := &Group{group: g}
	for _, it := range items {
		v := newVariation(it, false)
		v.setParent(p)
		p.variations = append(p.variations, v)
	}
	sortVariations(p.variations)
	return p
}

func (g *Group) sealed() {}

func (g *Group) Group() *domain.Group { return g.group }

func (g *Group) ID() string { return groupPrefix + strconv.Itoa(g.group.ID) }

func (g *Group) Name() string { return g.group.Name() }

// SetName renames the group and every variation item to "<name> (<pos name>)".
func (g *Group) SetName(v string) {
	g.group.SetName(v)
	for _, vr := range g.variations {
		vr.item.SetName(v + " (" + vr.item.AlternativeName() + ")")
	}
}

func (g *Group) Description() string     { return g.group.Description() }
func (g *Group) SetDescription(v string) { g.group.SetDescription(v) }

func (g *Group) HasOnlyDefaultVariant() bool { return false }

func (g *Group) Variations() []*Variation {
	out := make([]*Variation, len(g.variations))
	copy(out, g.variations)
	return out
}

func (g *Group) Barcodes() []string { return barcodes(g.variations) }

func (g *Group) ItemNumbers() []string { return itemNumbers(g.variations) }

func barcodes(vs []*Variation) []string {
	var out []string
	for _, v := range vs {
		if b := v.Barcode(); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func itemNumbers(vs []*Variation) []string {
	var out []string
	for _, v := range vs {
		if n := v.ItemNumber(); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// FindVariationByBarcode searches the variations of p.
func FindVariationByBarcode(p Product, barcode string) (*Variation, bool) {
	if barcode == "" {
		return nil, false
	}
	for _, v := range p.Variations() {
		if v.Barcode() == barcode {
			return v, true
		}
	}
	return nil, false
}

// FindVariationByItemID searches the variations of p.
func FindVariationByItemID(p Product, id int) (*Variation, bool) {
	for _, v := range p.Variations() {
		if v.ID() == id {
			return v, true
		}
	}
	return nil, false
}

// Items returns the backing items of p.
func Items(p Product) []*domain.Item {
	switch p := p.(type) {
	case *Single:
		return []*domain.Item{p.item}
	case *Group:
		out := make([]*domain.Item, 0, len(p.variations))
		for _, v := range p.variations {
			out = append(out, v.item)
		}
		return out
	}
	return nil
}
