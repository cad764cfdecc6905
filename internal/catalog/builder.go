package catalog

import (
	"cmp"
	"slices"

	"github.com/TemirB/catalog-sync/internal/domain"
)

// Tree is one immutable build of the POS catalog.
type Tree struct {
	Roots   []*Category
	Orphans []Product

	products  map[string]Product
	ancestors map[string][]*Category
	order     []Product
}

// Build derives the category forest from flat groups and items.
//
// Roots are Standard groups without a resolvable parent. Standard children
// become sub-categories, Variants children become Group products holding the
// items of that container, and the remaining items of a category become
// Single products. Items that cannot be placed because their group is missing
// or unreachable become orphans; items of non-catalog groups are dropped.
// Build does not modify its inputs.
func Build(groups []*domain.Group, items []*domain.Item) *Tree {
	b := &builder{
		byID:       make(map[int]*domain.Group, len(groups)),
		childrenOf: make(map[int][]*domain.Group),
		itemsOf:    make(map[int][]*domain.Item),
		claimed:    make(map[int]bool, len(items)),
		visited:    make(map[int]bool, len(groups)),
	}
	for _, g := range groups {
		b.byID[g.ID] = g
	}

	var roots []*domain.Group
	for _, g := range groups {
		if !g.Type.InCatalog() {
			continue
		}
		parent, ok := g.Parent()
		if ok {
			if _, known := b.byID[parent]; known {
				b.childrenOf[parent] = append(b.childrenOf[parent], g)
				continue
			}
		}
		if g.Type == domain.GroupStandard {
			roots = append(roots, g)
		}
	}
	for _, it := range items {
		b.itemsOf[it.GroupID()] = append(b.itemsOf[it.GroupID()], it)
	}

	t := &Tree{
		products:  make(map[string]Product),
		ancestors: make(map[string][]*Category),
	}
	for _, g := range sortedGroups(roots) {
		t.Roots = append(t.Roots, b.category(g))
	}
	t.Orphans = b.orphans(groups, items)

	for _, root := range t.Roots {
		t.index(root, nil)
	}
	for _, p := range t.Orphans {
		t.products[p.ID()] = p
		t.order = append(t.order, p)
	}
	return t
}

type builder struct {
	byID       map[int]*domain.Group
	childrenOf map[int][]*domain.Group
	itemsOf    map[int][]*domain.Item
	claimed    map[int]bool
	visited    map[int]bool
}

func (b *builder) category(g *domain.Group) *Category {
	b.visited[g.ID] = true
	c := &Category{group: g}

	for _, child := range sortedGroups(b.childrenOf[g.ID]) {
		if b.visited[child.ID] {
			continue
		}
		switch child.Type {
		case domain.GroupStandard:
			c.children = append(c.children, b.category(child))
		case domain.GroupVariants:
			b.visited[child.ID] = true
			c.products = append(c.products, newGroup(child, b.claim(child.ID)))
		}
	}
	for _, it := range b.claim(g.ID) {
		c.products = append(c.products, newSingle(it))
	}
	sortProducts(c.products)
	return c
}

func (b *builder) claim(groupID int) []*domain.Item {
	var out []*domain.Item
	for _, it := range b.itemsOf[groupID] {
		if b.claimed[it.ID] {
			continue
		}
		b.claimed[it.ID] = true
		out = append(out, it)
	}
	return out
}

func (b *builder) orphans(groups []*domain.Group, items []*domain.Item) []Product {
	var out []Product
	for _, g := range sortedGroups(groups) {
		if g.Type == domain.GroupVariants && !b.visited[g.ID] {
			b.visited[g.ID] = true
			out = append(out, newGroup(g, b.claim(g.ID)))
		}
	}
	for _, it := range items {
		if b.claimed[it.ID] {
			continue
		}
		g, known := b.byID[it.GroupID()]
		if known && !g.Type.InCatalog() {
			continue
		}
		b.claimed[it.ID] = true
		out = append(out, newSingle(it))
	}
	sortProducts(out)
	return out
}

func (t *Tree) index(c *Category, path []*Category) {
	path = append(slices.Clone(path), c)
	for _, p := range c.products {
		t.products[p.ID()] = p
		t.ancestors[p.ID()] = path
		t.order = append(t.order, p)
	}
	for _, ch := range c.children {
		t.index(ch, path)
	}
}

func sortedGroups(gs []*domain.Group) []*domain.Group {
	out := slices.Clone(gs)
	slices.SortFunc(out, func(a, b *domain.Group) int {
		return cmp.Or(cmp.Compare(a.Name(), b.Name()), cmp.Compare(a.ID, b.ID))
	})
	return out
}

func sortProducts(ps []Product) {
	slices.SortFunc(ps, func(a, b Product) int {
		return cmp.Or(cmp.Compare(a.Name(), b.Name()), cmp.Compare(a.ID(), b.ID()))
	})
}

func sortVariations(vs []*Variation) {
	slices.SortFunc(vs, func(a, b *Variation) int {
		return cmp.Or(cmp.Compare(a.Name(), b.Name()), cmp.Compare(a.ID(), b.ID()))
	})
}

// AllProducts lists categorized products depth first, then orphans.
func (t *Tree) AllProducts() []Product {
	return slices.Clone(t.order)
}

func (t *Tree) FindProductByID(id string) (Product, bool) {
	p, ok := t.products[id]
	return p, ok
}

// FindCategoriesByProduct returns the categories containing p, root first.
// Orphans belong to no category.
func (t *Tree) FindCategoriesByProduct(p Product) []*Category {
	return slices.Clone(t.ancestors[p.ID()])
}

func (t *Tree) FindVariationByBarcode(barcode string) (*Variation, bool) {
	for _, p := range t.order {
		if v, ok := FindVariationByBarcode(p, barcode); ok {
			return v, true
		}
	}
	return nil, false
}

func (t *Tree) FindVariationByItemID(id int) (*Variation, bool) {
	for _, p := range t.order {
		if v, ok := FindVariationByItemID(p, id); ok {
			return v, true
		}
	}
	return nil, false
}

// FindProductsByBarcodes returns every product carrying one of barcodes.
func (t *Tree) FindProductsByBarcodes(barcodes []string) []Product {
	var out []Product
	for _, p := range t.order {
		for _, b := range p.Barcodes() {
			if slices.Contains(barcodes, b) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// FindCategoryByID searches the whole forest.
func (t *Tree) FindCategoryByID(id int) (*Category, bool) {
	var walk func(cs []*Category) (*Category, bool)
	walk = func(cs []*Category) (*Category, bool) {
		for _, c := range cs {
			if c.ID() == id {
				return c, true
			}
			if found, ok := walk(c.children); ok {
				return found, true
			}
		}
		return nil, false
	}
	return walk(t.Roots)
}
