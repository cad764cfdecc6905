package domain

import (
	"strconv"

	"github.com/TemirB/catalog-sync/internal/pkg/dirty"
)

// GroupType is the POS product group discriminator.
type GroupType int

const (
	GroupFavourites  GroupType = 0
	GroupVariants    GroupType = 3
	GroupVariations  GroupType = 5
	GroupIngredients GroupType = 6
	GroupStandard    GroupType = 7
	GroupDiscounts   GroupType = 8
	GroupVouchers    GroupType = 10
)

func (t GroupType) String() string {
	switch t {
	case GroupFavourites:
		return "favourites"
	case GroupVariants:
		return "variants"
	case GroupVariations:
		return "variations"
	case GroupIngredients:
		return "ingredients"
	case GroupStandard:
		return "standard"
	case GroupDiscounts:
		return "discounts"
	case GroupVouchers:
		return "vouchers"
	}
	return "type-" + strconv.Itoa(int(t))
}

// InCatalog reports whether groups of this type take part in the category tree.
func (t GroupType) InCatalog() bool { return t == GroupStandard || t == GroupVariants }

// UnsavedGroup holds the values of a group without remote identity.
type UnsavedGroup struct {
	Name        string
	Description string
	Shortcut    string
	Active      bool
	Parent      *int
	SortIndex   int
	Type        GroupType
}

// Group is a POS product group: a category when Standard, a variant
// container when Variants.
type Group struct {
	ID   int
	Type GroupType

	tracker     *dirty.Tracker
	name        *dirty.Field[string]
	description *dirty.Field[string]
	shortcut    *dirty.Field[string]
	active      *dirty.Field[bool]
	parent      *dirty.Field[*int]
	sortIndex   *dirty.Field[int]
}

func NewGroup(id int, g UnsavedGroup) *Group {
	t := dirty.New()
	return &Group{
		ID:          id,
		Type:        g.Type,
		tracker:     t,
		name:        dirty.Track(t, "name", g.Name),
		description: dirty.Track(t, "description", g.Description),
		shortcut:    dirty.Track(t, "shortcut", g.Shortcut),
		active:      dirty.Track(t, "active", g.Active),
		parent:      dirty.TrackFunc(t, "parent", copyInt(g.Parent), equalIntPtr),
		sortIndex:   dirty.Track(t, "sortIndex", g.SortIndex),
	}
}

func (g *Group) Tracker() *dirty.Tracker { return g.tracker }

func (g *Group) Name() string     { return g.name.Get() }
func (g *Group) SetName(v string) { g.name.Set(v) }

func (g *Group) Description() string     { return g.description.Get() }
func (g *Group) SetDescription(v string) { g.description.Set(v) }

func (g *Group) Shortcut() string     { return g.shortcut.Get() }
func (g *Group) SetShortcut(v string) { g.shortcut.Set(v) }

func (g *Group) Active() bool     { return g.active.Get() }
func (g *Group) SetActive(v bool) { g.active.Set(v) }

func (g *Group) SortIndex() int     { return g.sortIndex.Get() }
func (g *Group) SetSortIndex(v int) { g.sortIndex.Set(v) }

// Parent returns the parent group id, if any.
func (g *Group) Parent() (int, bool) {
	p := g.parent.Get()
	if p == nil {
		return 0, false
	}
	return *p, true
}

func (g *Group) SetParent(v *int) { g.parent.Set(copyInt(v)) }

// Values returns the current values, used as update payload.
func (g *Group) Values() UnsavedGroup {
	return UnsavedGroup{
		Name:        g.Name(),
		Description: g.Description(),
		Shortcut:    g.Shortcut(),
		Active:      g.Active(),
		Parent:      copyInt(g.parent.Get()),
		SortIndex:   g.SortIndex(),
		Type:        g.Type,
	}
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
