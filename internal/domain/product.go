package domain

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/TemirB/catalog-sync/internal/pkg/dirty"
)

type ProductStatus string

const (
	StatusDraft    ProductStatus = "DRAFT"
	StatusActive   ProductStatus = "ACTIVE"
	StatusArchived ProductStatus = "ARCHIVED"
)

type UnsavedProduct struct {
	Title           string
	Vendor          string
	ProductType     string
	Status          ProductStatus
	DescriptionHTML string
	Tags            []string
	Options         []UnsavedOption
	Metafields      []UnsavedMetafield
}

// Product is a storefront product. Options and metafields report their
// changes through the product tracker. Variants are guarded by the product
// lock because stores append and remove them while readers iterate.
type Product struct {
	ID string

	tracker         *dirty.Tracker
	title           *dirty.Field[string]
	vendor          *dirty.Field[string]
	productType     *dirty.Field[string]
	status          *dirty.Field[ProductStatus]
	descriptionHTML *dirty.Field[string]
	tags            *dirty.Field[[]string]

	mu                    sync.RWMutex
	options               []*Option
	metafields            []*Metafield
	variants              []*Variant
	hasOnlyDefaultVariant bool
}

func NewProduct(id string, p UnsavedProduct, variants []*Variant, hasOnlyDefaultVariant bool) *Product {
	t := dirty.New()
	prod := &Product{
		ID:                    id,
		tracker:               t,
		title:                 dirty.Track(t, "title", p.Title),
		vendor:                dirty.Track(t, "vendor", p.Vendor),
		productType:           dirty.Track(t, "productType", p.ProductType),
		status:                dirty.Track(t, "status", p.Status),
		descriptionHTML:       dirty.Track(t, "descriptionHtml", p.DescriptionHTML),
		tags:                  dirty.TrackFunc(t, "tags", slices.Clone(p.Tags), slices.Equal[[]string]),
		variants:              slices.Clone(variants),
		hasOnlyDefaultVariant: hasOnlyDefaultVariant,
	}
	for _, o := range p.Options {
		prod.options = append(prod.options, NewOption(o.ID, o))
	}
	for _, m := range p.Metafields {
		prod.metafields = append(prod.metafields, NewMetafield(m))
	}
	t.Nest(prod.childTrackers)
	return prod
}

func (p *Product) Tracker() *dirty.Tracker { return p.tracker }

func (p *Product) childTrackers() []*dirty.Tracker {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*dirty.Tracker, 0, len(p.options)+len(p.metafields))
	for _, o := range p.options {
		out = append(out, o.tracker)
	}
	for _, m := range p.metafields {
		out = append(out, m.tracker)
	}
	return out
}

func (p *Product) Title() string     { return p.title.Get() }
func (p *Product) SetTitle(v string) { p.title.Set(v) }

func (p *Product) Vendor() string     { return p.vendor.Get() }
func (p *Product) SetVendor(v string) { p.vendor.Set(v) }

func (p *Product) ProductType() string     { return p.productType.Get() }
func (p *Product) SetProductType(v string) { p.productType.Set(v) }

func (p *Product) Status() ProductStatus     { return p.status.Get() }
func (p *Product) SetStatus(v ProductStatus) { p.status.Set(v) }

func (p *Product) DescriptionHTML() string     { return p.descriptionHTML.Get() }
func (p *Product) SetDescriptionHTML(v string) { p.descriptionHTML.Set(v) }

func (p *Product) Tags() []string     { return slices.Clone(p.tags.Get()) }
func (p *Product) SetTags(v []string) { p.tags.Set(slices.Clone(v)) }

func (p *Product) HasOnlyDefaultVariant() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hasOnlyDefaultVariant
}

func (p *Product) SetHasOnlyDefaultVariant(v bool) {
	p.mu.Lock()
	p.hasOnlyDefaultVariant = v
	p.mu.Unlock()
}

func (p *Product) Options() []*Option {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.options)
}

// SetOptions replaces the option list and marks it changed.
func (p *Product) SetOptions(opts []*Option) {
	p.mu.Lock()
	p.options = slices.Clone(opts)
	p.mu.Unlock()
	p.tracker.Mark("options")
}

func (p *Product) Metafields() []*Metafield {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.metafields)
}

func (p *Product) AddMetafield(m UnsavedMetafield) *Metafield {
	mf := NewMetafield(m)
	p.mu.Lock()
	p.metafields = append(p.metafields, mf)
	p.mu.Unlock()
	p.tracker.Mark("metafields")
	return mf
}

func (p *Product) FindMetafield(namespace, key string) (*Metafield, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, m := range p.metafields {
		if m.Namespace == namespace && m.Key == key {
			return m, true
		}
	}
	return nil, false
}

// RemoveMetafields drops metafields by (namespace, key) without marking the
// product, since the removal has already been applied remotely.
func (p *Product) RemoveMetafields(removed []*Metafield) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.metafields = slices.DeleteFunc(p.metafields, func(m *Metafield) bool {
		return slices.ContainsFunc(removed, func(r *Metafield) bool {
			return r.Namespace == m.Namespace && r.Key == m.Key
		})
	})
}

func (p *Product) Variants() []*Variant {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.variants)
}

func (p *Product) AddVariants(vs ...*Variant) {
	p.mu.Lock()
	p.variants = append(p.variants, vs...)
	p.mu.Unlock()
}

// SetVariants replaces the whole variant list.
func (p *Product) SetVariants(vs ...*Variant) {
	p.mu.Lock()
	p.variants = slices.Clone(vs)
	p.mu.Unlock()
}

// ReplaceVariants swaps variants with matching ids and keeps the rest.
func (p *Product) ReplaceVariants(vs ...*Variant) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, cur := range p.variants {
		for _, v := range vs {
			if v.ID == cur.ID {
				p.variants[i] = v
			}
		}
	}
}

func (p *Product) RemoveVariants(ids ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.variants = slices.DeleteFunc(p.variants, func(v *Variant) bool {
		return slices.Contains(ids, v.ID)
	})
}

func (p *Product) FindVariantByBarcode(barcode string) (*Variant, bool) {
	if barcode == "" {
		return nil, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, v := range p.variants {
		if v.Barcode() == barcode {
			return v, true
		}
	}
	return nil, false
}

func (p *Product) FindVariantByID(id string) (*Variant, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, v := range p.variants {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// VariantSKUs returns the non-empty SKUs of all variants.
func (p *Product) VariantSKUs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []string
	for _, v := range p.variants {
		if s := v.SKU(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Values returns the current product values, used as update payload.
func (p *Product) Values() UnsavedProduct {
	out := UnsavedProduct{
		Title:           p.Title(),
		Vendor:          p.Vendor(),
		ProductType:     p.ProductType(),
		Status:          p.Status(),
		DescriptionHTML: p.DescriptionHTML(),
		Tags:            p.Tags(),
	}
	for _, o := range p.Options() {
		out.Options = append(out.Options, UnsavedOption{ID: o.ID, Name: o.Name(), Values: o.Values()})
	}
	for _, m := range p.Metafields() {
		out.Metafields = append(out.Metafields, m.Values())
	}
	return out
}

type SelectedOption struct {
	Name  string
	Value string
}

// DefaultVariantTitle is the title of the variant of a product without options.
const DefaultVariantTitle = "Default Title"

type UnsavedVariant struct {
	SKU               string
	Barcode           string
	Price             decimal.Decimal
	Weight            decimal.Decimal
	WeightUnit        string
	Options           []SelectedOption
	InventoryQuantity int
}

// Title is the first option value, or DefaultVariantTitle without options.
func (v UnsavedVariant) Title() string {
	if len(v.Options) == 0 {
		return DefaultVariantTitle
	}
	return v.Options[0].Value
}

type Variant struct {
	ID    string
	Title string

	tracker    *dirty.Tracker
	sku        *dirty.Field[string]
	barcode    *dirty.Field[string]
	price      *dirty.Field[decimal.Decimal]
	weight     *dirty.Field[decimal.Decimal]
	weightUnit *dirty.Field[string]
	options    *dirty.Field[[]SelectedOption]
}

func NewVariant(id, title string, v UnsavedVariant) *Variant {
	t := dirty.New()
	return &Variant{
		ID:         id,
		Title:      title,
		tracker:    t,
		sku:        dirty.Track(t, "sku", v.SKU),
		barcode:    dirty.Track(t, "barcode", v.Barcode),
		price:      dirty.TrackFunc(t, "price", v.Price.Round(priceScale), decimal.Decimal.Equal),
		weight:     dirty.TrackFunc(t, "weight", v.Weight, decimal.Decimal.Equal),
		weightUnit: dirty.Track(t, "weightUnit", v.WeightUnit),
		options:    dirty.TrackFunc(t, "options", slices.Clone(v.Options), slices.Equal[[]SelectedOption]),
	}
}

func (v *Variant) Tracker() *dirty.Tracker { return v.tracker }

func (v *Variant) SKU() string     { return v.sku.Get() }
func (v *Variant) SetSKU(s string) { v.sku.Set(s) }

func (v *Variant) Barcode() string     { return v.barcode.Get() }
func (v *Variant) SetBarcode(s string) { v.barcode.Set(s) }

func (v *Variant) Price() decimal.Decimal     { return v.price.Get() }
func (v *Variant) SetPrice(d decimal.Decimal) { v.price.Set(d.Round(priceScale)) }

func (v *Variant) Weight() decimal.Decimal     { return v.weight.Get() }
func (v *Variant) SetWeight(d decimal.Decimal) { v.weight.Set(d) }

func (v *Variant) WeightUnit() string     { return v.weightUnit.Get() }
func (v *Variant) SetWeightUnit(s string) { v.weightUnit.Set(s) }

func (v *Variant) SelectedOptions() []SelectedOption { return slices.Clone(v.options.Get()) }
func (v *Variant) SetSelectedOptions(o []SelectedOption) {
	v.options.Set(slices.Clone(o))
}

func (v *Variant) Values() UnsavedVariant {
	return UnsavedVariant{
		SKU:        v.SKU(),
		Barcode:    v.Barcode(),
		Price:      v.Price(),
		Weight:     v.Weight(),
		WeightUnit: v.WeightUnit(),
		Options:    v.SelectedOptions(),
	}
}

// UnsavedOption describes an option. ID is empty until the option is saved.
type UnsavedOption struct {
	ID     string
	Name   string
	Values []string
}

// Option is a named, ordered list of values.
type Option struct {
	ID string

	tracker *dirty.Tracker
	name    *dirty.Field[string]
	values  *dirty.Field[[]string]
}

func NewOption(id string, o UnsavedOption) *Option {
	t := dirty.New()
	return &Option{
		ID:      id,
		tracker: t,
		name:    dirty.Track(t, "name", o.Name),
		values:  dirty.TrackFunc(t, "values", slices.Clone(o.Values), slices.Equal[[]string]),
	}
}

func (o *Option) Tracker() *dirty.Tracker { return o.tracker }

func (o *Option) Name() string     { return o.name.Get() }
func (o *Option) SetName(v string) { o.name.Set(v) }

func (o *Option) Values() []string     { return slices.Clone(o.values.Get()) }
func (o *Option) SetValues(v []string) { o.values.Set(slices.Clone(v)) }

type UnsavedMetafield struct {
	Namespace string
	Key       string
	Value     string
	Type      string
}

// Metafield is keyed by (Namespace, Key); only its value is editable.
type Metafield struct {
	Namespace string
	Key       string
	Type      string

	tracker *dirty.Tracker
	value   *dirty.Field[string]
}

func NewMetafield(m UnsavedMetafield) *Metafield {
	t := dirty.New()
	return &Metafield{
		Namespace: m.Namespace,
		Key:       m.Key,
		Type:      m.Type,
		tracker:   t,
		value:     dirty.Track(t, "value", m.Value),
	}
}

func (m *Metafield) Tracker() *dirty.Tracker { return m.tracker }

func (m *Metafield) Value() string     { return m.value.Get() }
func (m *Metafield) SetValue(v string) { m.value.Set(v) }

func (m *Metafield) Values() UnsavedMetafield {
	return UnsavedMetafield{Namespace: m.Namespace, Key: m.Key, Value: m.Value(), Type: m.Type}
}
