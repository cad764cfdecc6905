package domain

import (
	"github.com/shopspring/decimal"

	"github.com/TemirB/catalog-sync/internal/pkg/dirty"
)

// ItemType is the POS product type.
type ItemType int

const (
	ItemInherited ItemType = 0
	ItemVariation ItemType = 5
	ItemStandard  ItemType = 7
)

const (
	priceScale = 2
	stockScale = 0
)

// UnsavedItem holds the values of a POS product without remote identity.
type UnsavedItem struct {
	Name             string
	AlternativeName  string
	ItemNumber       string
	Barcode          string
	Description      string
	Price            decimal.Decimal
	PriceIncludesVAT bool
	VAT              decimal.Decimal
	StockEnabled     bool
	StockValue       decimal.Decimal
	StockUnit        string
	Active           bool
	GroupID          int
	BaseID           *int
	Type             ItemType
}

// Item is a sellable POS product. All editable values are dirty-tracked.
type Item struct {
	ID     int
	Type   ItemType
	BaseID *int

	tracker          *dirty.Tracker
	name             *dirty.Field[string]
	alternativeName  *dirty.Field[string]
	itemNumber       *dirty.Field[string]
	barcode          *dirty.Field[string]
	description      *dirty.Field[string]
	price            *dirty.Field[decimal.Decimal]
	priceIncludesVAT *dirty.Field[bool]
	vat              *dirty.Field[decimal.Decimal]
	stockEnabled     *dirty.Field[bool]
	stockValue       *dirty.Field[decimal.Decimal]
	stockUnit        *dirty.Field[string]
	active           *dirty.Field[bool]
	groupID          *dirty.Field[int]
}

func NewItem(id int, it UnsavedItem) *Item {
	t := dirty.New()
	return &Item{
		ID:               id,
		Type:             it.Type,
		BaseID:           copyInt(it.BaseID),
		tracker:          t,
		name:             dirty.Track(t, "name", it.Name),
		alternativeName:  dirty.Track(t, "alternativeNameInPos", it.AlternativeName),
		itemNumber:       dirty.Track(t, "itemNumber", it.ItemNumber),
		barcode:          dirty.Track(t, "barcode", it.Barcode),
		description:      dirty.Track(t, "description", it.Description),
		price:            dirty.TrackFunc(t, "price", it.Price.Round(priceScale), decimal.Decimal.Equal),
		priceIncludesVAT: dirty.Track(t, "priceIncludesVat", it.PriceIncludesVAT),
		vat:              dirty.TrackFunc(t, "vat", it.VAT.Round(priceScale), decimal.Decimal.Equal),
		stockEnabled:     dirty.Track(t, "stockEnabled", it.StockEnabled),
		stockValue:       dirty.TrackFunc(t, "stockValue", it.StockValue.Round(stockScale), decimal.Decimal.Equal),
		stockUnit:        dirty.Track(t, "stockUnit", it.StockUnit),
		active:           dirty.Track(t, "active", it.Active),
		groupID:          dirty.Track(t, "productGroupId", it.GroupID),
	}
}

func (i *Item) Tracker() *dirty.Tracker { return i.tracker }

func (i *Item) Name() string     { return i.name.Get() }
func (i *Item) SetName(v string) { i.name.Set(v) }

// AlternativeName is the name shown on the POS terminal.
func (i *Item) AlternativeName() string     { return i.alternativeName.Get() }
func (i *Item) SetAlternativeName(v string) { i.alternativeName.Set(v) }

func (i *Item) ItemNumber() string     { return i.itemNumber.Get() }
func (i *Item) SetItemNumber(v string) { i.itemNumber.Set(v) }

func (i *Item) Barcode() string     { return i.barcode.Get() }
func (i *Item) SetBarcode(v string) { i.barcode.Set(v) }

func (i *Item) Description() string     { return i.description.Get() }
func (i *Item) SetDescription(v string) { i.description.Set(v) }

func (i *Item) Price() decimal.Decimal     { return i.price.Get() }
func (i *Item) SetPrice(v decimal.Decimal) { i.price.Set(v.Round(priceScale)) }

func (i *Item) PriceIncludesVAT() bool     { return i.priceIncludesVAT.Get() }
func (i *Item) SetPriceIncludesVAT(v bool) { i.priceIncludesVAT.Set(v) }

func (i *Item) VAT() decimal.Decimal     { return i.vat.Get() }
func (i *Item) SetVAT(v decimal.Decimal) { i.vat.Set(v.Round(priceScale)) }

func (i *Item) StockEnabled() bool     { return i.stockEnabled.Get() }
func (i *Item) SetStockEnabled(v bool) { i.stockEnabled.Set(v) }

func (i *Item) StockValue() decimal.Decimal     { return i.stockValue.Get() }
func (i *Item) SetStockValue(v decimal.Decimal) { i.stockValue.Set(v.Round(stockScale)) }

func (i *Item) StockUnit() string     { return i.stockUnit.Get() }
func (i *Item) SetStockUnit(v string) { i.stockUnit.Set(v) }

func (i *Item) Active() bool     { return i.active.Get() }
func (i *Item) SetActive(v bool) { i.active.Set(v) }

func (i *Item) GroupID() int     { return i.groupID.Get() }
func (i *Item) SetGroupID(v int) { i.groupID.Set(v) }

// Values returns the current values, used as update payload.
func (i *Item) Values() UnsavedItem {
	return UnsavedItem{
		Name:             i.Name(),
		AlternativeName:  i.AlternativeName(),
		ItemNumber:       i.ItemNumber(),
		Barcode:          i.Barcode(),
		Description:      i.Description(),
		Price:            i.Price(),
		PriceIncludesVAT: i.PriceIncludesVAT(),
		VAT:              i.VAT(),
		StockEnabled:     i.StockEnabled(),
		StockValue:       i.StockValue(),
		StockUnit:        i.StockUnit(),
		Active:           i.Active(),
		GroupID:          i.GroupID(),
		BaseID:           copyInt(i.BaseID),
		Type:             i.Type,
	}
}
