package pos

import (
	"github.com/shopspring/decimal"

	"github.com/TemirB/catalog-sync/internal/domain"
)

type groupDTO struct {
	ID          int    `json:"productgroup_id,omitempty"`
	Name        string `json:"productgroup_name"`
	Description string `json:"productgroup_description"`
	Shortcut    string `json:"productgroup_shortcut"`
	Active      bool   `json:"productgroup_active"`
	Parent      *int   `json:"productgroup_parent"`
	SortIndex   int    `json:"productgroup_sortIndex"`
	TypeID      int    `json:"productgroup_type_id"`
}

func groupFromDTO(d groupDTO) *domain.Group {
	return domain.NewGroup(d.ID, domain.UnsavedGroup{
		Name:        d.Name,
		Description: d.Description,
		Shortcut:    d.Shortcut,
		Active:      d.Active,
		Parent:      d.Parent,
		SortIndex:   d.SortIndex,
		Type:        domain.GroupType(d.TypeID),
	})
}

func groupToDTO(g domain.UnsavedGroup) groupDTO {
	return groupDTO{
		Name:        g.Name,
		Description: g.Description,
		Shortcut:    g.Shortcut,
		Active:      g.Active,
		Parent:      g.Parent,
		SortIndex:   g.SortIndex,
		TypeID:      int(g.Type),
	}
}

type itemDTO struct {
	ID               int             `json:"product_id,omitempty"`
	Name             string          `json:"product_name"`
	AlternativeName  string          `json:"product_alternativeNameInPos"`
	ItemNumber       string          `json:"product_itemnumber"`
	Barcode          string          `json:"product_barcode"`
	Description      string          `json:"product_description"`
	Price            decimal.Decimal `json:"product_price"`
	PriceIncludesVAT bool            `json:"product_priceIncludesVat"`
	VAT              decimal.Decimal `json:"product_vat"`
	StockEnabled     bool            `json:"product_stock_enabled"`
	StockValue       decimal.Decimal `json:"product_stock_value"`
	StockUnit        string          `json:"product_stock_unit"`
	Active           bool            `json:"product_active"`
	TypeID           int             `json:"product_type_id"`
	BaseID           *int            `json:"product_base_id"`
	GroupID          int             `json:"productgroup_id"`
}

func itemFromDTO(d itemDTO) *domain.Item {
	return domain.NewItem(d.ID, domain.UnsavedItem{
		Name:             d.Name,
		AlternativeName:  d.AlternativeName,
		ItemNumber:       d.ItemNumber,
		Barcode:          d.Barcode,
		Description:      d.Description,
		Price:            d.Price,
		PriceIncludesVAT: d.PriceIncludesVAT,
		VAT:              d.VAT,
		StockEnabled:     d.StockEnabled,
		StockValue:       d.StockValue,
		StockUnit:        d.StockUnit,
		Active:           d.Active,
		GroupID:          d.GroupID,
		BaseID:           d.BaseID,
		Type:             domain.ItemType(d.TypeID),
	})
}

func itemToDTO(it domain.UnsavedItem) itemDTO {
	return itemDTO{
		Name:             it.Name,
		AlternativeName:  it.AlternativeName,
		ItemNumber:       it.ItemNumber,
		Barcode:          it.Barcode,
		Description:      it.Description,
		Price:            it.Price,
		PriceIncludesVAT: it.PriceIncludesVAT,
		VAT:              it.VAT,
		StockEnabled:     it.StockEnabled,
		StockValue:       it.StockValue,
		StockUnit:        it.StockUnit,
		Active:           it.Active,
		TypeID:           int(it.Type),
		BaseID:           it.BaseID,
		GroupID:          it.GroupID,
	}
}

// apiError is the body ready2order returns with 4xx answers.
type apiError struct {
	Error bool   `json:"error"`
	Msg   string `json:"msg"`
}
