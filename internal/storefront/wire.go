package storefront

import (
	"github.com/shopspring/decimal"

	"github.com/TemirB/catalog-sync/internal/domain"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type optionNode struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type metafieldNode struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type"`
}

type variantNode struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	SKU             string                  `json:"sku"`
	Barcode         string                  `json:"barcode"`
	Price           decimal.Decimal         `json:"price"`
	SelectedOptions []domain.SelectedOption `json:"selectedOptions"`
	InventoryItem   struct {
		Measurement struct {
			Weight *weightNode `json:"weight"`
		} `json:"measurement"`
	} `json:"inventoryItem"`
}

type weightNode struct {
	Value decimal.Decimal `json:"value"`
	Unit  string          `json:"unit"`
}

type productNode struct {
	ID                    string               `json:"id"`
	Title                 string               `json:"title"`
	Vendor                string               `json:"vendor"`
	ProductType           string               `json:"productType"`
	Status                domain.ProductStatus `json:"status"`
	DescriptionHTML       string               `json:"descriptionHtml"`
	Tags                  []string             `json:"tags"`
	HasOnlyDefaultVariant bool                 `json:"hasOnlyDefaultVariant"`
	Options               []optionNode         `json:"options"`
	Metafields            struct {
		Nodes []metafieldNode `json:"nodes"`
	} `json:"metafields"`
	Variants struct {
		Nodes []variantNode `json:"nodes"`
	} `json:"variants"`
}

func (n variantNode) toDomain() *domain.Variant {
	v := domain.UnsavedVariant{
		SKU:     n.SKU,
		Barcode: n.Barcode,
		Price:   n.Price,
		Options: n.SelectedOptions,
	}
	if w := n.InventoryItem.Measurement.Weight; w != nil {
		v.Weight = w.Value
		v.WeightUnit = w.Unit
	}
	return domain.NewVariant(n.ID, n.Title, v)
}

func (n productNode) toDomain() *domain.Product {
	p := domain.UnsavedProduct{
		Title:           n.Title,
		Vendor:          n.Vendor,
		ProductType:     n.ProductType,
		Status:          n.Status,
		DescriptionHTML: n.DescriptionHTML,
		Tags:            n.Tags,
	}
	for _, o := range n.Options {
		p.Options = append(p.Options, domain.UnsavedOption{ID: o.ID, Name: o.Name, Values: o.Values})
	}
	for _, m := range n.Metafields.Nodes {
		p.Metafields = append(p.Metafields, domain.UnsavedMetafield(m))
	}
	variants := make([]*domain.Variant, 0, len(n.Variants.Nodes))
	for _, v := range n.Variants.Nodes {
		variants = append(variants, v.toDomain())
	}
	return domain.NewProduct(n.ID, p, variants, n.HasOnlyDefaultVariant)
}

func metafieldInputs(ms []domain.UnsavedMetafield) []map[string]any {
	out := make([]map[string]any, 0, len(ms))
	for _, m := range ms {
		out = append(out, map[string]any{
			"namespace": m.Namespace,
			"key":       m.Key,
			"value":     m.Value,
			"type":      m.Type,
		})
	}
	return out
}

func productInput(p domain.UnsavedProduct) map[string]any {
	in := map[string]any{
		"title":           p.Title,
		"vendor":          p.Vendor,
		"productType":     p.ProductType,
		"status":          p.Status,
		"descriptionHtml": p.DescriptionHTML,
		"tags":            p.Tags,
	}
	if len(p.Metafields) > 0 {
		in["metafields"] = metafieldInputs(p.Metafields)
	}
	return in
}

func productCreateInput(p domain.UnsavedProduct) map[string]any {
	in := productInput(p)
	if len(p.Options) > 0 {
		opts := make([]map[string]any, 0, len(p.Options))
		for _, o := range p.Options {
			values := make([]map[string]any, 0, len(o.Values))
			for _, v := range o.Values {
				values = append(values, map[string]any{"name": v})
			}
			opts = append(opts, map[string]any{"name": o.Name, "values": values})
		}
		in["productOptions"] = opts
	}
	return in
}

func variantInput(v domain.UnsavedVariant) map[string]any {
	in := map[string]any{
		"barcode": v.Barcode,
		"price":   v.Price.StringFixed(2),
	}
	item := map[string]any{"sku": v.SKU}
	if v.WeightUnit != "" {
		item["measurement"] = map[string]any{
			"weight": map[string]any{"value": v.Weight.InexactFloat64(), "unit": v.WeightUnit},
		}
	}
	in["inventoryItem"] = item
	if len(v.Options) > 0 {
		opts := make([]map[string]any, 0, len(v.Options))
		for _, o := range v.Options {
			opts = append(opts, map[string]any{"optionName": o.Name, "name": o.Value})
		}
		in["optionValues"] = opts
	}
	return in
}
