package filter

import (
	"github.com/minho-song/kitdex/internal/catalog"
)

// ResolveField returns the product's value for a category id. Typed
// product-level fields take precedence over filterData entries with the
// same id; the returned value is absent (IsZero) when the product has
// no value for the category at all.
func ResolveField(p *catalog.Product, categoryID string) catalog.AttrValue {
	switch categoryID {
	case "grade":
		if p.Grade != "" {
			return catalog.StringValue(p.Grade)
		}
	case "series":
		if p.Series != "" {
			return catalog.StringValue(p.Series)
		}
	case "scale":
		if p.Scale != "" {
			return catalog.StringValue(p.Scale)
		}
	case "price":
		if p.Price != nil {
			return catalog.NumberValue(*p.Price)
		}
	case "releaseYear":
		if p.ReleaseYear != nil {
			return catalog.NumberValue(float64(*p.ReleaseYear))
		}
	case "tags":
		if len(p.Tags) > 0 {
			return catalog.ListValue(p.Tags...)
		}
	}

	if v, ok := p.FilterData[categoryID]; ok {
		return v
	}
	return catalog.AttrValue{}
}
