package catalog

import (
	"encoding/json"
	"fmt"
)

// CategoryType identifies how a filter category is evaluated
type CategoryType string

const (
	TypeEnum      CategoryType = "enum"
	TypeMultiEnum CategoryType = "multi-enum"
	TypeRange     CategoryType = "range"
	TypeBoolean   CategoryType = "boolean"
)

// Option is one selectable value of an enum category
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Category is one filterable dimension from the taxonomy.
// Categories are immutable after load.
type Category struct {
	ID      string       `json:"id"`
	Type    CategoryType `json:"type"`
	Options []Option     `json:"options,omitempty"`
	Min     float64      `json:"min,omitempty"`
	Max     float64      `json:"max,omitempty"`
	Step    float64      `json:"step,omitempty"`
}

// Taxonomy holds the static category definitions
type Taxonomy struct {
	Categories []Category `json:"categories"`

	byID map[string]*Category
}

// ByID returns the category with the given id, or nil if unknown
func (t *Taxonomy) ByID(id string) *Category {
	if t == nil {
		return nil
	}
	if t.byID == nil {
		t.byID = make(map[string]*Category, len(t.Categories))
		for i := range t.Categories {
			t.byID[t.Categories[i].ID] = &t.Categories[i]
		}
	}
	return t.byID[id]
}

// Product is one catalog entry. Products are read-only reference data;
// nothing in the filter core mutates them.
type Product struct {
	ID          string               `json:"id"`
	Names       map[string]string    `json:"name"`
	Grade       string               `json:"grade"`
	Series      string               `json:"series"`
	ModelNumber string               `json:"modelNumber,omitempty"`
	Price       *float64             `json:"price,omitempty"`
	ReleaseYear *int                 `json:"releaseYear,omitempty"`
	Scale       string               `json:"scale,omitempty"`
	Tags        []string             `json:"tags,omitempty"`
	FilterData  map[string]AttrValue `json:"filterData,omitempty"`

	// Detail-only display fields; empty in the index document.
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Accessories []string `json:"accessories,omitempty"`
}

// Name returns the display name for the given locale, falling back to
// English and then to any available locale.
func (p *Product) Name(locale string) string {
	if n, ok := p.Names[locale]; ok && n != "" {
		return n
	}
	if n, ok := p.Names["en"]; ok && n != "" {
		return n
	}
	for _, n := range p.Names {
		if n != "" {
			return n
		}
	}
	return p.ID
}

type attrKind int

const (
	attrNone attrKind = iota
	attrString
	attrList
	attrNumber
	attrBool
)

// AttrValue is a product attribute value from filterData. The source
// documents carry strings, string arrays, numbers, and booleans under
// the same keys, so the value is decoded into a tagged union instead of
// an interface{} that callers would have to type-probe.
type AttrValue struct {
	kind attrKind
	str  string
	list []string
	num  float64
	b    bool
}

// StringValue builds a scalar string attribute
func StringValue(s string) AttrValue { return AttrValue{kind: attrString, str: s} }

// ListValue builds a multi-value string attribute
func ListValue(vs ...string) AttrValue { return AttrValue{kind: attrList, list: vs} }

// NumberValue builds a numeric attribute
func NumberValue(n float64) AttrValue { return AttrValue{kind: attrNumber, num: n} }

// BoolValue builds a boolean attribute
func BoolValue(b bool) AttrValue { return AttrValue{kind: attrBool, b: b} }

// IsZero reports whether the value is absent
func (v AttrValue) IsZero() bool { return v.kind == attrNone }

// Scalar returns the scalar string value, if the attribute holds one
func (v AttrValue) Scalar() (string, bool) {
	if v.kind != attrString {
		return "", false
	}
	return v.str, true
}

// Strings returns the attribute as a value list. Scalar strings are
// returned as a single-element list so enum matching can treat both
// shapes uniformly.
func (v AttrValue) Strings() ([]string, bool) {
	switch v.kind {
	case attrList:
		return v.list, true
	case attrString:
		return []string{v.str}, true
	default:
		return nil, false
	}
}

// IsList reports whether the attribute holds multiple values
func (v AttrValue) IsList() bool { return v.kind == attrList }

// Number returns the numeric value, if the attribute holds one
func (v AttrValue) Number() (float64, bool) {
	if v.kind != attrNumber {
		return 0, false
	}
	return v.num, true
}

// Bool returns the boolean value, if the attribute holds one
func (v AttrValue) Bool() (bool, bool) {
	if v.kind != attrBool {
		return false, false
	}
	return v.b, true
}

// UnmarshalJSON decodes string, string-array, number, and boolean shapes.
// Anything else is left absent rather than failing the whole document.
func (v *AttrValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = ListValue(list...)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}

	*v = AttrValue{}
	return nil
}

// MarshalJSON emits the underlying shape
func (v AttrValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case attrString:
		return json.Marshal(v.str)
	case attrList:
		return json.Marshal(v.list)
	case attrNumber:
		return json.Marshal(v.num)
	case attrBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// Validate checks taxonomy consistency after load
func (t *Taxonomy) Validate() error {
	seen := make(map[string]bool, len(t.Categories))
	for _, c := range t.Categories {
		if c.ID == "" {
			return fmt.Errorf("category with empty id")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate category id: %s", c.ID)
		}
		seen[c.ID] = true

		switch c.Type {
		case TypeEnum, TypeMultiEnum, TypeRange, TypeBoolean:
		default:
			return fmt.Errorf("category %s: unknown type %q", c.ID, c.Type)
		}

		if c.Type == TypeRange && c.Min > c.Max {
			return fmt.Errorf("category %s: min %g greater than max %g", c.ID, c.Min, c.Max)
		}
	}
	return nil
}
