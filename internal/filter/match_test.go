package filter

import (
	"testing"

	"github.com/minho-song/kitdex/internal/catalog"
)

func testTaxonomy() *catalog.Taxonomy {
	return &catalog.Taxonomy{Categories: []catalog.Category{
		{ID: "grade", Type: catalog.TypeEnum, Options: []catalog.Option{
			{Value: "HG", Label: "High Grade"},
			{Value: "MG", Label: "Master Grade"},
			{Value: "RG", Label: "Real Grade"},
		}},
		{ID: "difficulty", Type: catalog.TypeEnum, Options: []catalog.Option{
			{Value: "beginner", Label: "Beginner"},
			{Value: "intermediate", Label: "Intermediate"},
			{Value: "advanced", Label: "Advanced"},
		}},
		{ID: "mobility", Type: catalog.TypeRange, Min: 1, Max: 5, Step: 1},
		{ID: "weaponCount", Type: catalog.TypeMultiEnum, Options: []catalog.Option{
			{Value: "few", Label: "Few"},
			{Value: "standard", Label: "Standard"},
			{Value: "many", Label: "Many"},
		}},
		{ID: "ledUnit", Type: catalog.TypeBoolean},
	}}
}

func testProduct() *catalog.Product {
	return &catalog.Product{
		ID:          "hg-rx-78-2-revive",
		Names:       map[string]string{"en": "RX-78-2 Gundam (Revive)", "ko": "건담 리바이브"},
		Grade:       "HG",
		Series:      "Mobile Suit Gundam",
		ModelNumber: "RX-78-2",
		FilterData: map[string]catalog.AttrValue{
			"difficulty":  catalog.StringValue("beginner"),
			"mobility":    catalog.NumberValue(4),
			"weaponCount": catalog.ListValue("many", "standard"),
			"ledUnit":     catalog.BoolValue(false),
		},
	}
}

func TestMatcher_EmptyState(t *testing.T) {
	m := NewMatcher(testTaxonomy(), "en")
	if !m.Matches(testProduct(), NewState()) {
		t.Error("empty state should match every product")
	}
	if !m.Matches(testProduct(), nil) {
		t.Error("nil state should match every product")
	}
}

func TestMatcher_TextQuery(t *testing.T) {
	m := NewMatcher(testTaxonomy(), "en")
	p := testProduct()

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"name substring", "revive", true},
		{"case insensitive", "GUNDAM", true},
		{"id substring", "rx-78", true},
		{"normalized id match", "rx78", true},
		{"model number", "RX-78-2", true},
		{"grade", "hg", true},
		{"series", "mobile suit", true},
		{"no match", "zaku", false},
		{"whitespace only", "   ", true},
		{"choseong match", "ㄱㄷ", true},
		{"choseong no match", "ㅈㅋ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			st.SetQuery(tt.query)
			if got := m.Matches(p, st); got != tt.want {
				t.Errorf("Matches(query=%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatcher_EnumSelection(t *testing.T) {
	m := NewMatcher(testTaxonomy(), "en")
	p := testProduct()

	tests := []struct {
		name   string
		catID  string
		values []string
		want   bool
	}{
		{"scalar membership", "difficulty", []string{"beginner", "advanced"}, true},
		{"scalar excluded", "difficulty", []string{"advanced"}, false},
		{"list intersection", "weaponCount", []string{"standard", "few"}, true},
		{"list no overlap", "weaponCount", []string{"few"}, false},
		{"product field wins over filterData", "grade", []string{"HG"}, true},
		{"grade excluded", "grade", []string{"MG"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			st.SetEnum(tt.catID, tt.values)
			if got := m.Matches(p, st); got != tt.want {
				t.Errorf("Matches(%s=%v) = %v, want %v", tt.catID, tt.values, got, tt.want)
			}
		})
	}
}

func TestMatcher_RangeSelection(t *testing.T) {
	m := NewMatcher(testTaxonomy(), "en")
	p := testProduct() // mobility 4

	tests := []struct {
		name     string
		min, max float64
		want     bool
	}{
		{"inside", 3, 5, true},
		{"lower bound inclusive", 4, 5, true},
		{"upper bound inclusive", 1, 4, true},
		{"outside", 1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			st.SetRange("mobility", tt.min, tt.max)
			if got := m.Matches(p, st); got != tt.want {
				t.Errorf("Matches(mobility=%g-%g) = %v, want %v", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestMatcher_RangeMissingValueNeverMatches(t *testing.T) {
	m := NewMatcher(testTaxonomy(), "en")
	p := testProduct()
	delete(p.FilterData, "mobility")

	st := NewState()
	st.SetRange("mobility", 1, 5)
	if m.Matches(p, st) {
		t.Error("product without a range value must not match a range filter")
	}
}

func TestMatcher_BooleanSelection(t *testing.T) {
	m := NewMatcher(testTaxonomy(), "en")
	p := testProduct() // ledUnit false

	st := NewState()
	st.SetBool("ledUnit", false)
	if !m.Matches(p, st) {
		t.Error("boolean equality should match")
	}

	st.SetBool("ledUnit", true)
	if m.Matches(p, st) {
		t.Error("boolean mismatch should exclude")
	}
}

func TestMatcher_UnknownCategoryIgnored(t *testing.T) {
	m := NewMatcher(testTaxonomy(), "en")

	st := NewState()
	st.SetEnum("paintRequired", []string{"yes"})
	if !m.Matches(testProduct(), st) {
		t.Error("selection for a category absent from the taxonomy must be ignored")
	}
}

func TestMatcher_AndAcrossCategories(t *testing.T) {
	m := NewMatcher(testTaxonomy(), "en")
	p := testProduct()

	st := NewState()
	st.SetEnum("difficulty", []string{"beginner"})
	st.SetRange("mobility", 3, 5)
	if !m.Matches(p, st) {
		t.Fatal("both categories satisfied, expected match")
	}

	st.SetEnum("difficulty", []string{"advanced"})
	if m.Matches(p, st) {
		t.Error("one failing category must exclude the product")
	}
}

func TestResolveField_Precedence(t *testing.T) {
	p := testProduct()
	// A filterData entry under the same id as a product-level field loses.
	p.FilterData["grade"] = catalog.StringValue("MG")

	v := ResolveField(p, "grade")
	if s, _ := v.Scalar(); s != "HG" {
		t.Errorf("product-level grade should win over filterData, got %q", s)
	}

	// Without the product-level field the filterData entry is used.
	p.Grade = ""
	v = ResolveField(p, "grade")
	if s, _ := v.Scalar(); s != "MG" {
		t.Errorf("expected filterData fallback, got %q", s)
	}

	if !ResolveField(p, "missing").IsZero() {
		t.Error("unknown field should resolve to an absent value")
	}
}

func TestState_EmptiedCategoriesRemoved(t *testing.T) {
	st := NewState()

	st.Toggle("grade", "HG")
	st.Toggle("grade", "MG")
	if got := len(st.Selections["grade"].Values); got != 2 {
		t.Fatalf("expected 2 values, got %d", got)
	}

	st.Toggle("grade", "HG")
	st.Toggle("grade", "MG")
	if _, ok := st.Selections["grade"]; ok {
		t.Error("category emptied via Toggle must be removed, not left as an empty list")
	}

	st.SetEnum("difficulty", []string{"beginner"})
	st.SetEnum("difficulty", nil)
	if _, ok := st.Selections["difficulty"]; ok {
		t.Error("SetEnum with no values must remove the category")
	}

	st.SetRange("mobility", 3, 5)
	st.ClearCategory("mobility")
	if _, ok := st.Selections["mobility"]; ok {
		t.Error("ClearCategory must remove the selection")
	}
	if st.Active() {
		t.Error("state with no query and no selections must not be active")
	}
}
