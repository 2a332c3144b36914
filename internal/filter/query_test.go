package filter

import (
	"reflect"
	"testing"
)

func TestSerializeParse_RoundTrip(t *testing.T) {
	tax := testTaxonomy()

	tests := []struct {
		name  string
		build func(*State)
	}{
		{"empty", func(st *State) {}},
		{"query only", func(st *State) { st.SetQuery("rx78") }},
		{"enum", func(st *State) { st.SetEnum("grade", []string{"HG", "MG"}) }},
		{"range", func(st *State) { st.SetRange("mobility", 3, 5) }},
		{"boolean", func(st *State) { st.SetBool("ledUnit", true) }},
		{"everything", func(st *State) {
			st.SetQuery("gundam")
			st.SetEnum("grade", []string{"RG"})
			st.SetEnum("weaponCount", []string{"standard", "few"})
			st.SetRange("mobility", 2, 4)
			st.SetBool("ledUnit", false)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			tt.build(st)

			raw := Serialize(st)
			got, err := Parse(raw, tax)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", raw, err)
			}

			if got.Query != st.Query {
				t.Errorf("query = %q, want %q", got.Query, st.Query)
			}
			if !reflect.DeepEqual(got.Selections, st.Selections) {
				t.Errorf("selections = %#v, want %#v", got.Selections, st.Selections)
			}
		})
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	st, err := Parse("grade=HG&paintScheme=custom&utm_source=share", testTaxonomy())
	if err != nil {
		t.Fatal(err)
	}

	if len(st.Selections) != 1 {
		t.Fatalf("expected only the grade selection, got %#v", st.Selections)
	}
	if _, ok := st.Selections["grade"]; !ok {
		t.Error("grade selection missing")
	}
}

func TestParse_BadSegmentsDropped(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"range without separator", "mobility=35"},
		{"range with garbage bounds", "mobility=a-b"},
		{"boolean garbage", "ledUnit=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Parse(tt.raw, testTaxonomy())
			if err != nil {
				t.Fatalf("bad segment must not fail the restore: %v", err)
			}
			if len(st.Selections) != 0 {
				t.Errorf("expected segment dropped, got %#v", st.Selections)
			}
		})
	}
}

func TestSerialize_RangeFormat(t *testing.T) {
	st := NewState()
	st.SetRange("mobility", 3, 5)

	if got := Serialize(st); got != "mobility=3-5" {
		t.Errorf("Serialize = %q, want %q", got, "mobility=3-5")
	}
}

func TestSerialize_EnumCommaJoined(t *testing.T) {
	st := NewState()
	st.SetEnum("grade", []string{"HG", "MG"})

	// Commas are percent-encoded in the query string and restored on parse.
	if got := Serialize(st); got != "grade=HG%2CMG" {
		t.Errorf("Serialize = %q, want %q", got, "grade=HG%2CMG")
	}
}
