package filter

import (
	"github.com/minho-song/kitdex/internal/catalog"
)

// SelectionType identifies which shape of value a Selection carries
type SelectionType string

const (
	SelectionEnum    SelectionType = "enum"
	SelectionRange   SelectionType = "range"
	SelectionBoolean SelectionType = "boolean"
)

// Selection is the user's chosen value(s) for one category. It is a
// tagged variant keyed by the category's declared type: enum and
// multi-enum categories carry a value list, range categories carry
// inclusive bounds, boolean categories carry a single flag.
type Selection struct {
	Type   SelectionType `json:"type"`
	Values []string      `json:"values,omitempty"`
	Min    float64       `json:"min,omitempty"`
	Max    float64       `json:"max,omitempty"`
	Flag   bool          `json:"flag,omitempty"`
}

// EnumSelection builds an enum/multi-enum selection
func EnumSelection(values ...string) Selection {
	return Selection{Type: SelectionEnum, Values: values}
}

// RangeSelection builds an inclusive range selection
func RangeSelection(min, max float64) Selection {
	return Selection{Type: SelectionRange, Min: min, Max: max}
}

// BoolSelection builds a boolean selection
func BoolSelection(flag bool) Selection {
	return Selection{Type: SelectionBoolean, Flag: flag}
}

// State is the complete set of active selections plus the free-text
// query. It must be mutated only through the setters below, which
// maintain the invariant that a category id is present in Selections
// only while it has at least one active value.
type State struct {
	Query      string               `json:"query,omitempty"`
	Selections map[string]Selection `json:"selections,omitempty"`
}

// NewState returns an empty filter state
func NewState() *State {
	return &State{Selections: make(map[string]Selection)}
}

// SetQuery replaces the free-text query
func (s *State) SetQuery(q string) {
	s.Query = q
}

// SetEnum replaces the value list for an enum/multi-enum category.
// An empty list removes the category.
func (s *State) SetEnum(categoryID string, values []string) {
	if len(values) == 0 {
		delete(s.Selections, categoryID)
		return
	}
	s.ensure()
	s.Selections[categoryID] = EnumSelection(values...)
}

// Toggle adds the value to an enum selection if absent, removes it if
// present, and drops the category once its last value is removed.
func (s *State) Toggle(categoryID, value string) {
	sel, ok := s.Selections[categoryID]
	if !ok || sel.Type != SelectionEnum {
		s.SetEnum(categoryID, []string{value})
		return
	}

	values := make([]string, 0, len(sel.Values)+1)
	removed := false
	for _, v := range sel.Values {
		if v == value {
			removed = true
			continue
		}
		values = append(values, v)
	}
	if !removed {
		values = append(values, value)
	}

	s.SetEnum(categoryID, values)
}

// SetRange replaces the bounds for a range category
func (s *State) SetRange(categoryID string, min, max float64) {
	s.ensure()
	s.Selections[categoryID] = RangeSelection(min, max)
}

// SetBool replaces the flag for a boolean category
func (s *State) SetBool(categoryID string, flag bool) {
	s.ensure()
	s.Selections[categoryID] = BoolSelection(flag)
}

// ClearCategory removes one category's selection
func (s *State) ClearCategory(categoryID string) {
	delete(s.Selections, categoryID)
}

// Reset clears the query and all selections
func (s *State) Reset() {
	s.Query = ""
	s.Selections = make(map[string]Selection)
}

// Active reports whether any filter or query is in effect
func (s *State) Active() bool {
	return s.Query != "" || len(s.Selections) > 0
}

// Clone returns an independent deep copy of the state
func (s *State) Clone() *State {
	out := &State{
		Query:      s.Query,
		Selections: make(map[string]Selection, len(s.Selections)),
	}
	for id, sel := range s.Selections {
		if sel.Values != nil {
			values := make([]string, len(sel.Values))
			copy(values, sel.Values)
			sel.Values = values
		}
		out.Selections[id] = sel
	}
	return out
}

func (s *State) ensure() {
	if s.Selections == nil {
		s.Selections = make(map[string]Selection)
	}
}

// SelectionFor builds the appropriate selection variant for a category's
// declared type from raw string values. Range categories expect exactly
// two values (min, max); boolean categories expect a single true/false.
func SelectionFor(cat *catalog.Category, values []string) (Selection, bool) {
	switch cat.Type {
	case catalog.TypeRange:
		if len(values) != 2 {
			return Selection{}, false
		}
		min, okMin := parseNumber(values[0])
		max, okMax := parseNumber(values[1])
		if !okMin || !okMax {
			return Selection{}, false
		}
		return RangeSelection(min, max), true
	case catalog.TypeBoolean:
		if len(values) != 1 {
			return Selection{}, false
		}
		flag, ok := parseBool(values[0])
		if !ok {
			return Selection{}, false
		}
		return BoolSelection(flag), true
	default:
		if len(values) == 0 {
			return Selection{}, false
		}
		return EnumSelection(values...), true
	}
}
