package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/minho-song/kitdex/internal/catalog"
)

// queryKey carries the free-text query in the serialized state
const queryKey = "q"

// Serialize flattens the state into a query string so filter state
// survives navigation and can be shared. Enum and boolean selections
// become comma-joined lists under their category id; ranges become
// "min-max". Key order is the deterministic url.Values encoding order.
func Serialize(st *State) string {
	values := url.Values{}

	if st == nil {
		return ""
	}
	if st.Query != "" {
		values.Set(queryKey, st.Query)
	}

	for id, sel := range st.Selections {
		switch sel.Type {
		case SelectionEnum:
			if len(sel.Values) > 0 {
				values.Set(id, strings.Join(sel.Values, ","))
			}
		case SelectionRange:
			values.Set(id, formatNumber(sel.Min)+"-"+formatNumber(sel.Max))
		case SelectionBoolean:
			values.Set(id, strconv.FormatBool(sel.Flag))
		}
	}

	return values.Encode()
}

// Parse restores a state from a serialized query string. Keys that do
// not name a taxonomy category are ignored, and values that fail to
// parse for their declared type drop that key; a bad segment never
// fails the whole restore.
func Parse(raw string, tax *catalog.Taxonomy) (*State, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, err
	}

	st := NewState()
	st.Query = values.Get(queryKey)

	for key, vs := range values {
		if key == queryKey || len(vs) == 0 {
			continue
		}
		cat := tax.ByID(key)
		if cat == nil {
			continue
		}

		sel, ok := parseSelection(cat, vs[0])
		if !ok {
			continue
		}
		st.Selections[key] = sel
	}

	return st, nil
}

func parseSelection(cat *catalog.Category, raw string) (Selection, bool) {
	switch cat.Type {
	case catalog.TypeRange:
		lo, hi, found := strings.Cut(raw, "-")
		if !found {
			return Selection{}, false
		}
		return SelectionFor(cat, []string{lo, hi})

	case catalog.TypeBoolean:
		return SelectionFor(cat, []string{raw})

	default:
		var values []string
		for _, v := range strings.Split(raw, ",") {
			if v != "" {
				values = append(values, v)
			}
		}
		return SelectionFor(cat, values)
	}
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseBool(s string) (bool, bool) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return b, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
