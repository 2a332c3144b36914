package filter

import (
	"strings"

	"github.com/minho-song/kitdex/internal/catalog"
)

// Matcher decides product inclusion against a filter state. It carries
// the taxonomy and display locale explicitly so independent sessions
// (and test fixtures) never share state.
type Matcher struct {
	Taxonomy *catalog.Taxonomy
	Locale   string
}

// NewMatcher builds a matcher for the given taxonomy and locale
func NewMatcher(tax *catalog.Taxonomy, locale string) *Matcher {
	return &Matcher{Taxonomy: tax, Locale: locale}
}

// Matches reports whether the product satisfies the free-text query and
// every active category selection. Categories combine with logical AND;
// evaluation stops at the first failing check. Selections for category
// ids absent from the taxonomy are ignored.
func (m *Matcher) Matches(p *catalog.Product, st *State) bool {
	if st == nil {
		return true
	}

	if !m.matchesQuery(p, st.Query) {
		return false
	}

	for id, sel := range st.Selections {
		cat := m.Taxonomy.ByID(id)
		if cat == nil {
			continue
		}
		if !matchesSelection(p, id, cat, sel) {
			return false
		}
	}

	return true
}

// matchesQuery applies the text query. A query made of Hangul leading
// consonants takes the choseong path against the Korean name; anything
// else is a case-insensitive substring test against the display name,
// id, model number, grade, and series. Ids and model numbers are also
// compared with separators stripped, so "rx78" finds "hg-rx-78-2-revive".
func (m *Matcher) matchesQuery(p *catalog.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if IsChoseongQuery(q) {
		return MatchesChoseong(p.Name("ko"), q)
	}

	fields := []string{
		p.Name(m.Locale),
		p.ID,
		p.ModelNumber,
		p.Grade,
		p.Series,
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		fl := strings.ToLower(f)
		if strings.Contains(fl, q) {
			return true
		}
		if strings.Contains(normalizeAlnum(fl), normalizeAlnum(q)) {
			return true
		}
	}
	return false
}

// normalizeAlnum strips everything but letters and digits
func normalizeAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func matchesSelection(p *catalog.Product, categoryID string, cat *catalog.Category, sel Selection) bool {
	value := ResolveField(p, categoryID)

	switch cat.Type {
	case catalog.TypeEnum, catalog.TypeMultiEnum:
		if sel.Type != SelectionEnum || len(sel.Values) == 0 {
			return true
		}
		values, ok := value.Strings()
		if !ok {
			return false
		}
		return intersects(values, sel.Values)

	case catalog.TypeRange:
		if sel.Type != SelectionRange {
			return true
		}
		n, ok := value.Number()
		if !ok {
			// A product without a value never matches a range filter.
			return false
		}
		return n >= sel.Min && n <= sel.Max

	case catalog.TypeBoolean:
		if sel.Type != SelectionBoolean {
			return true
		}
		b, ok := value.Bool()
		if !ok {
			return false
		}
		return b == sel.Flag
	}

	return true
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func intersectionSize(a, b []string) int {
	n := 0
	for _, y := range b {
		for _, x := range a {
			if x == y {
				n++
				break
			}
		}
	}
	return n
}
