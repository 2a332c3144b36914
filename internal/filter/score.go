package filter

import (
	"math"

	"github.com/minho-song/kitdex/internal/catalog"
)

// defaultWeights ranks categories by how much they matter when scoring
// a partial match. Build-relevant attributes weigh more than decorative
// ones; anything not listed falls back to DefaultWeight.
var defaultWeights = map[string]float64{
	"difficulty":  3.0,
	"mobility":    2.5,
	"grade":       2.0,
	"scale":       1.5,
	"series":      1.5,
	"weaponCount": 1.0,
	"ledUnit":     0.5,
}

// Scorer computes the weighted 0-100 match score for a product against
// the active selections. Scores rank results only while at least one
// filter is active; an empty state scores everything 0.
type Scorer struct {
	Weights       map[string]float64
	DefaultWeight float64
}

// NewScorer builds a scorer with the default weight table, with
// per-category overrides applied on top.
func NewScorer(overrides map[string]float64) *Scorer {
	weights := make(map[string]float64, len(defaultWeights)+len(overrides))
	for id, w := range defaultWeights {
		weights[id] = w
	}
	for id, w := range overrides {
		weights[id] = w
	}
	return &Scorer{Weights: weights, DefaultWeight: 1.0}
}

func (s *Scorer) weight(categoryID string) float64 {
	if w, ok := s.Weights[categoryID]; ok {
		return w
	}
	return s.DefaultWeight
}

// Score returns round(100 * matchedWeight / totalWeight) over the active
// selections. A category the product has no value for contributes to
// neither side; a category the product mismatches contributes its full
// weight to the total and nothing to the matched side.
func (s *Scorer) Score(p *catalog.Product, st *State) int {
	if st == nil || len(st.Selections) == 0 {
		return 0
	}

	var totalWeight, matchedWeight float64

	for id, sel := range st.Selections {
		value := ResolveField(p, id)
		if value.IsZero() {
			continue
		}

		w := s.weight(id)
		totalWeight += w
		matchedWeight += w * credit(value, sel)
	}

	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(100 * matchedWeight / totalWeight))
}

// credit returns the fraction of a category's weight the product earns
func credit(value catalog.AttrValue, sel Selection) float64 {
	switch sel.Type {
	case SelectionEnum:
		if len(sel.Values) == 0 {
			return 0
		}
		values, ok := value.Strings()
		if !ok {
			return 0
		}
		if value.IsList() {
			// Partial credit for partial overlap.
			return float64(intersectionSize(values, sel.Values)) / float64(len(sel.Values))
		}
		if intersects(values, sel.Values) {
			return 1
		}
		return 0

	case SelectionRange:
		n, ok := value.Number()
		if !ok {
			return 0
		}
		// All or nothing; no partial credit for near misses.
		if n >= sel.Min && n <= sel.Max {
			return 1
		}
		return 0

	case SelectionBoolean:
		b, ok := value.Bool()
		if ok && b == sel.Flag {
			return 1
		}
		return 0
	}

	return 0
}
