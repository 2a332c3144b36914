package filter

import (
	"testing"

	"github.com/minho-song/kitdex/internal/catalog"
)

func TestScorer_EmptyStateScoresZero(t *testing.T) {
	s := NewScorer(nil)

	if got := s.Score(testProduct(), NewState()); got != 0 {
		t.Errorf("Score(empty state) = %d, want 0", got)
	}
	if got := s.Score(testProduct(), nil); got != 0 {
		t.Errorf("Score(nil state) = %d, want 0", got)
	}
}

func TestScorer_FullAndPartialMatch(t *testing.T) {
	// difficulty weight 3, mobility weight 2.5 from the default table.
	s := NewScorer(nil)

	st := NewState()
	st.SetEnum("difficulty", []string{"beginner"})
	st.SetRange("mobility", 3, 5)

	productA := &catalog.Product{
		ID: "a",
		FilterData: map[string]catalog.AttrValue{
			"difficulty": catalog.StringValue("beginner"),
			"mobility":   catalog.NumberValue(4),
		},
	}
	productB := &catalog.Product{
		ID: "b",
		FilterData: map[string]catalog.AttrValue{
			"difficulty": catalog.StringValue("advanced"),
			"mobility":   catalog.NumberValue(4),
		},
	}

	if got := s.Score(productA, st); got != 100 {
		t.Errorf("Score(productA) = %d, want 100", got)
	}
	// matched 2.5 of 5.5 -> round(45.45) = 45
	if got := s.Score(productB, st); got != 45 {
		t.Errorf("Score(productB) = %d, want 45", got)
	}
}

func TestScorer_PartialOverlapCredit(t *testing.T) {
	s := NewScorer(map[string]float64{"weaponCount": 1.0})

	st := NewState()
	st.SetEnum("weaponCount", []string{"standard", "few"})

	p := &catalog.Product{
		ID: "p",
		FilterData: map[string]catalog.AttrValue{
			"weaponCount": catalog.ListValue("many", "standard"),
		},
	}

	// Intersection size 1 over selection size 2: half the weight, and
	// weaponCount is the only active category, so the score is 50.
	if got := s.Score(p, st); got != 50 {
		t.Errorf("Score = %d, want 50", got)
	}
}

func TestScorer_MissingValueSkipsCategory(t *testing.T) {
	s := NewScorer(nil)

	st := NewState()
	st.SetEnum("difficulty", []string{"beginner"})
	st.SetRange("mobility", 3, 5)

	// No mobility value: the category contributes to neither side, so
	// the difficulty match alone still scores 100.
	p := &catalog.Product{
		ID: "p",
		FilterData: map[string]catalog.AttrValue{
			"difficulty": catalog.StringValue("beginner"),
		},
	}
	if got := s.Score(p, st); got != 100 {
		t.Errorf("Score = %d, want 100 (missing category skipped, not penalized)", got)
	}

	// No values at all: totalWeight stays 0 and the score is 0.
	empty := &catalog.Product{ID: "empty"}
	if got := s.Score(empty, st); got != 0 {
		t.Errorf("Score = %d, want 0 when no active category applies", got)
	}
}

func TestScorer_BooleanCredit(t *testing.T) {
	s := NewScorer(map[string]float64{"ledUnit": 1.0})

	st := NewState()
	st.SetBool("ledUnit", true)

	withLED := &catalog.Product{
		ID:         "led",
		FilterData: map[string]catalog.AttrValue{"ledUnit": catalog.BoolValue(true)},
	}
	withoutLED := &catalog.Product{
		ID:         "noled",
		FilterData: map[string]catalog.AttrValue{"ledUnit": catalog.BoolValue(false)},
	}

	if got := s.Score(withLED, st); got != 100 {
		t.Errorf("Score(withLED) = %d, want 100", got)
	}
	if got := s.Score(withoutLED, st); got != 0 {
		t.Errorf("Score(withoutLED) = %d, want 0", got)
	}
}

func TestScorer_WeightOverrides(t *testing.T) {
	s := NewScorer(map[string]float64{"difficulty": 1.0, "mobility": 1.0})

	st := NewState()
	st.SetEnum("difficulty", []string{"beginner"})
	st.SetRange("mobility", 3, 5)

	p := &catalog.Product{
		ID: "p",
		FilterData: map[string]catalog.AttrValue{
			"difficulty": catalog.StringValue("advanced"),
			"mobility":   catalog.NumberValue(4),
		},
	}

	// Equal weights: one of two categories matched.
	if got := s.Score(p, st); got != 50 {
		t.Errorf("Score = %d, want 50 with equal weights", got)
	}
}
