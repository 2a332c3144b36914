package session

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/minho-song/kitdex/internal/catalog"
	"github.com/minho-song/kitdex/internal/filter"
)

// Sort modes for the unfiltered catalog order. When any filter or query
// is active the results are ranked by match score instead; score ranking
// and these sort modes are never combined.
const (
	SortDefault = ""
	SortName    = "name"
	SortPrice   = "price"
	SortYear    = "year"
)

// ScoredProduct pairs a product with its match score for the current state
type ScoredProduct struct {
	Product *catalog.Product `json:"product"`
	Score   int              `json:"score"`
}

// Page is one page of filtered results
type Page struct {
	Items      []ScoredProduct `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

// Options controls result ordering and pagination
type Options struct {
	Sort    string
	Page    int
	PerPage int
}

// Session owns the filter state for one catalog browsing session. All
// state lives on the session itself; two sessions over the same catalog
// are fully independent.
type Session struct {
	mu sync.Mutex

	taxonomy *catalog.Taxonomy
	products []catalog.Product
	locale   string

	state   *filter.State
	matcher *filter.Matcher
	scorer  *filter.Scorer

	// Serialized form of the current state, refreshed on every mutation.
	queryString string

	debounce time.Duration
	pending  *time.Timer
}

// New creates a session over the given catalog
func New(tax *catalog.Taxonomy, products []catalog.Product, locale string, weights map[string]float64, debounce time.Duration) *Session {
	return &Session{
		taxonomy: tax,
		products: products,
		locale:   locale,
		state:    filter.NewState(),
		matcher:  filter.NewMatcher(tax, locale),
		scorer:   filter.NewScorer(weights),
		debounce: debounce,
	}
}

// SetQuery updates the free-text query
func (s *Session) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetQuery(q)
	s.refresh()
}

// SetEnum replaces an enum category's value list
func (s *Session) SetEnum(categoryID string, values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetEnum(categoryID, values)
	s.refresh()
}

// Toggle flips one enum value on or off
func (s *Session) Toggle(categoryID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Toggle(categoryID, value)
	s.refresh()
}

// SetRange replaces a range category's bounds
func (s *Session) SetRange(categoryID string, min, max float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetRange(categoryID, min, max)
	s.refresh()
}

// SetBool replaces a boolean category's flag
func (s *Session) SetBool(categoryID string, flag bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetBool(categoryID, flag)
	s.refresh()
}

// Reset clears all filters and the query
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset()
	s.refresh()
}

// Restore replaces the state from a serialized query string
func (s *Session) Restore(raw string) error {
	st, err := filter.Parse(raw, s.taxonomy)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	s.refresh()
	return nil
}

// refresh keeps the serialized representation in step with the state.
// Callers hold s.mu.
func (s *Session) refresh() {
	s.queryString = filter.Serialize(s.state)
}

// QueryString returns the shareable serialized form of the current state
func (s *Session) QueryString() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queryString
}

// State returns a copy of the current filter state
func (s *Session) State() *filter.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Results evaluates the current state over the catalog and returns one
// page. With an active filter or query, products are ranked by score
// descending; ties keep their catalog order (stable sort, no secondary
// key). Without filters the requested sort mode applies.
func (s *Session) Results(opts Options) Page {
	s.mu.Lock()
	st := s.state.Clone()
	s.mu.Unlock()

	matched := make([]ScoredProduct, 0, len(s.products))
	for i := range s.products {
		p := &s.products[i]
		if !s.matcher.Matches(p, st) {
			continue
		}
		matched = append(matched, ScoredProduct{Product: p})
	}

	if st.Active() {
		for i := range matched {
			matched[i].Score = s.scorer.Score(matched[i].Product, st)
		}
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Score > matched[j].Score
		})
	} else {
		sortProducts(matched, opts.Sort, s.locale)
	}

	return paginate(matched, opts.Page, opts.PerPage)
}

func sortProducts(items []ScoredProduct, mode, locale string) {
	switch mode {
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Product.Name(locale)) < strings.ToLower(items[j].Product.Name(locale))
		})
	case SortPrice:
		sort.SliceStable(items, func(i, j int) bool {
			return priceOf(items[i].Product) < priceOf(items[j].Product)
		})
	case SortYear:
		sort.SliceStable(items, func(i, j int) bool {
			return yearOf(items[i].Product) > yearOf(items[j].Product)
		})
	}
}

func priceOf(p *catalog.Product) float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

func yearOf(p *catalog.Product) int {
	if p.ReleaseYear == nil {
		return 0
	}
	return *p.ReleaseYear
}

func paginate(items []ScoredProduct, page, perPage int) Page {
	if perPage <= 0 {
		perPage = 12
	}
	if page <= 0 {
		page = 1
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// ScheduleRefilter runs fn after the debounce interval. A pending
// re-filter that has not fired yet is cancelled and replaced, so only
// the newest request ever runs (last-write-wins).
func (s *Session) ScheduleRefilter(opts Options, fn func(Page)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = time.AfterFunc(s.debounce, func() {
		fn(s.Results(opts))
	})
}

// Close cancels any pending re-filter
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}
