package session

import (
	"strings"

	"github.com/minho-song/kitdex/internal/filter"
)

// Suggest returns up to limit display names whose name contains the
// prefix. This is deliberately a separate matching path from the main
// predicate: suggestions only look at names (plain substring, or the
// choseong path for leading-consonant input), never at ids, model
// numbers, or category selections.
func (s *Session) Suggest(prefix string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(prefix))
	if q == "" || limit <= 0 {
		return nil
	}

	choseong := filter.IsChoseongQuery(q)

	var out []string
	for i := range s.products {
		p := &s.products[i]

		var hit bool
		if choseong {
			hit = filter.MatchesChoseong(p.Name("ko"), q)
		} else {
			hit = strings.Contains(strings.ToLower(p.Name(s.locale)), q)
		}

		if hit {
			out = append(out, p.Name(s.locale))
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
