package filters

import (
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// StringFilter is an optional set of case-insensitive tokens used to
// select areas or measures. A nil filter, or one with no tokens, matches
// everything.
type StringFilter struct {
	tokens *set.Set[string]
}

func NewStringFilter(tokens ...string) *StringFilter {
	result := &StringFilter{
		tokens: set.New[string](len(tokens)),
	}

	for _, t := range tokens {
		result.tokens.Insert(strings.ToLower(t))
	}

	return result
}

func (f *StringFilter) Empty() bool {
	return f == nil || f.tokens.Empty()
}

// Match reports whether any token equals the lowercased candidate.
func (f *StringFilter) Match(candidate string) bool {
	return f.match(candidate, false, nil)
}

// MatchEnhanced also accepts a token that is a substring of the candidate
// or of any of the alternate names. Area filters use this so a token can
// match on an authority code or on any known name of the area.
func (f *StringFilter) MatchEnhanced(candidate string, names []string) bool {
	return f.match(candidate, true, names)
}

func (f *StringFilter) match(candidate string, enhanced bool, names []string) bool {
	if f.Empty() {
		return true
	}

	candidate = strings.ToLower(candidate)

	for _, token := range f.tokens.Slice() {
		if token == candidate {
			return true
		}

		if !enhanced {
			continue
		}

		if strings.Contains(candidate, token) {
			return true
		}

		for _, name := range names {
			if strings.Contains(strings.ToLower(name), token) {
				return true
			}
		}
	}

	return false
}

// YearRange is an optional inclusive range of years. A nil range, or the
// sentinel (0, 0), matches every year.
type YearRange struct {
	Min int
	Max int
}

func NewYearRange(min, max int) *YearRange {
	return &YearRange{Min: min, Max: max}
}

func (r *YearRange) Match(year int) bool {
	if r == nil || (r.Min == 0 && r.Max == 0) {
		return true
	}

	return year >= r.Min && year <= r.Max
}

// Set carries the three optional filters applied during import. A nil Set
// matches everything.
type Set struct {
	Areas    *StringFilter
	Measures *StringFilter
	Years    *YearRange
}

func (s *Set) MatchArea(code string, names []string) bool {
	if s == nil {
		return true
	}

	return s.Areas.MatchEnhanced(code, names)
}

func (s *Set) MatchMeasure(codename string) bool {
	if s == nil {
		return true
	}

	return s.Measures.Match(codename)
}

func (s *Set) MatchYear(year int) bool {
	if s == nil {
		return true
	}

	return s.Years.Match(year)
}
