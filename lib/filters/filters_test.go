package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringFilterEmptyMatchesEverything(t *testing.T) {
	t.Parallel()

	var nilFilter *StringFilter
	assert.True(t, nilFilter.Match("W06000015"))
	assert.True(t, nilFilter.MatchEnhanced("W06000015", nil))

	empty := NewStringFilter()
	assert.True(t, empty.Match("anything"))
}

func TestStringFilterExactMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	f := NewStringFilter("W06000015")

	assert.True(t, f.Match("w06000015"))
	assert.True(t, f.Match("W06000015"))
	assert.False(t, f.Match("W06000016"))
}

func TestStringFilterPlainMatchIgnoresSubstrings(t *testing.T) {
	t.Parallel()

	f := NewStringFilter("rail")

	assert.False(t, f.Match("railways"))
	assert.True(t, f.MatchEnhanced("railways", nil))
}

func TestStringFilterEnhancedMatchesNames(t *testing.T) {
	t.Parallel()

	f := NewStringFilter("wales")

	assert.True(t, f.MatchEnhanced("W06000015", []string{"Vale of Wales"}))
	assert.False(t, f.MatchEnhanced("W06000015", []string{"England"}))
}

func TestYearRangeNilMatchesEverything(t *testing.T) {
	t.Parallel()

	var r *YearRange

	assert.True(t, r.Match(0))
	assert.True(t, r.Match(2010))
}

func TestYearRangeSentinelMatchesEverything(t *testing.T) {
	t.Parallel()

	r := NewYearRange(0, 0)

	assert.True(t, r.Match(0))
	assert.True(t, r.Match(1999))
	assert.True(t, r.Match(2100))
}

func TestYearRangeIsInclusive(t *testing.T) {
	t.Parallel()

	r := NewYearRange(2010, 2012)

	assert.False(t, r.Match(2009))
	assert.True(t, r.Match(2010))
	assert.True(t, r.Match(2011))
	assert.True(t, r.Match(2012))
	assert.False(t, r.Match(2013))
}

func TestSetNilMatchesEverything(t *testing.T) {
	t.Parallel()

	var s *Set

	assert.True(t, s.MatchArea("W06000015", nil))
	assert.True(t, s.MatchMeasure("dens"))
	assert.True(t, s.MatchYear(2010))
}

func TestSetAreaUsesEnhancedMatching(t *testing.T) {
	t.Parallel()

	s := &Set{
		Areas: NewStringFilter("cardiff"),
	}

	assert.True(t, s.MatchArea("W06000015", []string{"Cardiff", "Caerdydd"}))
	assert.False(t, s.MatchArea("W06000011", []string{"Swansea", "Abertawe"}))
}

func TestSetMeasureUsesPlainMatching(t *testing.T) {
	t.Parallel()

	s := &Set{
		Measures: NewStringFilter("rail"),
	}

	assert.True(t, s.MatchMeasure("rail"))
	assert.True(t, s.MatchMeasure("RAIL"))
	assert.False(t, s.MatchMeasure("railways"))
}
