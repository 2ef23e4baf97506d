package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"

	"github.com/pescuma/statscymru/lib/utils"
)

// Measure is a single statistical indicator for an area, e.g. population
// density, with one value per year.
type Measure struct {
	codename string
	label    string
	values   map[int]float64
}

func NewMeasure(codename string, label string) *Measure {
	return &Measure{
		codename: strings.ToLower(codename),
		label:    label,
		values:   map[int]float64{},
	}
}

func (m *Measure) Codename() string {
	return m.codename
}

func (m *Measure) Label() string {
	return m.label
}

func (m *Measure) SetLabel(label string) {
	m.label = label
}

func (m *Measure) Value(year int) (float64, error) {
	v, ok := m.values[year]
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "no value for year %v", year)
	}

	return v, nil
}

func (m *Measure) SetValue(year int, value float64) {
	m.values[year] = value
}

// Values returns a snapshot of the recorded values. Mutating the result
// does not affect the Measure.
func (m *Measure) Values() map[int]float64 {
	return maps.Clone(m.values)
}

// Years returns the recorded years in ascending order.
func (m *Measure) Years() []int {
	result := lo.Keys(m.values)
	sort.Ints(result)
	return result
}

func (m *Measure) Size() int {
	return len(m.values)
}

func (m *Measure) Average() float64 {
	if len(m.values) == 0 {
		return 0
	}

	total := 0.
	for _, v := range m.values {
		total += v
	}

	return total / float64(len(m.values))
}

// Difference is the change in value from the earliest to the latest
// recorded year, or 0 if fewer than two years were recorded.
func (m *Measure) Difference() float64 {
	if len(m.values) < 2 {
		return 0
	}

	years := m.Years()

	return m.values[utils.Last(years)] - m.values[utils.First(years)]
}

// DifferenceAsPercentage is Difference as a percentage of the earliest
// year's value. A zero earliest value yields 0 instead of an error.
func (m *Measure) DifferenceAsPercentage() float64 {
	if len(m.values) < 2 {
		return 0
	}

	first := m.values[utils.First(m.Years())]
	if first == 0 {
		return 0
	}

	return m.Difference() / first * 100
}

// Merge folds from into m, with from taking precedence: the label is
// replaced and values win on year collisions. Nothing is ever removed.
func (m *Measure) Merge(from *Measure) {
	m.label = from.label

	for year, value := range from.values {
		m.values[year] = value
	}
}

func (m *Measure) Equals(o *Measure) bool {
	return m.codename == o.codename &&
		m.label == o.label &&
		maps.Equal(m.values, o.values)
}
