package model

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Areas is the top level container, holding every Area keyed by local
// authority code.
type Areas struct {
	areas map[string]*Area
}

func NewAreas() *Areas {
	return &Areas{
		areas: map[string]*Area{},
	}
}

func (as *Areas) Size() int {
	return len(as.areas)
}

func (as *Areas) Get(code string) (*Area, error) {
	result, ok := as.areas[code]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "no area with code %v", code)
	}

	return result, nil
}

// Set adds an area, merging into an existing one with the same authority
// code. The incoming area takes precedence.
func (as *Areas) Set(code string, area *Area) {
	existing, ok := as.areas[code]
	if ok {
		existing.Merge(area)
	} else {
		as.areas[code] = area
	}
}

// Codes returns every authority code in ascending order. This is the
// canonical iteration order for export and render.
func (as *Areas) Codes() []string {
	result := lo.Keys(as.areas)
	sort.Strings(result)
	return result
}

// List returns the areas ordered by authority code.
func (as *Areas) List() []*Area {
	return lo.Map(as.Codes(), func(code string, _ int) *Area {
		return as.areas[code]
	})
}

// NamesOf returns all recorded names of an area, in any language, or nil
// if the area does not exist. Importers use these as the auxiliary strings
// for enhanced area filtering.
func (as *Areas) NamesOf(code string) []string {
	area, ok := as.areas[code]
	if !ok {
		return nil
	}

	return lo.Values(area.names)
}
