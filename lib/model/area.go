package model

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

var languageCode = regexp.MustCompile(`^[a-zA-Z]{3}$`)

// Area is a geographic administrative area: a local authority code, names
// in one or more languages, and the measures recorded for it.
//
// Language codes and measure codenames are lowercased before being used as
// keys, and lookups lowercase their input the same way. The authority code
// is kept exactly as the source gave it.
type Area struct {
	code     string
	names    map[string]string
	measures map[string]*Measure
}

func NewArea(code string) *Area {
	return &Area{
		code:     code,
		names:    map[string]string{},
		measures: map[string]*Measure{},
	}
}

func (a *Area) Code() string {
	return a.code
}

func (a *Area) Name(lang string) (string, error) {
	name, ok := a.names[strings.ToLower(lang)]
	if !ok {
		return "", errors.Wrapf(ErrNotFound, "area %v has no name in language %v", a.code, lang)
	}

	return name, nil
}

// Names returns a snapshot of the names, keyed by language code.
func (a *Area) Names() map[string]string {
	return maps.Clone(a.names)
}

// SetName records the name of the area in the given language. The language
// code must be exactly three alphabetic letters (ISO 639-3, e.g. eng or
// cym); an invalid code leaves the area untouched.
func (a *Area) SetName(lang string, name string) error {
	if !languageCode.MatchString(lang) {
		return errors.Wrapf(ErrInvalidLanguageCode, "invalid language code %q", lang)
	}

	a.names[strings.ToLower(lang)] = name

	return nil
}

func (a *Area) Measure(codename string) (*Measure, error) {
	result, ok := a.measures[strings.ToLower(codename)]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "area %v has no measure %v", a.code, codename)
	}

	return result, nil
}

// Measures returns a snapshot of the measures, keyed by codename.
func (a *Area) Measures() map[string]*Measure {
	return maps.Clone(a.measures)
}

// SetMeasure adds a measure, merging into an existing one with the same
// codename. The incoming measure takes precedence.
func (a *Area) SetMeasure(codename string, measure *Measure) {
	codename = strings.ToLower(codename)

	existing, ok := a.measures[codename]
	if ok {
		existing.Merge(measure)
	} else {
		a.measures[codename] = measure
	}
}

func (a *Area) Size() int {
	return len(a.measures)
}

// Merge folds from into a, with from taking precedence on names and
// measure data that both have. Nothing is ever removed.
func (a *Area) Merge(from *Area) {
	for lang, name := range from.names {
		a.names[lang] = name
	}

	for codename, measure := range from.measures {
		a.SetMeasure(codename, measure)
	}
}

func (a *Area) Equals(o *Area) bool {
	if a.code != o.code || !maps.Equal(a.names, o.names) {
		return false
	}

	if len(a.measures) != len(o.measures) {
		return false
	}

	for codename, measure := range a.measures {
		other, ok := o.measures[codename]
		if !ok || !measure.Equals(other) {
			return false
		}
	}

	return true
}
