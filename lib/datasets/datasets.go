package datasets

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Column identifies a semantic field of a record, independent of the
// literal header text a given source file uses for it.
type Column string

const (
	AuthCode          Column = "auth-code"
	AuthNameEng       Column = "auth-name-eng"
	AuthNameCym       Column = "auth-name-cym"
	MeasureCode       Column = "measure-code"
	MeasureName       Column = "measure-name"
	SingleMeasureCode Column = "single-measure-code"
	SingleMeasureName Column = "single-measure-name"
	Year              Column = "year"
	Value             Column = "value"
)

// ErrColumnMismatch signals that the declared column mapping does not
// match the structure actually present in a source: a required column is
// not mapped, or the mapping size disagrees with the file header.
var ErrColumnMismatch = errors.New("column mismatch")

// ColumnMapping associates semantic columns with the literal header text
// used by one source file. It is a plain lookup table: importers ask only
// for the columns their format needs.
type ColumnMapping map[Column]string

func (m ColumnMapping) Get(col Column) (string, error) {
	result, ok := m[col]
	if !ok {
		return "", errors.Wrapf(ErrColumnMismatch, "no mapping for column %v", col)
	}

	return result, nil
}

func (m ColumnMapping) Has(col Column) bool {
	_, ok := m[col]
	return ok
}

// Format discriminates the three supported source file structures.
type Format string

const (
	AuthorityCodeCSV   Format = "authority-code-csv"
	StatsJSON          Format = "stats-json"
	AuthorityByYearCSV Format = "authority-by-year-csv"
)

// Dataset describes one loadable source: where it lives, how it is
// structured and how its columns map to the model.
type Dataset struct {
	Code   string        `yaml:"code"`
	Name   string        `yaml:"name"`
	File   string        `yaml:"file"`
	Format Format        `yaml:"format"`
	Cols   ColumnMapping `yaml:"columns"`
}

// Find resolves the requested dataset codes against a registry. No codes,
// or any code equal to "all" (case-insensitive), selects every dataset.
// An unknown code is an error naming it.
func Find(registry []Dataset, codes []string) ([]Dataset, error) {
	if len(codes) == 0 {
		return registry, nil
	}

	lower := lo.Map(codes, func(c string, _ int) string { return strings.ToLower(c) })

	if lo.Contains(lower, "all") {
		return registry, nil
	}

	var result []Dataset

	for _, code := range lower {
		ds, ok := lo.Find(registry, func(d Dataset) bool { return d.Code == code })
		if !ok {
			return nil, errors.Errorf("no dataset matches key: %v", code)
		}

		result = append(result, ds)
	}

	return result, nil
}
