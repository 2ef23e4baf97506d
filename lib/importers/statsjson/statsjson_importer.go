package statsjson

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/pescuma/statscymru/lib/datasets"
	"github.com/pescuma/statscymru/lib/filters"
	"github.com/pescuma/statscymru/lib/importers/common"
	"github.com/pescuma/statscymru/lib/model"
)

// recordsPath is the top-level key holding the list of records in a
// StatsWales download.
const recordsPath = "value"

// Importer parses StatsWales JSON: a single document whose "value" key
// holds a list of flat records. Depending on the dataset, the measure is
// either encoded per record or fixed for the whole file, in which case the
// column mapping supplies its code and label.
type Importer struct {
	cols datasets.ColumnMapping
}

func New(cols datasets.ColumnMapping) *Importer {
	return &Importer{
		cols: cols,
	}
}

func (i *Importer) Import(r io.Reader, areas *model.Areas, filter *filters.Set) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(common.ErrMalformed, "error reading stream: %v", err)
	}

	if !gjson.ValidBytes(content) {
		return errors.Wrapf(common.ErrMalformed, "invalid JSON document")
	}

	codeCol, err := i.cols.Get(datasets.AuthCode)
	if err != nil {
		return err
	}

	nameCol, err := i.cols.Get(datasets.AuthNameEng)
	if err != nil {
		return err
	}

	yearCol, err := i.cols.Get(datasets.Year)
	if err != nil {
		return err
	}

	valueCol, err := i.cols.Get(datasets.Value)
	if err != nil {
		return err
	}

	for _, record := range gjson.GetBytes(content, recordsPath).Array() {
		err = i.importRecord(record, codeCol, nameCol, yearCol, valueCol, areas, filter)
		if err != nil {
			return err
		}
	}

	return nil
}

func (i *Importer) importRecord(record gjson.Result,
	codeCol, nameCol, yearCol, valueCol string,
	areas *model.Areas, filter *filters.Set,
) error {
	code, err := field(record, codeCol)
	if err != nil {
		return err
	}

	name, err := field(record, nameCol)
	if err != nil {
		return err
	}

	measureCode, measureName, err := i.measureOf(record)
	if err != nil {
		return err
	}

	yearText, err := field(record, yearCol)
	if err != nil {
		return err
	}

	year, err := strconv.Atoi(strings.TrimSpace(yearText))
	if err != nil {
		return errors.Wrapf(common.ErrMalformed, "invalid year %q", yearText)
	}

	value, err := numericField(record, valueCol)
	if err != nil {
		return err
	}

	// A name recorded by an earlier load can still match the filter, even
	// if this dataset spells the area differently.
	names := append(areas.NamesOf(code), name)

	if !filter.MatchArea(code, names) {
		return nil
	}

	area := model.NewArea(code)

	err = area.SetName("eng", name)
	if err != nil {
		return err
	}

	if filter.MatchMeasure(measureCode) {
		measure := model.NewMeasure(measureCode, measureName)

		// A year outside the range still leaves the measure shell in
		// place, so later loads have somewhere to merge into.
		if filter.MatchYear(year) {
			measure.SetValue(year, value)
		}

		area.SetMeasure(measureCode, measure)
	}

	areas.Set(code, area)

	return nil
}

func (i *Importer) measureOf(record gjson.Result) (string, string, error) {
	if i.cols.Has(datasets.MeasureCode) {
		codeCol, err := i.cols.Get(datasets.MeasureCode)
		if err != nil {
			return "", "", err
		}

		nameCol, err := i.cols.Get(datasets.MeasureName)
		if err != nil {
			return "", "", err
		}

		code, err := field(record, codeCol)
		if err != nil {
			return "", "", err
		}

		name, err := field(record, nameCol)
		if err != nil {
			return "", "", err
		}

		return code, name, nil
	}

	code, err := i.cols.Get(datasets.SingleMeasureCode)
	if err != nil {
		return "", "", err
	}

	name, err := i.cols.Get(datasets.SingleMeasureName)
	if err != nil {
		return "", "", err
	}

	return code, name, nil
}

func field(record gjson.Result, name string) (string, error) {
	result := record.Get(name)
	if !result.Exists() {
		return "", errors.Wrapf(common.ErrMalformed, "record has no field %v", name)
	}

	return result.String(), nil
}

// numericField accepts both native JSON numbers and numeric strings, as
// StatsWales mixes the two encodings.
func numericField(record gjson.Result, name string) (float64, error) {
	result := record.Get(name)

	switch result.Type {
	case gjson.Number:
		return result.Float(), nil

	case gjson.String:
		value, err := strconv.ParseFloat(strings.TrimSpace(result.Str), 64)
		if err != nil {
			return 0, errors.Wrapf(common.ErrMalformed, "invalid numeric value %q", result.Str)
		}
		return value, nil

	default:
		return 0, errors.Wrapf(common.ErrMalformed, "field %v is not a number", name)
	}
}
