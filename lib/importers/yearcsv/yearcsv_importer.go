package yearcsv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/pescuma/statscymru/lib/datasets"
	"github.com/pescuma/statscymru/lib/filters"
	"github.com/pescuma/statscymru/lib/importers/common"
	"github.com/pescuma/statscymru/lib/model"
)

// Importer parses the wide single-measure CSVs: the header is the
// authority code column followed by one column per year, and each row is
// an authority code followed by that measure's value for each year. The
// measure code and label come from the column mapping, not from the file.
//
// A blank cell means there is no data for that year and is skipped; only
// non-blank cells that fail numeric parsing abort the import.
type Importer struct {
	cols datasets.ColumnMapping
}

func New(cols datasets.ColumnMapping) *Importer {
	return &Importer{
		cols: cols,
	}
}

func (i *Importer) Import(r io.Reader, areas *model.Areas, filter *filters.Set) error {
	if len(i.cols) != 3 {
		return errors.Wrapf(datasets.ErrColumnMismatch,
			"mapping declares %v columns, this format needs exactly 3", len(i.cols))
	}

	codeHeader, err := i.cols.Get(datasets.AuthCode)
	if err != nil {
		return err
	}

	measureCode, err := i.cols.Get(datasets.SingleMeasureCode)
	if err != nil {
		return err
	}

	measureName, err := i.cols.Get(datasets.SingleMeasureName)
	if err != nil {
		return err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return errors.Wrapf(common.ErrMalformed, "error reading header: %v", err)
	}

	if header[0] != codeHeader {
		return errors.Wrapf(common.ErrMalformed,
			"first header column is %q, expected %q", header[0], codeHeader)
	}

	years := make([]int, 0, len(header)-1)
	for _, text := range header[1:] {
		year, err := strconv.Atoi(text)
		if err != nil {
			return errors.Wrapf(common.ErrMalformed, "invalid year column %q", text)
		}

		years = append(years, year)
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(common.ErrMalformed, "error reading row: %v", err)
		}

		code := row[0]

		if !filter.MatchArea(code, areas.NamesOf(code)) {
			continue
		}

		area := model.NewArea(code)

		if filter.MatchMeasure(measureCode) {
			measure := model.NewMeasure(measureCode, measureName)

			for j, cell := range row[1:] {
				if j >= len(years) {
					return errors.Wrapf(common.ErrMalformed,
						"row for %v has more values than year columns", code)
				}

				if !filter.MatchYear(years[j]) {
					continue
				}

				if cell == "" {
					continue
				}

				value, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return errors.Wrapf(common.ErrMalformed, "invalid value %q for %v in %v", cell, code, years[j])
				}

				measure.SetValue(years[j], value)
			}

			area.SetMeasure(measureCode, measure)
		}

		areas.Set(code, area)
	}

	return nil
}
