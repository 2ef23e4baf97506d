package authcsv

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/pescuma/statscymru/lib/datasets"
	"github.com/pescuma/statscymru/lib/filters"
	"github.com/pescuma/statscymru/lib/importers/common"
	"github.com/pescuma/statscymru/lib/model"
)

// Importer parses the local authority code list: a CSV with one header row
// and then one row per area holding its code, English name and Welsh name.
type Importer struct {
	cols datasets.ColumnMapping
}

func New(cols datasets.ColumnMapping) *Importer {
	return &Importer{
		cols: cols,
	}
}

func (i *Importer) Import(r io.Reader, areas *model.Areas, filter *filters.Set) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return errors.Wrapf(common.ErrMalformed, "error reading header: %v", err)
	}

	if len(header) != len(i.cols) {
		return errors.Wrapf(datasets.ErrColumnMismatch,
			"header has %v columns but the mapping declares %v", len(header), len(i.cols))
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(common.ErrMalformed, "error reading row: %v", err)
		}

		if len(row) < 3 {
			return errors.Wrapf(common.ErrMalformed, "row has only %v fields", len(row))
		}

		code := row[0]
		eng := row[1]
		cym := row[2]

		if !filter.MatchArea(code, []string{eng, cym}) {
			continue
		}

		area := model.NewArea(code)

		err = area.SetName("eng", eng)
		if err != nil {
			return err
		}

		err = area.SetName("cym", cym)
		if err != nil {
			return err
		}

		areas.Set(code, area)
	}

	return nil
}
