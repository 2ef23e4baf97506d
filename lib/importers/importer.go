package importers

import (
	"io"

	"github.com/pkg/errors"

	"github.com/pescuma/statscymru/lib/datasets"
	"github.com/pescuma/statscymru/lib/filters"
	"github.com/pescuma/statscymru/lib/importers/authcsv"
	"github.com/pescuma/statscymru/lib/importers/common"
	"github.com/pescuma/statscymru/lib/importers/statsjson"
	"github.com/pescuma/statscymru/lib/importers/yearcsv"
	"github.com/pescuma/statscymru/lib/model"
)

// Importer parses one source format into the shared container, applying
// the filters record by record.
type Importer interface {
	Import(r io.Reader, areas *model.Areas, filter *filters.Set) error
}

func ForFormat(format datasets.Format, cols datasets.ColumnMapping) (Importer, error) {
	switch format {
	case datasets.AuthorityCodeCSV:
		return authcsv.New(cols), nil

	case datasets.StatsJSON:
		return statsjson.New(cols), nil

	case datasets.AuthorityByYearCSV:
		return yearcsv.New(cols), nil

	default:
		return nil, errors.Errorf("unexpected source format: %v", format)
	}
}

// Populate reads one source into areas. The stream is prechecked before
// any parsing: a nil or empty stream fails with common.ErrNotReadable.
// Any failure aborts this source's import without leaving a partially
// merged record behind.
func Populate(r io.Reader, format datasets.Format, cols datasets.ColumnMapping,
	areas *model.Areas, filter *filters.Set,
) error {
	imp, err := ForFormat(format, cols)
	if err != nil {
		return err
	}

	br, err := common.Precheck(r)
	if err != nil {
		return err
	}

	return imp.Import(br, areas, filter)
}
