package loader

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/pescuma/statscymru/lib/consoles"
	"github.com/pescuma/statscymru/lib/datasets"
	"github.com/pescuma/statscymru/lib/filters"
	"github.com/pescuma/statscymru/lib/importers"
	"github.com/pescuma/statscymru/lib/model"
	"github.com/pescuma/statscymru/lib/sources"
	"github.com/pescuma/statscymru/lib/utils"
)

// Loader runs a batch of dataset imports. Failures are isolated per
// source: a broken dataset is reported and the remaining ones still load.
type Loader struct {
	console consoles.Console
}

func New(console consoles.Console) *Loader {
	return &Loader{
		console: console,
	}
}

// Load imports the authority code list and then every requested dataset
// from dir, returning the number of sources that failed.
func (l *Loader) Load(dir string, ds []datasets.Dataset,
	areas *model.Areas, filter *filters.Set,
) int {
	all := append([]datasets.Dataset{datasets.Areas}, ds...)

	srcs := make([]sources.Source, len(all))
	for i, d := range all {
		srcs[i] = sources.NewFile(filepath.Join(dir, d.File))
	}

	return l.LoadSources(srcs, all, areas, filter)
}

// LoadSources imports each dataset from its paired source.
func (l *Loader) LoadSources(srcs []sources.Source, ds []datasets.Dataset,
	areas *model.Areas, filter *filters.Set,
) int {
	bar := utils.NewProgressBar(len(ds))

	failed := 0

	for i, d := range ds {
		bar.Describe(d.Code)

		err := l.LoadSource(srcs[i], d, areas, filter)
		if err != nil {
			failed++
			fmt.Fprintf(l.console.ErrorWriter(d.Code), "error importing dataset: %v\n", err)
		}

		_ = bar.Add(1)
	}

	l.console.Printf("Loaded %v area(s) from %v dataset(s)\n",
		humanize.Comma(int64(areas.Size())), len(ds)-failed)

	return failed
}

// LoadSource imports a single dataset. The stream is opened here and
// closed before returning; the importers only ever see a reader.
func (l *Loader) LoadSource(src sources.Source, d datasets.Dataset,
	areas *model.Areas, filter *filters.Set,
) error {
	r, err := src.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	return importers.Populate(r, d.Format, d.Cols, areas, filter)
}
