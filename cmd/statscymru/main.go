package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/statscymru/lib/datasets"
)

var cli struct {
	Dir      string `help:"Directory containing the source data files." default:"datasets" type:"path"`
	Registry string `help:"YAML file declaring the datasets to use instead of the built-in registry." type:"path"`

	Show   ShowCmd   `cmd:"" default:"withargs" help:"Load the datasets and print them as tables."`
	Export ExportCmd `cmd:"" help:"Load the datasets and print them as JSON."`
}

type context struct {
	dir      string
	registry []datasets.Dataset
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	registry, err := datasets.LoadRegistry(cli.Registry)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		dir:      cli.Dir,
		registry: registry,
	})
	ctx.FatalIfErrorf(err)
}
