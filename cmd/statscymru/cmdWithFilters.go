package main

import (
	"strings"

	"github.com/samber/lo"

	"github.com/pescuma/statscymru/lib/consoles"
	"github.com/pescuma/statscymru/lib/datasets"
	"github.com/pescuma/statscymru/lib/filters"
	"github.com/pescuma/statscymru/lib/loader"
	"github.com/pescuma/statscymru/lib/model"
)

type cmdWithFilters struct {
	Datasets []string `short:"d" help:"Datasets to import, as a comma-separated list of codes (omit or 'all' to import all)."`
	Areas    []string `short:"a" help:"Areas to import, as a comma-separated list of authority codes (omit or 'all' to import all)."`
	Measures []string `short:"m" help:"Measures to import, as a comma-separated list of codenames (omit or 'all' to import all)."`
	Years    string   `short:"y" default:"0" help:"A year (YYYY) or an inclusive range of years (YYYY-ZZZZ) to import."`
}

func (c *cmdWithFilters) createFilter() (*filters.Set, error) {
	years, err := filters.ParseYearRange(c.Years)
	if err != nil {
		return nil, err
	}

	return &filters.Set{
		Areas:    filters.ParseStringFilter(c.Areas),
		Measures: filters.ParseStringFilter(c.Measures),
		Years:    years,
	}, nil
}

func (c *cmdWithFilters) load(ctx *context) (*model.Areas, error) {
	filter, err := c.createFilter()
	if err != nil {
		return nil, err
	}

	codes := lo.FlatMap(c.Datasets, func(a string, _ int) []string {
		return strings.Split(a, ",")
	})

	ds, err := datasets.Find(ctx.registry, codes)
	if err != nil {
		return nil, err
	}

	areas := model.NewAreas()

	loader.New(consoles.NewStdOutConsole()).Load(ctx.dir, ds, areas, filter)

	return areas, nil
}
