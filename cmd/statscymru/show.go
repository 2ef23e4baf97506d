package main

import (
	"os"

	"github.com/pescuma/statscymru/lib/render"
)

type ShowCmd struct {
	cmdWithFilters
}

func (c *ShowCmd) Run(ctx *context) error {
	areas, err := c.load(ctx)
	if err != nil {
		return err
	}

	return render.WriteText(os.Stdout, areas)
}
