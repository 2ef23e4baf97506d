package main

import (
	"fmt"

	"github.com/pescuma/statscymru/lib/render"
)

type ExportCmd struct {
	cmdWithFilters
}

func (c *ExportCmd) Run(ctx *context) error {
	areas, err := c.load(ctx)
	if err != nil {
		return err
	}

	marshaled, err := render.JSON(areas)
	if err != nil {
		return err
	}

	fmt.Println(marshaled)

	return nil
}
