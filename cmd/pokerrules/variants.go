package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/pokerrules/internal/catalog"
	"github.com/lox/pokerrules/internal/display"
	"github.com/lox/pokerrules/internal/evaluator"
)

// VariantsCmd lists the catalog.
type VariantsCmd struct {
	Evaluators bool `help:"List the available evaluator names instead"`
}

func (c *VariantsCmd) Run(globals *Globals) error {
	r := display.NewRenderer(os.Stdout, globals.NoColor)

	if c.Evaluators {
		var rows [][]string
		for _, name := range evaluator.Names() {
			rows = append(rows, []string{name})
		}
		fmt.Print(r.Table([]string{"EVALUATOR"}, rows))
		return nil
	}

	cat, err := catalog.Load(globals.Catalog)
	if err != nil {
		return err
	}
	var rows [][]string
	for _, code := range cat.Codes() {
		vc, err := cat.Lookup(code)
		if err != nil {
			return err
		}
		rows = append(rows, []string{vc.Code, vc.Name, vc.Limit, strings.Join(vc.Evaluators, ","), fmt.Sprint(len(vc.Stages))})
	}
	fmt.Print(r.Table([]string{"CODE", "NAME", "LIMIT", "EVALUATORS", "STAGES"}, rows))
	return nil
}
