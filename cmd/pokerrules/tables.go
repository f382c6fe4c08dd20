package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerrules/internal/display"
	"github.com/lox/pokerrules/internal/evaluator"
)

// TablesCmd builds every hand ranking table.
type TablesCmd struct{}

func (c *TablesCmd) Run(globals *Globals) error {
	counts := make([]int, len(evaluator.Families))

	var g errgroup.Group
	for i, f := range evaluator.Families {
		g.Go(func() error {
			counts[i] = evaluator.IndexCount(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rows := make([][]string, len(counts))
	for i, f := range evaluator.Families {
		rows[i] = []string{f.String(), strconv.Itoa(counts[i])}
	}
	r := display.NewRenderer(os.Stdout, globals.NoColor)
	fmt.Print(r.Table([]string{"FAMILY", "CLASSES"}, rows))
	return nil
}
