package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lox/pokerrules/internal/catalog"
	"github.com/lox/pokerrules/internal/command"
	"github.com/lox/pokerrules/internal/display"
	"github.com/lox/pokerrules/internal/fileutil"
	"github.com/lox/pokerrules/internal/game"
	"github.com/lox/pokerrules/internal/randutil"
)

// PlayCmd applies commands to a fresh game. Reading from standard input is
// interactive: rejected commands are reported and play continues.
type PlayCmd struct {
	Variant string `arg:"" help:"Variant code, see 'variants'"`
	Script  string `arg:"" optional:"" default:"-" help:"Command script, '-' for standard input"`
	Players int    `short:"n" default:"2" help:"Number of players"`
	Stacks  []int  `help:"Starting stacks, one per player (catalog default otherwise)"`
	Seed    *int64 `help:"Deterministic RNG seed for random deals (optional)"`
	Viewer  int    `default:"-1" help:"Seat whose hole cards are shown, -1 for public cards only"`
	Trace   bool   `help:"Print the table after every command"`
	Save    string `type:"path" help:"Write the resolved command history to this file"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	logger := setupLogger(globals.Debug)

	cat, err := catalog.Load(globals.Catalog)
	if err != nil {
		return err
	}
	vc, err := cat.Lookup(c.Variant)
	if err != nil {
		return err
	}
	variant, limit, err := vc.Build()
	if err != nil {
		return err
	}

	stacks := c.Stacks
	if len(stacks) == 0 {
		stacks = vc.Stacks(c.Players)
	}
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Debug("starting game", "variant", vc.Code, "seed", seed, "stacks", stacks)

	opts := append([]game.Option{game.WithRNG(randutil.New(seed)), game.WithLogger(logger)}, vc.Options()...)
	g, err := game.New(limit, variant, vc.Ante, vc.ForcedBetsFor(len(stacks)), stacks, opts...)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	interactive := c.Script == "-"
	if !interactive {
		f, err := os.Open(c.Script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	r := display.NewRenderer(os.Stdout, globals.NoColor)
	if err := c.play(g, in, r, interactive); err != nil {
		return err
	}

	fmt.Println(r.Game(g, c.Viewer))
	fmt.Println(strings.Join(g.History(), "\n"))
	if c.Save != "" {
		if err := fileutil.WriteLines(c.Save, g.History()); err != nil {
			return err
		}
		logger.Info("history saved", "path", c.Save)
	}
	return nil
}

func (c *PlayCmd) play(g *game.Game, in io.Reader, r *display.Renderer, interactive bool) error {
	if interactive {
		fmt.Println(r.Game(g, c.Viewer))
	}
	scanner := bufio.NewScanner(in)
	for n := 1; !g.IsTerminal(); n++ {
		if interactive {
			fmt.Print(r.Prompt())
		}
		if !scanner.Scan() {
			break
		}
		if err := command.Run(g, scanner.Text()); err != nil {
			if !interactive {
				return fmt.Errorf("line %d: %w", n, err)
			}
			fmt.Println(r.Error(err))
			continue
		}
		if interactive || c.Trace {
			fmt.Println(r.Game(g, c.Viewer))
		}
	}
	return scanner.Err()
}
