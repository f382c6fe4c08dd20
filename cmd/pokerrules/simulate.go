package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/pokerrules/internal/catalog"
	"github.com/lox/pokerrules/internal/simulator"
)

// SimulateCmd plays random games concurrently.
type SimulateCmd struct {
	Variant  string        `arg:"" help:"Variant code, see 'variants'"`
	Games    int           `default:"10000" help:"Number of games to simulate"`
	Players  int           `short:"n" default:"6" help:"Number of players"`
	Workers  int           `short:"w" help:"Concurrent workers (defaults to the number of CPUs)"`
	Seed     *int64        `help:"Deterministic RNG seed (optional)"`
	Policies []string      `default:"random" help:"Seat policies, cycled over the seats: random, call, maniac"`
	Timeout  time.Duration `default:"5s" help:"Time budget per game"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	logger := setupLogger(globals.Debug)
	ctx := setupSignalHandler(logger)

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

	var policies []simulator.Policy
	for _, name := range c.Policies {
		p, err := simulator.PolicyByName(name)
		if err != nil {
			return err
		}
		policies = append(policies, p)
	}

	clock := quartz.NewReal()
	seed := clock.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Info("Starting simulation", "variant", vc.Code, "games", c.Games, "players", c.Players, "workers", workers, "seed", seed)

	sim := simulator.New(simulator.Config{
		Variant:    variant,
		Limit:      limit,
		Ante:       vc.Ante,
		ForcedBets: vc.ForcedBetsFor(c.Players),
		Stacks:     vc.Stacks(c.Players),
		Options:    vc.Options(),
		Games:      c.Games,
		Workers:    workers,
		Seed:       seed,
		Policies:   policies,
		Timeout:    c.Timeout,
		Logger:     logger,
		Clock:      clock,
	})
	result, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	simulator.PrintSummary(os.Stdout, result, fmt.Sprintf("%s %v", vc.Code, c.Policies))
	return nil
}
