// Package simulator plays many games with scripted policies, checking the
// engine's invariants after every action.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerrules/internal/game"
	"github.com/lox/pokerrules/internal/gameid"
	"github.com/lox/pokerrules/internal/randutil"
	"github.com/lox/pokerrules/internal/statistics"
)

// ErrStalled is returned when a game does not finish within its action or
// time budget.
var ErrStalled = errors.New("game stalled")

const defaultMaxActions = 10_000

// Config holds configuration for running simulations.
type Config struct {
	Variant    game.Variant
	Limit      game.Limit
	Ante       int
	ForcedBets []int
	Stacks     []int
	Options    []game.Option

	Games      int
	Workers    int
	Seed       int64
	Policies   []Policy // cycled over the seats; random play when empty
	Timeout    time.Duration
	MaxActions int

	Logger *log.Logger
	Clock  quartz.Clock
}

// Result is the outcome of a simulation run.
type Result struct {
	Stats   *statistics.Statistics
	Elapsed time.Duration
}

// Simulator runs game simulations.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.MaxActions <= 0 {
		config.MaxActions = defaultMaxActions
	}
	if len(config.Policies) == 0 {
		config.Policies = []Policy{RandomPolicy{}}
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run plays every game, spreading them over the configured workers, and
// returns the merged statistics. The first failing game stops the run.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}
	start := s.config.Clock.Now()

	workers := min(s.config.Workers, s.config.Games)
	partial := make([]*statistics.Statistics, workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for w := range workers {
		partial[w] = &statistics.Statistics{}
		g.Go(func() error {
			for n := w; n < s.config.Games; n += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.Play(n)
				if err != nil {
					return err
				}
				partial[w].Add(result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, p := range partial {
		stats.Merge(p)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Since(start)
	s.config.Logger.Info("simulation complete", "games", stats.Games, "actions", stats.Actions, "elapsed", elapsed)
	return &Result{Stats: stats, Elapsed: elapsed}, nil
}

// Play runs game n of the simulation to completion. An engine invariant
// failure is returned as an error carrying the game's seed and history.
func (s *Simulator) Play(n int) (result statistics.GameResult, err error) {
	seed := randutil.Derive(s.config.Seed, n)
	rng := randutil.New(seed)
	id := gameid.NewGenerator(s.config.Clock, rng).Generate()
	logger := s.config.Logger.With("game", id, "seed", seed)

	opts := append([]game.Option{game.WithRNG(rng), game.WithLogger(logger)}, s.config.Options...)
	g, err := game.New(s.config.Limit, s.config.Variant, s.config.Ante, s.config.ForcedBets, s.config.Stacks, opts...)
	if err != nil {
		return result, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game %s (seed %d) panicked: %v; history %v", id, seed, r, g.History())
		}
	}()

	start := s.config.Clock.Now()
	actions := 0
	for !g.IsTerminal() {
		if actions >= s.config.MaxActions {
			return result, fmt.Errorf("%w: game %s (seed %d) after %d actions", ErrStalled, id, seed, actions)
		}
		if s.config.Timeout > 0 && s.config.Clock.Since(start) > s.config.Timeout {
			return result, fmt.Errorf("%w: game %s (seed %d) timed out after %v", ErrStalled, id, seed, s.config.Timeout)
		}

		action, err := s.next(g, rng)
		if err != nil {
			return result, fmt.Errorf("game %s (seed %d): %w", id, seed, err)
		}
		if err := g.Apply(action); err != nil {
			return result, fmt.Errorf("game %s (seed %d): policy chose %s: %w", id, seed, action, err)
		}
		actions++
	}

	result = statistics.GameResult{ID: id, Seed: seed, Actions: actions}
	for _, p := range g.Players() {
		result.Net = append(result.Net, p.Stack()-p.StartingStack())
		if p.Status() == game.Shown {
			result.Showdown = true
		}
	}
	logger.Debug("game finished", "net", result.Net, "showdown", result.Showdown, "actions", actions)
	return result, nil
}

func (s *Simulator) next(g *game.Game, rng *rand.Rand) (game.Action, error) {
	actor := g.Actor()
	if actor == nil {
		return dealerAction(g)
	}
	policy := s.config.Policies[actor.Seat()%len(s.config.Policies)]
	return policy.Choose(g, rng), nil
}
