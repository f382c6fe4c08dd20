// Package catalog loads declarative variant definitions from HCL and turns
// them into playable game variants.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerrules/internal/deck"
	"github.com/lox/pokerrules/internal/evaluator"
	"github.com/lox/pokerrules/internal/game"
)

//go:embed default.hcl
var defaultSource []byte

// ErrUnknownVariant is returned when a code is not in the catalog.
var ErrUnknownVariant = errors.New("unknown variant")

const defaultStartingStack = 200

// Catalog is a set of variant definitions.
type Catalog struct {
	Variants []VariantConfig `hcl:"variant,block"`
}

// VariantConfig defines one variant and its default table settings
type VariantConfig struct {
	Code          string        `hcl:"code,label"`
	Name          string        `hcl:"name"`
	Limit         string        `hcl:"limit"`
	Deck          string        `hcl:"deck,optional"`
	Evaluators    []string      `hcl:"evaluators"`
	Ante          int           `hcl:"ante,optional"`
	ForcedBets    []int         `hcl:"forced_bets,optional"`
	SmallBet      int           `hcl:"small_bet,optional"`
	BigBet        int           `hcl:"big_bet,optional"`
	StartingStack int           `hcl:"starting_stack,optional"`
	Stages        []StageConfig `hcl:"stage,block"`
}

// StageConfig is one stage; Kind is hole, board, bet, draw or showdown.
type StageConfig struct {
	Kind   string `hcl:"kind,label"`
	Count  int    `hcl:"count,optional"`
	FaceUp bool   `hcl:"face_up,optional"`
	Big    bool   `hcl:"big,optional"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultSource, "default.hcl")
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from an HCL file. A missing file yields the built-in
// catalog.
func Load(filename string) (*Catalog, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes, defaults and validates a catalog.
func Parse(src []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Catalog
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for i := range c.Variants {
		v := &c.Variants[i]
		if v.Deck == "" {
			v.Deck = "standard"
		}
		if v.StartingStack == 0 {
			v.StartingStack = defaultStartingStack
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every definition can be built.
func (c *Catalog) Validate() error {
	if len(c.Variants) == 0 {
		return fmt.Errorf("at least one variant must be defined")
	}
	seen := make(map[string]bool)
	for _, v := range c.Variants {
		if seen[v.Code] {
			return fmt.Errorf("variant %s: defined twice", v.Code)
		}
		seen[v.Code] = true
		if _, _, err := v.Build(); err != nil {
			return fmt.Errorf("variant %s: %w", v.Code, err)
		}
		if v.StartingStack <= 0 {
			return fmt.Errorf("variant %s: starting stack must be positive", v.Code)
		}
		if v.SmallBet < 0 || v.BigBet < 0 {
			return fmt.Errorf("variant %s: bet sizes cannot be negative", v.Code)
		}
	}
	return nil
}

// Codes returns the variant codes in definition order.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.Variants))
	for i, v := range c.Variants {
		codes[i] = v.Code
	}
	return codes
}

// Lookup returns the definition registered under code.
func (c *Catalog) Lookup(code string) (*VariantConfig, error) {
	i := slices.IndexFunc(c.Variants, func(v VariantConfig) bool { return v.Code == code })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, code)
	}
	return &c.Variants[i], nil
}

// Variant builds the game variant and limit registered under code.
func (c *Catalog) Variant(code string) (game.Variant, game.Limit, error) {
	v, err := c.Lookup(code)
	if err != nil {
		return game.Variant{}, 0, err
	}
	return v.Build()
}

// Build turns the definition into a game variant.
func (v *VariantConfig) Build() (game.Variant, game.Limit, error) {
	limit, err := game.ParseLimit(v.Limit)
	if err != nil {
		return game.Variant{}, 0, err
	}

	out := game.Variant{Name: v.Name}
	switch v.Deck {
	case "", "standard":
		out.NewDeck = deck.NewStandard
	case "short":
		out.NewDeck = deck.NewShort
	default:
		return game.Variant{}, 0, fmt.Errorf("unknown deck %q", v.Deck)
	}

	if len(v.Evaluators) == 0 {
		return game.Variant{}, 0, fmt.Errorf("no evaluators")
	}
	for _, name := range v.Evaluators {
		e, err := evaluator.ByName(name)
		if err != nil {
			return game.Variant{}, 0, err
		}
		out.Evaluators = append(out.Evaluators, e)
	}

	if len(v.Stages) == 0 {
		return game.Variant{}, 0, fmt.Errorf("no stages")
	}
	for i, s := range v.Stages {
		stage, err := s.build()
		if err != nil {
			return game.Variant{}, 0, fmt.Errorf("stage %d: %w", i, err)
		}
		out.Stages = append(out.Stages, stage)
	}
	return out, limit, nil
}

func (s StageConfig) build() (game.Stage, error) {
	switch s.Kind {
	case "hole":
		if s.Count <= 0 {
			return nil, fmt.Errorf("hole stage needs a positive count")
		}
		return game.HoleDeal{Count: s.Count, FaceUp: s.FaceUp}, nil
	case "board":
		if s.Count <= 0 {
			return nil, fmt.Errorf("board stage needs a positive count")
		}
		return game.BoardDeal{Count: s.Count}, nil
	case "bet":
		return game.Bet{Big: s.Big}, nil
	case "draw":
		return game.Draw{}, nil
	case "showdown":
		return game.Showdown{}, nil
	default:
		return nil, fmt.Errorf("unknown stage kind %q", s.Kind)
	}
}

// Options returns the game options implied by the definition.
func (v *VariantConfig) Options() []game.Option {
	if v.SmallBet == 0 && v.BigBet == 0 {
		return nil
	}
	return []game.Option{game.WithBetSizes(v.SmallBet, v.BigBet)}
}

// Stacks returns n copies of the default starting stack.
func (v *VariantConfig) Stacks(n int) []int {
	stacks := make([]int, n)
	for i := range stacks {
		stacks[i] = v.StartingStack
	}
	return stacks
}

// ForcedBetsFor trims the forced bets to a table of n players.
func (v *VariantConfig) ForcedBetsFor(n int) []int {
	return slices.Clone(v.ForcedBets[:min(n, len(v.ForcedBets))])
}
