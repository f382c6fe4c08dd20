package game

import (
	"fmt"
	"math/rand"

	"github.com/lox/pokerrules/internal/deck"
	"github.com/lox/pokerrules/internal/evaluator"
)

// HandEvaluator ranks a player's hole cards against the board.
// *evaluator.Evaluator satisfies it.
type HandEvaluator interface {
	Evaluate(hole, board []deck.Card) (evaluator.Hand, error)
}

// Variant describes the structure of a poker game: its stages in order, the
// evaluators that split the pot and the deck it is played with.
type Variant struct {
	Name       string
	Stages     []Stage
	Evaluators []HandEvaluator
	// NewDeck builds a shuffled deck; nil means a standard 52-card deck.
	NewDeck func(rng *rand.Rand) *deck.Deck
}

func (v Variant) validate() error {
	if len(v.Stages) == 0 {
		return fmt.Errorf("%w: variant %q has no stages", ErrInvalidConfig, v.Name)
	}
	if len(v.Evaluators) == 0 {
		return fmt.Errorf("%w: variant %q has no evaluators", ErrInvalidConfig, v.Name)
	}
	for i, s := range v.Stages {
		switch s := s.(type) {
		case HoleDeal:
			if s.Count <= 0 {
				return fmt.Errorf("%w: stage %d deals %d hole cards", ErrInvalidConfig, i, s.Count)
			}
		case BoardDeal:
			if s.Count <= 0 {
				return fmt.Errorf("%w: stage %d deals %d board cards", ErrInvalidConfig, i, s.Count)
			}
		case Bet, Draw, Showdown:
		case nil:
			return fmt.Errorf("%w: stage %d is nil", ErrInvalidConfig, i)
		default:
			panic(unknownStage(s))
		}
	}
	return nil
}

func (v Variant) deck(rng *rand.Rand) *deck.Deck {
	if v.NewDeck == nil {
		return deck.NewStandard(rng)
	}
	return v.NewDeck(rng)
}
