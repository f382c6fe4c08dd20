package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerrules/internal/deck"
)

// Option configures a Game during creation.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	logger   *log.Logger
	deck     *deck.Deck
	smallBet int
	bigBet   int
}

// WithRNG sets the source used to shuffle the deck. Without it the game is
// seeded from the clock.
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithLogger sets the logger for stage transitions and awards. The default
// discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDeck plays the game with a prepared deck instead of the variant's.
func WithDeck(d *deck.Deck) Option {
	return func(c *config) {
		c.deck = d
	}
}

// WithBetSizes overrides the bet unit of small and big betting rounds.
// By default the small bet is the largest forced bet (or the ante when there
// are none) and the big bet is twice that.
func WithBetSizes(small, big int) Option {
	return func(c *config) {
		c.smallBet = small
		c.bigBet = big
	}
}
