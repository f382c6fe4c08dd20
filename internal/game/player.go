package game

import (
	"slices"

	"github.com/lox/pokerrules/internal/deck"
)

// Status is a player's showdown state.
type Status int

const (
	// Undetermined players are still contesting the pot.
	Undetermined Status = iota
	// Mucked players folded or threw their hand away at showdown.
	Mucked
	// Shown players revealed their hand at showdown.
	Shown
)

func (s Status) String() string {
	return [...]string{"undetermined", "mucked", "shown"}[s]
}

// Player is one seat at the table. Fields are read through accessors; only
// actions applied to the owning Game change them.
type Player struct {
	seat          int
	startingStack int
	stack         int
	bet           int // outstanding bet this round
	put           int // chips already collected into the pot this game
	hole          []deck.HoleCard
	status        Status
}

// Seat is the player's stable position, 0 being the first to post.
func (p *Player) Seat() int { return p.seat }

// Stack returns the chips behind.
func (p *Player) Stack() int { return p.stack }

// Bet returns the outstanding bet of the current round.
func (p *Player) Bet() int { return p.bet }

// Put returns the chips collected into the pot from this player.
func (p *Player) Put() int { return p.put }

// StartingStack returns the stack the player started the game with.
func (p *Player) StartingStack() int { return p.startingStack }

// Status returns the showdown state.
func (p *Player) Status() Status { return p.status }

// Active reports whether the player is still contesting the pot.
func (p *Player) Active() bool { return p.status != Mucked }

// Hole returns a copy of the player's hole cards.
func (p *Player) Hole() []deck.HoleCard {
	return slices.Clone(p.hole)
}

// holeCards strips visibility flags for evaluation.
func (p *Player) holeCards() []deck.Card {
	cards := make([]deck.Card, len(p.hole))
	for i, h := range p.hole {
		cards[i] = h.Card
	}
	return cards
}

func (p *Player) holds(c deck.Card) bool {
	return slices.ContainsFunc(p.hole, func(h deck.HoleCard) bool { return h.Card == c })
}
