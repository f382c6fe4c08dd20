package simulator

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/lox/pokerrules/internal/deck"
	"github.com/lox/pokerrules/internal/game"
)

// Policy chooses an action for the player due to act.
type Policy interface {
	Choose(g *game.Game, rng *rand.Rand) game.Action
}

// RandomPolicy picks uniformly among folding, checking or calling and
// raising to a random legal amount. Draws discard a random subset.
type RandomPolicy struct{}

func (RandomPolicy) Choose(g *game.Game, rng *rand.Rand) game.Action {
	switch g.Stage().(type) {
	case game.Draw:
		return randomDraw(g, rng)
	case game.Showdown:
		return game.ShowOrMuck{}
	}

	options := []game.Action{game.CheckCall{}}
	if g.Can(game.Fold{}) {
		options = append(options, game.Fold{})
	}
	if lo, hi := g.MinRaiseTo(), g.MaxRaiseTo(); g.Can(game.BetRaise{Amount: lo}) {
		options = append(options, game.BetRaise{Amount: lo + rng.Intn(hi-lo+1)})
	}
	return options[rng.Intn(len(options))]
}

// CallPolicy never folds or raises and always stands pat.
type CallPolicy struct{}

func (CallPolicy) Choose(g *game.Game, _ *rand.Rand) game.Action {
	switch g.Stage().(type) {
	case game.Draw:
		return game.DiscardDraw{}
	case game.Showdown:
		return game.ShowHand()
	}
	return game.CheckCall{}
}

// ManiacPolicy raises the maximum whenever it can and redraws half its hand.
type ManiacPolicy struct{}

func (ManiacPolicy) Choose(g *game.Game, rng *rand.Rand) game.Action {
	switch g.Stage().(type) {
	case game.Draw:
		hole := holeCards(g.Actor())
		rng.Shuffle(len(hole), func(i, j int) { hole[i], hole[j] = hole[j], hole[i] })
		return drawIfPossible(g, hole[:len(hole)/2])
	case game.Showdown:
		return game.ShowOrMuck{}
	}
	if raise := (game.BetRaise{Amount: g.MaxRaiseTo()}); g.Can(raise) {
		return raise
	}
	return game.CheckCall{}
}

// PolicyByName returns the policy with the given name.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "random", "rand":
		return RandomPolicy{}, nil
	case "call":
		return CallPolicy{}, nil
	case "maniac":
		return ManiacPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

// PolicyNames lists the names accepted by PolicyByName.
func PolicyNames() []string {
	return []string{"call", "maniac", "random"}
}

func randomDraw(g *game.Game, rng *rand.Rand) game.Action {
	var discards []deck.Card
	for _, c := range holeCards(g.Actor()) {
		if rng.Intn(2) == 0 {
			discards = append(discards, c)
		}
	}
	return drawIfPossible(g, discards)
}

// drawIfPossible stands pat when the deck and muck cannot cover the discards.
func drawIfPossible(g *game.Game, discards []deck.Card) game.Action {
	draw := game.DiscardDraw{Discards: slices.Clone(discards)}
	if g.Can(draw) {
		return draw
	}
	return game.DiscardDraw{}
}

func holeCards(p *game.Player) []deck.Card {
	var cards []deck.Card
	for _, h := range p.Hole() {
		cards = append(cards, h.Card)
	}
	return cards
}

// dealerAction returns the next deal when no player is due to act.
func dealerAction(g *game.Game) (game.Action, error) {
	if seats := g.PendingHoleDeals(); len(seats) > 0 {
		return game.DealHole{Seat: seats[0]}, nil
	}
	if g.PendingBoardCards() > 0 {
		return game.DealBoard{}, nil
	}
	return nil, fmt.Errorf("no player to act and nothing to deal during %s", g.Stage())
}
