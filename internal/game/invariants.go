package game

import (
	"errors"
	"fmt"

	"github.com/lox/pokerrules/internal/deck"
)

// checkInvariants verifies chip conservation, card distinctness and pot
// consistency.
func (g *Game) checkInvariants() error {
	var errs []error

	chips := g.pot
	for _, p := range g.players {
		if p.stack < 0 || p.bet < 0 {
			errs = append(errs, fmt.Errorf("seat %d has stack %d and bet %d", p.seat, p.stack, p.bet))
		}
		chips += p.stack + p.bet
	}
	if chips != g.total {
		errs = append(errs, fmt.Errorf("chips not conserved: %d on the table, %d at start", chips, g.total))
	}

	sidePots := 0
	for _, pot := range g.SidePots() {
		sidePots += pot.Amount
	}
	if sidePots != g.pot {
		errs = append(errs, fmt.Errorf("side pots hold %d, pot is %d", sidePots, g.pot))
	}

	if g.terminal && g.pot != 0 {
		errs = append(errs, fmt.Errorf("terminal game holds a pot of %d", g.pot))
	}

	cards := append(g.deck.Cards(), g.muck...)
	cards = append(cards, g.board...)
	for _, p := range g.players {
		cards = append(cards, p.holeCards()...)
	}
	if !deck.Distinct(cards) {
		errs = append(errs, fmt.Errorf("duplicate cards in play: %s", deck.FormatCards(cards)))
	}

	return errors.Join(errs...)
}

// mustHoldInvariants panics when the engine has corrupted its own state.
func (g *Game) mustHoldInvariants() {
	if err := g.checkInvariants(); err != nil {
		g.logger.Error("invariant violated", "err", err, "history", g.history)
		panic(fmt.Sprintf("game: invariant violated: %v", err))
	}
}
