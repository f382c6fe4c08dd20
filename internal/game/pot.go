package game

import (
	"slices"

	"github.com/lox/pokerrules/internal/evaluator"
)

// Pot is a main or side pot. Eligible lists the seats that can win it.
type Pot struct {
	Amount   int
	Eligible []int
}

// collectBets moves outstanding bets into the pot. Nobody can be called for
// more than the second-highest bet, so the excess is returned.
func (g *Game) collectBets() {
	bets := make([]int, len(g.players))
	for i, p := range g.players {
		bets[i] = p.bet
	}
	slices.Sort(bets)
	effective := bets[len(bets)-2]

	for _, p := range g.players {
		paid := min(p.bet, effective)
		if refund := p.bet - paid; refund > 0 {
			g.logger.Debug("uncalled bet returned", "seat", p.seat, "amount", refund)
			p.stack += refund
		}
		p.put += paid
		g.pot += paid
		p.bet = 0
	}
}

// SidePots splits the collected pot by contribution level. Chips of a level
// nobody active reached are merged into the neighbouring pot.
func (g *Game) SidePots() []Pot {
	var levels []int
	for _, p := range g.players {
		if p.put > 0 {
			levels = append(levels, p.put)
		}
	}
	slices.Sort(levels)
	levels = slices.Compact(levels)

	var (
		pots    []Pot
		carried int
		prev    int
	)
	for _, level := range levels {
		pot := Pot{Amount: carried}
		for _, p := range g.players {
			pot.Amount += min(p.put, level) - min(p.put, prev)
			if p.Active() && p.put >= level {
				pot.Eligible = append(pot.Eligible, p.seat)
			}
		}
		prev = level
		if len(pot.Eligible) == 0 {
			carried = pot.Amount
			continue
		}
		carried = 0
		pots = append(pots, pot)
	}
	if carried > 0 && len(pots) > 0 {
		pots[len(pots)-1].Amount += carried
	}
	return pots
}

// distribute awards every side pot and empties the pot.
func (g *Game) distribute() {
	for _, pot := range g.SidePots() {
		for seat, amount := range g.award(pot) {
			g.players[seat].stack += amount
			g.logger.Debug("pot awarded", "seat", seat, "amount", amount, "pot", pot.Amount)
		}
	}
	g.pot = 0
	for _, p := range g.players {
		p.put = 0
	}
}

// award splits one pot. The amount is shared between the evaluators for which
// at least one eligible player holds a valid hand, odd chips going to the
// first evaluators; each share goes to that evaluator's best hands, odd chips
// to the earliest seats.
func (g *Game) award(pot Pot) map[int]int {
	out := make(map[int]int)
	if len(pot.Eligible) == 1 {
		out[pot.Eligible[0]] = pot.Amount
		return out
	}

	var winnersByEvaluator [][]int
	for _, e := range g.variant.Evaluators {
		if winners := g.bestHands(e, pot.Eligible); len(winners) > 0 {
			winnersByEvaluator = append(winnersByEvaluator, winners)
		}
	}
	if len(winnersByEvaluator) == 0 {
		winnersByEvaluator = [][]int{pot.Eligible}
	}

	shares := split(pot.Amount, len(winnersByEvaluator))
	for i, winners := range winnersByEvaluator {
		for j, amount := range split(shares[i], len(winners)) {
			out[winners[j]] += amount
		}
	}
	return out
}

// bestHands returns the seats, in seat order, holding the strongest valid hand
// under e.
func (g *Game) bestHands(e HandEvaluator, seats []int) []int {
	var (
		best    evaluator.Hand
		winners []int
	)
	for _, seat := range seats {
		hand, err := e.Evaluate(g.players[seat].holeCards(), g.board)
		if err != nil {
			continue
		}
		switch {
		case len(winners) == 0 || hand.Beats(best):
			best = hand
			winners = []int{seat}
		case hand.Compare(best) == 0:
			winners = append(winners, seat)
		}
	}
	return winners
}

// split divides amount into n parts, the first parts taking the remainder.
func split(amount, n int) []int {
	parts := make([]int, n)
	for i := range parts {
		parts[i] = amount / n
		if i < amount%n {
			parts[i]++
		}
	}
	return parts
}
