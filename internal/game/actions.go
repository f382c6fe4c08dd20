package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/pokerrules/internal/deck"
)

// Action is a dealer or player move. Verify never changes the game; apply is
// only reached through Game.Apply after a successful Verify and returns the
// move in command notation.
type Action interface {
	fmt.Stringer
	Verify(g *Game) error
	apply(g *Game) string
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRuleViolation, fmt.Sprintf(format, args...))
}

// expectActor returns the player to act when the current stage is of the
// kind the action needs.
func (g *Game) expectActor(inStage bool, what string) (*Player, error) {
	if g.terminal {
		return nil, violation("game is over")
	}
	if !inStage {
		return nil, violation("cannot %s during %s", what, g.Stage())
	}
	p := g.Actor()
	if p == nil {
		return nil, violation("nobody is due to %s", what)
	}
	return p, nil
}

// checkDealt verifies explicitly named cards can be dealt from the deck.
func (g *Game) checkDealt(cards []deck.Card, need int) error {
	if len(cards) == 0 {
		if !g.available(need) {
			return violation("%d cards requested, %d left", need, g.deck.Len()+len(g.muck))
		}
		return nil
	}
	if len(cards) != need {
		return violation("%d cards given, %d expected", len(cards), need)
	}
	if !deck.Distinct(cards) {
		return violation("duplicate cards in %s", deck.FormatCards(cards))
	}
	for _, c := range cards {
		if !g.deck.Contains(c) {
			return violation("%s is not in the deck", c)
		}
	}
	return nil
}

// DealHole deals the current stage's hole cards to one seat. Without Cards
// the cards are drawn from the deck.
type DealHole struct {
	Seat  int
	Cards []deck.Card
}

func (a DealHole) Verify(g *Game) error {
	if g.terminal {
		return violation("game is over")
	}
	if _, ok := g.Stage().(HoleDeal); !ok {
		return violation("cannot deal hole cards during %s", g.Stage())
	}
	p := g.Player(a.Seat)
	if p == nil {
		return violation("no player at seat %d", a.Seat)
	}
	if !p.Active() {
		return violation("seat %d has folded", a.Seat)
	}
	need := g.holeTarget(g.stageIndex) - len(p.hole)
	if need <= 0 {
		return violation("seat %d has all its hole cards", a.Seat)
	}
	return g.checkDealt(a.Cards, need)
}

func (a DealHole) apply(g *Game) string {
	p := g.players[a.Seat]
	need := g.holeTarget(g.stageIndex) - len(p.hole)
	cards := a.Cards
	if len(cards) == 0 {
		cards = g.drawCards(need)
	} else {
		g.takeCards(cards, false)
	}
	faceUp := g.Stage().(HoleDeal).FaceUp
	for _, c := range cards {
		p.hole = append(p.hole, deck.HoleCard{Card: c, FaceUp: faceUp})
	}
	return fmt.Sprintf("dh %d %s", a.Seat, deck.FormatCards(cards))
}

func (a DealHole) String() string {
	if len(a.Cards) == 0 {
		return fmt.Sprintf("dh %d", a.Seat)
	}
	return fmt.Sprintf("dh %d %s", a.Seat, deck.FormatCards(a.Cards))
}

// DealBoard deals the current stage's community cards. Without Cards the
// cards are drawn from the deck.
type DealBoard struct {
	Cards []deck.Card
}

func (a DealBoard) Verify(g *Game) error {
	if g.terminal {
		return violation("game is over")
	}
	if _, ok := g.Stage().(BoardDeal); !ok {
		return violation("cannot deal the board during %s", g.Stage())
	}
	return g.checkDealt(a.Cards, g.PendingBoardCards())
}

func (a DealBoard) apply(g *Game) string {
	cards := a.Cards
	if len(cards) == 0 {
		cards = g.drawCards(g.PendingBoardCards())
	} else {
		g.takeCards(cards, false)
	}
	g.board = append(g.board, cards...)
	return "db " + deck.FormatCards(cards)
}

func (a DealBoard) String() string {
	if len(a.Cards) == 0 {
		return "db"
	}
	return "db " + deck.FormatCards(a.Cards)
}

// Fold gives up the hand. It is only legal when facing a bet.
type Fold struct{}

func (Fold) Verify(g *Game) error {
	_, inStage := g.Stage().(Bet)
	p, err := g.expectActor(inStage, "fold")
	if err != nil {
		return err
	}
	if p.bet >= g.maxBet() {
		return violation("seat %d can check", p.seat)
	}
	return nil
}

func (Fold) apply(g *Game) string {
	g.muckHand(g.popActor())
	return "f"
}

func (Fold) String() string { return "f" }

// CheckCall matches the highest bet, or as much of it as the stack covers.
type CheckCall struct{}

func (CheckCall) Verify(g *Game) error {
	_, inStage := g.Stage().(Bet)
	_, err := g.expectActor(inStage, "check or call")
	return err
}

func (CheckCall) apply(g *Game) string {
	p := g.popActor()
	amount := min(g.maxBet()-p.bet, p.stack)
	p.stack -= amount
	p.bet += amount
	return "cc"
}

func (CheckCall) String() string { return "cc" }

// BetRaise bets or raises to Amount, the player's total bet for the round.
// A zero Amount means the smallest legal amount.
type BetRaise struct {
	Amount int
}

func (a BetRaise) Verify(g *Game) error {
	_, inStage := g.Stage().(Bet)
	p, err := g.expectActor(inStage, "bet or raise")
	if err != nil {
		return err
	}
	if limit := g.limit.raiseCap(); limit >= 0 && g.raiseCount >= limit {
		return violation("betting is capped at %d raises", limit)
	}
	maxBet := g.maxBet()
	if p.bet+p.stack <= maxBet {
		return violation("seat %d cannot put in more than %d", p.seat, p.bet+p.stack)
	}
	if !slices.ContainsFunc(g.players, func(q *Player) bool {
		return q != p && q.Active() && q.bet+q.stack > maxBet
	}) {
		return violation("nobody can call a raise")
	}
	lo, hi := g.limit.raiseBounds(g.situation(p))
	if amount := a.amount(lo); amount < lo || amount > hi {
		return violation("raise to %d outside [%d, %d]", amount, lo, hi)
	}
	return nil
}

func (a BetRaise) amount(lo int) int {
	if a.Amount == 0 {
		return lo
	}
	return a.Amount
}

func (a BetRaise) apply(g *Game) string {
	p := g.popActor()
	lo, _ := g.limit.raiseBounds(g.situation(p))
	amount := a.amount(lo)

	prev := g.maxBet()
	p.stack -= amount - p.bet
	p.bet = amount
	g.maxDelta = max(g.maxDelta, amount-prev)
	g.raiseCount++
	g.aggressor = p.seat

	g.queue = g.queue[:0]
	for i := 1; i < len(g.players); i++ {
		q := g.players[(p.seat+i)%len(g.players)]
		if g.relevant(q) {
			g.queue = append(g.queue, q.seat)
		}
	}
	return fmt.Sprintf("br %d", amount)
}

func (a BetRaise) String() string {
	if a.Amount == 0 {
		return "br"
	}
	return fmt.Sprintf("br %d", a.Amount)
}

// DiscardDraw replaces Discards with Draws, which are drawn from the deck
// when empty. No discards stands pat.
type DiscardDraw struct {
	Discards []deck.Card
	Draws    []deck.Card
}

func (a DiscardDraw) Verify(g *Game) error {
	_, inStage := g.Stage().(Draw)
	p, err := g.expectActor(inStage, "draw")
	if err != nil {
		return err
	}
	if !deck.Distinct(a.Discards) {
		return violation("duplicate discards in %s", deck.FormatCards(a.Discards))
	}
	for _, c := range a.Discards {
		if !p.holds(c) {
			return violation("seat %d does not hold %s", p.seat, c)
		}
	}

	n := len(a.Discards)
	if len(a.Draws) == 0 {
		if !g.available(n) {
			return violation("%d cards requested, %d left", n, g.deck.Len()+len(g.muck))
		}
		return nil
	}
	if len(a.Draws) != n {
		return violation("%d draws for %d discards", len(a.Draws), n)
	}
	if !deck.Distinct(a.Draws) {
		return violation("duplicate draws in %s", deck.FormatCards(a.Draws))
	}
	fromMuck := g.deck.Len() < n
	for _, c := range a.Draws {
		if slices.Contains(a.Discards, c) {
			return violation("%s is being discarded", c)
		}
		if g.deck.Contains(c) || fromMuck && slices.Contains(g.muck, c) {
			continue
		}
		return violation("%s is not available to draw", c)
	}
	return nil
}

func (a DiscardDraw) apply(g *Game) string {
	p := g.popActor()
	if len(a.Discards) == 0 {
		return "dd"
	}

	draws := a.Draws
	if len(draws) == 0 {
		draws = g.drawCards(len(a.Discards))
	} else {
		g.takeCards(draws, g.deck.Len() < len(a.Discards))
	}
	for i, c := range a.Discards {
		at := slices.IndexFunc(p.hole, func(h deck.HoleCard) bool { return h.Card == c })
		p.hole[at] = deck.HoleCard{Card: draws[i], FaceUp: p.hole[at].FaceUp}
	}
	g.muck = append(g.muck, a.Discards...)
	return fmt.Sprintf("dd %s %s", deck.FormatCards(a.Discards), deck.FormatCards(draws))
}

func (a DiscardDraw) String() string {
	parts := []string{"dd"}
	if len(a.Discards) > 0 {
		parts = append(parts, deck.FormatCards(a.Discards))
	}
	if len(a.Draws) > 0 {
		parts = append(parts, deck.FormatCards(a.Draws))
	}
	return strings.Join(parts, " ")
}

// ShowOrMuck reveals or discards the actor's hand at showdown. With a nil
// Show the hand is shown unless a hand already shown beats it for every pot
// share it could win.
type ShowOrMuck struct {
	Show *bool
}

// ShowHand returns a ShowOrMuck that always shows.
func ShowHand() ShowOrMuck {
	show := true
	return ShowOrMuck{Show: &show}
}

// MuckHand returns a ShowOrMuck that always mucks.
func MuckHand() ShowOrMuck {
	show := false
	return ShowOrMuck{Show: &show}
}

func (a ShowOrMuck) Verify(g *Game) error {
	_, inStage := g.Stage().(Showdown)
	_, err := g.expectActor(inStage, "show or muck")
	return err
}

func (a ShowOrMuck) apply(g *Game) string {
	p := g.popActor()
	show := g.canWin(p)
	if a.Show != nil {
		show = *a.Show
	}
	if !show {
		g.muckHand(p)
		return "s 0"
	}
	p.status = Shown
	return "s 1"
}

func (a ShowOrMuck) String() string {
	switch {
	case a.Show == nil:
		return "s"
	case *a.Show:
		return "s 1"
	default:
		return "s 0"
	}
}

// canWin reports whether p could still win part of a pot: for some evaluator
// p holds a valid hand that no shown player covering p's contribution beats.
// Without any valid hand p can only share a pot that nobody wins outright,
// which needs every shown player covering p to be without one too.
func (g *Game) canWin(p *Player) bool {
	valid := false
	for _, e := range g.variant.Evaluators {
		hand, err := e.Evaluate(p.holeCards(), g.board)
		if err != nil {
			continue
		}
		valid = true
		beaten := slices.ContainsFunc(g.players, func(q *Player) bool {
			if q.status != Shown || q.put < p.put {
				return false
			}
			other, err := e.Evaluate(q.holeCards(), g.board)
			return err == nil && other.Beats(hand)
		})
		if !beaten {
			return true
		}
	}
	if valid {
		return false
	}
	return !slices.ContainsFunc(g.players, func(q *Player) bool {
		return q.status == Shown && q.put >= p.put && g.holdsValidHand(q)
	})
}

func (g *Game) holdsValidHand(p *Player) bool {
	return slices.ContainsFunc(g.variant.Evaluators, func(e HandEvaluator) bool {
		_, err := e.Evaluate(p.holeCards(), g.board)
		return err == nil
	})
}

func (g *Game) muckHand(p *Player) {
	for _, h := range p.hole {
		g.muck = append(g.muck, h.Card)
	}
	p.hole = nil
	p.status = Mucked
}
