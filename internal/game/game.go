package game

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerrules/internal/deck"
)

// Game is the state of one poker game from forced bets to distribution.
type Game struct {
	limit   Limit
	variant Variant
	ante    int
	forced  []int

	players []*Player
	deck    *deck.Deck
	muck    []deck.Card
	board   []deck.Card
	pot     int
	total   int // sum of starting stacks

	stageIndex int
	queue      []int // seats still to act in the current stage, head first
	aggressor  int
	smallBet   int
	bigBet     int
	maxDelta   int
	raiseCount int
	terminal   bool

	history []string
	logger  *log.Logger
}

// New starts a game: antes and forced bets are posted and the first stage is
// opened. Forced bets are posted from seat 0; heads-up, seat 0 posts the
// larger of two blinds.
func New(limit Limit, variant Variant, ante int, forcedBets, stacks []int, opts ...Option) (*Game, error) {
	if err := validateConfig(limit, variant, ante, forcedBets, stacks); err != nil {
		return nil, err
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.deck == nil {
		cfg.deck = variant.deck(cfg.rng)
	}

	g := &Game{
		limit:     limit,
		variant:   variant,
		ante:      ante,
		forced:    slices.Clone(forcedBets),
		deck:      cfg.deck,
		aggressor: -1,
		logger:    cfg.logger,
	}
	for seat, stack := range stacks {
		g.players = append(g.players, &Player{seat: seat, startingStack: stack, stack: stack})
		g.total += stack
	}

	g.smallBet, g.bigBet = cfg.smallBet, cfg.bigBet
	if g.smallBet <= 0 {
		g.smallBet = max(ante, 1)
		if len(forcedBets) > 0 {
			g.smallBet = max(slices.Max(forcedBets), 1)
		}
	}
	if g.bigBet <= 0 {
		g.bigBet = 2 * g.smallBet
	}

	g.postForced()
	g.openStage()
	g.advance()
	g.mustHoldInvariants()
	return g, nil
}

func validateConfig(limit Limit, variant Variant, ante int, forcedBets, stacks []int) error {
	if limit < FixedLimit || limit > NoLimit {
		return fmt.Errorf("%w: unknown limit %d", ErrInvalidConfig, limit)
	}
	if len(stacks) < 2 {
		return fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidConfig, len(stacks))
	}
	for seat, s := range stacks {
		if s <= 0 {
			return fmt.Errorf("%w: seat %d has starting stack %d", ErrInvalidConfig, seat, s)
		}
	}
	if ante < 0 {
		return fmt.Errorf("%w: negative ante %d", ErrInvalidConfig, ante)
	}
	if len(forcedBets) > len(stacks) {
		return fmt.Errorf("%w: %d forced bets for %d players", ErrInvalidConfig, len(forcedBets), len(stacks))
	}
	last := 0
	for i, b := range forcedBets {
		if b < 0 {
			return fmt.Errorf("%w: negative forced bet %d", ErrInvalidConfig, b)
		}
		if b == 0 {
			continue
		}
		if b < last {
			return fmt.Errorf("%w: forced bet %d (%d) is smaller than a previous one (%d)", ErrInvalidConfig, i, b, last)
		}
		last = b
	}
	return variant.validate()
}

func (g *Game) postForced() {
	for _, p := range g.players {
		paid := min(g.ante, p.stack)
		p.stack -= paid
		p.put += paid
		g.pot += paid
	}

	forced := slices.Clone(g.forced)
	if len(g.players) == 2 && len(forced) == 2 {
		forced[0], forced[1] = forced[1], forced[0]
	}
	for seat, amount := range forced {
		p := g.players[seat]
		paid := min(amount, p.stack)
		p.stack -= paid
		p.bet += paid
	}
	g.logger.Debug("forced bets posted", "ante", g.ante, "blinds", forced)
}

// Apply verifies the action and, when legal, performs it and advances the
// game through every stage it completes. Errors wrap ErrRuleViolation and
// leave the game unchanged.
func (g *Game) Apply(a Action) error {
	if err := a.Verify(g); err != nil {
		return err
	}
	entry := a.apply(g)
	g.history = append(g.history, entry)
	g.logger.Debug("action applied", "action", entry)

	g.mustHoldInvariants()
	g.advance()
	g.mustHoldInvariants()
	return nil
}

// Can reports whether the action is legal right now.
func (g *Game) Can(a Action) bool {
	return a.Verify(g) == nil
}

// History returns the applied actions in command notation, with random deals
// and default amounts resolved.
func (g *Game) History() []string {
	return slices.Clone(g.history)
}

// Limit returns the betting limit of the game.
func (g *Game) Limit() Limit { return g.limit }

// Variant returns the variant being played.
func (g *Game) Variant() Variant { return g.variant }

// IsTerminal reports whether the game has been settled.
func (g *Game) IsTerminal() bool { return g.terminal }

// Pot returns the chips collected from completed betting rounds. Outstanding
// bets are not included.
func (g *Game) Pot() int { return g.pot }

// Board returns the community cards.
func (g *Game) Board() []deck.Card { return slices.Clone(g.board) }

// Muck returns discarded and folded cards.
func (g *Game) Muck() []deck.Card { return slices.Clone(g.muck) }

// DeckSize returns the number of undealt cards.
func (g *Game) DeckSize() int { return g.deck.Len() }

// Players returns every player in seat order.
func (g *Game) Players() []*Player { return slices.Clone(g.players) }

// Player returns the player at seat, or nil when there is none.
func (g *Game) Player(seat int) *Player {
	if seat < 0 || seat >= len(g.players) {
		return nil
	}
	return g.players[seat]
}

// StageIndex returns the position of the current stage.
func (g *Game) StageIndex() int { return g.stageIndex }

// Stage returns the current stage, or nil when the game is terminal.
func (g *Game) Stage() Stage {
	if g.terminal {
		return nil
	}
	return g.variant.Stages[g.stageIndex]
}

// Actor returns the player who must act next, or nil when the dealer acts or
// the game is over.
func (g *Game) Actor() *Player {
	if g.terminal || len(g.queue) == 0 {
		return nil
	}
	return g.players[g.queue[0]]
}

// PendingHoleDeals lists the seats still owed hole cards in the current
// stage.
func (g *Game) PendingHoleDeals() []int {
	if _, ok := g.Stage().(HoleDeal); !ok {
		return nil
	}
	target := g.holeTarget(g.stageIndex)
	var seats []int
	for _, p := range g.players {
		if p.Active() && len(p.hole) < target {
			seats = append(seats, p.seat)
		}
	}
	return seats
}

// PendingBoardCards returns the number of board cards still owed in the
// current stage.
func (g *Game) PendingBoardCards() int {
	if _, ok := g.Stage().(BoardDeal); !ok {
		return 0
	}
	return g.boardTarget(g.stageIndex) - len(g.board)
}

// HoleFor returns the cards of seat that viewer may see: all of them for the
// owner, otherwise face-up cards and shown hands. A negative viewer sees only
// public cards.
func (g *Game) HoleFor(seat, viewer int) []deck.HoleCard {
	p := g.Player(seat)
	if p == nil {
		return nil
	}
	if seat == viewer || p.status == Shown {
		return p.Hole()
	}
	var visible []deck.HoleCard
	for _, h := range p.hole {
		if h.FaceUp {
			visible = append(visible, h)
		}
	}
	return visible
}

// MaxBet returns the highest outstanding bet.
func (g *Game) MaxBet() int { return g.maxBet() }

// CallAmount returns the chips the actor needs to check or call.
func (g *Game) CallAmount() int {
	p := g.Actor()
	if p == nil {
		return 0
	}
	return min(g.maxBet()-p.bet, p.stack)
}

// MinRaiseTo returns the smallest legal bet or raise-to amount for the actor.
func (g *Game) MinRaiseTo() int {
	lo, _ := g.raiseBounds()
	return lo
}

// MaxRaiseTo returns the largest legal bet or raise-to amount for the actor.
func (g *Game) MaxRaiseTo() int {
	_, hi := g.raiseBounds()
	return hi
}

func (g *Game) raiseBounds() (int, int) {
	p := g.Actor()
	if p == nil {
		return 0, 0
	}
	return g.limit.raiseBounds(g.situation(p))
}

func (g *Game) situation(p *Player) bettingSituation {
	s := bettingSituation{
		maxBet:   g.maxBet(),
		maxDelta: g.maxDelta,
		pot:      g.pot,
		actorBet: p.bet,
		actorAll: p.bet + p.stack,
	}
	for _, q := range g.players {
		s.totalBets += q.bet
	}
	return s
}

func (g *Game) maxBet() int {
	m := 0
	for _, p := range g.players {
		m = max(m, p.bet)
	}
	return m
}

func (g *Game) activeCount() int {
	n := 0
	for _, p := range g.players {
		if p.Active() {
			n++
		}
	}
	return n
}

func (g *Game) stacks() []int {
	out := make([]int, len(g.players))
	for i, p := range g.players {
		out[i] = p.stack
	}
	return out
}

// popActor removes the acting player from the head of the queue.
func (g *Game) popActor() *Player {
	p := g.players[g.queue[0]]
	g.queue = g.queue[1:]
	return p
}

// takeCards removes cards from the deck, falling back to the muck when
// allowMuck is set.
func (g *Game) takeCards(cards []deck.Card, allowMuck bool) {
	for _, c := range cards {
		if g.deck.Contains(c) {
			if err := g.deck.Remove(c); err != nil {
				panic(err)
			}
			continue
		}
		if i := slices.Index(g.muck, c); allowMuck && i >= 0 {
			g.muck = slices.Delete(g.muck, i, i+1)
			continue
		}
		panic(fmt.Sprintf("game: %s is neither in the deck nor the muck", c))
	}
}

// drawCards deals n random cards, shuffling the muck back into the deck when
// the deck runs short.
func (g *Game) drawCards(n int) []deck.Card {
	if g.deck.Len() < n {
		g.logger.Debug("recycling muck", "deck", g.deck.Len(), "muck", len(g.muck))
		g.deck.Add(g.muck...)
		g.deck.Shuffle()
		g.muck = nil
	}
	cards, err := g.deck.Draw(n)
	if err != nil {
		panic(err)
	}
	return cards
}

// available reports whether n random cards can be dealt.
func (g *Game) available(n int) bool {
	return g.deck.Len()+len(g.muck) >= n
}
