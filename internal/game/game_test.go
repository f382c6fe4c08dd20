package game

import (
	"io"
	"math/rand"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerrules/internal/deck"
	"github.com/lox/pokerrules/internal/evaluator"
)

func cards(s string) []deck.Card {
	return deck.MustParseCards(s)
}

func holdem(holeCards int, evaluators ...HandEvaluator) Variant {
	return Variant{
		Name: "holdem",
		Stages: []Stage{
			HoleDeal{Count: holeCards}, Bet{},
			BoardDeal{Count: 3}, Bet{},
			BoardDeal{Count: 1}, Bet{},
			BoardDeal{Count: 1}, Bet{},
			Showdown{},
		},
		Evaluators: evaluators,
	}
}

func tripleDraw() Variant {
	return Variant{
		Name: "deuce-to-seven triple draw",
		Stages: []Stage{
			HoleDeal{Count: 5}, Bet{},
			Draw{}, Bet{},
			Draw{}, Bet{Big: true},
			Draw{}, Bet{Big: true},
			Showdown{},
		},
		Evaluators: []HandEvaluator{evaluator.NewDeuceToSevenLow()},
	}
}

func newGame(t *testing.T, limit Limit, v Variant, ante int, forced, stacks []int, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{
		WithRNG(rand.New(rand.NewSource(42))),
		WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})),
	}, opts...)
	g, err := New(limit, v, ante, forced, stacks, opts...)
	require.NoError(t, err)
	return g
}

func apply(t *testing.T, g *Game, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		require.NoError(t, g.Apply(a), "applying %s", a)
	}
}

func stacks(g *Game) []int {
	var out []int
	for _, p := range g.Players() {
		out = append(out, p.Stack())
	}
	return out
}

func statuses(g *Game) []Status {
	var out []Status
	for _, p := range g.Players() {
		out = append(out, p.Status())
	}
	return out
}

func TestHeadsUpNoLimitHoldem(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{200, 100})

	// heads-up the blinds are reversed
	assert.Equal(t, 2, g.Player(0).Bet())
	assert.Equal(t, 1, g.Player(1).Bet())
	assert.Nil(t, g.Actor())

	apply(t, g,
		DealHole{Seat: 0, Cards: cards("QdQh")},
		DealHole{Seat: 1, Cards: cards("AhAd")},
	)
	require.NotNil(t, g.Actor())
	assert.Equal(t, 1, g.Actor().Seat())
	assert.Equal(t, 4, g.MinRaiseTo())
	assert.Equal(t, 100, g.MaxRaiseTo())
	assert.Equal(t, 1, g.CallAmount())

	apply(t, g, BetRaise{Amount: 6}, BetRaise{Amount: 199}, CheckCall{})

	assert.Equal(t, 200, g.Pot())
	assert.Equal(t, 100, g.Player(0).Stack(), "uncalled chips are returned")
	assert.Equal(t, 0, g.Player(1).Stack())
	assert.IsType(t, BoardDeal{}, g.Stage())

	apply(t, g,
		DealBoard{Cards: cards("AcAsKc")},
		DealBoard{Cards: cards("Qs")},
		DealBoard{Cards: cards("Qc")},
	)
	assert.IsType(t, Showdown{}, g.Stage())
	assert.Equal(t, 0, g.Actor().Seat(), "last aggressor shows first")

	apply(t, g, ShowOrMuck{}, ShowOrMuck{})

	require.True(t, g.IsTerminal())
	assert.Equal(t, []int{100, 200}, stacks(g))
	assert.Equal(t, []Status{Shown, Shown}, statuses(g))
	assert.Equal(t, 0, g.Pot())
	assert.Nil(t, g.Actor())
	assert.Nil(t, g.Stage())
	assert.Equal(t, []string{
		"dh 0 QdQh", "dh 1 AhAd", "br 6", "br 199", "cc",
		"db AcAsKc", "db Qs", "db Qc", "s 1", "s 1",
	}, g.History())
}

func TestFixedLimitDeuceToSevenTripleDraw(t *testing.T) {
	t.Parallel()

	g := newGame(t, FixedLimit, tripleDraw(), 0, []int{75, 150}, []int{1180, 4340, 5910, 10765})

	apply(t, g,
		DealHole{Seat: 0, Cards: cards("7h6c4c3d2c")},
		DealHole{Seat: 1, Cards: cards("JsJcJdJhTs")},
		DealHole{Seat: 2, Cards: cards("KsKcKdKhTh")},
		DealHole{Seat: 3, Cards: cards("AsQs6s5c3c")},
		Fold{},
		BetRaise{},
		BetRaise{},
		Fold{},
		CheckCall{},
	)
	assert.Equal(t, 1050, g.Pot())

	apply(t, g,
		DiscardDraw{},
		DiscardDraw{Discards: cards("AsQs"), Draws: cards("2hQh")},
		BetRaise{},
		CheckCall{},
		DiscardDraw{},
		DiscardDraw{Discards: cards("Qh"), Draws: cards("4d")},
		BetRaise{},
		CheckCall{},
		DiscardDraw{},
		DiscardDraw{Discards: cards("6s"), Draws: cards("7c")},
	)
	assert.Equal(t, 280, g.MinRaiseTo(), "short stack can only bet what it has")

	apply(t, g,
		BetRaise{},
		CheckCall{},
		ShowOrMuck{},
		ShowOrMuck{},
	)

	require.True(t, g.IsTerminal())
	assert.Equal(t, []int{0, 4190, 5910, 12095}, stacks(g))
	assert.Equal(t, []Status{Shown, Mucked, Mucked, Shown}, statuses(g))
}

func TestPotLimitOmahaHoldem(t *testing.T) {
	t.Parallel()

	g := newGame(t, PotLimit, holdem(4, evaluator.NewOmaha()), 0,
		[]int{50000, 100000}, []int{125945025, 67847350})

	apply(t, g,
		DealHole{Seat: 0, Cards: cards("Ah3sKsKh")},
		DealHole{Seat: 1, Cards: cards("6d9s7d8h")},
	)
	assert.Equal(t, 200000, g.MinRaiseTo())
	assert.Equal(t, 300000, g.MaxRaiseTo())
	assert.False(t, g.Can(BetRaise{Amount: 300001}))

	apply(t, g,
		BetRaise{Amount: 300000},
		BetRaise{Amount: 900000},
		BetRaise{Amount: 2700000},
		BetRaise{Amount: 8100000},
		BetRaise{Amount: 24300000},
		BetRaise{Amount: 72900000},
		CheckCall{},
		DealBoard{Cards: cards("4s5c2h")},
		DealBoard{Cards: cards("5h")},
		DealBoard{Cards: cards("9c")},
		ShowOrMuck{},
		ShowOrMuck{},
	)

	require.True(t, g.IsTerminal())
	assert.Equal(t, []int{193792375, 0}, stacks(g))
	assert.Equal(t, []Status{Shown, Mucked}, statuses(g))
}

func TestFoldOutEndsTheGame(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{100, 100})
	apply(t, g, DealHole{Seat: 0}, DealHole{Seat: 1}, Fold{})

	require.True(t, g.IsTerminal())
	assert.Equal(t, []int{101, 99}, stacks(g))
	assert.Len(t, g.Muck(), 2)
	assert.Empty(t, g.Player(1).Hole())
}

func TestSidePots(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{50, 100, 200})
	apply(t, g,
		DealHole{Seat: 0, Cards: cards("AsAh")},
		DealHole{Seat: 1, Cards: cards("KsKh")},
		DealHole{Seat: 2, Cards: cards("2c7d")},
		BetRaise{Amount: 200},
		CheckCall{},
		CheckCall{},
	)

	assert.Equal(t, []Pot{
		{Amount: 150, Eligible: []int{0, 1, 2}},
		{Amount: 100, Eligible: []int{1, 2}},
	}, g.SidePots())
	assert.Equal(t, 100, g.Player(2).Stack())

	apply(t, g,
		DealBoard{Cards: cards("QcJd8s")},
		DealBoard{Cards: cards("4h")},
		DealBoard{Cards: cards("3c")},
		ShowOrMuck{}, ShowOrMuck{}, ShowOrMuck{},
	)
	require.True(t, g.IsTerminal())
	assert.Equal(t, []int{150, 100, 100}, stacks(g))
}

func TestSplitPotOddChipGoesToEarliestSeat(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{100, 100, 100})
	apply(t, g,
		DealHole{Seat: 0, Cards: cards("6c7d")},
		DealHole{Seat: 1, Cards: cards("2c3d")},
		DealHole{Seat: 2, Cards: cards("4h5h")},
		CheckCall{}, Fold{}, CheckCall{},
		DealBoard{Cards: cards("AsKsQs")}, CheckCall{}, CheckCall{},
		DealBoard{Cards: cards("Js")}, CheckCall{}, CheckCall{},
		DealBoard{Cards: cards("Ts")}, CheckCall{}, CheckCall{},
		ShowOrMuck{}, ShowOrMuck{},
	)

	require.True(t, g.IsTerminal())
	assert.Equal(t, []int{99, 101, 100}, stacks(g))
}

func TestHiLoSplit(t *testing.T) {
	t.Parallel()

	v := holdem(4, evaluator.NewOmaha(), evaluator.NewOmahaEightOrBetterLow())
	g := newGame(t, PotLimit, v, 0, []int{1, 2}, []int{100, 100, 100})
	apply(t, g,
		DealHole{Seat: 0, Cards: cards("6h7h9c9d")},
		DealHole{Seat: 1, Cards: cards("AhKhQcJc")},
		DealHole{Seat: 2, Cards: cards("2c3dTsTh")},
		CheckCall{}, Fold{}, CheckCall{},
		DealBoard{Cards: cards("4s5c9h")}, CheckCall{}, CheckCall{},
		DealBoard{Cards: cards("Kd")}, CheckCall{}, CheckCall{},
		DealBoard{Cards: cards("8d")}, CheckCall{}, CheckCall{},
		ShowOrMuck{}, ShowOrMuck{},
	)

	require.True(t, g.IsTerminal())
	assert.Equal(t, []Status{Mucked, Shown, Shown}, statuses(g))
	assert.Equal(t, []int{99, 101, 100}, stacks(g), "high takes the odd chip")
}

func TestFixedLimitRaiseCap(t *testing.T) {
	t.Parallel()

	g := newGame(t, FixedLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{100, 100, 100})
	apply(t, g, DealHole{Seat: 0}, DealHole{Seat: 1}, DealHole{Seat: 2})

	for _, want := range []int{4, 6, 8, 10} {
		assert.Equal(t, want, g.MinRaiseTo())
		assert.Equal(t, want, g.MaxRaiseTo())
		apply(t, g, BetRaise{})
	}

	assert.False(t, g.Can(BetRaise{}))
	assert.True(t, g.Can(CheckCall{}))
	assert.Equal(t, 4, g.CallAmount())
}

func TestNoLimitMinRaiseTracksLargestIncrement(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{1000, 1000, 1000})
	apply(t, g, DealHole{Seat: 0}, DealHole{Seat: 1}, DealHole{Seat: 2})

	assert.Equal(t, 4, g.MinRaiseTo())
	apply(t, g, BetRaise{Amount: 20})
	assert.Equal(t, 38, g.MinRaiseTo())
	assert.Equal(t, 1000, g.MaxRaiseTo())
	assert.False(t, g.Can(BetRaise{Amount: 37}))
	apply(t, g, BetRaise{Amount: 38})
	assert.Equal(t, 56, g.MinRaiseTo())
}

func TestRaiseNeedsSomeoneToRespond(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{1000, 50})
	apply(t, g, DealHole{Seat: 0}, DealHole{Seat: 1}, BetRaise{Amount: 50})

	// seat 1 is all in; seat 0 may only call or fold
	assert.False(t, g.Can(BetRaise{}))
	assert.True(t, g.Can(Fold{}))
	assert.True(t, g.Can(CheckCall{}))
}

type snapshot struct {
	stacks, bets []int
	deck, muck   []deck.Card
	board        []deck.Card
	queue        []int
	stage        int
	history      []string
}

func takeSnapshot(g *Game) snapshot {
	s := snapshot{
		deck:    g.deck.Cards(),
		muck:    g.Muck(),
		board:   g.Board(),
		queue:   slices.Clone(g.queue),
		stage:   g.StageIndex(),
		history: g.History(),
	}
	for _, p := range g.players {
		s.stacks = append(s.stacks, p.stack)
		s.bets = append(s.bets, p.bet)
	}
	return s
}

func TestRuleViolationsLeaveGameUnchanged(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{100, 100, 100})
	apply(t, g, DealHole{Seat: 0, Cards: cards("AsKs")})

	tests := []struct {
		name   string
		action Action
	}{
		{"bet while dealing", BetRaise{Amount: 10}},
		{"deal a dealt card", DealHole{Seat: 1, Cards: cards("As2c")}},
		{"deal too many cards", DealHole{Seat: 1, Cards: cards("2c3c4c")}},
		{"deal to a dealt seat", DealHole{Seat: 0}},
		{"deal to a missing seat", DealHole{Seat: 7}},
		{"deal the board early", DealBoard{}},
		{"draw in hold'em", DiscardDraw{}},
		{"show before showdown", ShowOrMuck{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := takeSnapshot(g)
			err := g.Apply(tt.action)
			assert.ErrorIs(t, err, ErrRuleViolation)
			assert.Equal(t, before, takeSnapshot(g))
		})
	}
}

func TestBettingViolations(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{100, 100, 100})
	apply(t, g, DealHole{Seat: 0}, DealHole{Seat: 1}, DealHole{Seat: 2}, CheckCall{}, CheckCall{})

	// big blind may check, so folding is not allowed
	before := takeSnapshot(g)
	assert.ErrorIs(t, g.Apply(Fold{}), ErrRuleViolation)
	assert.ErrorIs(t, g.Apply(BetRaise{Amount: 3}), ErrRuleViolation)
	assert.ErrorIs(t, g.Apply(BetRaise{Amount: 101}), ErrRuleViolation)
	assert.Equal(t, before, takeSnapshot(g))

	apply(t, g, CheckCall{})
	assert.IsType(t, BoardDeal{}, g.Stage())
}

func TestActionsAfterTerminalAreRejected(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{100, 100})
	apply(t, g, DealHole{Seat: 0}, DealHole{Seat: 1}, Fold{})
	require.True(t, g.IsTerminal())

	for _, a := range []Action{Fold{}, CheckCall{}, BetRaise{}, DealBoard{}, DealHole{}, DiscardDraw{}, ShowOrMuck{}} {
		assert.ErrorIs(t, g.Apply(a), ErrRuleViolation, "%s", a)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	v := holdem(2, evaluator.NewStandard())
	tests := []struct {
		name    string
		variant Variant
		ante    int
		forced  []int
		stacks  []int
	}{
		{"one player", v, 0, []int{1, 2}, []int{100}},
		{"empty stack", v, 0, []int{1, 2}, []int{100, 0}},
		{"negative stack", v, 0, []int{1, 2}, []int{100, -5}},
		{"negative ante", v, -1, []int{1, 2}, []int{100, 100}},
		{"negative forced bet", v, 0, []int{-1, 2}, []int{100, 100}},
		{"unsorted forced bets", v, 0, []int{2, 1}, []int{100, 100}},
		{"too many forced bets", v, 0, []int{1, 2, 4}, []int{100, 100}},
		{"no stages", Variant{Evaluators: v.Evaluators}, 0, nil, []int{100, 100}},
		{"no evaluators", Variant{Stages: v.Stages}, 0, nil, []int{100, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(NoLimit, tt.variant, tt.ante, tt.forced, tt.stacks)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, g)
		})
	}

	_, err := New(NoLimit, v, 0, []int{0, 1, 2}, []int{100, 100, 100})
	assert.NoError(t, err, "zero entries are skipped in the ordering check")
}

func TestAntesAreCollectedUpFront(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 5, nil, []int{100, 3, 100})
	assert.Equal(t, 13, g.Pot())
	assert.Equal(t, 0, g.Player(1).Stack())
	assert.Equal(t, []Pot{
		{Amount: 9, Eligible: []int{0, 1, 2}},
		{Amount: 4, Eligible: []int{0, 2}},
	}, g.SidePots())

	apply(t, g, DealHole{Seat: 0}, DealHole{Seat: 1}, DealHole{Seat: 2})
	assert.Equal(t, 0, g.Actor().Seat(), "without bets the first seat opens")
	assert.Equal(t, 5, g.MinRaiseTo(), "the ante is the bet unit")
}

func TestHoleVisibility(t *testing.T) {
	t.Parallel()

	v := Variant{
		Name:       "five card stud street",
		Stages:     []Stage{HoleDeal{Count: 4}, HoleDeal{Count: 1, FaceUp: true}, Bet{}, Showdown{}},
		Evaluators: []HandEvaluator{evaluator.NewStandard()},
	}
	g := newGame(t, FixedLimit, v, 1, nil, []int{100, 100})
	apply(t, g,
		DealHole{Seat: 0, Cards: cards("AsKsJsTs")},
		DealHole{Seat: 1, Cards: cards("2c3c4c6d")},
		DealHole{Seat: 0, Cards: cards("Qs")},
		DealHole{Seat: 1, Cards: cards("9h")},
	)

	assert.Len(t, g.HoleFor(0, 0), 5)
	assert.Equal(t, []deck.HoleCard{{Card: cards("Qs")[0], FaceUp: true}}, g.HoleFor(0, 1))
	assert.Equal(t, g.HoleFor(0, 1), g.HoleFor(0, -1))

	apply(t, g, CheckCall{}, CheckCall{}, ShowOrMuck{})
	assert.Len(t, g.HoleFor(0, -1), 5, "shown hands are public")
}

func TestShowdownWithoutValidHandsSplitsThePot(t *testing.T) {
	t.Parallel()

	v := Variant{
		Name:       "three card hands",
		Stages:     []Stage{HoleDeal{Count: 3}, Bet{}, Showdown{}},
		Evaluators: []HandEvaluator{evaluator.NewStandard()},
	}
	g := newGame(t, FixedLimit, v, 1, nil, []int{100, 100})
	apply(t, g,
		DealHole{Seat: 0, Cards: cards("AsKsQs")},
		DealHole{Seat: 1, Cards: cards("2c3c4d")},
		CheckCall{}, CheckCall{},
		ShowOrMuck{}, ShowOrMuck{},
	)

	require.True(t, g.IsTerminal())
	assert.Equal(t, []int{100, 100}, []int{g.Player(0).Stack(), g.Player(1).Stack()})
	for _, p := range g.Players() {
		assert.Equal(t, Shown, p.Status())
	}
}

func TestDrawRecyclesTheMuck(t *testing.T) {
	t.Parallel()

	v := Variant{
		Name:       "single draw",
		Stages:     []Stage{HoleDeal{Count: 5}, Draw{}, Showdown{}},
		Evaluators: []HandEvaluator{evaluator.NewDeuceToSevenLow()},
	}
	d := deck.New(nil, cards("2c3c4c5c7d8d9dTdJdQdKhAh")...)
	g := newGame(t, FixedLimit, v, 1, nil, []int{10, 10}, WithDeck(d))

	apply(t, g, DealHole{Seat: 0}, DealHole{Seat: 1})
	assert.Equal(t, 2, g.DeckSize())

	discards := g.Player(0).Hole()[:2]
	apply(t, g, DiscardDraw{Discards: []deck.Card{discards[0].Card, discards[1].Card}})
	assert.Equal(t, 0, g.DeckSize())
	assert.Len(t, g.Muck(), 2)

	p1 := g.Player(1).Hole()
	assert.ErrorIs(t, g.Apply(DiscardDraw{Discards: []deck.Card{p1[0].Card, p1[1].Card, p1[2].Card}}), ErrRuleViolation)

	apply(t, g, DiscardDraw{Discards: []deck.Card{p1[0].Card, p1[1].Card}})
	hole := g.Player(1).Hole()
	assert.Contains(t, hole, discards[0])
	assert.Contains(t, hole, discards[1])
}

func TestDiscardDrawViolations(t *testing.T) {
	t.Parallel()

	g := newGame(t, FixedLimit, tripleDraw(), 0, []int{1, 2}, []int{100, 100})
	apply(t, g,
		DealHole{Seat: 0, Cards: cards("7h6c4c3d2c")},
		DealHole{Seat: 1, Cards: cards("AsQs6s5c3c")},
		CheckCall{}, CheckCall{},
	)
	require.IsType(t, Draw{}, g.Stage())
	require.Equal(t, 0, g.Actor().Seat())

	tests := []struct {
		name   string
		action DiscardDraw
	}{
		{"discard a card not held", DiscardDraw{Discards: cards("As")}},
		{"duplicate discards", DiscardDraw{Discards: cards("7h7h")}},
		{"draw count mismatch", DiscardDraw{Discards: cards("7h"), Draws: cards("8h9h")}},
		{"draw a card in another hand", DiscardDraw{Discards: cards("7h"), Draws: cards("Qs")}},
		{"draw the discard back", DiscardDraw{Discards: cards("7h"), Draws: cards("7h")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, g.Apply(tt.action), ErrRuleViolation)
		})
	}

	apply(t, g, DiscardDraw{Discards: cards("7h"), Draws: cards("5d")})
	assert.Equal(t, cards("7h"), g.Muck())
	assert.Equal(t, "5d", g.Player(0).Hole()[0].String())
}

func TestForcedShowAndMuck(t *testing.T) {
	t.Parallel()

	g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 0, []int{1, 2}, []int{100, 100, 100})
	apply(t, g,
		DealHole{Seat: 0, Cards: cards("AsAh")},
		DealHole{Seat: 1, Cards: cards("2c7d")},
		DealHole{Seat: 2, Cards: cards("3c8d")},
		CheckCall{}, CheckCall{}, CheckCall{},
		DealBoard{Cards: cards("KsQhJd")}, CheckCall{}, CheckCall{}, CheckCall{},
		DealBoard{Cards: cards("9s")}, CheckCall{}, CheckCall{}, CheckCall{},
		DealBoard{Cards: cards("4h")}, CheckCall{}, CheckCall{}, CheckCall{},
		ShowOrMuck{},
	)

	// seat 1 is beaten but shows anyway; seat 2 mucks
	apply(t, g, ShowHand(), MuckHand())
	require.True(t, g.IsTerminal())
	assert.Equal(t, []Status{Shown, Shown, Mucked}, statuses(g))
	assert.Equal(t, []int{104, 98, 98}, stacks(g))
}

func TestRandomPlayConservesChips(t *testing.T) {
	t.Parallel()

	for seed := range int64(20) {
		rng := rand.New(rand.NewSource(seed))
		g := newGame(t, NoLimit, holdem(2, evaluator.NewStandard()), 1, []int{5, 10},
			[]int{500, 300, 800, 120}, WithRNG(rng))

		for steps := 0; !g.IsTerminal(); steps++ {
			require.Less(t, steps, 500)
			var a Action
			switch {
			case len(g.PendingHoleDeals()) > 0:
				a = DealHole{Seat: g.PendingHoleDeals()[0]}
			case g.PendingBoardCards() > 0:
				a = DealBoard{}
			default:
				options := []Action{CheckCall{}, Fold{}, BetRaise{}, BetRaise{Amount: g.MaxRaiseTo()}, ShowOrMuck{}}
				options = slices.DeleteFunc(options, func(a Action) bool { return !g.Can(a) })
				require.NotEmpty(t, options)
				a = options[rng.Intn(len(options))]
			}
			require.NoError(t, g.Apply(a))
		}

		total := 0
		for _, s := range stacks(g) {
			total += s
		}
		assert.Equal(t, 1720, total)
		assert.Equal(t, 0, g.Pot())
	}
}
