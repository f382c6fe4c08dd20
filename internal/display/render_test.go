package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerrules/internal/catalog"
	"github.com/lox/pokerrules/internal/deck"
	"github.com/lox/pokerrules/internal/game"
)

func newHeadsUp(t *testing.T) *game.Game {
	t.Helper()

	vc, err := catalog.Default().Lookup("NT")
	require.NoError(t, err)
	variant, limit, err := vc.Build()
	require.NoError(t, err)
	g, err := game.New(limit, variant, vc.Ante, vc.ForcedBetsFor(2), vc.Stacks(2), vc.Options()...)
	require.NoError(t, err)

	require.NoError(t, g.Apply(game.DealHole{Seat: 0, Cards: deck.MustParseCards("AsKs")}))
	require.NoError(t, g.Apply(game.DealHole{Seat: 1, Cards: deck.MustParseCards("7h2d")}))
	return g
}

func plain() *Renderer {
	return NewRenderer(&bytes.Buffer{}, true)
}

func TestCards(t *testing.T) {
	t.Parallel()

	r := plain()
	assert.Equal(t, "A♠ T♥", r.Cards(deck.MustParseCards("AsTh")))
	assert.Equal(t, "-", r.Cards(nil))
}

func TestGameHidesOpponentCards(t *testing.T) {
	t.Parallel()

	out := plain().Game(newHeadsUp(t), 0)

	assert.Contains(t, out, "No-Limit Texas Hold'em (no-limit)")
	assert.Contains(t, out, "Board: -")
	assert.Contains(t, out, "Seat 0  stack 198  bet 2  A♠ K♠")
	assert.Contains(t, out, "> Seat 1  stack 199  bet 1  ?? ??")
	assert.Contains(t, out, "Seat 1 to act: call 1, raise to 4-200")
	assert.NotContains(t, out, "7♥")
}

func TestGamePublicView(t *testing.T) {
	t.Parallel()

	out := plain().Game(newHeadsUp(t), -1)
	assert.NotContains(t, out, "A♠")
	assert.Equal(t, 4, strings.Count(out, "??"))
}

func TestGameTerminal(t *testing.T) {
	t.Parallel()

	g := newHeadsUp(t)
	require.NoError(t, g.Apply(game.Fold{}))

	out := plain().Game(g, 0)
	assert.Contains(t, out, "Stage: complete")
	assert.Contains(t, out, "Seat 1  stack 199  bet 0  -  mucked")
	assert.Contains(t, out, "Final stacks: 201 199")
}

func TestGameDealerTurn(t *testing.T) {
	t.Parallel()

	g := newHeadsUp(t)
	require.NoError(t, g.Apply(game.CheckCall{}))
	require.NoError(t, g.Apply(game.CheckCall{}))

	out := plain().Game(g, 0)
	assert.Contains(t, out, "Pot: 4")
	assert.Contains(t, out, "Dealer deals 3 board card(s)")
}

func TestTable(t *testing.T) {
	t.Parallel()

	out := plain().Table([]string{"family", "classes"}, [][]string{
		{"standard", "7462"},
		{"badugi", "1093"},
	})
	assert.Equal(t, "family    classes\nstandard  7462\nbadugi    1093\n", out)
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error: boom", plain().Error(errors.New("boom")))
}
