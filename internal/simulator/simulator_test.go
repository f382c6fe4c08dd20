package simulator

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerrules/internal/catalog"
)

func configFor(t *testing.T, code string, players int) Config {
	t.Helper()

	c := catalog.Default()
	vc, err := c.Lookup(code)
	require.NoError(t, err)
	variant, limit, err := vc.Build()
	require.NoError(t, err)

	return Config{
		Variant:    variant,
		Limit:      limit,
		Ante:       vc.Ante,
		ForcedBets: vc.ForcedBetsFor(players),
		Stacks:     vc.Stacks(players),
		Options:    vc.Options(),
		Seed:       12345,
		Logger:     log.New(io.Discard),
		Clock:      quartz.NewMock(t),
	}
}

func TestRunHoldem(t *testing.T) {
	t.Parallel()

	config := configFor(t, "NT", 6)
	config.Games = 200
	config.Workers = 4

	result, err := New(config).Run(context.Background())
	require.NoError(t, err)

	stats := result.Stats
	assert.Equal(t, 200, stats.Games)
	assert.Len(t, stats.Seats, 6)
	assert.Equal(t, 200, stats.ShowdownGames+stats.FoldOutGames)
	assert.True(t, stats.IsLedgerBalanced())
	assert.Zero(t, result.Elapsed, "mock clock does not advance")
}

func TestRunEveryCatalogVariant(t *testing.T) {
	t.Parallel()

	for _, code := range catalog.Default().Codes() {
		t.Run(code, func(t *testing.T) {
			t.Parallel()

			config := configFor(t, code, 4)
			config.Games = 60
			config.Workers = 2

			result, err := New(config).Run(context.Background())
			require.NoError(t, err)
			assert.NoError(t, result.Stats.Validate())
		})
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	run := func(workers int) []float64 {
		config := configFor(t, "F2L3D", 4)
		config.Games = 50
		config.Workers = workers
		result, err := New(config).Run(context.Background())
		require.NoError(t, err)

		var sums []float64
		for _, st := range result.Stats.Seats {
			sums = append(sums, st.Sum)
		}
		return sums
	}

	assert.Equal(t, run(1), run(1))
	assert.Equal(t, run(1), run(3))
}

func TestPlayReplaysBySeed(t *testing.T) {
	t.Parallel()

	sim := New(configFor(t, "PO", 3))
	a, err := sim.Play(7)
	require.NoError(t, err)
	b, err := sim.Play(7)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a.ID, 26)
	assert.Positive(t, a.Actions)
}

func TestCallPolicyAlwaysReachesShowdown(t *testing.T) {
	t.Parallel()

	config := configFor(t, "FT", 3)
	config.Games = 40
	config.Policies = []Policy{CallPolicy{}}

	result, err := New(config).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, result.Stats.ShowdownGames)
	assert.Zero(t, result.Stats.FoldOutGames)
}

func TestMixedPolicies(t *testing.T) {
	t.Parallel()

	config := configFor(t, "N2L1D", 3)
	config.Games = 40
	config.Policies = []Policy{ManiacPolicy{}, CallPolicy{}, RandomPolicy{}}

	result, err := New(config).Run(context.Background())
	require.NoError(t, err)
	assert.NoError(t, result.Stats.Validate())
}

func TestRunStallsAtActionBudget(t *testing.T) {
	t.Parallel()

	config := configFor(t, "NT", 2)
	config.Games = 1
	config.MaxActions = 1

	_, err := New(config).Run(context.Background())
	require.ErrorIs(t, err, ErrStalled)
}

func TestRunHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := configFor(t, "NT", 2)
	config.Games = 10
	_, err := New(config).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	config := configFor(t, "NT", 2)
	_, err := New(config).Run(context.Background())
	assert.Error(t, err, "zero games")

	config.Games = 1
	config.Stacks = []int{200}
	_, err = New(config).Run(context.Background())
	assert.Error(t, err, "one player")
}

func TestPolicyByName(t *testing.T) {
	t.Parallel()

	for _, name := range PolicyNames() {
		p, err := PolicyByName(name)
		require.NoError(t, err)
		assert.NotNil(t, p)
	}
	_, err := PolicyByName("tag")
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	config := configFor(t, "NT", 2)
	config.Games = 10
	result, err := New(config).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, result, "NT random")
	out := buf.String()
	assert.Contains(t, out, "RESULTS: NT random")
	assert.Contains(t, out, "Games played: 10")
	assert.Contains(t, out, "Seat 1:")
	assert.Contains(t, out, "Ledger balanced: true")
}
