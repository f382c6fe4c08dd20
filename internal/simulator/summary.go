package simulator

import (
	"fmt"
	"io"

	"github.com/lox/pokerrules/internal/statistics"
)

// PrintSummary writes a summary of the simulation results.
func PrintSummary(w io.Writer, result *Result, label string) {
	stats := result.Stats

	fmt.Fprintf(w, "\n=== RESULTS: %s ===\n", label)
	fmt.Fprintf(w, "Games played: %d in %v\n", stats.Games, result.Elapsed)
	fmt.Fprintf(w, "Actions: %d (%.1f per game)\n", stats.Actions, stats.MeanActions())
	fmt.Fprintf(w, "Showdowns: %d (%.1f%%), fold-outs: %d\n",
		stats.ShowdownGames, percent(stats.ShowdownGames, stats.Games), stats.FoldOutGames)

	fmt.Fprintf(w, "\n=== CHIPS CHANGING HANDS ===\n")
	fmt.Fprintf(w, "Median: %.1f, P95: %.1f, max: %d\n",
		stats.MedianTransfer(), stats.TransferPercentile(0.95), stats.MaxTransfer)

	fmt.Fprintf(w, "\n=== SEAT ANALYSIS ===\n")
	for seat, st := range stats.Seats {
		printSeat(w, seat, st)
	}
	fmt.Fprintf(w, "\nLedger balanced: %t\n", stats.IsLedgerBalanced())
}

func printSeat(w io.Writer, seat int, st statistics.SeatStats) {
	low, high := st.ConfidenceInterval95()
	fmt.Fprintf(w, "Seat %d: %.3f chips/game (95%% CI [%.3f, %.3f]), won %d, showdown %.0f, fold-out %.0f\n",
		seat, st.Mean(), low, high, st.Wins, st.ShowdownNet, st.FoldOutNet)
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
