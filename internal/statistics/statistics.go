package statistics

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	ID       string // game identifier
	Seed     int64  // RNG seed for this game (for replay)
	Net      []int  // final stack minus starting stack, per seat
	Showdown bool   // more than one player reached the final stage
	Actions  int    // actions applied, dealer actions included
}

// Transferred returns the chips that changed hands.
func (r GameResult) Transferred() int {
	total := 0
	for _, net := range r.Net {
		if net > 0 {
			total += net
		}
	}
	return total
}

// SeatStats tracks the results of one seat.
type SeatStats struct {
	Games       int
	Sum         float64
	SumSq       float64 // sum of squares for variance calculation
	Wins        int     // games with a positive result
	ShowdownNet float64 // chips from games that reached showdown
	FoldOutNet  float64 // chips from games won uncontested
}

// Mean returns the average net result per game.
func (s SeatStats) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of the results.
func (s SeatStats) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the results.
func (s SeatStats) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean.
func (s SeatStats) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s SeatStats) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Statistics aggregates simulation results.
type Statistics struct {
	Games         int
	Actions       int
	ShowdownGames int
	FoldOutGames  int
	Seats         []SeatStats
	Transfers     []int // chips changing hands, per game
	MaxTransfer   int
	Imbalance     int // sum of every net result, zero when chips are conserved
}

// Add incorporates a game result into the statistics.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.Actions += result.Actions
	if result.Showdown {
		s.ShowdownGames++
	} else {
		s.FoldOutGames++
	}

	for len(s.Seats) < len(result.Net) {
		s.Seats = append(s.Seats, SeatStats{})
	}
	for seat, net := range result.Net {
		v := float64(net)
		st := &s.Seats[seat]
		st.Games++
		st.Sum += v
		st.SumSq += v * v
		if net > 0 {
			st.Wins++
		}
		if result.Showdown {
			st.ShowdownNet += v
		} else {
			st.FoldOutNet += v
		}
		s.Imbalance += net
	}

	transferred := result.Transferred()
	s.Transfers = append(s.Transfers, transferred)
	s.MaxTransfer = max(s.MaxTransfer, transferred)
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Actions += other.Actions
	s.ShowdownGames += other.ShowdownGames
	s.FoldOutGames += other.FoldOutGames
	s.Imbalance += other.Imbalance
	s.MaxTransfer = max(s.MaxTransfer, other.MaxTransfer)
	s.Transfers = append(s.Transfers, other.Transfers...)

	for len(s.Seats) < len(other.Seats) {
		s.Seats = append(s.Seats, SeatStats{})
	}
	for i, o := range other.Seats {
		st := &s.Seats[i]
		st.Games += o.Games
		st.Sum += o.Sum
		st.SumSq += o.SumSq
		st.Wins += o.Wins
		st.ShowdownNet += o.ShowdownNet
		st.FoldOutNet += o.FoldOutNet
	}
}

// Seat returns the statistics of one seat, zero when the seat never played.
func (s *Statistics) Seat(seat int) SeatStats {
	if seat < 0 || seat >= len(s.Seats) {
		return SeatStats{}
	}
	return s.Seats[seat]
}

// MeanActions returns the average number of actions per game.
func (s *Statistics) MeanActions() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Actions) / float64(s.Games)
}

// MedianTransfer returns the median number of chips changing hands.
func (s *Statistics) MedianTransfer() float64 {
	return s.TransferPercentile(0.5)
}

// TransferPercentile returns the transfer at the given percentile (0.0 to 1.0).
func (s *Statistics) TransferPercentile(p float64) float64 {
	if len(s.Transfers) == 0 {
		return 0
	}
	sorted := make([]int, len(s.Transfers))
	copy(sorted, s.Transfers)
	sort.Ints(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return float64(sorted[len(sorted)-1])
	}

	weight := index - float64(lower)
	return float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight
}

// IsLedgerBalanced reports whether every game was zero-sum and every seat's
// showdown and fold-out results add up to its total.
func (s *Statistics) IsLedgerBalanced() bool {
	if s.Imbalance != 0 {
		return false
	}
	for _, st := range s.Seats {
		if math.Abs(st.Sum-st.ShowdownNet-st.FoldOutNet) > 1e-6 {
			return false
		}
	}
	return true
}

// Validate checks the statistics for internal consistency.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if s.Imbalance != 0 {
		return fmt.Errorf("chips not conserved: net results sum to %d", s.Imbalance)
	}
	if !s.IsLedgerBalanced() {
		return errors.New("ledger mismatch between showdown and fold-out results")
	}
	if s.ShowdownGames+s.FoldOutGames != s.Games {
		return fmt.Errorf("showdown (%d) and fold-out (%d) games do not add up to %d",
			s.ShowdownGames, s.FoldOutGames, s.Games)
	}
	if len(s.Transfers) != s.Games {
		return fmt.Errorf("transfers length (%d) does not match games count (%d)", len(s.Transfers), s.Games)
	}
	for seat, st := range s.Seats {
		if st.Wins > st.Games {
			return fmt.Errorf("seat %d won %d of %d games", seat, st.Wins, st.Games)
		}
	}
	return nil
}
