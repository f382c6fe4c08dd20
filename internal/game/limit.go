package game

import (
	"fmt"
	"strings"
)

// Limit bounds the size of bets and raises.
type Limit int

const (
	FixedLimit Limit = iota
	PotLimit
	NoLimit
)

// fixedLimitRaiseCap is the number of bets and raises allowed per betting
// round in fixed-limit games.
const fixedLimitRaiseCap = 4

func (l Limit) String() string {
	switch l {
	case FixedLimit:
		return "fixed-limit"
	case PotLimit:
		return "pot-limit"
	case NoLimit:
		return "no-limit"
	default:
		return "unknown"
	}
}

// ParseLimit accepts the long names and the single-letter codes F, P and N.
func ParseLimit(s string) (Limit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "fixed", "fixed-limit":
		return FixedLimit, nil
	case "p", "pot", "pot-limit":
		return PotLimit, nil
	case "n", "no", "no-limit":
		return NoLimit, nil
	default:
		return 0, fmt.Errorf("unknown limit %q", s)
	}
}

// raiseCap returns the number of raises allowed per round, or -1 for no cap.
func (l Limit) raiseCap() int {
	if l == FixedLimit {
		return fixedLimitRaiseCap
	}
	return -1
}

// bettingSituation is everything the raise bounds depend on.
type bettingSituation struct {
	maxBet    int // highest outstanding bet
	maxDelta  int // largest raise increment this round
	pot       int // collected pot
	totalBets int // sum of outstanding bets
	actorBet  int
	actorAll  int // actor's bet plus stack
}

// raiseBounds returns the smallest and largest legal raise-to amounts.
func (l Limit) raiseBounds(s bettingSituation) (lo, hi int) {
	lo = min(s.maxBet+s.maxDelta, s.actorAll)
	switch l {
	case FixedLimit:
		hi = lo
	case PotLimit:
		// call first, then raise by the pot after the call
		hi = s.maxBet + s.pot + s.totalBets + s.maxBet - s.actorBet
		hi = max(lo, min(hi, s.actorAll))
	case NoLimit:
		hi = s.actorAll
	default:
		panic(fmt.Sprintf("game: unknown limit %d", l))
	}
	return lo, hi
}
