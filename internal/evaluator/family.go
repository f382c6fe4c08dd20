package evaluator

import "github.com/lox/pokerrules/internal/deck"

// Family identifies a hand-ranking table. Hands of different families are
// never comparable.
type Family int

const (
	Standard Family = iota
	ShortDeck
	DeuceToSeven
	AceToFive
	EightOrBetter
	Badugi

	familyCount
)

// Families lists every family in declaration order.
var Families = [...]Family{Standard, ShortDeck, DeuceToSeven, AceToFive, EightOrBetter, Badugi}

func (f Family) String() string {
	switch f {
	case Standard:
		return "standard"
	case ShortDeck:
		return "short-deck"
	case DeuceToSeven:
		return "deuce-to-seven"
	case AceToFive:
		return "ace-to-five"
	case EightOrBetter:
		return "eight-or-better"
	case Badugi:
		return "badugi"
	default:
		return "unknown"
	}
}

// aceLow reports whether aces rank below deuces in this family.
func (f Family) aceLow() bool {
	return f == AceToFive || f == EightOrBetter || f == Badugi
}

// ordinal maps a rank to its position in the family's rank order, 0 being the
// lowest card.
func (f Family) ordinal(r deck.Rank) int {
	if f.aceLow() {
		if r == deck.Ace {
			return 0
		}
		return int(r - deck.Two + 1)
	}
	return int(r - deck.Two)
}

// ordinals returns the rank ordinals the family's deck contains, ascending.
func (f Family) ordinals() []int {
	lowest := 0
	if f == ShortDeck {
		lowest = f.ordinal(deck.Six)
	}
	ords := make([]int, 0, 13)
	for o := lowest; o < 13; o++ {
		ords = append(ords, o)
	}
	return ords
}
