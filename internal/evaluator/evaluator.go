// Package evaluator ranks poker hands for every supported family using
// prime-signature lookup tables.
//
// Each rank is mapped to a prime and a combination's signature is the product
// of its primes. Every family owns a suited table (flush signatures) and an
// unsuited table, populated strongest class first so that the insertion index
// is the hand strength. Tables are built once per process, on first use, and
// are read-only afterwards.
package evaluator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/pokerrules/internal/deck"
)

// ErrInvalidHand is returned when no combination of the required shape can be
// formed from the given cards.
var ErrInvalidHand = errors.New("invalid hand")

type selection int

const (
	// best five of everything available
	anyFive selection = iota
	// a fixed number of hole cards combined with a fixed number of board cards
	holeAndBoard
	// the strongest rank- and suit-distinct subset of up to four cards
	rainbowSubset
)

// Evaluator picks the best hand of one family out of a player's cards.
type Evaluator struct {
	name      string
	family    Family
	selection selection
	holeUsed  int // zero uses every hole card
	boardUsed int
}

// NewStandard ranks the best five of hole and board cards (hold'em, stud).
func NewStandard() *Evaluator {
	return &Evaluator{name: "standard", family: Standard, selection: anyFive}
}

// NewGreek ranks every hole card with the best three board cards. Only
// two-card holes make a five-card hand; any other hole size is invalid.
func NewGreek() *Evaluator {
	return &Evaluator{name: "greek", family: Standard, selection: holeAndBoard, boardUsed: 3}
}

// NewOmaha ranks the best two hole cards with the best three board cards.
func NewOmaha() *Evaluator {
	return &Evaluator{name: "omaha", family: Standard, selection: holeAndBoard, holeUsed: 2, boardUsed: 3}
}

// NewShortDeck ranks the best five cards of a 36-card deck game.
func NewShortDeck() *Evaluator {
	return &Evaluator{name: "short-deck", family: ShortDeck, selection: anyFive}
}

// NewDeuceToSevenLow ranks lowball hands where aces are high and straights
// and flushes count against the hand.
func NewDeuceToSevenLow() *Evaluator {
	return &Evaluator{name: "deuce-to-seven", family: DeuceToSeven, selection: anyFive}
}

// NewAceToFiveLow ranks lowball hands where aces are low and straights and
// flushes are ignored.
func NewAceToFiveLow() *Evaluator {
	return &Evaluator{name: "ace-to-five", family: AceToFive, selection: anyFive}
}

// NewEightOrBetterLow ranks ace-to-five lows that qualify with five distinct
// ranks of eight or lower.
func NewEightOrBetterLow() *Evaluator {
	return &Evaluator{name: "eight-or-better", family: EightOrBetter, selection: anyFive}
}

// NewOmahaEightOrBetterLow applies the eight-or-better qualifier to Omaha's
// two-plus-three rule.
func NewOmahaEightOrBetterLow() *Evaluator {
	return &Evaluator{name: "omaha-eight-or-better", family: EightOrBetter, selection: holeAndBoard, holeUsed: 2, boardUsed: 3}
}

// NewBadugi ranks the best rainbow subset of up to four rank-distinct cards.
func NewBadugi() *Evaluator {
	return &Evaluator{name: "badugi", family: Badugi, selection: rainbowSubset}
}

var constructors = map[string]func() *Evaluator{
	"standard":              NewStandard,
	"greek":                 NewGreek,
	"omaha":                 NewOmaha,
	"short-deck":            NewShortDeck,
	"deuce-to-seven":        NewDeuceToSevenLow,
	"ace-to-five":           NewAceToFiveLow,
	"eight-or-better":       NewEightOrBetterLow,
	"omaha-eight-or-better": NewOmahaEightOrBetterLow,
	"badugi":                NewBadugi,
}

// ByName returns the evaluator registered under name.
func ByName(name string) (*Evaluator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
	return ctor(), nil
}

// Names lists the registered evaluator names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Name returns the registered name of the evaluator.
func (e *Evaluator) Name() string {
	return e.name
}

// Family returns the ranking family of the hands this evaluator produces.
func (e *Evaluator) Family() Family {
	return e.family
}

// Evaluate returns the strongest hand that can be formed from the hole and
// board cards under the evaluator's selection rule.
func (e *Evaluator) Evaluate(hole, board []deck.Card) (Hand, error) {
	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)
	if !deck.Distinct(all) {
		return Hand{}, fmt.Errorf("%w: duplicate cards in %s", ErrInvalidHand, deck.FormatCards(all))
	}

	lookup := LookupFor(e.family)
	var (
		best  Hand
		found bool
	)
	consider := func(cards []deck.Card) {
		strength, ok := lookup.Rank(cards)
		if !ok {
			return
		}
		if !found || strength < best.strength {
			best = newHand(e.family, strength, cards)
			found = true
		}
	}

	switch e.selection {
	case anyFive:
		buf := make([]deck.Card, 5)
		forEachCombination(len(all), 5, func(idx []int) {
			for i, j := range idx {
				buf[i] = all[j]
			}
			consider(buf)
		})

	case holeAndBoard:
		holeUsed := e.holeUsed
		if holeUsed == 0 {
			holeUsed = len(hole)
		}
		if holeUsed+e.boardUsed != 5 || len(hole) < holeUsed || len(board) < e.boardUsed {
			break
		}
		buf := make([]deck.Card, holeUsed+e.boardUsed)
		forEachCombination(len(hole), holeUsed, func(hi []int) {
			for i, j := range hi {
				buf[i] = hole[j]
			}
			forEachCombination(len(board), e.boardUsed, func(bi []int) {
				for i, j := range bi {
					buf[holeUsed+i] = board[j]
				}
				consider(buf)
			})
		})

	case rainbowSubset:
		for size := min(4, len(all)); size >= 1; size-- {
			buf := make([]deck.Card, size)
			forEachCombination(len(all), size, func(idx []int) {
				for i, j := range idx {
					buf[i] = all[j]
				}
				if rainbow(buf) {
					consider(buf)
				}
			})
		}

	default:
		panic(fmt.Sprintf("evaluator: unknown selection %d", e.selection))
	}

	if !found {
		return Hand{}, fmt.Errorf("%w: no %s hand in %s", ErrInvalidHand, e.name, deck.FormatCards(all))
	}
	return best, nil
}

// rainbow reports whether all suits and all ranks are pairwise distinct.
func rainbow(cards []deck.Card) bool {
	var suits, ranks uint16
	for _, c := range cards {
		s, r := uint16(1)<<c.Suit, uint16(1)<<c.Rank
		if suits&s != 0 || ranks&r != 0 {
			return false
		}
		suits |= s
		ranks |= r
	}
	return true
}
