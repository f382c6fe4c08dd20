package evaluator

import (
	"fmt"

	"github.com/lox/pokerrules/internal/deck"
)

// Hand is a strength token produced by an Evaluator. Hands are comparable with
// == and totally ordered within one family.
type Hand struct {
	family   Family
	strength int
	cards    [5]deck.Card
	size     int
}

func newHand(f Family, strength int, cards []deck.Card) Hand {
	h := Hand{family: f, strength: strength, size: len(cards)}
	copy(h.cards[:], cards)
	deck.SortCards(h.cards[:h.size])
	return h
}

// Family returns the ranking family the hand was produced by.
func (h Hand) Family() Family {
	return h.family
}

// Strength returns the class index, 0 being the strongest class.
func (h Hand) Strength() int {
	return h.strength
}

// Cards returns the cards that make up the hand, highest first.
func (h Hand) Cards() []deck.Card {
	out := make([]deck.Card, h.size)
	copy(out, h.cards[:h.size])
	return out
}

// Category names the class of the hand (e.g. "full house").
func (h Hand) Category() string {
	return LookupFor(h.family).Category(h.strength)
}

// Compare returns 1 if h is stronger than other, -1 if weaker and 0 if they
// are of equal strength. Comparing hands of different families is a
// programming error and panics.
func (h Hand) Compare(other Hand) int {
	if h.family != other.family {
		panic(fmt.Sprintf("evaluator: comparing %s hand with %s hand", h.family, other.family))
	}
	switch {
	case h.strength < other.strength:
		return 1
	case h.strength > other.strength:
		return -1
	default:
		return 0
	}
}

// Beats reports whether h is strictly stronger than other.
func (h Hand) Beats(other Hand) bool {
	return h.Compare(other) > 0
}

func (h Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.Category(), deck.FormatCards(h.cards[:h.size]))
}
