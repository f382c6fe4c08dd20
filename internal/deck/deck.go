package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

var (
	// ErrNotEnoughCards is returned when a draw asks for more cards than remain.
	ErrNotEnoughCards = errors.New("not enough cards in deck")
	// ErrCardNotInDeck is returned when a removal names a card the deck does not hold.
	ErrCardNotInDeck = errors.New("card not in deck")
)

// Deck is an owned, shuffled multiset of cards. Draws come off the top; specific
// cards can be removed from anywhere in the deck.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewStandard creates a shuffled 52-card deck
func NewStandard(rng *rand.Rand) *Deck {
	return newDeck(rng, Two)
}

// NewShort creates a shuffled 36-card deck (six through ace)
func NewShort(rng *rand.Rand) *Deck {
	return newDeck(rng, Six)
}

// New creates a deck holding exactly the given cards, in the given order.
// It is used to script deterministic deals.
func New(rng *rand.Rand, cards ...Card) *Deck {
	return &Deck{cards: slices.Clone(cards), rng: rng}
}

func newDeck(rng *rand.Rand, lowest Rank) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for _, suit := range Suits {
		for rank := lowest; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.Shuffle()
	return d
}

// Shuffle randomizes the order of cards in the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Contains reports whether the card is still in the deck
func (d *Deck) Contains(c Card) bool {
	return slices.Contains(d.cards, c)
}

// Draw removes and returns the top n cards
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, n, len(d.cards))
	}
	drawn := slices.Clone(d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// Remove takes the given cards out of the deck. Either every card is removed
// or, on error, the deck is left untouched.
func (d *Deck) Remove(cards ...Card) error {
	if !Distinct(cards) {
		return fmt.Errorf("%w: duplicate cards in %s", ErrCardNotInDeck, FormatCards(cards))
	}
	for _, c := range cards {
		if !d.Contains(c) {
			return fmt.Errorf("%w: %s", ErrCardNotInDeck, c)
		}
	}
	d.cards = slices.DeleteFunc(d.cards, func(c Card) bool {
		return slices.Contains(cards, c)
	})
	return nil
}

// Add puts cards back at the bottom of the deck. Callers reshuffle as needed.
func (d *Deck) Add(cards ...Card) {
	d.cards = append(d.cards, cards...)
}
