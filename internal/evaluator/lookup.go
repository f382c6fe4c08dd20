package evaluator

import (
	"fmt"
	"sync"

	"github.com/opencoff/go-chd"

	"github.com/lox/pokerrules/internal/deck"
)

// primes assigns one prime per rank ordinal. The product of a multiset's primes
// is its rank signature: order independent and uniquely factorable.
var primes = [13]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// signature returns the prime product of the card ranks under family f.
func signature(f Family, cards []deck.Card) uint64 {
	key := uint64(1)
	for _, c := range cards {
		key *= primes[f.ordinal(c.Rank)]
	}
	return key
}

func ordinalSignature(ords []int) uint64 {
	key := uint64(1)
	for _, o := range ords {
		key *= primes[o]
	}
	return key
}

// table is a frozen signature -> strength index map. Slots come from a minimal
// perfect hash over the registered signatures; the stored key rejects
// signatures that were never registered.
type table struct {
	mph      *chd.Chd
	keys     []uint64
	strength []int
}

func freezeTable(entries map[uint64]int) (*table, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	b, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("chd builder: %w", err)
	}
	for key := range entries {
		if err := b.Add(key); err != nil {
			return nil, fmt.Errorf("chd add %d: %w", key, err)
		}
	}
	mph, err := b.Freeze(0.9)
	if err != nil {
		return nil, fmt.Errorf("chd freeze: %w", err)
	}

	t := &table{mph: mph}
	for key, idx := range entries {
		slot := int(mph.Find(key))
		if slot >= len(t.keys) {
			t.keys = append(t.keys, make([]uint64, slot+1-len(t.keys))...)
			t.strength = append(t.strength, make([]int, slot+1-len(t.strength))...)
		}
		if t.keys[slot] != 0 {
			return nil, fmt.Errorf("chd slot %d shared by %d and %d", slot, t.keys[slot], key)
		}
		t.keys[slot] = key
		t.strength[slot] = idx
	}
	return t, nil
}

func (t *table) find(key uint64) (int, bool) {
	if t == nil {
		return 0, false
	}
	slot := t.mph.Find(key)
	if slot >= uint64(len(t.keys)) || t.keys[slot] != key {
		return 0, false
	}
	return t.strength[slot], true
}

// Lookup ranks card combinations for one family. Index 0 is the strongest
// class and Count()-1 the weakest. A Lookup is immutable once built.
type Lookup struct {
	family     Family
	flushes    bool
	suited     *table
	unsuited   *table
	count      int
	inverted   bool
	categories []category
}

// category is a contiguous run of strength indices sharing a name.
type category struct {
	name string
	end  int // exclusive
}

// Family returns the family this lookup ranks.
func (l *Lookup) Family() Family {
	return l.family
}

// Count returns the number of distinct strength classes.
func (l *Lookup) Count() int {
	return l.count
}

// Rank returns the strength index of exactly the given cards, and false when
// the combination is not a registered hand for this family.
func (l *Lookup) Rank(cards []deck.Card) (int, bool) {
	key := signature(l.family, cards)

	var (
		idx int
		ok  bool
	)
	if l.flushes && len(cards) == 5 && sameSuit(cards) {
		idx, ok = l.suited.find(key)
	} else {
		idx, ok = l.unsuited.find(key)
	}
	if !ok {
		return 0, false
	}
	if l.inverted {
		idx = l.count - 1 - idx
	}
	return idx, true
}

// Category names the class a strength index belongs to.
func (l *Lookup) Category(strength int) string {
	for _, c := range l.categories {
		if strength < c.end {
			return c.name
		}
	}
	return "unknown"
}

func sameSuit(cards []deck.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

var lookups [familyCount]struct {
	once   sync.Once
	lookup *Lookup
}

// LookupFor returns the process-wide table for a family, building it on first
// use. The result is read-only and safe to share across goroutines.
func LookupFor(f Family) *Lookup {
	if f < 0 || f >= familyCount {
		panic(fmt.Sprintf("evaluator: unknown family %d", f))
	}
	entry := &lookups[f]
	entry.once.Do(func() {
		var err error
		entry.lookup, err = build(f)
		if err != nil {
			panic(fmt.Sprintf("evaluator: building %s lookup: %v", f, err))
		}
	})
	return entry.lookup
}

func build(f Family) (*Lookup, error) {
	if f == DeuceToSeven {
		// Same table as standard poker, read from the weak end.
		std := LookupFor(Standard)
		l := *std
		l.family = DeuceToSeven
		l.inverted = true
		l.categories = invertCategories(std.categories, std.count)
		return &l, nil
	}

	p := populate(f)
	suited, err := freezeTable(p.suited)
	if err != nil {
		return nil, err
	}
	unsuited, err := freezeTable(p.unsuited)
	if err != nil {
		return nil, err
	}
	return &Lookup{
		family:     f,
		flushes:    f == Standard || f == ShortDeck,
		suited:     suited,
		unsuited:   unsuited,
		count:      p.next,
		categories: p.categories,
	}, nil
}

func invertCategories(cats []category, count int) []category {
	out := make([]category, 0, len(cats))
	for i := len(cats) - 1; i >= 0; i-- {
		start := 0
		if i > 0 {
			start = cats[i-1].end
		}
		out = append(out, category{name: cats[i].name, end: count - start})
	}
	return out
}

// IndexCount returns the number of strength classes of family f.
func IndexCount(f Family) int {
	return LookupFor(f).Count()
}
