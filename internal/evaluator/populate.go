package evaluator

import (
	"slices"

	"github.com/lox/pokerrules/internal/deck"
)

// entry is one strength class waiting to be indexed.
type entry struct {
	suited   bool
	key      uint64
	category string
}

type population struct {
	suited     map[uint64]int
	unsuited   map[uint64]int
	next       int
	categories []category
}

// populate lists every class of family f strongest first and numbers them in
// that order, so an index is a strength.
func populate(f Family) *population {
	var entries []entry
	switch f {
	case Standard, ShortDeck:
		entries = highEntries(f)
	case AceToFive:
		entries = lowEntries(f)
	case EightOrBetter:
		entries = eightOrBetterEntries(f)
	case Badugi:
		entries = badugiEntries(f)
	default:
		panic("evaluator: no population for " + f.String())
	}

	p := &population{
		suited:   make(map[uint64]int),
		unsuited: make(map[uint64]int),
	}
	for _, e := range entries {
		target := p.unsuited
		if e.suited {
			target = p.suited
		}
		if _, dup := target[e.key]; dup {
			continue
		}
		target[e.key] = p.next
		p.next++
		if n := len(p.categories); n > 0 && p.categories[n-1].name == e.category {
			p.categories[n-1].end = p.next
		} else {
			p.categories = append(p.categories, category{name: e.category, end: p.next})
		}
	}
	return p
}

func highEntries(f Family) []entry {
	desc := descending(f.ordinals())
	straights := straightSets(desc)

	straightKeys := make(map[uint64]bool, len(straights))
	for _, s := range straights {
		straightKeys[ordinalSignature(s)] = true
	}
	var distinct [][]int
	for _, c := range combinations(desc, 5) {
		if !straightKeys[ordinalSignature(c)] {
			distinct = append(distinct, c)
		}
	}

	var out []entry
	out = appendEntries(out, "straight flush", true, straights)
	out = appendEntries(out, "four of a kind", false, quads(desc))
	if f == ShortDeck {
		out = appendEntries(out, "flush", true, distinct)
		out = appendEntries(out, "full house", false, fullHouses(desc))
	} else {
		out = appendEntries(out, "full house", false, fullHouses(desc))
		out = appendEntries(out, "flush", true, distinct)
	}
	out = appendEntries(out, "straight", false, straights)
	out = appendEntries(out, "three of a kind", false, trips(desc))
	out = appendEntries(out, "two pair", false, twoPairs(desc))
	out = appendEntries(out, "one pair", false, onePairs(desc))
	out = appendEntries(out, "high card", false, distinct)
	return out
}

// lowEntries ranks hands where straights and flushes do not count: the high
// order without them, read backwards.
func lowEntries(f Family) []entry {
	desc := descending(f.ordinals())

	var out []entry
	out = appendEntries(out, "four of a kind", false, quads(desc))
	out = appendEntries(out, "full house", false, fullHouses(desc))
	out = appendEntries(out, "three of a kind", false, trips(desc))
	out = appendEntries(out, "two pair", false, twoPairs(desc))
	out = appendEntries(out, "one pair", false, onePairs(desc))
	out = appendEntries(out, "no pair", false, combinations(desc, 5))
	slices.Reverse(out)
	return out
}

// eightOrBetterEntries keeps only five distinct ranks of eight or lower.
func eightOrBetterEntries(f Family) []entry {
	eight := f.ordinal(deck.Eight)
	var qualifying []int
	for _, o := range descending(f.ordinals()) {
		if o <= eight {
			qualifying = append(qualifying, o)
		}
	}
	out := appendEntries(nil, "eight-or-better", false, combinations(qualifying, 5))
	slices.Reverse(out)
	return out
}

// badugiEntries ranks rank-distinct subsets: more cards first, then lowest
// high card. The empty hand closes the table.
func badugiEntries(f Family) []entry {
	desc := descending(f.ordinals())
	names := [...]string{"no card", "one-card", "two-card", "three-card", "badugi"}

	var out []entry
	for size := 4; size >= 0; size-- {
		group := appendEntries(nil, names[size], false, combinations(desc, size))
		slices.Reverse(group)
		out = append(out, group...)
	}
	return out
}

func appendEntries(out []entry, name string, suited bool, sets [][]int) []entry {
	for _, s := range sets {
		out = append(out, entry{suited: suited, key: ordinalSignature(s), category: name})
	}
	return out
}

func descending(ords []int) []int {
	out := slices.Clone(ords)
	slices.Reverse(out)
	return out
}

func without(ords []int, skip ...int) []int {
	out := make([]int, 0, len(ords))
	for _, o := range ords {
		if !slices.Contains(skip, o) {
			out = append(out, o)
		}
	}
	return out
}

// straightSets returns five-card runs strongest first; desc must be a run of
// consecutive ordinals. The ace-low wheel comes last.
func straightSets(desc []int) [][]int {
	var out [][]int
	for i := 0; i+5 <= len(desc); i++ {
		out = append(out, slices.Clone(desc[i:i+5]))
	}
	if len(desc) >= 5 && desc[0] == 12 {
		wheel := append(slices.Clone(desc[len(desc)-4:]), desc[0])
		out = append(out, wheel)
	}
	return out
}

func quads(desc []int) [][]int {
	var out [][]int
	for _, q := range desc {
		for _, k := range without(desc, q) {
			out = append(out, []int{q, q, q, q, k})
		}
	}
	return out
}

func fullHouses(desc []int) [][]int {
	var out [][]int
	for _, t := range desc {
		for _, p := range without(desc, t) {
			out = append(out, []int{t, t, t, p, p})
		}
	}
	return out
}

func trips(desc []int) [][]int {
	var out [][]int
	for _, t := range desc {
		for _, k := range combinations(without(desc, t), 2) {
			out = append(out, append([]int{t, t, t}, k...))
		}
	}
	return out
}

func twoPairs(desc []int) [][]int {
	var out [][]int
	for _, pair := range combinations(desc, 2) {
		hi, lo := pair[0], pair[1]
		for _, k := range without(desc, hi, lo) {
			out = append(out, []int{hi, hi, lo, lo, k})
		}
	}
	return out
}

func onePairs(desc []int) [][]int {
	var out [][]int
	for _, p := range desc {
		for _, k := range combinations(without(desc, p), 3) {
			out = append(out, append([]int{p, p}, k...))
		}
	}
	return out
}
