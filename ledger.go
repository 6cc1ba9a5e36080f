package pricejobs

import (
	"iter"
	"slices"
	"sort"
)

// Ledger represents a list of directives.
//
// In a Ledger directives are always in chronological order.
type Ledger struct {
	directives []Directive
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{directives: make([]Directive, 0)}
}

// Append appends directives to this ledger and maintains the chronological order.
func (l *Ledger) Append(ds ...Directive) {
	l.directives = append(l.directives, ds...)
	l.stableSort()
}

// Len returns the number of directives.
func (l *Ledger) Len() int { return len(l.directives) }

// Directives returns a copy of the directives, sorted by date.
func (l *Ledger) Directives() []Directive { return slices.Clone(l.directives) }

// All returns an iterator over the directives of the given kinds, or all of
// them when no kind is given.
func (l *Ledger) All(kinds ...Kind) iter.Seq2[int, Directive] {
	return func(yield func(int, Directive) bool) {
		for i, d := range l.directives {
			if len(kinds) > 0 && !slices.Contains(kinds, d.Kind()) {
				continue
			}
			if !yield(i, d) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by directive date. The sort is stable, meaning
// directives on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.directives, func(i, j int) bool {
		return l.directives[i].When().Before(l.directives[j].When())
	})
}

// SortDirectives returns a copy of entries stably sorted by date.
func SortDirectives(entries []Directive) []Directive {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Directive) int { return a.When().Compare(b.When()) })
	return sorted
}

// CheckOrder returns an *OrderError for the first directive dated before its
// predecessor, nil if entries are sorted.
func CheckOrder(entries []Directive) error {
	for i := 1; i < len(entries); i++ {
		if prev, next := entries[i-1].When(), entries[i].When(); next.Before(prev) {
			return &OrderError{Index: i, Prev: prev, Next: next}
		}
	}
	return nil
}
