package pricejobs

import (
	"cmp"
	"iter"
	"maps"
	"regexp"
	"slices"
)

// CurrencyPattern matches a currency or commodity name: uppercase, starting
// with a letter, ending with a letter or digit, at most 24 characters.
const CurrencyPattern = `[A-Z][A-Z0-9'._\-]{0,22}[A-Z0-9]`

var currencyRe = regexp.MustCompile(`^` + CurrencyPattern + `$`)

// IsCurrency reports whether s is a valid currency name.
func IsCurrency(s string) bool { return currencyRe.MatchString(s) }

// Pair is a (base, quote) currency pair: the price of one Base in Quote.
// The direction matters, USD/CAD and CAD/USD are different pairs.
type Pair struct {
	Base  string
	Quote string
}

func (p Pair) String() string { return p.Base + " / " + p.Quote }

// Compare orders pairs by base then quote.
func (p Pair) Compare(q Pair) int {
	if c := cmp.Compare(p.Base, q.Base); c != 0 {
		return c
	}
	return cmp.Compare(p.Quote, q.Quote)
}

// Pairs is a set of currency pairs.
type Pairs map[Pair]struct{}

// NewPairs returns a set holding the given pairs.
func NewPairs(pairs ...Pair) Pairs {
	s := make(Pairs, len(pairs))
	for _, p := range pairs {
		s.Add(p)
	}
	return s
}

// Add adds p to the set.
func (s Pairs) Add(p Pair) { s[p] = struct{}{} }

// Has reports whether p is in the set.
func (s Pairs) Has(p Pair) bool {
	_, ok := s[p]
	return ok
}

// Union returns a new set with the pairs of s and all others.
func (s Pairs) Union(others ...Pairs) Pairs {
	u := maps.Clone(s)
	if u == nil {
		u = make(Pairs)
	}
	for _, o := range others {
		maps.Copy(u, o)
	}
	return u
}

// Intersect returns a new set with the pairs both in s and o.
func (s Pairs) Intersect(o Pairs) Pairs {
	i := make(Pairs)
	for p := range s {
		if o.Has(p) {
			i.Add(p)
		}
	}
	return i
}

// Sorted returns the pairs in base, quote order.
func (s Pairs) Sorted() []Pair {
	return slices.SortedFunc(maps.Keys(s), Pair.Compare)
}

// All iterates over the pairs in base, quote order.
func (s Pairs) All() iter.Seq[Pair] {
	return slices.Values(s.Sorted())
}
