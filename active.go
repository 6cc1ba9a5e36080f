package pricejobs

import "github.com/etnz/pricejobs/date"

// FindActiveCurrencies returns the pairs relevant on the given date, computed
// from the account balances before that date.
//
// Lots held at cost give their (currency, cost currency) pair directly. For
// the other currencies on the books, the quote currency is not known: it is
// taken from every conversion or Price directive seen so far having this
// currency as base.
func (f *Finder) FindActiveCurrencies(entries []Directive, on date.Date) Pairs {
	currencies := make(Pairs)
	onBooks := make(map[string]bool)
	for _, inv := range f.balances()(entries, on) {
		for _, pos := range inv {
			if pos.Lot.Cost != nil {
				currencies.Add(Pair{pos.Lot.Currency, pos.Lot.Cost.Currency})
			} else {
				onBooks[pos.Lot.Currency] = true
			}
		}
	}

	converted := FindCurrenciesConverted(entries, on).Union(FindCurrenciesPriced(entries, on))
	for pair := range converted {
		if onBooks[pair.Base] {
			currencies.Add(pair)
		}
	}
	return currencies
}
