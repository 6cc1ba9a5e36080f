package pricejobs

import "github.com/etnz/pricejobs/date"

// The scanners below walk the directives in order and stop at the first
// relevant one dated on or after the given date. Directives must therefore be
// sorted by date (see CheckOrder); out of order directives past that point are
// silently ignored. An unset date scans everything.

// stop reports whether a scan bounded by on must stop at d.
func stop(d Directive, on date.Date) bool {
	return !on.IsZero() && !d.When().Before(on)
}

// FindCurrenciesAtCost returns all the (currency, cost currency) pairs ever
// held at cost, whatever the date: it does not look at balances.
func FindCurrenciesAtCost(entries []Directive) Pairs {
	currencies := make(Pairs)
	for _, entry := range entries {
		if entry.Kind() != KindTransaction {
			continue
		}
		for _, posting := range entry.(Transaction).Postings {
			if posting.Cost != nil {
				currencies.Add(Pair{posting.Units.Currency, posting.Cost.Currency})
			}
		}
	}
	return currencies
}

// FindCurrenciesConverted returns the (currency, price currency) pairs of the
// postings converted at a price before on. Postings held at cost are not
// conversions, and Price directives are not included.
func FindCurrenciesConverted(entries []Directive, on date.Date) Pairs {
	currencies := make(Pairs)
	for _, entry := range entries {
		if entry.Kind() != KindTransaction {
			continue
		}
		if stop(entry, on) {
			break
		}
		for _, posting := range entry.(Transaction).Postings {
			if posting.Cost != nil || posting.Price == nil {
				continue
			}
			currencies.Add(Pair{posting.Units.Currency, posting.Price.Currency})
		}
	}
	return currencies
}

// FindCurrenciesPriced returns the (currency, amount currency) pairs of the
// Price directives before on.
func FindCurrenciesPriced(entries []Directive, on date.Date) Pairs {
	currencies := make(Pairs)
	for _, entry := range entries {
		if entry.Kind() != KindPrice {
			continue
		}
		if stop(entry, on) {
			break
		}
		price := entry.(Price)
		currencies.Add(Pair{price.Currency, price.Amount.Currency})
	}
	return currencies
}
