package pricejobs

import (
	"github.com/etnz/pricejobs/date"
	"github.com/sirupsen/logrus"
)

// Metadata keys read on Commodity directives.
const (
	MetaPrice = "price" // source map specification, see ParseSourceMap.
	MetaQuote = "quote" // quote currency, without any source.
)

// Declared is a currency pair declared by a Commodity directive, with the
// sources to fetch its price from (nil when only a quote was declared).
type Declared struct {
	Pair
	Sources []PriceSource
}

// FindDeclaredCurrencies returns the pairs declared in Commodity directives
// before on.
//
// A "price" metadata declares one pair per quote currency of its source map.
// Otherwise a "quote" metadata declares a single pair without sources.
// Otherwise the directive declares nothing. An invalid "price" is logged and
// the directive skipped.
//
// Pairs declared several times appear several times, in ledger order.
func (f *Finder) FindDeclaredCurrencies(entries []Directive, on date.Date) []Declared {
	var currencies []Declared
	for _, entry := range entries {
		if entry.Kind() != KindCommodity {
			continue
		}
		if stop(entry, on) {
			break
		}
		commodity := entry.(Commodity)
		log := f.logger().WithFields(logrus.Fields{"currency": commodity.Currency, "date": commodity.Date})

		if spec := commodity.Meta[MetaPrice]; spec != "" {
			sm, err := f.Resolver.ParseSourceMap(spec)
			if err != nil {
				log.WithError(err).Warn("ignoring currency with invalid 'price' source")
				continue
			}
			for _, quote := range sm.Quotes() {
				currencies = append(currencies, Declared{Pair{commodity.Currency, quote}, sm[quote]})
			}
			continue
		}

		if quote, ok := commodity.Meta[MetaQuote]; ok {
			currencies = append(currencies, Declared{Pair: Pair{commodity.Currency, quote}})
			continue
		}

		log.Debug("ignoring currency with no metadata")
	}
	return currencies
}
