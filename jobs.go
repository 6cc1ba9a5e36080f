package pricejobs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/pricejobs/date"
	"github.com/sirupsen/logrus"
)

// DatedPrice is a price job: the price of one Base in Quote on Date, to be
// fetched from Sources in order.
type DatedPrice struct {
	Base    string    // Base may be empty when the job does not come from the ledger.
	Quote   string    // Quote may be empty as well.
	Date    date.Date // Date is unset to fetch the latest price.
	Sources []PriceSource
}

// Pair returns the job currency pair.
func (p DatedPrice) Pair() Pair { return Pair{p.Base, p.Quote} }

// Compare orders jobs by base, quote and date.
func (p DatedPrice) Compare(q DatedPrice) int {
	if c := p.Pair().Compare(q.Pair()); c != 0 {
		return c
	}
	return p.Date.Compare(q.Date)
}

// Finder derives price jobs from a ledger.
//
// A Finder holds no state between calls: every method is a function of its
// arguments and of the Finder collaborators.
type Finder struct {
	Resolver *Resolver          // Resolver resolves the providers of "price" metadata.
	Balances BalanceFunc        // Balances defaults to ComputeBalances.
	Log      logrus.FieldLogger // Log defaults to the logrus standard logger.
}

// NewFinder returns a Finder resolving providers with r.
func NewFinder(r *Resolver) *Finder {
	return &Finder{Resolver: r, Balances: ComputeBalances}
}

func (f *Finder) logger() logrus.FieldLogger {
	if f.Log == nil {
		return logrus.StandardLogger()
	}
	return f.Log
}

func (f *Finder) balances() BalanceFunc {
	if f.Balances == nil {
		return ComputeBalances
	}
	return f.Balances
}

// JobOptions select the currency pairs to build jobs for.
type JobOptions struct {
	Date       date.Date // Date of the prices, unset for the latest.
	Inactive   bool      // Inactive includes pairs not held on Date.
	Undeclared bool      // Undeclared includes pairs seen in the ledger but not declared.
}

// BuildJobs returns the sorted list of jobs to fetch prices for.
//
// The candidate pairs are the declared ones or, with Undeclared, all the pairs
// ever held at cost, converted or priced. Unless Inactive is set, only the
// pairs active on the date are kept (see FindActiveCurrencies). Pairs without
// declared sources are dropped: there is nowhere to fetch them from.
//
// When a pair is declared several times, the last declaration wins.
func (f *Finder) BuildJobs(entries []Directive, opts JobOptions) []DatedPrice {
	log := f.logger()

	declared := f.FindDeclaredCurrencies(entries, opts.Date)
	sources := make(map[Pair][]PriceSource, len(declared))
	for _, d := range declared {
		sources[d.Pair] = d.Sources
	}

	var currencies Pairs
	if opts.Undeclared {
		atCost := FindCurrenciesAtCost(entries)
		converted := FindCurrenciesConverted(entries, opts.Date)
		priced := FindCurrenciesPriced(entries, opts.Date)
		currencies = atCost.Union(converted, priced)
		logCurrencyList(log, "Currency at cost  ", atCost)
		logCurrencyList(log, "Currency converted", converted)
		logCurrencyList(log, "Currency priced   ", priced)
	} else {
		currencies = make(Pairs, len(sources))
		for pair := range sources {
			currencies.Add(pair)
		}
		logCurrencyList(log, "Currency declared ", currencies)
	}

	if !opts.Inactive {
		active := f.FindActiveCurrencies(entries, opts.Date)
		logCurrencyList(log, "Balance currencies", active)
		currencies = currencies.Intersect(active)
	}

	jobs := make([]DatedPrice, 0, len(currencies))
	for pair := range currencies {
		psources := sources[pair]
		if len(psources) == 0 {
			continue
		}
		jobs = append(jobs, DatedPrice{Base: pair.Base, Quote: pair.Quote, Date: opts.Date, Sources: psources})
	}
	slices.SortFunc(jobs, DatedPrice.Compare)
	return jobs
}

// JobsFromSpecs returns one job per quote currency of each source map
// specification, with no base currency. It is meant for prices requested
// explicitly rather than derived from a ledger.
func (f *Finder) JobsFromSpecs(specs []string, on date.Date) ([]DatedPrice, error) {
	var jobs []DatedPrice
	var errs error
	for _, spec := range specs {
		sm, err := f.Resolver.ParseSourceMap(spec)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("cannot parse %q: %w", spec, err))
			continue
		}
		for _, quote := range sm.Quotes() {
			jobs = append(jobs, DatedPrice{Quote: quote, Date: on, Sources: sm[quote]})
		}
	}
	if errs != nil {
		return nil, errs
	}
	slices.SortStableFunc(jobs, DatedPrice.Compare)
	return jobs, nil
}

// FilterExistingPrices removes the jobs whose price is already recorded by a
// Price directive on the job date. Jobs for the latest price are kept.
func FilterExistingPrices(jobs []DatedPrice, entries []Directive) []DatedPrice {
	type key struct {
		Pair
		on date.Date
	}
	existing := make(map[key]bool)
	for _, entry := range entries {
		if entry.Kind() == KindPrice {
			p := entry.(Price)
			existing[key{Pair{p.Currency, p.Amount.Currency}, p.Date}] = true
		}
	}

	kept := make([]DatedPrice, 0, len(jobs))
	for _, job := range jobs {
		if !job.Date.IsZero() && existing[key{job.Pair(), job.Date}] {
			continue
		}
		kept = append(kept, job)
	}
	return kept
}
