package pricejobs

import (
	"testing"

	"github.com/etnz/pricejobs/date"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// testProvider is a provider for tests.
type testProvider string

func (p testProvider) Name() string        { return string(p) }
func (p testProvider) Description() string { return "test provider " + string(p) }

// newTestCatalog returns a catalog with "google" and "yahoo" in the default
// namespace, and "acme" and "yahoo" in the global one.
func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	for _, reg := range []struct {
		ns string
		p  Provider
	}{
		{DefaultNamespace, testProvider("google")},
		{DefaultNamespace, testProvider("yahoo")},
		{GlobalNamespace, testProvider("acme")},
		{GlobalNamespace, testProvider("yahoo")},
	} {
		if err := c.Register(reg.ns, reg.p); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(newTestCatalog(t), DefaultNamespace)
}

// newTestFinder returns a finder over the test catalog and a hook recording
// what it logs.
func newTestFinder(t *testing.T) (*Finder, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	f := NewFinder(newTestResolver(t))
	f.Log = log
	return f, hook
}

// d is a shortcut for date.MustParse.
func d(s string) date.Date { return date.MustParse(s) }

// src returns a source resolved in the default namespace.
func src(id, symbol string, invert bool) PriceSource {
	return PriceSource{
		Provider: ProviderRef{Namespace: DefaultNamespace, ID: id, Provider: testProvider(id)},
		Symbol:   symbol,
		Invert:   invert,
	}
}

// USD is a helper for test to create an amount of dollars.
func USD(v float64) Amount { return A(v, "USD") }

// buyAtCost returns a transaction buying units of currency at a per-unit cost.
func buyAtCost(on string, account string, units float64, currency string, cost Amount) Transaction {
	return NewTransaction(d(on), "buy",
		Posting{Account: account, Units: A(units, currency), Cost: &Cost{Number: cost.Number, Currency: cost.Currency}},
		Posting{Account: "Assets:Cash", Units: A(-units*cost.Number.InexactFloat64(), cost.Currency)},
	)
}

// convert returns a transaction converting units of currency at a price.
func convert(on string, account string, units float64, currency string, price Amount) Transaction {
	return NewTransaction(d(on), "convert",
		Posting{Account: account, Units: A(units, currency), Price: &price},
		Posting{Account: "Assets:Cash", Units: A(-units*price.Number.InexactFloat64(), price.Currency)},
	)
}

// commodity returns a Commodity directive with a "price" metadata.
func commodity(on, currency, spec string) Commodity {
	return NewCommodity(d(on), currency, map[string]string{MetaPrice: spec})
}
