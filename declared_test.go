package pricejobs

import (
	"testing"

	"github.com/etnz/pricejobs/date"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDeclaredCurrencies(t *testing.T) {
	f, hook := newTestFinder(t)

	entries := []Directive{
		commodity("2024-01-01", "AAPL", "USD:yahoo/AAPL"),
		commodity("2024-01-02", "INR", "USD:google/^CURRENCY:USDINR CAD:google/^CURRENCY:CADINR"),
		NewCommodity(d("2024-01-03"), "HOOL", map[string]string{MetaQuote: "USD"}),
		NewCommodity(d("2024-01-04"), "NOTHING", nil),
		NewCommodity(d("2024-01-05"), "BOTH", map[string]string{MetaPrice: "EUR:yahoo/BOTH", MetaQuote: "USD"}),
		NewCommodity(d("2024-01-06"), "EMPTY", map[string]string{MetaPrice: "", MetaQuote: "EUR"}),
		commodity("2024-02-01", "LATE", "USD:yahoo/LATE"),
	}

	got := f.FindDeclaredCurrencies(entries, d("2024-02-01"))
	want := []Declared{
		{Pair{"AAPL", "USD"}, []PriceSource{src("yahoo", "AAPL", false)}},
		{Pair{"INR", "CAD"}, []PriceSource{src("google", "CURRENCY:CADINR", true)}},
		{Pair{"INR", "USD"}, []PriceSource{src("google", "CURRENCY:USDINR", true)}},
		{Pair: Pair{"HOOL", "USD"}},
		{Pair{"BOTH", "EUR"}, []PriceSource{src("yahoo", "BOTH", false)}},
		{Pair: Pair{"EMPTY", "EUR"}},
	}
	assert.Equal(t, want, got)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "NOTHING", entry.Data["currency"])
}

func TestFindDeclaredCurrencies_InvalidPrice(t *testing.T) {
	f, hook := newTestFinder(t)

	entries := []Directive{
		commodity("2024-01-01", "AAPL", "USD:nowhere/AAPL"),
		commodity("2024-01-02", "MSFT", "USD:yahoo/MSFT"),
	}
	got := f.FindDeclaredCurrencies(entries, date.Date{})
	assert.Equal(t, []Declared{{Pair{"MSFT", "USD"}, []PriceSource{src("yahoo", "MSFT", false)}}}, got)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "AAPL", entry.Data["currency"])
	assert.Equal(t, d("2024-01-01"), entry.Data["date"])
	assert.Error(t, entry.Data[logrus.ErrorKey].(error))
}

func TestFindDeclaredCurrencies_Duplicates(t *testing.T) {
	f, _ := newTestFinder(t)

	entries := []Directive{
		commodity("2024-01-01", "AAPL", "USD:yahoo/AAPL"),
		commodity("2024-01-02", "AAPL", "USD:google/NASDAQ:AAPL"),
	}
	got := f.FindDeclaredCurrencies(entries, date.Date{})
	assert.Len(t, got, 2, "duplicates are kept in ledger order")
	assert.Equal(t, "google", got[1].Sources[0].Provider.ID)
}
