package pricejobs

import (
	"github.com/Rhymond/go-money"
	"github.com/etnz/pricejobs/date"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a number of units of a currency or commodity.
type Amount struct {
	Number   decimal.Decimal `json:"number"`
	Currency string          `json:"currency"`
}

// A returns an Amount of value units of currency.
func A[T float64 | int | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{Number: newDecimal(value), Currency: currency}
}

// IsZero reports whether the amount has no units.
func (a Amount) IsZero() bool { return a.Number.IsZero() }

// Equal reports whether a and b are the same number of the same currency.
func (a Amount) Equal(b Amount) bool { return a.Currency == b.Currency && a.Number.Equal(b.Number) }

// String returns the ledger notation "<number> <currency>".
//
// ISO 4217 currencies are printed with their standard number of fraction
// digits, anything else (stocks, funds, crypto) with all its digits.
func (a Amount) String() string {
	if cur := money.GetCurrency(a.Currency); cur != nil {
		return a.Number.StringFixed(int32(cur.Fraction)) + " " + a.Currency
	}
	return a.Number.String() + " " + a.Currency
}

// IsISOCurrency reports whether code is a known ISO 4217 currency.
func IsISOCurrency(code string) bool { return money.GetCurrency(code) != nil }

// Cost is the per-unit acquisition cost of a lot.
type Cost struct {
	Number   decimal.Decimal `json:"number"`
	Currency string          `json:"currency"`
	Date     date.Date       `json:"date,omitzero"`
}

// Lot is a currency, optionally held at a cost in another currency.
type Lot struct {
	Currency string
	Cost     *Cost
}

// key identifies the lot inside an inventory. Two lots with the same currency
// and the same cost (number, currency and date) are the same lot.
func (l Lot) key() string {
	if l.Cost == nil {
		return l.Currency
	}
	return l.Currency + "{" + l.Cost.Number.String() + " " + l.Cost.Currency + " " + l.Cost.Date.String() + "}"
}
