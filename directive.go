package pricejobs

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/pricejobs/date"
)

// Kind enumerates the directive variants the ledger knows about.
type Kind int

const (
	KindOther Kind = iota
	KindOpen
	KindCommodity
	KindTransaction
	KindPrice
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindCommodity:
		return "commodity"
	case KindTransaction:
		return "txn"
	case KindPrice:
		return "price"
	default:
		return "other"
	}
}

// ParseKind parses the directive tag used in the ledger file.
// Unknown tags are KindOther, not an error.
func ParseKind(s string) Kind {
	switch s {
	case "open":
		return KindOpen
	case "commodity":
		return KindCommodity
	case "txn", "transaction":
		return KindTransaction
	case "price":
		return KindPrice
	default:
		return KindOther
	}
}

// Directive is a single dated entry of the ledger.
//
// The set of variants is closed: code dispatches on Kind() and then asserts the
// concrete type (Open, Commodity, Transaction, Price or Other).
type Directive interface {
	Kind() Kind
	When() date.Date
}

type header struct {
	Date date.Date         `json:"date"`
	Meta map[string]string `json:"meta,omitempty"`
}

// When returns the date of the directive.
func (h header) When() date.Date { return h.Date }

// Open opens an account.
type Open struct {
	header
	Account    string   `json:"account"`
	Currencies []string `json:"currencies,omitempty"`
}

func (Open) Kind() Kind { return KindOpen }

// NewOpen returns an Open directive.
func NewOpen(on date.Date, account string, currencies ...string) Open {
	return Open{header: header{Date: on}, Account: account, Currencies: currencies}
}

// Commodity declares a currency. Its "price" and "quote" metadata tell where
// its market price is to be found.
type Commodity struct {
	header
	Currency string `json:"currency"`
}

func (Commodity) Kind() Kind { return KindCommodity }

// NewCommodity returns a Commodity directive with the given metadata.
func NewCommodity(on date.Date, currency string, meta map[string]string) Commodity {
	return Commodity{header: header{Date: on, Meta: meta}, Currency: currency}
}

// Posting is one leg of a transaction.
type Posting struct {
	Account string  `json:"account"`
	Units   Amount  `json:"units"`
	Cost    *Cost   `json:"cost,omitempty"`  // Cost is the per-unit cost when the units are held at cost.
	Price   *Amount `json:"price,omitempty"` // Price is the conversion rate recorded with the posting.
}

// Lot returns the lot the posting adds to or removes from.
func (p Posting) Lot() Lot { return Lot{Currency: p.Units.Currency, Cost: p.Cost} }

// Transaction moves units between accounts.
type Transaction struct {
	header
	Narration string    `json:"narration,omitempty"`
	Postings  []Posting `json:"postings"`
}

func (Transaction) Kind() Kind { return KindTransaction }

// NewTransaction returns a Transaction directive.
func NewTransaction(on date.Date, narration string, postings ...Posting) Transaction {
	return Transaction{header: header{Date: on}, Narration: narration, Postings: postings}
}

// Price records the price of one unit of Currency.
type Price struct {
	header
	Currency string `json:"currency"`
	Amount   Amount `json:"amount"`
}

func (Price) Kind() Kind { return KindPrice }

// NewPrice returns a Price directive.
func NewPrice(on date.Date, currency string, amount Amount) Price {
	return Price{header: header{Date: on}, Currency: currency, Amount: amount}
}

// Other is any directive this package does not interpret (balance, note,
// event, ...). It is kept verbatim so that the ledger round-trips.
type Other struct {
	header
	Tag string          `json:"-"`
	Raw json.RawMessage `json:"-"`
}

func (Other) Kind() Kind { return KindOther }

func (o Other) String() string { return fmt.Sprintf("%s %s", o.Date, o.Tag) }
