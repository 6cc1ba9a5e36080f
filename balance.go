package pricejobs

import (
	"github.com/etnz/pricejobs/date"
	"github.com/shopspring/decimal"
)

// Position is a number of units of a lot.
type Position struct {
	Lot   Lot
	Units decimal.Decimal
}

// Inventory is the list of positions held in an account.
// It never holds two positions of the same lot, nor empty positions.
type Inventory []Position

// add adds units of lot, merging with an existing position of the same lot.
func (inv Inventory) add(lot Lot, units decimal.Decimal) Inventory {
	key := lot.key()
	for i, pos := range inv {
		if pos.Lot.key() == key {
			inv[i].Units = pos.Units.Add(units)
			return inv
		}
	}
	return append(inv, Position{Lot: lot, Units: units})
}

// compact removes empty positions.
func (inv Inventory) compact() Inventory {
	out := inv[:0]
	for _, pos := range inv {
		if !pos.Units.IsZero() {
			out = append(out, pos)
		}
	}
	return out
}

// Balances are the inventories indexed by account name.
type Balances map[string]Inventory

// BalanceFunc computes account balances from the directives before on.
type BalanceFunc func(entries []Directive, on date.Date) Balances

// ComputeBalances sums the postings of all transactions strictly before on
// (all of them if on is unset) per account and lot. Accounts with nothing left
// are omitted.
//
// Like the scanners, it relies on entries being sorted by date.
func ComputeBalances(entries []Directive, on date.Date) Balances {
	balances := make(Balances)
	for _, entry := range entries {
		if entry.Kind() != KindTransaction {
			continue
		}
		if stop(entry, on) {
			break
		}
		for _, posting := range entry.(Transaction).Postings {
			balances[posting.Account] = balances[posting.Account].add(posting.Lot(), posting.Units.Number)
		}
	}
	for account, inv := range balances {
		if inv = inv.compact(); len(inv) == 0 {
			delete(balances, account)
		} else {
			balances[account] = inv
		}
	}
	return balances
}
