// Package sources holds the catalogue of price providers known to the program.
//
// Built-in providers are registered in the default namespace. Providers
// declared in a JSON file are registered in the global namespace, so that a
// short id in a source specification finds the built-in one first.
package sources

import (
	"fmt"

	"github.com/etnz/pricejobs"
)

// builtin is a provider shipped with the program.
type builtin struct {
	name        string
	description string
}

func (b builtin) Name() string        { return b.name }
func (b builtin) Description() string { return b.description }

// Builtins are the providers of the default namespace.
var Builtins = []pricejobs.Provider{
	builtin{"coinbase", "Coinbase exchange rates for crypto currencies"},
	builtin{"google", "Google Finance quotes, e.g. NASDAQ:AAPL or CURRENCY:USDINR"},
	builtin{"iex", "IEX Cloud stock quotes"},
	builtin{"oanda", "OANDA foreign exchange rates, e.g. USD_CAD"},
	builtin{"quandl", "Quandl datasets, e.g. WIKI:AAPL"},
	builtin{"tsp", "US Thrift Savings Plan fund prices"},
	builtin{"yahoo", "Yahoo Finance quotes, e.g. AAPL or AAPL.TO"},
}

// RegisterBuiltins registers the built-in providers in namespace.
func RegisterBuiltins(c *pricejobs.Catalog, namespace string) error {
	for _, p := range Builtins {
		if err := c.Register(namespace, p); err != nil {
			return fmt.Errorf("cannot register built-in provider: %w", err)
		}
	}
	return nil
}
