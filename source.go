package pricejobs

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// PriceSource tells where to fetch a price from.
type PriceSource struct {
	Provider ProviderRef
	Symbol   string // Symbol is the ticker in the provider's universe.
	Invert   bool   // Invert is true when the fetched rate must be inverted (1/x).
}

// String returns the source in the specification syntax "<provider>/[^]<symbol>".
func (s PriceSource) String() string {
	inv := ""
	if s.Invert {
		inv = "^"
	}
	return s.Provider.ID + "/" + inv + s.Symbol
}

// SourceMap maps quote currencies to their ordered list of sources, first one
// to be tried first.
type SourceMap map[string][]PriceSource

// Quotes returns the quote currencies in alphabetical order.
func (m SourceMap) Quotes() []string { return slices.Sorted(maps.Keys(m)) }

// String returns the canonical specification of the map: clauses sorted by
// quote currency, separated by ";". Parsing it again yields the same map.
func (m SourceMap) String() string {
	clauses := make([]string, 0, len(m))
	for _, quote := range m.Quotes() {
		sources := make([]string, len(m[quote]))
		for i, s := range m[quote] {
			sources[i] = s.String()
		}
		clauses = append(clauses, quote+":"+strings.Join(sources, ","))
	}
	return strings.Join(clauses, ";")
}

// providerPattern matches a provider id. It starts with a letter.
const providerPattern = `[a-zA-Z]+[a-zA-Z0-9.]+`

var (
	clauseRe   = regexp.MustCompile(`^(` + CurrencyPattern + `):(.*)$`)
	sourceRe   = regexp.MustCompile(`^(` + providerPattern + `)/(\^?)([a-zA-Z0-9:_\-.]+)$`)
	providerRe = regexp.MustCompile(`^` + providerPattern + `$`)
)

// IsProviderID reports whether id can be used as a provider id in a source
// specification.
func IsProviderID(id string) bool { return providerRe.MatchString(id) }

// ParseSourceMap parses a source map specification:
//
//	<currency1>:<source1>,<source2>,... <currency2>:<source1>,...
//
// Clauses are separated by whitespace or ";". Each source follows the
// ParseSingleSource syntax. For example, for prices of AAPL in USD:
//
//	USD:google/NASDAQ:AAPL,yahoo/AAPL
//
// Or for the exchange rate of INR in USD and in CAD:
//
//	USD:google/^CURRENCY:USDINR CAD:google/^CURRENCY:CADINR
//
// Clauses for the same currency accumulate their sources.
func (r *Resolver) ParseSourceMap(spec string) (SourceMap, error) {
	clauses := strings.FieldsFunc(spec, func(c rune) bool { return c == ';' || unicode.IsSpace(c) })
	if len(clauses) == 0 {
		return nil, &InvalidSpecError{Spec: spec, Reason: "empty source map"}
	}

	sm := make(SourceMap)
	for _, clause := range clauses {
		match := clauseRe.FindStringSubmatch(clause)
		if match == nil {
			return nil, &InvalidSpecError{Spec: clause, Reason: "want <currency>:<source>,..."}
		}
		currency, sources := match[1], match[2]
		for _, s := range strings.Split(sources, ",") {
			src, err := r.ParseSingleSource(s)
			if err != nil {
				return nil, err
			}
			sm[currency] = append(sm[currency], src)
		}
	}
	return sm, nil
}

// ParseSingleSource parses a single source "<provider>/[^]<symbol>".
//
// The provider is resolved first in the resolver namespace, then in the
// global one. A leading "^" on the symbol means the rate must be inverted.
func (r *Resolver) ParseSingleSource(source string) (PriceSource, error) {
	match := sourceRe.FindStringSubmatch(source)
	if match == nil {
		return PriceSource{}, &InvalidSpecError{Spec: source, Reason: "want <provider>/[^]<symbol>"}
	}
	id, invert, symbol := match[1], match[2], match[3]
	ref, err := r.ResolveProvider(id)
	if err != nil {
		return PriceSource{}, &InvalidSpecError{Spec: source, Reason: "unknown provider", Err: err}
	}
	return PriceSource{Provider: ref, Symbol: symbol, Invert: invert != ""}, nil
}
