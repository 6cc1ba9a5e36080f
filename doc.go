// Package pricejobs derives the list of market prices to fetch from a ledger.
//
// Given the directives of a ledger and a date, it decides which (base, quote)
// currency pairs need a price, and which providers to get each price from.
// Three sources of truth are reconciled:
//   - Declarations: Commodity directives with a "price" metadata holding a
//     source map specification (see Resolver.ParseSourceMap), or a "quote"
//     metadata.
//   - History: pairs held at cost, converted at a price, or priced by Price
//     directives.
//   - Balances: pairs still held on the date (see Finder.FindActiveCurrencies).
//
// The result is a sorted list of DatedPrice jobs, at most one per pair
// (see Finder.BuildJobs). Fetching the prices is left to the caller.
//
// Providers are looked up through a Registry, in a default namespace of
// built-in providers first, then in a global namespace of providers declared
// at startup.
//
// The ledger is a JSONL file (see DecodeLedger). All scans assume directives
// sorted by date, as DecodeLedger returns them.
package pricejobs
