package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pricejobs"
	"github.com/google/subcommands"
)

type parseCmd struct{}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "checks source map specifications" }
func (*parseCmd) Usage() string {
	return `pjobs parse <source map>...

Parses each source map and prints its canonical form, then one line per
source with the fully qualified provider. Quote currencies that are not ISO
4217 codes are flagged.

Example:

  pjobs parse "USD:google/NASDAQ:AAPL,yahoo/AAPL CAD:yahoo/AAPL.TO"
`
}

func (*parseCmd) SetFlags(f *flag.FlagSet) {}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one source map must be specified.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	a, status := startApp()
	if a == nil {
		return status
	}

	status = subcommands.ExitSuccess
	for _, spec := range f.Args() {
		if err := describeSourceMap(os.Stdout, a.resolver(), spec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
		}
	}
	return status
}

// describeSourceMap parses spec and writes its description to w.
func describeSourceMap(w io.Writer, r *pricejobs.Resolver, spec string) error {
	sm, err := r.ParseSourceMap(spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, sm)
	for _, quote := range sm.Quotes() {
		note := ""
		if !pricejobs.IsISOCurrency(quote) {
			note = " (not an ISO 4217 currency)"
		}
		fmt.Fprintf(w, "  %s%s\n", quote, note)
		for i, s := range sm[quote] {
			invert := ""
			if s.Invert {
				invert = " inverted"
			}
			fmt.Fprintf(w, "    %d. %s %s%s\n", i+1, s.Provider, s.Symbol, invert)
		}
	}
	return nil
}
