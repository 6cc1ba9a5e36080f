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

type providersCmd struct{}

func (*providersCmd) Name() string     { return "providers" }
func (*providersCmd) Synopsis() string { return "lists the known price providers" }
func (*providersCmd) Usage() string {
	return `pjobs providers

Lists the providers that can be used in source maps, by fully qualified
name: built-in ones first, then the ones declared in the providers file.
`
}

func (*providersCmd) SetFlags(f *flag.FlagSet) {}

func (c *providersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := startApp()
	if a == nil {
		return status
	}
	listProviders(os.Stdout, a.catalog)
	return subcommands.ExitSuccess
}

func listProviders(w io.Writer, c *pricejobs.Catalog) {
	for ref := range c.All() {
		fmt.Fprintf(w, "%-20s %s\n", ref, ref.Provider.Description())
	}
}
