package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pricejobs"
	"github.com/etnz/pricejobs/date"
	"github.com/google/subcommands"
)

type jobsCmd struct {
	on          string
	inactive    bool
	undeclared  bool
	clobber     bool
	expressions bool
	format      string
}

func (*jobsCmd) Name() string     { return "jobs" }
func (*jobsCmd) Synopsis() string { return "lists the prices to fetch for a ledger" }
func (*jobsCmd) Usage() string {
	return `pjobs jobs [-d <date>] [-inactive] [-undeclared] [-clobber] [-format text|json|markdown] [<ledger>...]
pjobs jobs -e <source map>...

Lists the price jobs of the ledgers: one line per currency pair to fetch,
with the ordered list of sources to fetch it from.

Pairs are declared on commodity directives with a "price" metadata, for
instance "USD:yahoo/AAPL". By default only the declared pairs still held on
the date are listed.

With -e the arguments are source maps rather than ledger files, and one job
per quote currency is listed.

See 'pjobs topic jobs' for details.
`
}

func (c *jobsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "Date of the prices (YYYY-MM-DD), latest price if empty")
	f.BoolVar(&c.inactive, "inactive", false, "Include the pairs that are not held on the date")
	f.BoolVar(&c.undeclared, "undeclared", false, "Include the pairs used in the ledger even if not declared")
	f.BoolVar(&c.clobber, "clobber", false, "Include the prices that already exist in the ledger")
	f.BoolVar(&c.expressions, "e", false, "Arguments are source maps instead of ledger files")
	f.StringVar(&c.format, "format", "text", "Output format: text, json or markdown")
}

func (c *jobsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validFormat(c.format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.expressions && f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: -e requires at least one source map.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	a, status := startApp()
	if a == nil {
		return status
	}

	jobs, err := c.jobs(a, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.print(os.Stdout, jobs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// jobs computes the jobs for the arguments.
func (c *jobsCmd) jobs(a *app, args []string) ([]pricejobs.DatedPrice, error) {
	var on date.Date
	if c.on != "" {
		var err error
		if on, err = date.Parse(c.on); err != nil {
			return nil, err
		}
	}

	finder := a.finder()
	if c.expressions {
		return finder.JobsFromSpecs(args, on)
	}

	entries, err := a.decodeLedgers(args...)
	if err != nil {
		return nil, err
	}
	if err := pricejobs.CheckOrder(entries); err != nil {
		var order *pricejobs.OrderError
		if errors.As(err, &order) {
			a.log.WithField("index", order.Index).Warn("ledgers are not in chronological order, sorting them")
		}
		entries = pricejobs.SortDirectives(entries)
	}

	jobs := finder.BuildJobs(entries, pricejobs.JobOptions{
		Date:       on,
		Inactive:   c.inactive,
		Undeclared: c.undeclared,
	})
	if !c.clobber {
		jobs = pricejobs.FilterExistingPrices(jobs, entries)
	}
	return jobs, nil
}

func validFormat(format string) bool {
	switch format {
	case "text", "json", "markdown":
		return true
	}
	return false
}

// print writes the jobs to w in the command format.
func (c *jobsCmd) print(w io.Writer, jobs []pricejobs.DatedPrice) error {
	switch c.format {
	case "json":
		return pricejobs.EncodeJobs(w, jobs)
	case "markdown":
		return printMarkdownTo(w, pricejobs.RenderMarkdown(jobs))
	default:
		for _, job := range jobs {
			if _, err := fmt.Fprintln(w, pricejobs.FormatDatedPrice(job)); err != nil {
				return err
			}
		}
		return nil
	}
}
