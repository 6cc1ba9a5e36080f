package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pricejobs"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats ledger files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pjobs fmt [-w] [<ledger.jsonl>...]

  Validates and formats ledger files. This command reads all the directives,
  sorts them by date, and prints them in the canonical JSONL form.
  Without arguments it formats the configured ledger.

  -w  writes the result back to the file instead of stdout.

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "write result to the source file instead of stdout")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := startApp()
	if a == nil {
		return status
	}
	files := f.Args()
	if len(files) == 0 {
		files = []string{a.cfg.Ledger}
	}
	for _, name := range files {
		if err := c.format(a, os.Stdout, name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// format decodes the ledger file and encodes it canonically to w, or back to
// the file with -w. The file is left untouched if it does not decode.
func (c *fmtCmd) format(a *app, w io.Writer, name string) error {
	ledger, err := decodeLedgerFile(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := pricejobs.EncodeLedger(&buf, ledger); err != nil {
		return fmt.Errorf("cannot encode ledger %q: %w", name, err)
	}
	if !c.write {
		_, err := w.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot save ledger: %w", err)
	}
	a.log.WithField("file", name).Infof("formatted %d directives", ledger.Len())
	return nil
}
