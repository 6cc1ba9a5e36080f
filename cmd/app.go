// Package cmd implements the CLI application to list the prices to fetch for a ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricejobs"
	"github.com/etnz/pricejobs/config"
	"github.com/etnz/pricejobs/sources"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// Commands lists the pjobs subcommands.
var Commands = []subcommands.Command{
	&jobsCmd{},
	&fmtCmd{},
	&parseCmd{},
	&providersCmd{},
	&topicCmd{},
}

// IsCommand reports whether name is a pjobs command, including the
// subcommands builtins (help, flags and commands).
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmd := range Commands {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file (default "+config.DefaultFile+" if it exists)")
var ledgerFile = flag.String("ledger", "", "Path to the ledger file (JSONL format), overrides the configuration")
var verbose = flag.Bool("v", false, "Log debug messages")

// app holds what commands share once the configuration is loaded.
type app struct {
	cfg     config.Config
	log     *logrus.Logger
	catalog *pricejobs.Catalog
}

// newApp loads the application from the global flags.
func newApp() (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *ledgerFile != "" {
		cfg.Ledger = *ledgerFile
	}
	if *verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	return loadApp(cfg)
}

// loadApp creates the logger and the provider catalog described by cfg.
func loadApp(cfg config.Config) (*app, error) {
	log, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, err
	}

	catalog := pricejobs.NewCatalog()
	if err := sources.RegisterBuiltins(catalog, cfg.DefaultNamespace); err != nil {
		return nil, err
	}
	if cfg.ProvidersFile != "" {
		if err := sources.LoadFile(catalog, cfg.ProvidersFile, cfg.ProvidersQuery); err != nil {
			return nil, err
		}
		log.WithField("file", cfg.ProvidersFile).Debug("loaded external providers")
	}
	return &app{cfg: cfg, log: log, catalog: catalog}, nil
}

// resolver returns a resolver looking in the configured default namespace first.
func (a *app) resolver() *pricejobs.Resolver {
	return pricejobs.NewResolver(a.catalog, a.cfg.DefaultNamespace)
}

// finder returns a job finder logging to the app logger.
func (a *app) finder() *pricejobs.Finder {
	f := pricejobs.NewFinder(a.resolver())
	f.Log = a.log
	return f
}

// decodeLedgers reads the directives of all the files, or of the configured
// ledger if none is given. Directives are kept in file order.
func (a *app) decodeLedgers(files ...string) ([]pricejobs.Directive, error) {
	if len(files) == 0 {
		files = []string{a.cfg.Ledger}
	}
	var entries []pricejobs.Directive
	for _, name := range files {
		ledger, err := decodeLedgerFile(name)
		if err != nil {
			return nil, err
		}
		a.log.WithField("file", name).Debugf("read %d directives", ledger.Len())
		entries = append(entries, ledger.Directives()...)
	}
	return entries, nil
}

// decodeLedgerFile decodes a ledger from a JSONL file.
func decodeLedgerFile(name string) (*pricejobs.Ledger, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger: %w", err)
	}
	defer f.Close()

	ledger, err := pricejobs.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger %q: %w", name, err)
	}
	return ledger, nil
}

// startApp is the common prologue of commands: it loads the app or reports
// the error on stderr.
func startApp() (*app, subcommands.ExitStatus) {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return a, subcommands.ExitSuccess
}
