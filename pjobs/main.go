// Command pjobs lists the market prices to fetch for a ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pricejobs/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("pjobs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// Unknown commands are looked up as pjobs-<command> extensions.
	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
