package cmd

import (
	"flag"

	"github.com/etnz/pricejobs/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the pjobs command line, built
// from the global flags and the subcommand flag sets.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		switch c.Name() {
		case "jobs", "fmt":
			sub.Args = predict.Files("*.jsonl")
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append([]string{"readme"}, topics...))
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// flagPredictors returns a predictor for each flag of fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	preds := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			preds[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "format":
			preds[f.Name] = predict.Set{"text", "json", "markdown"}
		case "ledger":
			preds[f.Name] = predict.Files("*.jsonl")
		case "config":
			preds[f.Name] = predict.Files("*.yaml")
		default:
			preds[f.Name] = predict.Something
		}
	})
	return preds
}
