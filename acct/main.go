// Command acct replays bank account sessions and prints their statements.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/bankaccount/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("acct")

	commander := subcommands.NewCommander(flag.CommandLine, "acct")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the acct command line for shell completion.
func completion() *complete.Command {
	sessions := predict.Files("*.jsonl")
	formats := predict.Set{"text", "markdown", "json"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"demo": {},
			"run": {
				Flags: map[string]complete.Predictor{"f": sessions, "format": formats},
			},
			"query": {
				Flags: map[string]complete.Predictor{"f": sessions, "q": predict.Something},
			},
			"fmt": {
				Flags: map[string]complete.Predictor{"f": sessions, "w": predict.Nothing},
			},
			"topic": {
				Args: predict.Set{"readme", "session", "statement", "query"},
			},
			"help":  {},
			"flags": {},
		},
	}
}
