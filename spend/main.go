package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/ronh/expense/cmd"
)

func main() {
	// Bash/zsh completion, a no-op outside a completion request.
	completion().Complete("spend")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	book := map[string]complete.Predictor{"file": predict.Files("*.csv")}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"file":     predict.Files("*.csv"),
			"currency": predict.Set{"INR", "EUR", "USD"},
		},
		Sub: map[string]*complete.Command{
			"overview":   {Flags: book},
			"categories": {Flags: book},
			"filter":     {Flags: map[string]complete.Predictor{"from": predict.Nothing, "to": predict.Nothing}},
			"list":       {Flags: book},
			"add":        {Flags: map[string]complete.Predictor{"d": predict.Nothing, "c": predict.Nothing, "a": predict.Nothing, "m": predict.Nothing}},
			"chart":      {Flags: map[string]complete.Predictor{"o": predict.Files("*.png")}},
			"export":     {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"topic":      {},
		},
	}
}
