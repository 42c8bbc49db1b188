package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ronh/expense"
	"github.com/ronh/expense/renderer"
)

type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display total spending, average and extremes" }
func (*overviewCmd) Usage() string {
	return `spend overview

  Displays the spending overview of the whole book: total amount, number of
  transactions, average expense, and the highest and lowest expenses.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	overview, err := expense.NewOverview(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OverviewMarkdown(overview, *displayCurrency))
	return subcommands.ExitSuccess
}
