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

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display the per-category spending analysis" }
func (*categoriesCmd) Usage() string {
	return `spend categories

  Groups the book by category and displays total, count, average and share of
  overall spending per category, ordered by descending total, with a final
  TOTAL row.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	report, err := expense.NewCategoryReport(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CategoryMarkdown(report, *displayCurrency))
	return subcommands.ExitSuccess
}
