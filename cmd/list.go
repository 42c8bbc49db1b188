package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/ronh/expense"
	"github.com/ronh/expense/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all expenses, newest first" }
func (*listCmd) Usage() string {
	return `spend list

  Displays every expense in the book, newest first, with the total count and
  amount. Always reflects the file's current contents.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	// Display order only: the book itself keeps entry order.
	txs := ledger.Transactions()
	slices.SortStableFunc(txs, func(a, b expense.Transaction) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case b.Date.After(a.Date):
			return 1
		default:
			return 0
		}
	})

	printMarkdown(renderer.TransactionsMarkdown("All Expenses", txs, *displayCurrency))
	return subcommands.ExitSuccess
}
