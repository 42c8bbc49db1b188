package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ronh/expense"
	"github.com/ronh/expense/date"
)

type addCmd struct {
	date        string
	category    string
	amount      string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense in the book" }
func (*addCmd) Usage() string {
	return `spend add [-d <date>] -c <category> -a <amount> [-m <description>]

  Validates and appends a new expense, then rewrites the backing file so it
  never diverges from memory. The amount must be strictly positive.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Expense date (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "Expense category (Food, Transport, Rent, ...)")
	f.StringVar(&c.amount, "a", "", "Expense amount, a positive decimal")
	f.StringVar(&c.description, "m", "", "An optional description for the expense")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := expense.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	if _, err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	tx := expense.NewTransaction(on, c.category, amount, c.description)
	if err := store.Append(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully added %s %s (%s) to %s\n", tx.Category, tx.Amount, tx.Date, store.Path())
	return subcommands.ExitSuccess
}
