package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ronh/expense"
	"github.com/ronh/expense/date"
	"github.com/ronh/expense/renderer"
)

type filterCmd struct {
	from string
	to   string
}

func (*filterCmd) Name() string     { return "filter" }
func (*filterCmd) Synopsis() string { return "display expenses within a date range" }
func (*filterCmd) Usage() string {
	return `spend filter -from <date> -to <date>

  Displays the expenses whose date falls within the range, both bounds
  included, followed by the category breakdown of the filtered set.
`
}

func (c *filterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "End date (YYYY-MM-DD)")
}

func (c *filterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := date.Parse(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	filtered, err := expense.FilterByDate(ledger, start, end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	title := fmt.Sprintf("Expenses from %s to %s", start, end)
	doc := renderer.TransactionsMarkdown(title, filtered, *displayCurrency)

	// The breakdown of the filtered subset, like the full category report but
	// with shares relative to the subset's own total.
	if len(filtered) > 0 {
		report, err := expense.NewCategoryReport(expense.NewLedger(filtered...))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		doc += "\n" + renderer.CategoryMarkdown(report, *displayCurrency)
	}

	printMarkdown(doc)
	return subcommands.ExitSuccess
}
