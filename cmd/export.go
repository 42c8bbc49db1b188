package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ronh/expense"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the category summary report to a CSV file" }
func (*exportCmd) Usage() string {
	return `spend export [-o <file>]

  Writes the per-category summary (totals, counts, averages, first and last
  dates, percentages) plus a final TOTAL row to a CSV report file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "summary_report.csv", "Path of the summary CSV to write")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := expense.ExportSummary(out, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Summary report exported to %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
