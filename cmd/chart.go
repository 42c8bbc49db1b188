package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ronh/expense"
)

type chartCmd struct {
	outputFile string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a pie chart of category spending" }
func (*chartCmd) Usage() string {
	return `spend chart [-o <file>]

  Renders the share of each category as a pie chart and writes the PNG image.
  The image is regenerated wholesale on each run.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "expense_pie_chart.png", "Path of the PNG image to write")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := expense.RenderPieChart(out, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Pie chart saved as %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
