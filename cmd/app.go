// Package cmd implements the CLI application to manage an expense book.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/ronh/expense"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&overviewCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")
	c.Register(&filterCmd{}, "reports")
	c.Register(&listCmd{}, "reports")

	c.Register(&addCmd{}, "book")

	c.Register(&chartCmd{}, "artifacts")
	c.Register(&exportCmd{}, "artifacts")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("file", "expenses.csv", "Path to the expense book CSV file")
var displayCurrency = flag.String("currency", "INR", "ISO currency code used to display amounts in reports")

// openStore binds a store to the app book file.
func openStore() *expense.Store { return expense.NewStore(*bookFile) }

// decodeLedger loads the current snapshot from the app book file, writing the
// sample book first if the file does not exist yet.
func decodeLedger() (*expense.Ledger, error) {
	return openStore().Load()
}

// printMarkdown renders a markdown report on the terminal. When the terminal
// renderer cannot be built the raw markdown is still readable, so it is
// printed as a fallback rather than failing the command.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
