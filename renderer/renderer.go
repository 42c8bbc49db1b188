// Package renderer formats reports as markdown strings, ready to be printed
// through a terminal markdown renderer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ronh/expense"
)

// OverviewMarkdown renders the spending overview report.
func OverviewMarkdown(o *expense.Overview, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Spending Overview")
	doc.PlainText(fmt.Sprintf("Total Amount Spent: %s", o.Total.Display(currency)))
	doc.PlainText(fmt.Sprintf("Total Transactions: %d", o.Count))
	doc.PlainText(fmt.Sprintf("Average Expense: %s", o.Average.Display(currency)))

	doc.H2("Extremes")
	table := md.TableSet{
		Header: []string{"", "Date", "Category", "Amount", "Description"},
		Rows: [][]string{
			{"Highest", o.Max.Date.String(), o.Max.Category, o.Max.Amount.Display(currency), o.Max.Description},
			{"Lowest", o.Min.Date.String(), o.Min.Category, o.Min.Amount.Display(currency), o.Min.Description},
		},
	}
	doc.Table(table)

	return doc.String()
}

// CategoryMarkdown renders the per-category analysis, TOTAL row included.
func CategoryMarkdown(report []expense.CategorySummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Category Analysis")

	rows := make([][]string, 0, len(report))
	for _, s := range report {
		rows = append(rows, []string{
			s.Category,
			s.Total.Display(currency),
			fmt.Sprintf("%d", s.Count),
			s.Average.Display(currency),
			s.Percentage.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Total", "Count", "Average", "Share"},
		Rows:   rows,
	})

	return doc.String()
}

// TransactionsMarkdown renders a list of transactions under the given title,
// with a footer giving the count and the summed amount.
func TransactionsMarkdown(title string, txs []expense.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No expenses found.")
		return doc.String()
	}

	var total expense.Amount
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		total = total.Add(tx.Amount)
		rows = append(rows, []string{tx.Date.String(), tx.Category, tx.Amount.Display(currency), tx.Description})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Category", "Amount", "Description"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d expenses, %s in total.", len(txs), total.Display(currency)))

	return doc.String()
}
