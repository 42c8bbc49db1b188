package expense

import "github.com/ronh/expense/date"

// TotalRow is the category label of the synthetic grand-total row appended to
// category reports. It is not a real category.
const TotalRow = "TOTAL"

// CategorySummary holds the derived aggregate statistics of one category, or
// of the whole book for the TOTAL row. Summaries are regenerated fresh on
// every report, never mutated.
type CategorySummary struct {
	Category   string
	Total      Amount
	Count      int
	Average    Amount
	FirstDate  date.Date
	LastDate   date.Date
	Percentage Percent // share of the grand total, 100 for the TOTAL row
}

// grandTotal sums all amounts of the ledger.
func grandTotal(l *Ledger) Amount {
	var total Amount
	for _, tx := range l.All() {
		total = total.Add(tx.Amount)
	}
	return total
}
