package expense

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// summaryHeader of the exported summary report, in write order.
var summaryHeader = []string{
	"Category", "Total_Amount", "Transaction_Count", "Average_Amount",
	"First_Date", "Last_Date", "Percentage",
}

// ExportSummary writes the category report to w as the external report
// artifact: one CSV row per category plus the final TOTAL row, numeric
// fields at two-decimal precision and dates in ISO form.
func ExportSummary(w io.Writer, l *Ledger) error {
	report, err := NewCategoryReport(l)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("cannot write summary header: %w", err)
	}
	for _, s := range report {
		record := []string{
			s.Category,
			s.Total.String(),
			strconv.Itoa(s.Count),
			s.Average.String(),
			s.FirstDate.String(),
			s.LastDate.String(),
			strconv.FormatFloat(float64(s.Percentage), 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write summary row for %q: %w", s.Category, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
