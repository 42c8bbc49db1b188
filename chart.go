package expense

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderPieChart draws the category shares of the snapshot as a pie chart
// and writes the PNG image to w. The artifact is regenerated wholesale on
// each call.
//
// Slices are ordered by descending category total and labelled with the
// category name and its share of the grand total.
func RenderPieChart(w io.Writer, l *Ledger) error {
	report, err := NewCategoryReport(l)
	if err != nil {
		return err
	}

	values := make([]chart.Value, 0, len(report))
	for _, s := range report {
		if s.Category == TotalRow {
			continue
		}
		values = append(values, chart.Value{
			Value: s.Total.AsFloat(),
			Label: fmt.Sprintf("%s (%.1f%%)", s.Category, float64(s.Percentage)),
		})
	}

	pie := chart.PieChart{
		Title:  "Expense Distribution by Category",
		Width:  800,
		Height: 600,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("cannot render pie chart: %w", err)
	}
	return nil
}
