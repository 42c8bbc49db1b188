package expense

import (
	"slices"
	"strings"
)

// NewCategoryReport groups the snapshot by exact category label and derives
// one CategorySummary per category, followed by the synthetic TOTAL row.
//
// Percentages are always relative to the grand total of the given snapshot.
// Ordering is by descending total, ties broken by category name ascending,
// with TOTAL last.
func NewCategoryReport(l *Ledger) ([]CategorySummary, error) {
	if l.Len() == 0 {
		return nil, ErrEmptyLedger
	}

	whole := grandTotal(l)

	var report []CategorySummary
	for category := range l.Categories() {
		s := CategorySummary{Category: category}
		for _, tx := range l.All(ByCategory(category)) {
			s.Total = s.Total.Add(tx.Amount)
			if s.Count == 0 {
				s.FirstDate, s.LastDate = tx.Date, tx.Date
			} else {
				s.FirstDate = s.FirstDate.Min(tx.Date)
				s.LastDate = s.LastDate.Max(tx.Date)
			}
			s.Count++
		}
		s.Average = s.Total.DivInt(s.Count)
		s.Percentage = percentOf(s.Total, whole)
		report = append(report, s)
	}

	slices.SortFunc(report, func(a, b CategorySummary) int {
		switch {
		case a.Total.GreaterThan(b.Total):
			return -1
		case b.Total.GreaterThan(a.Total):
			return 1
		default:
			return strings.Compare(a.Category, b.Category)
		}
	})

	report = append(report, CategorySummary{
		Category:   TotalRow,
		Total:      whole,
		Count:      l.Len(),
		Average:    whole.DivInt(l.Len()),
		FirstDate:  l.OldestDate(),
		LastDate:   l.NewestDate(),
		Percentage: 100,
	})
	return report, nil
}

// CategoryShares maps each category to its share of the grand total, the
// input of the pie chart. Shares sum to 100 within floating-point tolerance.
func CategoryShares(l *Ledger) (map[string]Percent, error) {
	if l.Len() == 0 {
		return nil, ErrEmptyLedger
	}
	whole := grandTotal(l)

	shares := make(map[string]Percent)
	for category := range l.Categories() {
		var total Amount
		for _, tx := range l.All(ByCategory(category)) {
			total = total.Add(tx.Amount)
		}
		shares[category] = percentOf(total, whole)
	}
	return shares, nil
}
