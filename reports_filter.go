package expense

import "github.com/ronh/expense/date"

// FilterByDate returns the transactions whose date falls in [start, end],
// both bounds included, preserving table order.
//
// A reversed range is a *ValidationError; a range that matches nothing is an
// empty result, not an error.
func FilterByDate(l *Ledger, start, end date.Date) ([]Transaction, error) {
	r, err := date.NewRange(start, end)
	if err != nil {
		return nil, &ValidationError{Field: "date range", Reason: err.Error()}
	}

	filtered := make([]Transaction, 0)
	for _, tx := range l.All(ByRange(r)) {
		filtered = append(filtered, tx)
	}
	return filtered, nil
}
