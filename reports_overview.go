package expense

// Overview provides the at-a-glance statistics of the whole book: totals and
// both extreme transactions.
type Overview struct {
	Total   Amount
	Count   int
	Average Amount
	Max     Transaction // largest amount, first occurrence wins ties
	Min     Transaction // smallest amount, first occurrence wins ties
}

// NewOverview computes the overview of a snapshot. The average of an empty
// book is undefined, so an empty snapshot yields ErrEmptyLedger rather than
// a report full of zeros.
func NewOverview(l *Ledger) (*Overview, error) {
	if l.Len() == 0 {
		return nil, ErrEmptyLedger
	}

	o := &Overview{Count: l.Len()}
	for i, tx := range l.All() {
		o.Total = o.Total.Add(tx.Amount)
		// Strict comparisons keep the first occurrence on ties.
		if i == 0 || tx.Amount.GreaterThan(o.Max.Amount) {
			o.Max = tx
		}
		if i == 0 || tx.Amount.LessThan(o.Min.Amount) {
			o.Min = tx
		}
	}
	o.Average = o.Total.DivInt(o.Count)
	return o, nil
}
