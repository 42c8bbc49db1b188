package expense

import "fmt"

// Percent is a share of the grand total, in the 0..100 range.
type Percent float64

// percentOf computes which percentage of whole the part represents.
// whole must not be zero; callers guard with ErrEmptyLedger first.
func percentOf(part, whole Amount) Percent {
	return Percent(part.value.Div(whole.value).InexactFloat64() * 100)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
