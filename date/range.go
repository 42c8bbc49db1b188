package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range [from, to]. It returns an error when from is
// after to, so a reversed range can never be constructed.
func NewRange(from, to Date) (Range, error) {
	if from.After(to) {
		return Range{}, fmt.Errorf("invalid range: start %s is after end %s", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range.
func (r Range) Days() int {
	n := 1
	for d := r.From; d.Before(r.To); d = d.Add(1) {
		n++
	}
	return n
}

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
