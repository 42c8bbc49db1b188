package expense

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ronh/expense/date"
)

func TestOverview(t *testing.T) {
	o, err := NewOverview(testLedger())
	if err != nil {
		t.Fatal(err)
	}

	if o.Total.String() != "5200.00" {
		t.Errorf("Total = %s, want 5200.00", o.Total)
	}
	if o.Count != 3 {
		t.Errorf("Count = %d, want 3", o.Count)
	}
	if o.Average.String() != "1733.33" {
		t.Errorf("Average = %s, want 1733.33", o.Average)
	}
	if o.Max.Category != "Rent" {
		t.Errorf("Max = %+v, want the Rent row", o.Max)
	}
	if o.Min.Category != "Transport" {
		t.Errorf("Min = %+v, want the Transport row", o.Min)
	}
}

func TestOverviewEmptyLedger(t *testing.T) {
	if _, err := NewOverview(NewLedger()); !errors.Is(err, ErrEmptyLedger) {
		t.Errorf("error = %v, want ErrEmptyLedger", err)
	}
}

func TestOverviewTieBreak(t *testing.T) {
	l := NewLedger(
		NewTransaction(date.MustParse("2025-06-10"), "Food", A(100), "first"),
		NewTransaction(date.MustParse("2025-06-11"), "Transport", A(100), "second"),
	)
	o, err := NewOverview(l)
	if err != nil {
		t.Fatal(err)
	}
	// Both rows share the extreme amounts: the first occurrence wins.
	if o.Max.Description != "first" || o.Min.Description != "first" {
		t.Errorf("tie-break picked max=%q min=%q, want first row for both", o.Max.Description, o.Min.Description)
	}
}

func TestCategoryReport(t *testing.T) {
	report, err := NewCategoryReport(testLedger())
	if err != nil {
		t.Fatal(err)
	}

	var categories []string
	for _, s := range report {
		categories = append(categories, s.Category)
	}
	want := []string{"Rent", "Food", "Transport", TotalRow}
	if !reflect.DeepEqual(categories, want) {
		t.Fatalf("ordering = %v, want %v", categories, want)
	}

	rent := report[0]
	if rent.Total.String() != "5000.00" || rent.Count != 1 || rent.Average.String() != "5000.00" {
		t.Errorf("Rent row = %+v", rent)
	}
	if rent.Percentage.String() != "96.15%" {
		t.Errorf("Rent share = %s, want 96.15%%", rent.Percentage)
	}
	if report[1].Percentage.String() != "2.88%" {
		t.Errorf("Food share = %s, want 2.88%%", report[1].Percentage)
	}
	if report[2].Percentage.String() != "0.96%" {
		t.Errorf("Transport share = %s, want 0.96%%", report[2].Percentage)
	}

	total := report[len(report)-1]
	if total.Total.String() != "5200.00" || total.Count != 3 || total.Average.String() != "1733.33" {
		t.Errorf("TOTAL row = %+v", total)
	}
	if !total.Percentage.Equal(100) {
		t.Errorf("TOTAL share = %s, want 100%%", total.Percentage)
	}
	if total.FirstDate.String() != "2025-06-10" || total.LastDate.String() != "2025-06-12" {
		t.Errorf("TOTAL dates = %s..%s", total.FirstDate, total.LastDate)
	}
}

func TestCategoryReportFirstLastDates(t *testing.T) {
	l := testLedger()
	l.Append(NewTransaction(date.MustParse("2025-06-13"), "Food", A(300), "Grocery shopping"))

	report, err := NewCategoryReport(l)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range report {
		if s.Category != "Food" {
			continue
		}
		if s.Count != 2 || s.FirstDate.String() != "2025-06-10" || s.LastDate.String() != "2025-06-13" {
			t.Errorf("Food row = %+v", s)
		}
		return
	}
	t.Fatal("no Food row in report")
}

func TestCategoryReportTieOrdering(t *testing.T) {
	l := NewLedger(
		NewTransaction(date.MustParse("2025-06-10"), "Zoo", A(100), ""),
		NewTransaction(date.MustParse("2025-06-10"), "Art", A(100), ""),
	)
	report, err := NewCategoryReport(l)
	if err != nil {
		t.Fatal(err)
	}
	if report[0].Category != "Art" || report[1].Category != "Zoo" {
		t.Errorf("equal totals must order by name: %v, %v", report[0].Category, report[1].Category)
	}
}

// TestCategoryReportReconciles checks the cross-report invariants: category
// totals sum to the overview total, and shares sum to 100.
func TestCategoryReportReconciles(t *testing.T) {
	l := NewLedger(sampleTransactions()...)

	o, err := NewOverview(l)
	if err != nil {
		t.Fatal(err)
	}
	report, err := NewCategoryReport(l)
	if err != nil {
		t.Fatal(err)
	}

	var total Amount
	var share Percent
	var count int
	for _, s := range report {
		if s.Category == TotalRow {
			continue
		}
		total = total.Add(s.Total)
		share += s.Percentage
		count += s.Count
	}
	if !total.Equal(o.Total) {
		t.Errorf("category totals sum to %s, overview total is %s", total, o.Total)
	}
	if !share.Equal(100) {
		t.Errorf("shares sum to %s, want 100%%", share)
	}
	if count != o.Count {
		t.Errorf("category counts sum to %d, overview count is %d", count, o.Count)
	}
}

func TestCategoryShares(t *testing.T) {
	shares, err := CategoryShares(testLedger())
	if err != nil {
		t.Fatal(err)
	}
	if len(shares) != 3 {
		t.Fatalf("shares = %v, want 3 categories", shares)
	}

	var sum Percent
	for _, p := range shares {
		sum += p
	}
	if !sum.Equal(100) {
		t.Errorf("shares sum to %s, want 100%%", sum)
	}
	if !shares["Rent"].Equal(Percent(5000.0 / 5200.0 * 100)) {
		t.Errorf("Rent share = %s", shares["Rent"])
	}

	if _, err := CategoryShares(NewLedger()); !errors.Is(err, ErrEmptyLedger) {
		t.Errorf("empty ledger error = %v, want ErrEmptyLedger", err)
	}
}

func TestFilterByDate(t *testing.T) {
	l := testLedger()

	got, err := FilterByDate(l, date.MustParse("2025-06-11"), date.MustParse("2025-06-11"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Category != "Transport" {
		t.Errorf("single day filter = %+v, want the Transport row", got)
	}

	// Inclusive on both bounds.
	got, err = FilterByDate(l, date.MustParse("2025-06-10"), date.MustParse("2025-06-12"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("full range filter matched %d rows, want 3", len(got))
	}

	// Empty result is not an error.
	got, err = FilterByDate(l, date.MustParse("2025-07-01"), date.MustParse("2025-07-31"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("out of range filter = %+v, want empty", got)
	}
}

func TestFilterByDateRejectsReversedRange(t *testing.T) {
	_, err := FilterByDate(testLedger(), date.MustParse("2025-06-12"), date.MustParse("2025-06-10"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error is %T, want *ValidationError", err)
	}
}

// TestFilterByDateIdempotent filters an already-filtered result by the same
// bounds and expects the same sequence back.
func TestFilterByDateIdempotent(t *testing.T) {
	l := NewLedger(sampleTransactions()...)
	start, end := date.MustParse("2025-06-11"), date.MustParse("2025-06-13")

	once, err := FilterByDate(l, start, end)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := FilterByDate(NewLedger(once...), start, end)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

// TestReportsDoNotMutate runs every report against the same ledger and checks
// the snapshot afterwards.
func TestReportsDoNotMutate(t *testing.T) {
	l := testLedger()
	before := l.Transactions()

	if _, err := NewOverview(l); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCategoryReport(l); err != nil {
		t.Fatal(err)
	}
	if _, err := CategoryShares(l); err != nil {
		t.Fatal(err)
	}
	if _, err := FilterByDate(l, date.MustParse("2025-06-10"), date.MustParse("2025-06-12")); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(before, l.Transactions()) {
		t.Error("a report mutated the ledger")
	}
}
