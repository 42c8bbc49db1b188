package expense

import (
	"reflect"
	"slices"
	"testing"

	"github.com/ronh/expense/date"
)

// testLedger is the three-row snapshot used by the report tests.
func testLedger() *Ledger {
	return NewLedger(
		NewTransaction(date.MustParse("2025-06-10"), "Food", A(150), "Pizza at Dominos"),
		NewTransaction(date.MustParse("2025-06-11"), "Transport", A(50), "Rickshaw fare"),
		NewTransaction(date.MustParse("2025-06-12"), "Rent", A(5000), "June Rent"),
	)
}

func TestLedgerKeepsEntryOrder(t *testing.T) {
	l := NewLedger()
	// Appended out of date order on purpose: identity is positional.
	l.Append(NewTransaction(date.MustParse("2025-06-12"), "Rent", A(5000), ""))
	l.Append(NewTransaction(date.MustParse("2025-06-10"), "Food", A(150), ""))

	txs := l.Transactions()
	if txs[0].Category != "Rent" || txs[1].Category != "Food" {
		t.Errorf("ledger reordered its rows: %v", txs)
	}
}

func TestTransactionsReturnsCopy(t *testing.T) {
	l := testLedger()
	txs := l.Transactions()
	txs[0].Category = "Hacked"
	if l.Transactions()[0].Category != "Food" {
		t.Error("Transactions() must not alias the internal table")
	}
}

func TestAllWithFilters(t *testing.T) {
	l := testLedger()

	var got []string
	for _, tx := range l.All(ByCategory("Food")) {
		got = append(got, tx.Description)
	}
	if !reflect.DeepEqual(got, []string{"Pizza at Dominos"}) {
		t.Errorf("ByCategory(Food) = %v", got)
	}

	r, err := date.NewRange(date.MustParse("2025-06-10"), date.MustParse("2025-06-11"))
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for range l.All(ByRange(r)) {
		n++
	}
	if n != 2 {
		t.Errorf("ByRange matched %d rows, want 2", n)
	}

	// Every filter must accept: only the Food row falls inside the range.
	var m int
	for range l.All(ByCategory("Food"), ByRange(r)) {
		m++
	}
	if m != 1 {
		t.Errorf("combined filters matched %d rows, want 1", m)
	}
}

func TestCategories(t *testing.T) {
	l := testLedger()
	l.Append(NewTransaction(date.MustParse("2025-06-13"), "Food", A(300), "Grocery shopping"))

	got := slices.Collect(l.Categories())
	want := []string{"Food", "Rent", "Transport"} // sorted, distinct
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestOldestNewestDate(t *testing.T) {
	l := testLedger()
	if got := l.OldestDate(); got.String() != "2025-06-10" {
		t.Errorf("OldestDate() = %s", got)
	}
	if got := l.NewestDate(); got.String() != "2025-06-12" {
		t.Errorf("NewestDate() = %s", got)
	}

	empty := NewLedger()
	if !empty.OldestDate().IsZero() || !empty.NewestDate().IsZero() {
		t.Error("empty ledger must report zero dates")
	}
}
