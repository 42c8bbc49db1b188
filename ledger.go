package expense

import (
	"iter"
	"maps"
	"slices"

	"github.com/ronh/expense/date"
)

// Ledger is a snapshot of the transaction table, in entry order.
//
// Reports take a Ledger and never mutate it; the only mutation is Append,
// driven by the Store.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger over the given transactions, keeping their order.
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: slices.Clone(txs)}
}

// Append adds transactions at the end of the ledger. Entry order is the
// book's identity, so the ledger is never re-sorted.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transaction table, so callers can never
// alias the ledger's internal state.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// All returns an iterator over transactions in entry order. A transaction is
// yielded only when every filter accepts it; with no filter all rows are
// yielded.
func (l *Ledger) All(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Categories iterates over the distinct category labels present in the
// ledger, in lexical order. Labels are case-sensitive and not normalized.
func (l *Ledger) Categories() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			visited[tx.Category] = struct{}{}
		}
		categories := slices.Collect(maps.Keys(visited))
		slices.Sort(categories)
		for _, category := range categories {
			if !yield(category) {
				return
			}
		}
	}
}

// OldestDate returns the earliest transaction date, or the zero date on an
// empty ledger.
func (l *Ledger) OldestDate() date.Date {
	var oldest date.Date
	for i, tx := range l.transactions {
		if i == 0 || tx.Date.Before(oldest) {
			oldest = tx.Date
		}
	}
	return oldest
}

// NewestDate returns the latest transaction date, or the zero date on an
// empty ledger.
func (l *Ledger) NewestDate() date.Date {
	var newest date.Date
	for _, tx := range l.transactions {
		if tx.Date.After(newest) {
			newest = tx.Date
		}
	}
	return newest
}

// ByCategory returns a predicate that filters transactions by exact category label.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}

// ByRange returns a predicate that filters transactions by date, boundaries included.
func ByRange(r date.Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}
