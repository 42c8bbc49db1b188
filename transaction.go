package expense

import "github.com/ronh/expense/date"

// Transaction is one recorded expense. Transactions have no identifier:
// identity is positional, the row order in the backing file. They are never
// updated or deleted in place, the only mutation of the book is append.
type Transaction struct {
	Date        date.Date
	Category    string
	Amount      Amount
	Description string // free text, may be empty
}

// NewTransaction builds a transaction record. It does not validate: call
// [Transaction.Validate] before persisting.
func NewTransaction(on date.Date, category string, amount Amount, description string) Transaction {
	return Transaction{Date: on, Category: category, Amount: amount, Description: description}
}

// Validate checks the record against the book's invariants: a set date, a
// non-empty category and a strictly positive amount. It returns a
// *ValidationError describing the first failing field.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "missing or unparseable"}
	}
	if t.Category == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if !t.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be positive, got " + t.Amount.String()}
	}
	return nil
}

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Category == o.Category &&
		t.Amount.Equal(o.Amount) &&
		t.Description == o.Description
}
