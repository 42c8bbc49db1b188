package expense

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/ronh/expense/date"
)

// header of the backing file, in write order.
var header = []string{"Date", "Category", "Amount", "Description"}

// Store owns the canonical transaction table for the process lifetime, with
// the backing CSV file as its durable form.
//
// Single-process cooperative use only: concurrent external edits during a run
// are undefined, the next successful append wins.
type Store struct {
	path   string
	ledger *Ledger
}

// NewStore creates a store bound to the given backing file path. Nothing is
// read until Load is called.
func NewStore(path string) *Store {
	return &Store{path: path, ledger: NewLedger()}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Ledger returns the current in-memory snapshot.
func (s *Store) Ledger() *Ledger { return s.ledger }

// Load reads the backing file into memory and returns the snapshot.
//
// On the very first run, when the file does not exist, it writes a small
// sample book first so the tool always starts with data. A file that exists
// but is malformed yields a *FormatError and no partial table.
func (s *Store) Load() (*Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("backing file %q does not exist, writing a sample book instead", s.path)
		s.ledger = NewLedger(sampleTransactions()...)
		if err := s.save(); err != nil {
			return nil, err
		}
		return s.ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open backing file %q: %w", s.path, err)
	}
	defer f.Close()

	txs, err := DecodeTransactions(s.path, f)
	if err != nil {
		return nil, err
	}
	s.ledger = NewLedger(txs...)
	return s.ledger, nil
}

// Reload discards the in-memory table and re-runs Load's file-read path,
// picking up out-of-band edits to the backing file.
func (s *Store) Reload() (*Ledger, error) { return s.Load() }

// Append validates the record, adds it at the end of the in-memory table and
// rewrites the whole backing file. There is no incremental write: after a
// successful append the file never diverges from memory. A failed validation
// leaves both untouched.
func (s *Store) Append(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	prev := s.ledger
	s.ledger = NewLedger(prev.transactions...)
	s.ledger.Append(tx)
	if err := s.save(); err != nil {
		// A failed write keeps memory consistent with the file's last good state.
		s.ledger = prev
		return err
	}
	return nil
}

// save serializes the whole table fresh into the backing file.
func (s *Store) save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("cannot write backing file %q: %w", s.path, err)
	}
	if err := EncodeTransactions(f, s.ledger.Transactions()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DecodeTransactions reads the backing file format from r. The name is only
// used in error messages.
func DecodeTransactions(name string, r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // length is checked per row to report the line

	head, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{File: name, Reason: "empty file, missing header"}
	}
	if err != nil {
		return nil, &FormatError{File: name, Line: 1, Reason: "unreadable header", Err: err}
	}

	// Resolve the position of each required column.
	columns := make(map[string]int, len(head))
	for i, h := range head {
		columns[h] = i
	}
	for _, required := range header {
		if _, ok := columns[required]; !ok {
			return nil, &FormatError{File: name, Line: 1, Reason: fmt.Sprintf("missing column %q", required)}
		}
	}

	var txs []Transaction
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{File: name, Line: line, Reason: "unreadable row", Err: err}
		}
		if len(record) < len(head) {
			return nil, &FormatError{File: name, Line: line, Reason: fmt.Sprintf("want %d fields, got %d", len(head), len(record))}
		}

		on, err := date.Parse(record[columns["Date"]])
		if err != nil {
			return nil, &FormatError{File: name, Line: line, Reason: "bad date", Err: err}
		}
		amount, err := ParseAmount(record[columns["Amount"]])
		if err != nil {
			return nil, &FormatError{File: name, Line: line, Reason: "bad amount", Err: err}
		}
		txs = append(txs, Transaction{
			Date:        on,
			Category:    record[columns["Category"]],
			Amount:      amount,
			Description: record[columns["Description"]],
		})
	}
	return txs, nil
}

// EncodeTransactions writes the backing file format to w: the header row then
// one row per transaction, dates in ISO form and amounts with two decimals.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, tx := range txs {
		record := []string{tx.Date.String(), tx.Category, tx.Amount.String(), tx.Description}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write transaction row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// sampleTransactions is the built-in book written on first run.
func sampleTransactions() []Transaction {
	return []Transaction{
		{Date: date.MustParse("2025-06-10"), Category: "Food", Amount: A(150), Description: "Pizza at Dominos"},
		{Date: date.MustParse("2025-06-11"), Category: "Transport", Amount: A(50), Description: "Rickshaw fare"},
		{Date: date.MustParse("2025-06-12"), Category: "Rent", Amount: A(5000), Description: "June Rent"},
		{Date: date.MustParse("2025-06-12"), Category: "Utilities", Amount: A(200), Description: "Electricity Bill"},
		{Date: date.MustParse("2025-06-13"), Category: "Food", Amount: A(300), Description: "Grocery shopping"},
		{Date: date.MustParse("2025-06-14"), Category: "Entertainment", Amount: A(800), Description: "Movie tickets"},
		{Date: date.MustParse("2025-06-15"), Category: "Transport", Amount: A(75), Description: "Bus fare"},
	}
}
