// Package expense implements a single-user expense book backed by a CSV
// file.
//
// The [Store] owns the canonical list of transactions and keeps the backing
// file consistent with memory: loading bootstraps a sample book on first run,
// and every successful append rewrites the whole file.
//
// Reports ([NewOverview], [NewCategoryReport], [FilterByDate],
// [CategoryShares]) are pure functions of a [Ledger] snapshot: they never
// retain or mutate state between calls.
package expense
