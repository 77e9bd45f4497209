// Package finances provides the state management core for a local-first
// personal-finance tracker: monthly budgets (incomes, fixed bills, card and
// miscellaneous expenses, invested amount), a 24-month piggy-bank savings
// tracker, a multi-category investment portfolio, and an installment-plan
// book.
//
// All state lives in a single versioned JSON document (the app document)
// mirrored to durable local storage and mediated by a Store:
//   - Loading is total: a missing, malformed or wrong-version document is
//     silently replaced by defaults, and every nested record is normalized
//     field by field so partially shaped documents keep working.
//   - All writes funnel through a single Update entry point that re-stamps
//     the document metadata, persists best-effort, and notifies subscribers.
//   - Derived figures (month totals, month-over-month deltas, category
//     breakdowns, portfolio profit) are pure functions over snapshot values
//     and are never stored.
//
// This package serves as the foundational logic for the `fin` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package finances
