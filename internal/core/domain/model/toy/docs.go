// Package toy implements the inventory ledger side of the rental domain.
// The Toy aggregate owns the stock and availability counters for a rentable
// toy together with its lifecycle status and per-granularity rental rates.
//
// Key business rules:
//   - 0 <= availableQuantity <= stockQuantity always holds
//   - Reserve is all-or-nothing: insufficient stock mutates nothing
//   - toy status is set by the order lifecycle, never inferred from counters
package toy
