// Package pricing models the rule-driven price adjustment layer of the
// rental domain. A Rule is a named, prioritized adjustment scoped to one toy
// or global, bounded by optional validity and quantity windows. History is
// the append-only audit trail of effective rate changes.
//
// Key business rules:
//   - rules apply in descending priority order; defaults yield to non-defaults
//   - a rule outside its validity or quantity window never applies
//   - history rows are immutable; corrections are new rows
package pricing
