// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the toy rental system. It
// implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - PriceCalculator: a domain service resolving the effective rental price
//     of a toy from its base rate and a set of prioritized pricing rules
package services
