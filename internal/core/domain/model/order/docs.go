// Package order provides domain entities and business logic for rental order
// management. It implements the Order aggregate root with its Item and
// Delivery child records and the order status state machine.
//
// The package includes:
//   - Order: the aggregate root owning order identity, totals, and children
//   - Item: one rented toy line with a locked-in price snapshot
//   - Delivery: one scheduled trip with a recipient snapshot
//   - Status: the state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - orders are created in Confirmed status and advance forward only
//   - Cancelled is reachable only from Draft or Confirmed
//   - item prices are locked at creation and never recomputed
//   - the total amount is the sum of the locked line totals
package order
