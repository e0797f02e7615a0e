package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatusTransition is returned for any status change the transition
// table does not permit. It signals a workflow error on the caller's side and
// is never absorbed silently.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of a rental order.
//
// The lifecycle advances through a fixed sequence and never regresses:
//
//	Draft -> Confirmed -> Preparing -> Shipping -> Delivered
//	      -> Returning -> Returned -> Completed
//
// Intermediate steps may be skipped (a depot may mark a confirmed order
// delivered directly), but the direction of the sequence is absolute.
// Cancelled is reachable only from Draft or Confirmed; Completed and
// Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is an unchecked-out cart. The creation path never produces it,
	// but persisted drafts participate in the lifecycle.
	Draft

	// Confirmed is the initial status of every created order. Stock is held
	// from this point on.
	Confirmed

	// Preparing means the order is being picked and packed. Administrative
	// only, no inventory effect.
	Preparing

	// Shipping means the order is on a vehicle. Administrative only.
	Shipping

	// Delivered means the customer has received the toys.
	Delivered

	// Returning means the return trip has started. Administrative only.
	Returning

	// Returned means the toys are back at the depot.
	Returned

	// Completed closes the order and releases all held stock.
	Completed

	// Cancelled aborts the order before fulfilment starts and releases
	// all held stock.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Shipping:  "Shipping",
		Delivered: "Delivered",
		Returning: "Returning",
		Returned:  "Returned",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Shipping:  "Shipping",
		Delivered: "Delivered",
		Returning: "Returning",
		Returned:  "Returned",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// statusRank is the single source of truth for lifecycle ordering. A forward
// transition is valid exactly when the target's rank is greater than the
// current rank; Cancelled is handled separately.
func statusRank() map[Status]int {
	return map[Status]int{
		Draft:     0,
		Confirmed: 1,
		Preparing: 2,
		Shipping:  3,
		Delivered: 4,
		Returning: 5,
		Returned:  6,
		Completed: 7,
	}
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid order status", ErrInvalidStatusTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString resolves a lifecycle status by name, ignoring case.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a valid order status", ErrInvalidStatusTransition, name)
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	ranks := statusRank()

	currentRank, currentOK := ranks[s]
	if !currentOK {
		return false
	}

	if next == Cancelled {
		return s == Draft || s == Confirmed
	}

	nextRank, nextOK := ranks[next]
	if !nextOK {
		return false
	}

	return nextRank > currentRank
}

// TransitionTo validates and performs the transition from s to next.
// Returns ErrInvalidStatusTransition when the table does not permit it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, next)
	}
	return next, nil
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// HoldsInventory reports whether an order in this status still holds
// reserved stock. Holds begin at Confirmed and end when the order completes
// or is cancelled.
func (s Status) HoldsInventory() bool {
	return !s.IsFinal() && s != Unknown && s != Draft
}
