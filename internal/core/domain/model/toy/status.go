package toy

import (
	"fmt"

	"toyrental/internal/pkg/errs"
)

// Status represents the lifecycle state of a toy in the rental fleet.
// Unlike the order status, toy status carries no transition rules of its own:
// it is set by the order lifecycle as a side effect of order transitions, and
// by administrators for maintenance and retirement.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the toy can be reserved for a new order.
	Available

	// Reserved means the toy is held by a confirmed order awaiting delivery.
	Reserved

	// Rented means the toy is currently with a customer.
	Rented

	// Cleaning means the toy has been returned and is being cleaned.
	Cleaning

	// Maintenance means the toy is withdrawn for repair.
	Maintenance

	// Retired means the toy has left the fleet permanently.
	Retired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Available:   "Available",
		Reserved:    "Reserved",
		Rented:      "Rented",
		Cleaning:    "Cleaning",
		Maintenance: "Maintenance",
		Retired:     "Retired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "Available",
		Reserved:    "Reserved",
		Rented:      "Rented",
		Cleaning:    "Cleaning",
		Maintenance: "Maintenance",
		Retired:     "Retired",
	}
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid toy status", s))
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
