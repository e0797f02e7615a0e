package commands

import (
	"errors"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/guard"
)

var (
	ErrUpdateToyPricesCommandIsNotConstructed = errors.New(
		"UpdateToyPricesCommand must be created via NewUpdateToyPricesCommand constructor",
	)
	ErrNoRatesProvided   = errors.New("at least one rate must be provided")
	ErrRateIsNegative    = errors.New("rates must not be negative")
	ErrChangedByRequired = errors.New("changedBy is required")
)

// UpdateToyPricesCommand represents an administrator changing a toy's rental
// rates. Each rate is optional; an absent rate is left untouched.
type UpdateToyPricesCommand struct { //nolint:recvcheck //using for validation
	toyID     kernel.UUID
	daily     *float64
	weekly    *float64
	monthly   *float64
	reason    string
	changedBy string

	guard guard.ConstructorGuard
}

// NewUpdateToyPricesCommand creates a command to change a toy's rates.
// At least one rate must be present and none may be negative.
func NewUpdateToyPricesCommand(
	toyID kernel.UUID,
	daily, weekly, monthly *float64,
	reason, changedBy string,
) (UpdateToyPricesCommand, error) {
	pricesCommand := UpdateToyPricesCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pricesCommand.setToyID(toyID),
		pricesCommand.setRates(daily, weekly, monthly),
		pricesCommand.setChangedBy(changedBy),
	); err != nil {
		return UpdateToyPricesCommand{}, err
	}

	return pricesCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateToyPricesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateToyPricesCommandIsNotConstructed)
}

// ToyID returns the toy whose rates change.
func (c UpdateToyPricesCommand) ToyID() kernel.UUID {
	return c.toyID
}

// Daily returns the new daily rate, if provided.
func (c UpdateToyPricesCommand) Daily() *float64 {
	return c.daily
}

// Weekly returns the new weekly rate, if provided.
func (c UpdateToyPricesCommand) Weekly() *float64 {
	return c.weekly
}

// Monthly returns the new monthly rate, if provided.
func (c UpdateToyPricesCommand) Monthly() *float64 {
	return c.monthly
}

// Reason returns the free-form justification for the change.
func (c UpdateToyPricesCommand) Reason() string {
	return c.reason
}

// ChangedBy identifies who requested the change.
func (c UpdateToyPricesCommand) ChangedBy() string {
	return c.changedBy
}

func (c *UpdateToyPricesCommand) setToyID(toyID kernel.UUID) error {
	if err := toyID.Validate(); err != nil {
		return err
	}

	c.toyID = toyID
	return nil
}

func (c *UpdateToyPricesCommand) setRates(daily, weekly, monthly *float64) error {
	if daily == nil && weekly == nil && monthly == nil {
		return ErrNoRatesProvided
	}

	for _, rate := range []*float64{daily, weekly, monthly} {
		if rate != nil && *rate < 0 {
			return ErrRateIsNegative
		}
	}

	c.daily = daily
	c.weekly = weekly
	c.monthly = monthly
	return nil
}

func (c *UpdateToyPricesCommand) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return ErrChangedByRequired
	}

	c.changedBy = changedBy
	return nil
}
