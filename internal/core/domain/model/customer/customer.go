package customer

import (
	"errors"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the RestoreCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer constructor")

// Customer is a read model of a rental customer. Customer accounts are
// managed out-of-band; order checkout only resolves them to snapshot the
// recipient's contact details onto the scheduled delivery.
type Customer struct {
	id      kernel.UUID
	name    string
	phone   string
	address string
	city    string

	isConstructed bool
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, phone, address, city string) (*Customer, error) {
	c := &Customer{
		phone:         phone,
		address:       address,
		city:          city,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the customer was created through the constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's street address.
func (c *Customer) Address() string {
	return c.address
}

// City returns the customer's city.
func (c *Customer) City() string {
	return c.city
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
