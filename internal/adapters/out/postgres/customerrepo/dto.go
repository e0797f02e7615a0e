// Package customerrepo provides the read-only directory of rental customers.
// Accounts are managed by an external system; checkout only resolves them.
package customerrepo

import (
	"toyrental/internal/core/domain/model/customer"
	"toyrental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer accounts.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string
	Address string
	City    string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// toDomain converts a database DTO to the customer read model.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.Address, dto.City)
}
