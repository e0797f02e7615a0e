// Package toyrepo provides data transfer objects and mapping functions for
// toy persistence. The repository doubles as the inventory ledger: stock
// counters are mutated only through guarded SQL updates, never by rewriting
// the whole row.
package toyrepo

import (
	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/toy"

	"github.com/google/uuid"
)

// ToyDTO represents the database structure for persisting toy aggregates.
type ToyDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	RentalPriceDaily   float64
	RentalPriceWeekly  float64
	RentalPriceMonthly float64
	StockQuantity      int
	AvailableQuantity  int
	TimesRented        int
	Status             int `gorm:"index"`
	Condition          string
}

// TableName specifies the database table name for toy entities.
func (ToyDTO) TableName() string {
	return "toys"
}

// fromDomain converts a toy domain aggregate to its database representation.
func fromDomain(aggregate *toy.Toy) ToyDTO {
	return ToyDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		RentalPriceDaily:   aggregate.RentalPriceDaily(),
		RentalPriceWeekly:  aggregate.RentalPriceWeekly(),
		RentalPriceMonthly: aggregate.RentalPriceMonthly(),
		StockQuantity:      aggregate.StockQuantity(),
		AvailableQuantity:  aggregate.AvailableQuantity(),
		TimesRented:        aggregate.TimesRented(),
		Status:             int(aggregate.Status()),
		Condition:          string(aggregate.Condition()),
	}
}

// toDomain converts a database DTO to a toy domain aggregate using RestoreToy.
func toDomain(dto ToyDTO) (*toy.Toy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return toy.RestoreToy(
		id,
		dto.Name,
		dto.RentalPriceDaily,
		dto.RentalPriceWeekly,
		dto.RentalPriceMonthly,
		dto.StockQuantity,
		dto.AvailableQuantity,
		dto.TimesRented,
		toy.Status(dto.Status),
		toy.Condition(dto.Condition),
	)
}
