package commands

import (
	"context"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/pricing"
	"toyrental/internal/core/domain/model/toy"
)

// UpdateToyPricesCommandHandler changes a toy's rental rates and records
// every effective change in the price audit trail.
//
// A rate that is absent from the command, or present but equal to the stored
// value, produces neither a write nor a history row. The toy save and the
// history inserts form one unit of work.
type UpdateToyPricesCommandHandler struct {
	uowFactory ToyPricingUoWFactory
}

// NewUpdateToyPricesCommandHandler creates a handler for rate updates.
func NewUpdateToyPricesCommandHandler(uowFactory ToyPricingUoWFactory) UpdateToyPricesCommandHandler {
	return UpdateToyPricesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the rate changes and returns the updated toy.
func (h *UpdateToyPricesCommandHandler) Handle(ctx context.Context, cmd UpdateToyPricesCommand) (*toy.Toy, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	toyRepo := uow.ToyRepository()

	aggregate, err := toyRepo.Get(ctx, cmd.ToyID())
	if err != nil {
		return nil, err
	}

	changes := []struct {
		requested   *float64
		current     float64
		pricingType pricing.Type
		apply       func(float64) error
	}{
		{cmd.Daily(), aggregate.RentalPriceDaily(), pricing.TypeDaily, aggregate.SetDailyRate},
		{cmd.Weekly(), aggregate.RentalPriceWeekly(), pricing.TypeWeekly, aggregate.SetWeeklyRate},
		{cmd.Monthly(), aggregate.RentalPriceMonthly(), pricing.TypeMonthly, aggregate.SetMonthlyRate},
	}

	pricingRepo := uow.PricingRepository()
	changed := false

	for _, change := range changes {
		if change.requested == nil || *change.requested == change.current {
			continue
		}

		if err = change.apply(*change.requested); err != nil {
			return nil, err
		}

		record, historyErr := pricing.NewHistory(
			kernel.NewUUID(),
			aggregate.ID(),
			nil,
			change.pricingType,
			change.current,
			*change.requested,
			cmd.Reason(),
			cmd.ChangedBy(),
		)
		if historyErr != nil {
			return nil, historyErr
		}

		if err = pricingRepo.AppendHistory(ctx, record); err != nil {
			return nil, err
		}

		changed = true
	}

	if changed {
		if err = toyRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
