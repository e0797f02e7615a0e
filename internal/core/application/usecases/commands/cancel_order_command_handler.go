package commands

import (
	"context"

	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/toy"
)

// CancelOrderCommandHandler cancels an order that has not started fulfilment.
// Cancellation undoes every trace of the checkout: each held reservation is
// unreserved (returning the units and rolling back the rental counter), the
// toys go back to AVAILABLE, and pending delivery trips are cancelled. All of
// it is one unit of work.
type CancelOrderCommandHandler struct {
	uowFactory OrderInventoryUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderInventoryUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order and returns it in its cancelled state.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	toyRepo := uow.ToyRepository()
	for _, item := range aggregate.Items() {
		if err = toyRepo.Unreserve(ctx, item.ToyID(), item.Quantity()); err != nil {
			return nil, err
		}

		held, toyErr := toyRepo.Get(ctx, item.ToyID())
		if toyErr != nil {
			return nil, toyErr
		}
		if err = held.ChangeStatus(toy.Available); err != nil {
			return nil, err
		}
		if err = toyRepo.Update(ctx, held); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
