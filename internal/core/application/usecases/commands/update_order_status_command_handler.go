package commands

import (
	"context"

	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/core/ports"
)

// UpdateOrderStatusCommandHandler drives an order through its fulfilment
// lifecycle. Only three transitions touch inventory:
//
//   - DELIVERED marks every rented toy RENTED
//   - RETURNED marks every rented toy CLEANING
//   - COMPLETED marks every rented toy AVAILABLE and releases its held units
//
// The other statuses are administrative bookkeeping. The order save and all
// toy updates run in one unit of work.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderInventoryUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderInventoryUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order and applies the transition's inventory side
// effects, returning the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = h.applyInventoryEffects(ctx, uow.ToyRepository(), aggregate, cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *UpdateOrderStatusCommandHandler) applyInventoryEffects(
	ctx context.Context,
	toyRepo ports.ToyRepository,
	aggregate *order.Order,
	status order.Status,
) error {
	var toyStatus toy.Status
	switch status {
	case order.Delivered:
		toyStatus = toy.Rented
	case order.Returned:
		toyStatus = toy.Cleaning
	case order.Completed:
		toyStatus = toy.Available
	default:
		return nil
	}

	for _, item := range aggregate.Items() {
		rented, err := toyRepo.Get(ctx, item.ToyID())
		if err != nil {
			return err
		}
		if err = rented.ChangeStatus(toyStatus); err != nil {
			return err
		}
		if err = toyRepo.Update(ctx, rented); err != nil {
			return err
		}

		if status == order.Completed {
			if err = toyRepo.Release(ctx, item.ToyID(), item.Quantity()); err != nil {
				return err
			}
		}
	}

	return nil
}
