package commands

import (
	"context"
	"fmt"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/toy"
)

// CreateOrderCommandHandler handles the business logic for checkout.
//
// The whole checkout is one unit of work: the customer lookup, the order
// number generation, the order rows, and every stock reservation commit
// together or not at all. A reservation failure on the last item therefore
// undoes the reservations of all earlier items.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	renter, err := uow.CustomerDirectory().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	toyRepo := uow.ToyRepository()

	// Resolve and pre-check every toy before any mutation so a checkout
	// that is doomed to fail never touches the counters.
	toys := make([]*toy.Toy, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		aggregate, toyErr := toyRepo.Get(ctx, item.ToyID)
		if toyErr != nil {
			return nil, toyErr
		}
		if !aggregate.CanReserve(item.Quantity) {
			return nil, fmt.Errorf("%w: toy %s has %d of %d requested",
				toy.ErrInsufficientStock, aggregate.ID(), aggregate.AvailableQuantity(), item.Quantity)
		}
		toys = append(toys, aggregate)
	}

	orderRepo := uow.OrderRepository()

	year := time.Now().Year()
	sequence, err := orderRepo.NextNumber(ctx, year)
	if err != nil {
		return nil, err
	}
	number := fmt.Sprintf("CMD-%d-%05d", year, sequence)

	items := make([]order.Item, 0, len(cmd.Items()))
	for i, requested := range cmd.Items() {
		item, itemErr := order.NewItem(
			requested.ToyID,
			requested.Quantity,
			requested.RentalPrice,
			requested.RentalDurationDays,
			toys[i].Condition(),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		cmd.CustomerID(),
		cmd.DeliveryAddress(),
		cmd.DeliveryCity(),
		cmd.DeliveryDate(),
		cmd.DeliveryTimeSlot(),
		cmd.ReturnDate(),
		cmd.ReturnTimeSlot(),
		cmd.Notes(),
		items,
	)
	if err != nil {
		return nil, err
	}

	trip, err := order.NewDelivery(
		kernel.NewUUID(),
		order.DeliveryTypeDelivery,
		cmd.DeliveryDate(),
		cmd.DeliveryTimeSlot(),
		renter.Name(),
		renter.Phone(),
	)
	if err != nil {
		return nil, err
	}
	if err = aggregate.AddDelivery(trip); err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	for i, requested := range cmd.Items() {
		if err = toyRepo.Reserve(ctx, requested.ToyID, requested.Quantity); err != nil {
			return nil, err
		}
		if err = toys[i].ChangeStatus(toy.Reserved); err != nil {
			return nil, err
		}
		if err = toyRepo.Update(ctx, toys[i]); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
