package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"toyrental/internal/core/application/usecases/commands"
	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/toy"
)

func restoreOrderWithDelivery(t *testing.T, orderID, toyID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	item, err := order.RestoreItem(toyID, 2, 50, 7, toy.ConditionGood, "")
	require.NoError(t, err)

	trip, err := order.RestoreDelivery(kernel.NewUUID(), order.DeliveryTypeDelivery,
		order.DeliveryStatusScheduled, time.Now().AddDate(0, 0, 3), "morning", "Dana", "+1-555-0100")
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		orderID,
		"CMD-2026-00008",
		kernel.NewUUID(),
		nil,
		status,
		100, 0,
		"12 Elm Street", "Springfield",
		time.Now().AddDate(0, 0, 3), "morning",
		nil, "",
		nil, "",
		[]order.Item{item},
		[]order.Delivery{trip},
	)
	require.NoError(t, err)
	return aggregate
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	toyID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)

	existing := restoreOrderWithDelivery(t, orderID, toyID, order.Confirmed)
	reserved, err := toy.RestoreToy(toyID, "lego castle", 10, 50, 150, 5, 3, 2, toy.Reserved, toy.ConditionGood)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	toyRepo := new(MockToyRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(existing, nil).Once(),
		uow.On("ToyRepository").Return(toyRepo).Once(),
		toyRepo.On("Unreserve", ctx, toyID, 2).Return(nil).Once(),
		toyRepo.On("Get", ctx, toyID).Return(reserved, nil).Once(),
		toyRepo.On("Update", ctx, reserved).Return(nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.Equal(t, order.DeliveryStatusCancelled, cancelled.Deliveries()[0].Status())
	assert.Equal(t, toy.Available, reserved.Status())
	toyRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_TooLateToCancel(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)

	existing := restoreOrderWithDelivery(t, orderID, kernel.NewUUID(), order.Delivered)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	assert.Nil(t, cancelled)
	assert.Equal(t, order.Delivered, existing.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewCancelOrderCommandValidation(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)

	var cmd commands.CancelOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
