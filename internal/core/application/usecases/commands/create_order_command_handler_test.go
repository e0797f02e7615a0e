package commands_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"toyrental/internal/core/application/usecases/commands"
	"toyrental/internal/core/domain/model/customer"
	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/pkg/errs"
)

func restoreToy(t *testing.T, id kernel.UUID, stock, available int) *toy.Toy {
	t.Helper()
	aggregate, err := toy.RestoreToy(id, "lego castle", 10, 50, 150,
		stock, available, 3, toy.Available, toy.ConditionGood)
	require.NoError(t, err)
	return aggregate
}

func restoreCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	renter, err := customer.RestoreCustomer(id, "Dana", "+1-555-0100", "12 Elm Street", "Springfield")
	require.NoError(t, err)
	return renter
}

func checkoutCommand(t *testing.T, customerID, toyID kernel.UUID, quantity int) commands.CreateOrderCommand {
	t.Helper()
	items := []commands.CreateOrderItem{
		{ToyID: toyID, Quantity: quantity, RentalPrice: 50, RentalDurationDays: 7},
	}
	cmd, err := commands.NewCreateOrderCommand(customerID, items,
		"12 Elm Street", "Springfield", time.Now().AddDate(0, 0, 3), "morning", nil, "", "")
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	toyID := kernel.NewUUID()
	cmd := checkoutCommand(t, customerID, toyID, 2)

	rentedToy := restoreToy(t, toyID, 5, 5)

	directory := new(MockCustomerDirectory)
	toyRepo := new(MockToyRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerDirectory").Return(directory).Once(),
		directory.On("Get", ctx, customerID).Return(restoreCustomer(t, customerID), nil).Once(),
		uow.On("ToyRepository").Return(toyRepo).Once(),
		toyRepo.On("Get", ctx, toyID).Return(rentedToy, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("NextNumber", ctx, time.Now().Year()).Return(42, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		toyRepo.On("Reserve", ctx, toyID, 2).Return(nil).Once(),
		toyRepo.On("Update", ctx, rentedToy).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, fmt.Sprintf("CMD-%d-00042", time.Now().Year()), created.Number())
	assert.Equal(t, order.Confirmed, created.Status())
	assert.InDelta(t, 100.0, created.TotalAmount(), 1e-9)
	require.Len(t, created.Items(), 1)
	assert.Equal(t, toy.ConditionGood, created.Items()[0].ConditionBefore())
	require.Len(t, created.Deliveries(), 1)
	assert.Equal(t, order.DeliveryTypeDelivery, created.Deliveries()[0].Type())
	assert.Equal(t, "Dana", created.Deliveries()[0].RecipientName())
	assert.Equal(t, toy.Reserved, rentedToy.Status())

	directory.AssertExpectations(t)
	toyRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd := checkoutCommand(t, customerID, kernel.NewUUID(), 1)

	directory := new(MockCustomerDirectory)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerDirectory").Return(directory).Once(),
		directory.On("Get", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer", customerID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, created)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	toyID := kernel.NewUUID()
	cmd := checkoutCommand(t, customerID, toyID, 4)

	directory := new(MockCustomerDirectory)
	toyRepo := new(MockToyRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerDirectory").Return(directory).Once(),
		directory.On("Get", ctx, customerID).Return(restoreCustomer(t, customerID), nil).Once(),
		uow.On("ToyRepository").Return(toyRepo).Once(),
		toyRepo.On("Get", ctx, toyID).Return(restoreToy(t, toyID, 5, 3), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, toy.ErrInsufficientStock)
	assert.Nil(t, created)
	toyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ReserveErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	toyID := kernel.NewUUID()
	cmd := checkoutCommand(t, customerID, toyID, 2)

	directory := new(MockCustomerDirectory)
	toyRepo := new(MockToyRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerDirectory").Return(directory).Once(),
		directory.On("Get", ctx, customerID).Return(restoreCustomer(t, customerID), nil).Once(),
		uow.On("ToyRepository").Return(toyRepo).Once(),
		toyRepo.On("Get", ctx, toyID).Return(restoreToy(t, toyID, 5, 5), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("NextNumber", ctx, time.Now().Year()).Return(7, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		// A concurrent checkout took the units between the pre-check and
		// the guarded decrement.
		toyRepo.On("Reserve", ctx, toyID, 2).Return(toy.ErrInsufficientStock).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, toy.ErrInsufficientStock)
	assert.Nil(t, created)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := checkoutCommand(t, kernel.NewUUID(), kernel.NewUUID(), 1)

	uow := new(MockUoW)
	factory := new(MockCheckoutUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
}
