package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"toyrental/internal/core/application/usecases/commands"
	"toyrental/internal/core/domain/model/customer"
	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/pricing"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/core/ports"
)

type MockToyRepository struct{ mock.Mock }

func (m *MockToyRepository) Add(ctx context.Context, aggregate *toy.Toy) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockToyRepository) Update(ctx context.Context, aggregate *toy.Toy) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockToyRepository) Get(ctx context.Context, id kernel.UUID) (*toy.Toy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toy.Toy), args.Error(1)
}

func (m *MockToyRepository) Reserve(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockToyRepository) Release(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockToyRepository) Unreserve(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

type MockPricingRepository struct{ mock.Mock }

func (m *MockPricingRepository) AppendHistory(ctx context.Context, record *pricing.History) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

// MockUoW satisfies every command unit-of-work interface so each test wires
// only the repositories its flow actually touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ToyRepository() ports.ToyRepository {
	args := m.Called()
	return args.Get(0).(ports.ToyRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PricingRepository() ports.PricingRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRepository)
}

func (m *MockUoW) CustomerDirectory() ports.CustomerDirectory {
	args := m.Called()
	return args.Get(0).(ports.CustomerDirectory)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderInventoryUoWFactory struct{ mock.Mock }

func (m *MockOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderInventoryUoW)
}

type MockToyPricingUoWFactory struct{ mock.Mock }

func (m *MockToyPricingUoWFactory) Create() commands.ToyPricingUoW {
	args := m.Called()
	return args.Get(0).(commands.ToyPricingUoW)
}
