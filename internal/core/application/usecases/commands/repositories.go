// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"toyrental/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ToyRepoFactory provides access to the toy repository within a transaction.
	ToyRepoFactory interface {
		ToyRepository() ports.ToyRepository
	}

	// PricingRepoFactory provides access to the price audit trail within a transaction.
	PricingRepoFactory interface {
		PricingRepository() ports.PricingRepository
	}

	// CustomerDirectoryFactory provides access to customer resolution within a transaction.
	CustomerDirectoryFactory interface {
		CustomerDirectory() ports.CustomerDirectory
	}

	// CheckoutUoW manages the checkout transaction: it spans the order
	// aggregate, the stock reservations, and the customer lookup, so a
	// failed reservation rolls back the whole order.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ToyRepoFactory
		CustomerDirectoryFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderInventoryUoW manages transactions that move an order through its
	// lifecycle together with the inventory side effects of the transition.
	OrderInventoryUoW interface {
		TxManager
		OrderRepoFactory
		ToyRepoFactory
	}

	// OrderInventoryUoWFactory creates new order/inventory unit of work instances.
	OrderInventoryUoWFactory interface {
		Create() OrderInventoryUoW
	}

	// ToyPricingUoW manages rate updates: the toy save and its audit trail
	// rows commit or roll back together.
	ToyPricingUoW interface {
		TxManager
		ToyRepoFactory
		PricingRepoFactory
	}

	// ToyPricingUoWFactory creates new toy/pricing unit of work instances.
	ToyPricingUoWFactory interface {
		Create() ToyPricingUoW
	}
)
