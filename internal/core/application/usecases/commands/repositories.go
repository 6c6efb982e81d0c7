// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence with an outbox event row.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
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

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CartUoW manages transactions for cart-only operations. The outbox is
	// included because every cart mutation writes its event in the same
	// transaction.
	CartUoW interface {
		TxManager
		CartRepoFactory
		OutboxRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across both cart and order aggregates.
	// Used by order creation (snapshot plus cart clear) and by the
	// reactor-side compensations that touch both stores.
	UoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		OutboxRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
