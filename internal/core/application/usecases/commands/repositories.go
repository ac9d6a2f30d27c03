// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"renthub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories its operation
// touches, so the transaction boundary documents the operation's write set.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LeaseRepoFactory provides access to the lease repository within a transaction.
	LeaseRepoFactory interface {
		LeaseRepository() ports.LeaseRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// InventoryFactory provides access to the house inventory within a transaction.
	InventoryFactory interface {
		HouseInventory() ports.HouseInventory
	}

	// DirectoryFactory provides access to the user directory within a transaction.
	DirectoryFactory interface {
		UserDirectory() ports.UserDirectory
	}

	// CreateOrderUoW spans order creation: read the unit, write the order.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryFactory
	}

	// CreateOrderUoWFactory creates CreateOrderUoW instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// SettlementUoW spans pay and refund: transition the order and append
	// its balanced ledger pair atomically.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		LedgerRepoFactory
	}

	// SettlementUoWFactory creates SettlementUoW instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// CancelOrderUoW spans cancellation: the order alone changes.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// CancelOrderUoWFactory creates CancelOrderUoW instances.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}

	// ConfirmOrderUoW spans confirmation: order transition, inventory
	// update, lease creation, and party resolution in one transaction.
	ConfirmOrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryFactory
		LeaseRepoFactory
		DirectoryFactory
	}

	// ConfirmOrderUoWFactory creates ConfirmOrderUoW instances.
	ConfirmOrderUoWFactory interface {
		Create() ConfirmOrderUoW
	}

	// LeaseUoW spans lease-only operations: evaluation and expiry.
	LeaseUoW interface {
		TxManager
		LeaseRepoFactory
	}

	// LeaseUoWFactory creates LeaseUoW instances.
	LeaseUoWFactory interface {
		Create() LeaseUoW
	}

	// ContractUoW spans contract regeneration: the lease, its order, and
	// the parties named on the document.
	ContractUoW interface {
		TxManager
		LeaseRepoFactory
		OrderRepoFactory
		DirectoryFactory
	}

	// ContractUoWFactory creates ContractUoW instances.
	ContractUoWFactory interface {
		Create() ContractUoW
	}
)
