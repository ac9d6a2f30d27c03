package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every public core
// operation runs inside exactly one unit of work: all reads and writes
// touching orders, units, ledger entries, and lease records commit together
// or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no active transaction exists or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no active transaction exists or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// LeaseRepository returns a LeaseRepository bound to the current transaction.
	LeaseRepository() LeaseRepository

	// LedgerRepository returns a LedgerRepository bound to the current transaction.
	LedgerRepository() LedgerRepository

	// HouseInventory returns the house inventory bound to the current transaction.
	HouseInventory() HouseInventory

	// UserDirectory returns the user directory bound to the current transaction.
	UserDirectory() UserDirectory
}
