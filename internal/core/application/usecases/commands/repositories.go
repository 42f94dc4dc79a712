// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-cargo serialization,
// transaction management, and persistence.
package commands

import (
	"context"

	"cargotracker/internal/core/ports"
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

	// CargoRepoFactory provides access to the cargo repository within a transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// HandlingEventRepoFactory provides access to the handling event repository
	// within a transaction.
	HandlingEventRepoFactory interface {
		HandlingEventRepository() ports.HandlingEventRepository
	}

	// CargoUoW manages transactions for cargo-only operations.
	// Used when commands only modify the cargo aggregate.
	CargoUoW interface {
		TxManager
		CargoRepoFactory
	}

	// CargoUoWFactory creates new cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}

	// UoW manages transactions across the cargo aggregate and the handling
	// event history. Used for commands that append an event and recompute the
	// cargo's delivery in one atomic step, and for commands that read the
	// history while mutating the cargo.
	UoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
	}

	// UoWFactory creates new unit of work instances for cargo-plus-history
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
