// Package postgres provides the GORM-based persistence layer: the unit of
// work over the cargo and handling event repositories, plus the reference
// data repositories for locations and voyages.
//
// The unit of work keeps one mutation atomic: registering a handling event
// appends to the event store and rewrites the cargo's delivery snapshot in
// the same database transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.CargoRepository().Update(ctx, cargo); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/handlingrepo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracked aggregates let the caller fire application events for exactly the
// cargos a committed transaction touched.
type trackedAggregate struct {
	TrackingID kernel.TrackingID
	Aggregate  any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the cargo and
// handling event repositories. Repositories obtained from it execute inside
// the current transaction when one is active.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CargoRepository provides cargo persistence bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) CargoRepository() ports.CargoRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return cargorepo.NewGormCargoRepository(db, uow)
}

// HandlingEventRepository provides handling event persistence bound to the
// current transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) HandlingEventRepository() ports.HandlingEventRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return handlingrepo.NewGormHandlingEventRepository(db)
}

// TrackAggregate registers a cargo aggregate as modified within this unit of
// work. Called by the cargo repository on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(trackingID kernel.TrackingID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		TrackingID: trackingID,
		Aggregate:  aggregate,
	})
}
