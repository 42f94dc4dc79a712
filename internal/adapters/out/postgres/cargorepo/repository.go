package cargorepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// GormCargoRepository implements CargoRepository using GORM.
type GormCargoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(trackingID kernel.TrackingID, aggregate any)
}

// NewGormCargoRepository creates a new GORM cargo repository.
func NewGormCargoRepository(db *gorm.DB, tracker aggregateTracker) *GormCargoRepository {
	return &GormCargoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly booked cargo to the database.
func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.TrackingID(), aggregate)
	return nil
}

// Update saves an existing cargo to the database. The itinerary legs are
// replaced wholesale since route assignment rewrites them.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&CargoDTO{}).
		Where("tracking_id = ?", dto.TrackingID).
		Select("*").
		Omit("tracking_id", "Legs").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("tracking_id = ?", dto.TrackingID).
		Delete(&LegDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Legs) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Legs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.TrackingID(), aggregate)
	return nil
}

// Get retrieves a cargo by tracking ID.
func (r *GormCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_index")
		}).
		First(&dto, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a cargo with the given tracking ID is booked.
func (r *GormCargoRepository) Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	if err := trackingID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CargoDTO{}).
		Where("tracking_id = ?", trackingID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves every booked cargo.
func (r *GormCargoRepository) GetAll(ctx context.Context) ([]*cargo.Cargo, error) {
	var dtos []CargoDTO
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_index")
		}).
		Order("tracking_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cargos := make([]*cargo.Cargo, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cargos = append(cargos, aggregate)
	}

	return cargos, nil
}
