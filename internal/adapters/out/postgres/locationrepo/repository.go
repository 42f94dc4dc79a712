package locationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Seed inserts the given locations, skipping any that already exist.
// Called once at startup with the reference data set.
func (r *GormLocationRepository) Seed(ctx context.Context, locations []*location.Location) error {
	if len(locations) == 0 {
		return nil
	}

	dtos := make([]LocationDTO, 0, len(locations))
	for _, loc := range locations {
		if err := loc.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(loc))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}

// Get retrieves a location by its UN locode.
func (r *GormLocationRepository) Get(ctx context.Context, unLocode kernel.UnLocode) (*location.Location, error) {
	if err := unLocode.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	err := r.db.WithContext(ctx).First(&dto, "un_locode = ?", unLocode.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", unLocode.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a location with the given UN locode is known.
func (r *GormLocationRepository) Exists(ctx context.Context, unLocode kernel.UnLocode) (bool, error) {
	if err := unLocode.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&LocationDTO{}).
		Where("un_locode = ?", unLocode.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves every known location ordered by UN locode.
func (r *GormLocationRepository) GetAll(ctx context.Context) ([]*location.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("un_locode").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		loc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, nil
}
