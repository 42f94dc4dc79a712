package voyagerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
)

// GormVoyageRepository implements VoyageRepository using GORM.
type GormVoyageRepository struct {
	db *gorm.DB
}

// NewGormVoyageRepository creates a new GORM voyage repository.
func NewGormVoyageRepository(db *gorm.DB) *GormVoyageRepository {
	return &GormVoyageRepository{db: db}
}

// Seed inserts the given voyages with their schedules, skipping any that
// already exist. Called once at startup with the reference data set.
func (r *GormVoyageRepository) Seed(ctx context.Context, voyages []*voyage.Voyage) error {
	for _, v := range voyages {
		if err := v.Validate(); err != nil {
			return err
		}

		dto := fromDomain(v)
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a voyage with its schedule by voyage number.
func (r *GormVoyageRepository) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("movement_index")
		}).
		First(&dto, "voyage_number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voyage", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a voyage with the given number is known.
func (r *GormVoyageRepository) Exists(ctx context.Context, number voyage.Number) (bool, error) {
	if err := number.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&VoyageDTO{}).
		Where("voyage_number = ?", number.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves every known voyage ordered by number.
func (r *GormVoyageRepository) GetAll(ctx context.Context) ([]*voyage.Voyage, error) {
	var dtos []VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("movement_index")
		}).
		Order("voyage_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	voyages := make([]*voyage.Voyage, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		voyages = append(voyages, v)
	}

	return voyages, nil
}
