package handlingrepo

import (
	"context"

	"gorm.io/gorm"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// GormHandlingEventRepository implements HandlingEventRepository using GORM.
type GormHandlingEventRepository struct {
	db *gorm.DB
}

// NewGormHandlingEventRepository creates a new GORM handling event repository.
func NewGormHandlingEventRepository(db *gorm.DB) *GormHandlingEventRepository {
	return &GormHandlingEventRepository{db: db}
}

// Add appends a handling event to the store.
func (r *GormHandlingEventRepository) Add(ctx context.Context, event handling.HandlingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetHistory retrieves the complete handling history of one cargo. Canonical
// ordering is the History value's concern; rows are fetched in completion
// order only to keep reads deterministic.
func (r *GormHandlingEventRepository) GetHistory(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.History, error) {
	if err := trackingID.Validate(); err != nil {
		return handling.History{}, err
	}

	var dtos []HandlingEventDTO
	err := r.db.WithContext(ctx).
		Where("tracking_id = ?", trackingID.String()).
		Order("completion_time, registration_time").
		Find(&dtos).Error
	if err != nil {
		return handling.History{}, err
	}

	events := make([]handling.HandlingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return handling.History{}, err
		}
		events = append(events, event)
	}

	return handling.NewHistory(events), nil
}
