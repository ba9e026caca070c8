package eventrepo

import (
	"context"

	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// GormEventRepository implements ParcelEventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event log repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add appends an event to the log. The database assigns the next sequence
// value on insert; it is written back into the event before returning.
func (r *GormEventRepository) Add(ctx context.Context, event *parcel.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return event.AssignSequence(dto.Sequence)
}

// ListByParcel returns all events of a parcel ordered by sequence ascending.
func (r *GormEventRepository) ListByParcel(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.Event, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("sequence").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*parcel.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// HasEventOfType reports whether the parcel already has at least one event of
// the given type.
func (r *GormEventRepository) HasEventOfType(
	ctx context.Context, parcelID kernel.UUID, eventType parcel.EventType,
) (bool, error) {
	if err := parcelID.Validate(); err != nil {
		return false, err
	}
	if err := eventType.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("parcel_id = ? AND event_type = ?", parcelID.Bytes(), int(eventType)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
