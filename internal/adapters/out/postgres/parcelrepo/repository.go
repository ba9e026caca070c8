package parcelrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
// A unique-constraint violation on the tracking number is reported as
// ports.ErrTrackingNumberTaken so callers can retry with a fresh number.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrTrackingNumberTaken
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel, but only when its stored status still
// equals expectedStatus. The conditional WHERE makes the status write safe
// against concurrent writers without explicit row locks: exactly one of two
// racing updates matches the row, the other affects zero rows.
func (r *GormParcelRepository) Update(
	ctx context.Context, aggregate *parcel.Parcel, expectedStatus parcel.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]any{
			"courier_id":         dto.CourierID,
			"status":             dto.Status,
			"current_city_index": dto.CurrentCityIndex,
			"actual_delivery":    dto.ActualDelivery,
			"updated_at":         dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMiss(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMiss distinguishes a vanished row from a lost race after a
// conditional update matched nothing.
func (r *GormParcelRepository) classifyMiss(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}
	return errs.NewConcurrentModificationError("parcel", id.String())
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a parcel by its public tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tracking_number = ?", trackingNumber.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves active parcels whose estimated delivery has passed.
func (r *GormParcelRepository) GetAllOverdue(
	ctx context.Context, asOf time.Time,
) ([]*parcel.Parcel, error) {
	terminal := []int{
		int(parcel.Delivered),
		int(parcel.Cancelled),
		int(parcel.Returned),
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("estimated_delivery IS NOT NULL AND estimated_delivery < ?", asOf).
		Where("status NOT IN ?", terminal).
		Order("estimated_delivery").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
