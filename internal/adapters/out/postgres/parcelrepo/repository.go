package parcelrepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so an unassigned messenger becomes NULL.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "tracking_code", "client_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", id.String())
	}
	return nil
}

func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "package", id.String(), "id = ?", id.Bytes())
}

func (r *GormParcelRepository) GetByTrackingCode(ctx context.Context, code parcel.TrackingCode) (*parcel.Parcel, error) {
	if code.IsZero() {
		return nil, errs.NewValueIsRequiredError("tracking_code")
	}
	return r.first(ctx, "tracking_code", code.String(), "tracking_code = ?", code.String())
}

func (r *GormParcelRepository) first(ctx context.Context, param string, id any, cond string, args ...any) (*parcel.Parcel, error) {
	var dto ParcelDTO
	if err := r.db.WithContext(ctx).Where(cond, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewAlreadyExistsErrorWithCause("tracking_code", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewAlreadyExistsErrorWithCause("package", err)
	default:
		return err
	}
}
