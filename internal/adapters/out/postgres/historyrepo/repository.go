package historyrepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository. Entries are
// never updated or deleted individually; they go away with their parcel.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Add(ctx context.Context, entry parcel.HistoryEntry) error {
	if err := entry.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("package_id", entry.ParcelID().String(), err)
		}
		return err
	}
	return nil
}
