package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel. A duplicated tracking code or an unknown
	// client is reported as errs.ErrAlreadyExists.
	Add(ctx context.Context, p *parcel.Parcel) error

	// Update persists changes to an existing parcel (last write wins).
	Update(ctx context.Context, p *parcel.Parcel) error

	// Delete removes the parcel and, by cascade, its history.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns the parcel or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode returns the parcel or errs.ErrObjectNotFound.
	GetByTrackingCode(ctx context.Context, code parcel.TrackingCode) (*parcel.Parcel, error)
}

// HistoryRepository appends parcel history entries.
type HistoryRepository interface {
	Add(ctx context.Context, entry parcel.HistoryEntry) error
}
