package parcel

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
)

// ScanLocation is recorded on every scan history entry.
const ScanLocation = "Location registered by messenger scan"

// HistoryEntry is one append-only record of what happened to a parcel.
type HistoryEntry struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	status      Status
	messengerID *kernel.UUID
	location    string
	notes       string
	createdAt   time.Time
}

// NewHistoryEntry records status for parcelID.
func NewHistoryEntry(
	id, parcelID kernel.UUID,
	status Status,
	messengerID *kernel.UUID,
	location, notes string,
	createdAt time.Time,
) (HistoryEntry, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate(), status.Validate()); err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{
		id:          id,
		parcelID:    parcelID,
		status:      status,
		messengerID: messengerID,
		location:    location,
		notes:       notes,
		createdAt:   createdAt,
	}, nil
}

func (h HistoryEntry) ID() kernel.UUID { return h.id }

func (h HistoryEntry) ParcelID() kernel.UUID { return h.parcelID }

func (h HistoryEntry) Status() Status { return h.status }

func (h HistoryEntry) MessengerID() *kernel.UUID { return h.messengerID }

func (h HistoryEntry) Location() string { return h.location }

func (h HistoryEntry) Notes() string { return h.notes }

func (h HistoryEntry) CreatedAt() time.Time { return h.createdAt }
