// Package historyrepo appends parcel history entries to package_history.
package historyrepo

import (
	"time"

	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

type HistoryEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID   uuid.UUID `gorm:"type:uuid;index"`
	Status      string
	Location    string
	MessengerID *uuid.UUID `gorm:"type:uuid"`
	Notes       string
	CreatedAt   time.Time
}

func (HistoryEntryDTO) TableName() string {
	return "package_history"
}

func fromDomain(entry parcel.HistoryEntry) HistoryEntryDTO {
	var messengerID *uuid.UUID
	if id := entry.MessengerID(); id != nil {
		raw := id.Bytes()
		messengerID = &raw
	}

	return HistoryEntryDTO{
		ID:          entry.ID().Bytes(),
		PackageID:   entry.ParcelID().Bytes(),
		Status:      entry.Status().String(),
		Location:    entry.Location(),
		MessengerID: messengerID,
		Notes:       entry.Notes(),
		CreatedAt:   entry.CreatedAt(),
	}
}
