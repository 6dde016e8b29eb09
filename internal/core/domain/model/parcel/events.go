package parcel

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
)

// StatusChangedEventName is the routing key of StatusChanged.
const StatusChangedEventName = "parcel.status_changed"

// StatusChanged is recorded whenever a parcel changes status.
type StatusChanged struct {
	ParcelID     kernel.UUID
	TrackingCode string
	From         Status
	To           Status
	MessengerID  *kernel.UUID
	OccurredAt   time.Time
}

func (StatusChanged) Name() string {
	return StatusChangedEventName
}
