package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle returns the history newest first.
func (h GetParcelHistoryQueryHandler) Handle(ctx context.Context, query GetParcelHistoryQuery) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := findParcel(ctx, h.db, query.Actor(), query.ParcelID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ph.id,
			ph.status,
			ph.location,
			ph.notes,
			ph.messenger_id,
			COALESCE(u.first_name || ' ' || u.last_name, '') AS messenger_name,
			ph.created_at
		FROM package_history ph
		LEFT JOIN users u ON u.id = ph.messenger_id
		WHERE ph.package_id = ?
		ORDER BY ph.created_at DESC, ph.id
	`, query.ParcelID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var (
			entry       HistoryEntryResponse
			id          uuid.UUID
			status      string
			messengerID uuid.NullUUID
		)

		if err = rows.Scan(&id, &status, &entry.Location, &entry.Notes, &messengerID, &entry.MessengerName, &entry.CreatedAt); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.Status, err = parcel.ParseStatus(status); err != nil {
			return nil, err
		}
		if messengerID.Valid {
			mid, midErr := kernel.UUIDFromBytes(messengerID.UUID[:])
			if midErr != nil {
				return nil, midErr
			}
			entry.MessengerID = &mid
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
