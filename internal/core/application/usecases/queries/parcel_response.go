package queries

import (
	"context"
	"database/sql"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ParcelResponse is a parcel as shown to its readers, with the client and
// messenger names resolved.
type ParcelResponse struct {
	ID              kernel.UUID
	TrackingCode    string
	SenderName      string
	RecipientName   string
	DeliveryAddress string
	Description     string
	Weight          decimal.Decimal
	Cost            decimal.Decimal
	Status          parcel.Status
	ClientID        kernel.UUID
	ClientName      string
	MessengerID     *kernel.UUID
	MessengerName   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const parcelSelect = `
	SELECT
		p.id,
		p.tracking_code,
		p.sender_name,
		p.recipient_name,
		p.delivery_address,
		p.description,
		p.weight,
		p.cost,
		p.status,
		p.client_id,
		COALESCE(c.first_name || ' ' || c.last_name, '') AS client_name,
		p.assigned_messenger_id,
		COALESCE(m.first_name || ' ' || m.last_name, '') AS messenger_name,
		p.created_at,
		p.updated_at
	FROM packages p
	LEFT JOIN users c ON c.id = p.client_id
	LEFT JOIN users m ON m.id = p.assigned_messenger_id`

func scanParcels(rows *sql.Rows) ([]ParcelResponse, error) {
	parcels := make([]ParcelResponse, 0)

	for rows.Next() {
		var (
			resp        ParcelResponse
			id          uuid.UUID
			clientID    uuid.UUID
			messengerID uuid.NullUUID
			status      string
		)

		err := rows.Scan(
			&id,
			&resp.TrackingCode,
			&resp.SenderName,
			&resp.RecipientName,
			&resp.DeliveryAddress,
			&resp.Description,
			&resp.Weight,
			&resp.Cost,
			&status,
			&clientID,
			&resp.ClientName,
			&messengerID,
			&resp.MessengerName,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if messengerID.Valid {
			mid, midErr := kernel.UUIDFromBytes(messengerID.UUID[:])
			if midErr != nil {
				return nil, midErr
			}
			resp.MessengerID = &mid
		}
		if resp.Status, err = parcel.ParseStatus(status); err != nil {
			return nil, err
		}

		parcels = append(parcels, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

// findParcel loads one parcel and checks that actor may read it.
func findParcel(ctx context.Context, db *gorm.DB, actor session.Claims, id kernel.UUID) (ParcelResponse, error) {
	rows, err := db.WithContext(ctx).Raw(parcelSelect+`
		WHERE p.id = ?`, id.String()).Rows()
	if err != nil {
		return ParcelResponse{}, err
	}
	defer rows.Close()

	parcels, err := scanParcels(rows)
	if err != nil {
		return ParcelResponse{}, err
	}
	if len(parcels) == 0 {
		return ParcelResponse{}, errs.NewObjectNotFoundError("id", id.String())
	}

	if !canView(actor, parcels[0]) {
		return ParcelResponse{}, errs.NewForbiddenError("read package")
	}
	return parcels[0], nil
}

func canView(actor session.Claims, p ParcelResponse) bool {
	switch actor.Role { //nolint:exhaustive
	case user.Operator, user.Admin:
		return true
	case user.Client:
		return p.ClientID.IsEqual(actor.UserID)
	case user.Messenger:
		return p.MessengerID != nil && p.MessengerID.IsEqual(actor.UserID)
	default:
		return false
	}
}

// scopeFilter narrows a parcel listing to what actor may read.
func scopeFilter(actor session.Claims) (string, []any, error) {
	switch actor.Role { //nolint:exhaustive
	case user.Operator, user.Admin:
		return "", nil, nil
	case user.Client:
		return "p.client_id = ?", []any{actor.UserID.String()}, nil
	case user.Messenger:
		return "p.assigned_messenger_id = ?", []any{actor.UserID.String()}, nil
	default:
		return "", nil, errs.NewForbiddenError("list packages")
	}
}
