package queries

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

type TrackParcelQueryHandler struct {
	db *gorm.DB
}

func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

func (h TrackParcelQueryHandler) Handle(ctx context.Context, query TrackParcelQuery) (TrackParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_code,
			status,
			sender_name,
			recipient_name,
			delivery_address,
			created_at,
			updated_at
		FROM packages
		WHERE tracking_code = ?
	`, query.Code().String()).Rows()
	if err != nil {
		return TrackParcelResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackParcelResponse{}, err
		}
		return TrackParcelResponse{}, errs.NewObjectNotFoundError("tracking_code", query.Code().String())
	}

	var (
		resp   TrackParcelResponse
		status string
	)
	err = rows.Scan(
		&resp.TrackingCode,
		&status,
		&resp.SenderName,
		&resp.RecipientName,
		&resp.DeliveryAddress,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return TrackParcelResponse{}, err
	}

	if resp.Status, err = parcel.ParseStatus(status); err != nil {
		return TrackParcelResponse{}, err
	}
	resp.Location = resp.Status.Location()
	resp.EstimatedDelivery = resp.CreatedAt.Add(EstimatedDeliveryWindow)

	return resp, nil
}
