package queries

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"

	"gorm.io/gorm"
)

type GetParcelQRQueryHandler struct {
	db        *gorm.DB
	generator ports.QRGenerator
}

func NewGetParcelQRQueryHandler(db *gorm.DB, generator ports.QRGenerator) GetParcelQRQueryHandler {
	return GetParcelQRQueryHandler{db: db, generator: generator}
}

func (h GetParcelQRQueryHandler) Handle(ctx context.Context, query GetParcelQRQuery) (ParcelQRResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelQRResponse{}, err
	}

	p, err := findParcel(ctx, h.db, query.Actor(), query.ParcelID())
	if err != nil {
		return ParcelQRResponse{}, err
	}

	code, err := parcel.ParseTrackingCode(p.TrackingCode)
	if err != nil {
		return ParcelQRResponse{}, err
	}

	content, err := parcel.NewQRPayload(code, p.ID).Encode()
	if err != nil {
		return ParcelQRResponse{}, err
	}

	png, err := h.generator.Encode(content, query.Size())
	if err != nil {
		return ParcelQRResponse{}, err
	}

	return ParcelQRResponse{TrackingCode: p.TrackingCode, Content: content, PNG: png}, nil
}
