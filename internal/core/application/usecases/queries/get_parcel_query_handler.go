package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetParcelQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}
	return findParcel(ctx, h.db, query.Actor(), query.ParcelID())
}
