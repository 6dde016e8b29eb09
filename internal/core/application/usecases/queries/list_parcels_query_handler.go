package queries

import (
	"context"
	"strings"

	"parcels/internal/core/domain/model/parcel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, args, err := scopeFilter(query.Actor())
	if err != nil {
		return nil, err
	}

	var conditions []string
	if scope != "" {
		conditions = append(conditions, scope)
	}
	if status := query.Status(); status != nil {
		conditions = append(conditions, "p.status = ?")
		args = append(args, status.String())
	}

	sqlQuery := parcelSelect
	if len(conditions) > 0 {
		sqlQuery += "\n\tWHERE " + strings.Join(conditions, " AND ")
	}

	if scope == "" {
		sqlQuery += "\n\tORDER BY array_position(?::text[], p.status), p.created_at DESC"
		args = append(args, pq.Array(lifecycleCodes()))
	} else {
		sqlQuery += "\n\tORDER BY p.created_at DESC"
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcels(rows)
}

func lifecycleCodes() []string {
	statuses := parcel.AllStatuses()
	codes := make([]string, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, s.String())
	}
	return codes
}
