package queries

import (
	"context"
	"database/sql"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

type GetReportQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetReportQueryHandler(db *gorm.DB, clock kernel.Clock) GetReportQueryHandler {
	return GetReportQueryHandler{db: db, clock: clock}
}

func (h GetReportQueryHandler) Handle(ctx context.Context, query GetReportQuery) (ReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ReportResponse{}, err
	}

	where, args := dateFilter("p.created_at", query.DateRange())
	db := h.db.WithContext(ctx)

	var (
		rows []ReportRow
		err  error
	)
	switch query.Type() {
	case ReportByStatus:
		rows, err = h.byStatus(db, where, args)
	case ReportByMessenger:
		rows, err = h.byMessenger(db, where, args)
	case ReportByCodePrefix:
		rows, err = h.byCodePrefix(db, where, args)
	}
	if err != nil {
		return ReportResponse{}, err
	}

	stats, err := h.statistics(db, where, args)
	if err != nil {
		return ReportResponse{}, err
	}

	return ReportResponse{
		Type:        query.Type(),
		Title:       query.Type().Title(),
		DateRange:   query.DateRange(),
		Rows:        rows,
		Statistics:  stats,
		GeneratedAt: h.clock.Now(),
	}, nil
}

func (h GetReportQueryHandler) byStatus(db *gorm.DB, where string, args []any) ([]ReportRow, error) {
	rows, err := db.Raw(`
		SELECT p.status, COUNT(*) AS total
		FROM packages p`+where+`
		GROUP BY p.status
		ORDER BY total DESC, p.status
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReportRows(rows, func(rows *sql.Rows, row *ReportRow) error {
		if err := rows.Scan(&row.Key, &row.Count); err != nil {
			return err
		}
		status, err := parcel.ParseStatus(row.Key)
		if err != nil {
			return err
		}
		row.Label = status.Label()
		return nil
	})
}

func (h GetReportQueryHandler) byMessenger(db *gorm.DB, where string, args []any) ([]ReportRow, error) {
	args = append([]any{parcel.Delivered.String()}, args...)
	rows, err := db.Raw(`
		SELECT
			u.id::text,
			u.first_name || ' ' || u.last_name AS messenger_name,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE p.status = ?) AS delivered
		FROM packages p
		JOIN users u ON u.id = p.assigned_messenger_id`+where+`
		GROUP BY u.id, u.first_name, u.last_name
		ORDER BY total DESC, messenger_name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReportRows(rows, func(rows *sql.Rows, row *ReportRow) error {
		return rows.Scan(&row.Key, &row.Label, &row.Count, &row.Delivered)
	})
}

func (h GetReportQueryHandler) byCodePrefix(db *gorm.DB, where string, args []any) ([]ReportRow, error) {
	rows, err := db.Raw(`
		SELECT split_part(p.tracking_code, '-', 1) AS prefix, COUNT(*) AS total
		FROM packages p`+where+`
		GROUP BY prefix
		ORDER BY total DESC, prefix
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReportRows(rows, func(rows *sql.Rows, row *ReportRow) error {
		if err := rows.Scan(&row.Key, &row.Count); err != nil {
			return err
		}
		row.Label = row.Key
		return nil
	})
}

func (h GetReportQueryHandler) statistics(db *gorm.DB, where string, args []any) (ReportStatistics, error) {
	args = append([]any{
		parcel.Delivered.String(),
		parcel.InTransit.String(),
		parcel.OutForDelivery.String(),
	}, args...)

	var stats ReportStatistics
	row := db.Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE p.status = ?),
			COUNT(*) FILTER (WHERE p.status = ?),
			COUNT(*) FILTER (WHERE p.status = ?)
		FROM packages p`+where, args...).Row()
	if err := row.Scan(&stats.Total, &stats.Delivered, &stats.InTransit, &stats.OutForDelivery); err != nil {
		return ReportStatistics{}, err
	}
	return stats, nil
}

func scanReportRows(rows *sql.Rows, scan func(*sql.Rows, *ReportRow) error) ([]ReportRow, error) {
	out := make([]ReportRow, 0)
	for rows.Next() {
		var row ReportRow
		if err := scan(rows, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// dateFilter renders a WHERE clause for column over r. The end bound covers
// the whole day.
func dateFilter(column string, r DateRange) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if from := r.from(); from != nil {
		conditions = append(conditions, column+" >= ?")
		args = append(args, *from)
	}
	if until := r.until(); until != nil {
		conditions = append(conditions, column+" < ?")
		args = append(args, *until)
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return "\n\t\tWHERE " + strings.Join(conditions, " AND "), args
}
