package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDashboardQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetDashboardQueryHandler(db *gorm.DB, clock kernel.Clock) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db, clock: clock}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	db := h.db.WithContext(ctx)

	byStatus, err := countBy(db, "SELECT status, COUNT(*) FROM packages GROUP BY status")
	if err != nil {
		return DashboardResponse{}, err
	}
	byRole, err := countBy(db, "SELECT role, COUNT(*) FROM users GROUP BY role")
	if err != nil {
		return DashboardResponse{}, err
	}

	resp := DashboardResponse{GeneratedAt: h.clock.Now()}
	for _, s := range parcel.AllStatuses() {
		resp.PackagesByStatus = append(resp.PackagesByStatus, StatusCount{Status: s, Count: byStatus[s.String()]})
	}
	for _, r := range user.AllRoles() {
		resp.UsersByRole = append(resp.UsersByRole, RoleCount{Role: r, Count: byRole[r.String()]})
	}

	if resp.RecentPackages, err = h.recent(db); err != nil {
		return DashboardResponse{}, err
	}
	if resp.TopMessengers, err = h.topMessengers(db); err != nil {
		return DashboardResponse{}, err
	}

	return resp, nil
}

func (h GetDashboardQueryHandler) recent(db *gorm.DB) ([]ParcelResponse, error) {
	rows, err := db.Raw(parcelSelect+`
		ORDER BY p.created_at DESC, p.id
		LIMIT ?`, DashboardRecentLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcels(rows)
}

func (h GetDashboardQueryHandler) topMessengers(db *gorm.DB) ([]MessengerLoad, error) {
	rows, err := db.Raw(`
		SELECT
			u.id,
			u.first_name || ' ' || u.last_name,
			COUNT(p.id) AS assigned,
			COUNT(p.id) FILTER (WHERE p.status = ?) AS delivered
		FROM users u
		LEFT JOIN packages p ON p.assigned_messenger_id = u.id
		WHERE u.role = ?
		GROUP BY u.id, u.first_name, u.last_name
		ORDER BY assigned DESC, u.id
		LIMIT ?
	`, parcel.Delivered.String(), user.Messenger.String(), DashboardTopMessengerCap).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]MessengerLoad, 0)
	for rows.Next() {
		var (
			load MessengerLoad
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &load.Name, &load.Assigned, &load.Delivered); err != nil {
			return nil, err
		}
		if load.MessengerID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return loads, nil
}

func countBy(db *gorm.DB, sqlQuery string) (map[string]int64, error) {
	rows, err := db.Raw(sqlQuery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			key   string
			count int64
		)
		if err = rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}
	return counts, rows.Err()
}
