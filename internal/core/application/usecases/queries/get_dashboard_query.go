package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/guard"
)

const (
	DashboardRecentLimit     = 5
	DashboardTopMessengerCap = 5
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() (GetDashboardQuery, error) {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// StatusCount pairs a parcel status with the number of parcels in it.
type StatusCount struct {
	Status parcel.Status
	Count  int64
}

type RoleCount struct {
	Role  user.Role
	Count int64
}

// MessengerLoad is a messenger's all-time assignment volume.
type MessengerLoad struct {
	MessengerID kernel.UUID
	Name        string
	Assigned    int64
	Delivered   int64
}

// DashboardResponse lists every status and every role, including those
// with no rows.
type DashboardResponse struct {
	PackagesByStatus []StatusCount
	UsersByRole      []RoleCount
	RecentPackages   []ParcelResponse
	TopMessengers    []MessengerLoad
	GeneratedAt      time.Time
}
