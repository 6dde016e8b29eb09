package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetReport handles GET /reports.
func (s *Server) GetReport(ctx echo.Context, params servers.GetReportParams) error {
	if _, err := s.authorize(ctx, user.Staff); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetReportQuery(params.Type, deref(params.StartDate), deref(params.EndDate))
	if err != nil {
		return s.fail(ctx, err)
	}

	report, err := s.h.Report.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	rows := make([]servers.ReportRow, len(report.Rows))
	for i, r := range report.Rows {
		rows[i] = servers.ReportRow{Key: r.Key, Label: r.Label, Count: r.Count, Delivered: r.Delivered}
	}

	response := servers.Report{
		Type:        string(report.Type),
		Title:       report.Title,
		Rows:        rows,
		GeneratedAt: report.GeneratedAt,
		Statistics: servers.ReportStatistics{
			Total:          report.Statistics.Total,
			Delivered:      report.Statistics.Delivered,
			InTransit:      report.Statistics.InTransit,
			OutForDelivery: report.Statistics.OutForDelivery,
		},
	}
	if report.DateRange.Start != nil {
		response.StartDate = &openapi_types.Date{Time: *report.DateRange.Start}
	}
	if report.DateRange.End != nil {
		response.EndDate = &openapi_types.Date{Time: *report.DateRange.End}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDashboard handles GET /reports/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	if _, err := s.authorize(ctx, user.Staff); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDashboardQuery()
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.h.Dashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	byStatus := make([]servers.StatusCount, len(d.PackagesByStatus))
	for i, c := range d.PackagesByStatus {
		byStatus[i] = servers.StatusCount{
			Status: servers.PackageStatus(c.Status.String()),
			Label:  c.Status.Label(),
			Count:  c.Count,
		}
	}

	byRole := make([]servers.RoleCount, len(d.UsersByRole))
	for i, c := range d.UsersByRole {
		byRole[i] = servers.RoleCount{Role: servers.Role(c.Role.String()), Count: c.Count}
	}

	recent := make([]servers.Package, len(d.RecentPackages))
	for i, p := range d.RecentPackages {
		recent[i] = packageFromResponse(p)
	}

	top := make([]servers.MessengerLoad, len(d.TopMessengers))
	for i, m := range d.TopMessengers {
		top[i] = servers.MessengerLoad{
			MessengerId: m.MessengerID.Bytes(),
			Name:        m.Name,
			Assigned:    m.Assigned,
			Delivered:   m.Delivered,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Dashboard{
		PackagesByStatus: byStatus,
		UsersByRole:      byRole,
		RecentPackages:   recent,
		TopMessengers:    top,
		GeneratedAt:      d.GeneratedAt,
	})
}
