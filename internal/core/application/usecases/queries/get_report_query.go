package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// DateLayout is the accepted format for report bounds.
const DateLayout = "2006-01-02"

var ErrGetReportQueryIsNotConstructed = errors.New(
	"GetReportQuery must be created via NewGetReportQuery constructor",
)

// ReportType selects how parcels are grouped.
type ReportType string

const (
	ReportByStatus     ReportType = "by-status"
	ReportByMessenger  ReportType = "by-messenger"
	ReportByCodePrefix ReportType = "by-code-prefix"
)

func getReportTitles() map[ReportType]string {
	return map[ReportType]string{
		ReportByStatus:     "Packages by status",
		ReportByMessenger:  "Packages by messenger",
		ReportByCodePrefix: "Packages by tracking code prefix",
	}
}

func ParseReportType(s string) (ReportType, error) {
	t := ReportType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := getReportTitles()[t]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a report type", s))
	}
	return t, nil
}

func (t ReportType) Title() string {
	return getReportTitles()[t]
}

// DateRange bounds a report by creation date. A nil bound is open. Both
// bounds are inclusive days.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// from and until return the half-open timestamp interval [from, until).
func (r DateRange) from() *time.Time {
	return r.Start
}

func (r DateRange) until() *time.Time {
	if r.End == nil {
		return nil
	}
	next := r.End.AddDate(0, 0, 1)
	return &next
}

// GetReportQuery aggregates parcels created in a date range.
type GetReportQuery struct {
	reportType ReportType
	dateRange  DateRange

	guard guard.ConstructorGuard
}

// NewGetReportQuery parses YYYY-MM-DD bounds; empty strings leave a bound open.
func NewGetReportQuery(reportType, startDate, endDate string) (GetReportQuery, error) {
	t, typeErr := ParseReportType(reportType)
	start, startErr := parseDate("start_date", startDate)
	end, endErr := parseDate("end_date", endDate)

	if err := errors.Join(typeErr, startErr, endErr); err != nil {
		return GetReportQuery{}, err
	}

	if start != nil && end != nil && end.Before(*start) {
		return GetReportQuery{}, errs.NewValueIsOutOfRangeError("end_date", endDate, startDate, "unbounded")
	}

	return GetReportQuery{
		reportType: t,
		dateRange:  DateRange{Start: start, End: end},
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func parseDate(name, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &d, nil
}

func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}

func (q GetReportQuery) Type() ReportType { return q.reportType }

func (q GetReportQuery) DateRange() DateRange { return q.dateRange }

// ReportRow is one group of a report. Delivered is filled for the
// by-messenger report only.
type ReportRow struct {
	Key       string
	Label     string
	Count     int64
	Delivered int64
}

// ReportStatistics summarise the parcels in the report range.
type ReportStatistics struct {
	Total          int64
	Delivered      int64
	InTransit      int64
	OutForDelivery int64
}

type ReportResponse struct {
	Type        ReportType
	Title       string
	DateRange   DateRange
	Rows        []ReportRow
	Statistics  ReportStatistics
	GeneratedAt time.Time
}
