package parcel

import (
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
)

// ScanAction is what a messenger does when scanning a parcel's QR code.
type ScanAction int

const (
	UnknownScanAction ScanAction = iota
	Pickup
	Delivery
)

// ParseScanAction accepts "pickup" or "delivery".
func ParseScanAction(s string) (ScanAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pickup":
		return Pickup, nil
	case "delivery":
		return Delivery, nil
	default:
		return UnknownScanAction, errs.NewValueIsInvalidErrorWithCause(
			"action",
			fmt.Errorf("%q is not one of pickup, delivery", s),
		)
	}
}

func (a ScanAction) String() string {
	switch a {
	case Pickup:
		return "pickup"
	case Delivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Target is the status a scan forces.
func (a ScanAction) Target() Status {
	switch a {
	case Pickup:
		return InTransit
	case Delivery:
		return Delivered
	default:
		return Unknown
	}
}

// Note is the history note recorded for the scan.
func (a ScanAction) Note() string {
	return a.String() + " via QR scan"
}
