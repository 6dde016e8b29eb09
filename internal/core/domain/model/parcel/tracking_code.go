package parcel

import (
	"fmt"
	"regexp"
	"strings"

	"parcels/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

// DefaultTrackingPrefix is used when no prefix is configured.
const DefaultTrackingPrefix = "URABA"

var prefixPattern = regexp.MustCompile(`^[A-Z0-9]{1,16}$`)

// TrackingCode is the public reference of a parcel: "<PREFIX>-<ULID>".
// The ULID part carries the creation millisecond followed by monotonic
// randomness, so codes minted concurrently in one process never collide.
type TrackingCode struct {
	value string
}

// NewTrackingCode mints a code under prefix.
func NewTrackingCode(prefix string) (TrackingCode, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if !prefixPattern.MatchString(prefix) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking_prefix",
			fmt.Errorf("%q must be 1-16 letters or digits", prefix),
		)
	}
	return TrackingCode{value: prefix + "-" + ulid.Make().String()}, nil
}

// ParseTrackingCode accepts a code as typed by a person: surrounding blanks
// are dropped and letters upper-cased.
func ParseTrackingCode(s string) (TrackingCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("tracking_code")
	}
	return TrackingCode{value: s}, nil
}

// Prefix returns the part before the first dash.
func (c TrackingCode) Prefix() string {
	prefix, _, _ := strings.Cut(c.value, "-")
	return prefix
}

func (c TrackingCode) String() string {
	return c.value
}

func (c TrackingCode) IsZero() bool {
	return c.value == ""
}
