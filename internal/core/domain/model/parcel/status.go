package parcel

import (
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Registered is the state of a freshly created parcel awaiting review.
	Registered

	// Approved parcels passed review and wait for a messenger.
	Approved

	// Rejected parcels failed review. Terminal.
	Rejected

	// InTransit parcels are carried by their messenger.
	InTransit

	// OutForDelivery parcels are on the last leg to the recipient.
	OutForDelivery

	// Delivered parcels reached the recipient. Terminal.
	Delivered

	// Cancelled parcels were withdrawn by staff. Terminal.
	Cancelled
)

func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no wire code
	return map[Status]string{
		Registered:     "registered",
		Approved:       "approved",
		Rejected:       "rejected",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label
	return map[Status]string{
		Registered:     "Registered",
		Approved:       "Approved",
		Rejected:       "Rejected",
		InTransit:      "In transit",
		OutForDelivery: "Out for delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getStatusLocations() map[Status]string {
	//nolint:exhaustive // Unknown has no location
	return map[Status]string{
		Registered:     "Origin office, awaiting review",
		Approved:       "Origin office, awaiting dispatch",
		Rejected:       "Origin office, returned to sender",
		InTransit:      "In transit to the destination city",
		OutForDelivery: "With the messenger, out for delivery",
		Delivered:      "Delivered to the recipient",
		Cancelled:      "Shipment cancelled",
	}
}

// getTransitions lists the legal targets of ChangeStatus.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[Status][]Status{
		Registered:     {Approved, Rejected, Cancelled},
		Approved:       {Registered, Rejected, Cancelled, InTransit},
		InTransit:      {OutForDelivery, Delivered},
		OutForDelivery: {InTransit, Delivered},
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Registered, Approved, InTransit, OutForDelivery, Delivered, Rejected, Cancelled}
}

// ParseStatus converts a wire code ("in_transit", ...) into a Status.
func ParseStatus(code string) (Status, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", code))
}

// Validate reports whether s is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code, or "unknown".
func (s Status) String() string {
	if c, ok := getStatusCodes()[s]; ok {
		return c
	}
	return "unknown"
}

// Label returns the human-readable name.
func (s Status) Label() string {
	if l, ok := getStatusLabels()[s]; ok {
		return l
	}
	return "Unknown"
}

// Location describes where a parcel in this status is, for tracking pages.
func (s Status) Location() string {
	if l, ok := getStatusLocations()[s]; ok {
		return l
	}
	return "Unknown"
}

// Rank orders statuses along the lifecycle; terminal failures sort last.
func (s Status) Rank() int {
	for i, st := range AllStatuses() {
		if st == s {
			return i + 1
		}
	}
	return len(AllStatuses()) + 1
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Delivered || s == Cancelled
}

// IsActive reports whether a messenger is currently working the parcel.
func (s Status) IsActive() bool {
	return s == InTransit || s == OutForDelivery
}

// CanTransitionTo reports whether next is a legal target from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range getTransitions()[s] {
		if t == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the move is legal.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move from %s to %s", s, next),
		)
	}
	return next, nil
}

// Approve moves a registered parcel to Approved.
func (s Status) Approve() (Status, error) {
	if s != Registered {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to approve", s),
		)
	}
	return Approved, nil
}

// Reject moves a registered or approved parcel to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Registered && s != Approved {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s),
		)
	}
	return Rejected, nil
}

// ValidateAssign checks that a messenger may be (re)assigned: the parcel is
// approved or already being carried.
func (s Status) ValidateAssign() error {
	if s != Approved && !s.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign a messenger", s),
		)
	}
	return nil
}
