package services

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
)

var (
	// ErrNoEligibleMessenger is returned when automatic assignment finds no verified messenger.
	ErrNoEligibleMessenger = errs.NewObjectNotFoundErrorWithCause(
		"messenger", "eligible", errors.New("no verified messenger is available"),
	)
)

// MessengerCandidate is a messenger together with the number of parcels it
// currently carries (in_transit or out_for_delivery).
type MessengerCandidate struct {
	Messenger  *user.User
	ActiveLoad int
}

// MessengerDispatcher hands parcels to messengers.
//
// Business rules:
//   - Only verified users with the messenger role can receive parcels
//   - Automatic selection picks the lowest active load; ties go to the
//     lowest identifier so the choice is deterministic
//   - The parcel must be approved or already in the hands of a messenger
//
// Example:
//
//	dispatcher := services.NewMessengerDispatcher()
//	messenger, err := dispatcher.DispatchAutomatic(p, candidates, now)
type MessengerDispatcher struct{}

func NewMessengerDispatcher() MessengerDispatcher {
	return MessengerDispatcher{}
}

// Dispatch assigns p to messenger after checking it may receive parcels.
func (d MessengerDispatcher) Dispatch(p *parcel.Parcel, messenger *user.User, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := d.ValidateMessenger(messenger); err != nil {
		return err
	}
	return p.AssignMessenger(messenger.ID(), now)
}

// DispatchAutomatic picks the best candidate and assigns p to it.
func (d MessengerDispatcher) DispatchAutomatic(
	p *parcel.Parcel,
	candidates []MessengerCandidate,
	now time.Time,
) (*user.User, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	best := d.SelectLeastLoaded(candidates)
	if best == nil {
		return nil, ErrNoEligibleMessenger
	}

	if err := p.AssignMessenger(best.ID(), now); err != nil {
		return nil, err
	}
	return best, nil
}

// SelectLeastLoaded returns the eligible candidate with the fewest active
// parcels, or nil when none is eligible.
func (d MessengerDispatcher) SelectLeastLoaded(candidates []MessengerCandidate) *user.User {
	var (
		best     *user.User
		bestLoad int
	)
	for _, c := range candidates {
		if c.Messenger == nil || !c.Messenger.IsDispatchable() {
			continue
		}
		switch {
		case best == nil,
			c.ActiveLoad < bestLoad,
			c.ActiveLoad == bestLoad && c.Messenger.ID().String() < best.ID().String():
			best = c.Messenger
			bestLoad = c.ActiveLoad
		}
	}
	return best
}

// ValidateMessenger rejects users that are not verified messengers.
func (d MessengerDispatcher) ValidateMessenger(u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.Role() != user.Messenger {
		return errs.NewValueIsInvalidErrorWithCause("messenger_id", fmt.Errorf("user has role %s", u.Role()))
	}
	if !u.IsEmailVerified() {
		return errs.NewValueIsInvalidErrorWithCause("messenger_id", errors.New("messenger e-mail is not verified"))
	}
	return nil
}
