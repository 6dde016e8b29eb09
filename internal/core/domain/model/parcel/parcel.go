package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created via NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrNotAssignedMessenger is returned when a messenger acts on a parcel it does not carry.
	ErrNotAssignedMessenger = errs.NewForbiddenError("messenger is not assigned to this package")
)

// WeightPlaces is the number of decimal places a weight may carry.
const WeightPlaces = 2

// MaxWeight is the heaviest parcel accepted, in kilograms.
var MaxWeight = decimal.NewFromInt(10000)

// Details are the client-supplied attributes of a shipment.
type Details struct {
	SenderName      string
	RecipientName   string
	DeliveryAddress string
	Description     string
	Weight          decimal.Decimal
}

func (d Details) normalized() Details {
	d.SenderName = strings.TrimSpace(d.SenderName)
	d.RecipientName = strings.TrimSpace(d.RecipientName)
	d.DeliveryAddress = strings.TrimSpace(d.DeliveryAddress)
	d.Description = strings.TrimSpace(d.Description)
	return d
}

func (d Details) validate() error {
	var weightErr error
	switch {
	case d.Weight.IsNegative() || d.Weight.GreaterThan(MaxWeight):
		weightErr = errs.NewValueIsOutOfRangeError("weight", d.Weight, decimal.Zero, MaxWeight)
	case !d.Weight.Equal(d.Weight.Truncate(WeightPlaces)):
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("at most %d decimal places are allowed", WeightPlaces))
	}
	return errors.Join(
		requiredField("sender_name", d.SenderName),
		requiredField("recipient_name", d.RecipientName),
		requiredField("delivery_address", d.DeliveryAddress),
		weightErr,
	)
}

// Changes is a partial edit of Details; nil or blank fields stay untouched.
type Changes struct {
	SenderName      *string
	RecipientName   *string
	DeliveryAddress *string
	Description     *string
	Weight          *decimal.Decimal
}

// Parcel is the aggregate root for a shipment.
//
// Parcel follows these invariants:
//   - Identifier, tracking code and owning client are set at creation and never change
//   - Sender, recipient and delivery address are never blank
//   - Weight lies in [0, MaxWeight] with at most WeightPlaces decimals
//   - Cost is BaseFee + weight × PerKgFee of the tariff in force when the
//     weight was last set
//   - Status is always a defined Status and changes only through the
//     lifecycle methods, each recording a StatusChanged event
type Parcel struct {
	id           kernel.UUID
	trackingCode TrackingCode
	details      Details
	cost         decimal.Decimal
	status       Status
	clientID     kernel.UUID
	messengerID  *kernel.UUID
	createdAt    time.Time
	updatedAt    time.Time

	events []StatusChanged

	isConstructed bool
}

// NewParcel registers a shipment for clientID. The cost is priced with tariff.
//
//	code, _ := parcel.NewTrackingCode("URABA")
//	p, err := parcel.NewParcel(kernel.NewUUID(), code, details, clientID, parcel.DefaultTariff(), now)
func NewParcel(
	id kernel.UUID,
	code TrackingCode,
	details Details,
	clientID kernel.UUID,
	tariff Tariff,
	now time.Time,
) (*Parcel, error) {
	details = details.normalized()

	var codeErr error
	if code.IsZero() {
		codeErr = errs.NewValueIsRequiredError("tracking_code")
	}

	if err := errors.Join(id.Validate(), codeErr, clientID.Validate(), details.validate()); err != nil {
		return nil, err
	}

	return &Parcel{
		id:            id,
		trackingCode:  code,
		details:       details,
		cost:          tariff.Cost(details.Weight),
		status:        Registered,
		clientID:      clientID,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreParcel rebuilds a persisted parcel without recomputing its cost.
func RestoreParcel(
	id kernel.UUID,
	code TrackingCode,
	details Details,
	cost decimal.Decimal,
	status Status,
	clientID kernel.UUID,
	messengerID *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Parcel, error) {
	var codeErr error
	if code.IsZero() {
		codeErr = errs.NewValueIsRequiredError("tracking_code")
	}

	if err := errors.Join(id.Validate(), codeErr, clientID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Parcel{
		id:            id,
		trackingCode:  code,
		details:       details,
		cost:          cost,
		status:        status,
		clientID:      clientID,
		messengerID:   messengerID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate reports whether the parcel was built by a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID { return p.id }

func (p *Parcel) TrackingCode() TrackingCode { return p.trackingCode }

func (p *Parcel) Details() Details { return p.details }

func (p *Parcel) Weight() decimal.Decimal { return p.details.Weight }

func (p *Parcel) Cost() decimal.Decimal { return p.cost }

func (p *Parcel) Status() Status { return p.status }

func (p *Parcel) ClientID() kernel.UUID { return p.clientID }

// MessengerID returns the assigned messenger, or nil.
func (p *Parcel) MessengerID() *kernel.UUID { return p.messengerID }

func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

func (p *Parcel) UpdatedAt() time.Time { return p.updatedAt }

// IsOwnedBy reports whether clientID registered the parcel.
func (p *Parcel) IsOwnedBy(clientID kernel.UUID) bool {
	return p.clientID.IsEqual(clientID)
}

// IsAssignedTo reports whether messengerID carries the parcel.
func (p *Parcel) IsAssignedTo(messengerID kernel.UUID) bool {
	return p.messengerID != nil && p.messengerID.IsEqual(messengerID)
}

// DomainEvents returns the status changes recorded since the parcel was loaded.
func (p *Parcel) DomainEvents() []StatusChanged {
	return p.events
}

// ClearDomainEvents drops the recorded events once they are published.
func (p *Parcel) ClearDomainEvents() {
	p.events = nil
}

// Approve accepts a registered parcel.
func (p *Parcel) Approve(now time.Time) error {
	next, err := p.status.Approve()
	if err != nil {
		return err
	}
	p.moveTo(next, now)
	return nil
}

// Reject refuses a registered or approved parcel.
func (p *Parcel) Reject(now time.Time) error {
	next, err := p.status.Reject()
	if err != nil {
		return err
	}
	p.moveTo(next, now)
	return nil
}

// AssignMessenger hands the parcel to messengerID and puts it in transit.
// Reassignment is allowed while the parcel is being carried.
func (p *Parcel) AssignMessenger(messengerID kernel.UUID, now time.Time) error {
	if err := messengerID.Validate(); err != nil {
		return err
	}
	if err := p.status.ValidateAssign(); err != nil {
		return err
	}
	p.messengerID = &messengerID
	p.moveTo(InTransit, now)
	return nil
}

// ChangeStatus applies a lifecycle transition.
func (p *Parcel) ChangeStatus(next Status, now time.Time) error {
	target, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}
	p.moveTo(target, now)
	return nil
}

// Scan applies a messenger's QR scan: pickup forces in_transit and delivery
// forces delivered, whatever the current non-terminal status. It returns the
// history entry to append.
func (p *Parcel) Scan(action ScanAction, messengerID kernel.UUID, entryID kernel.UUID, now time.Time) (HistoryEntry, error) {
	target := action.Target()
	if target == Unknown {
		return HistoryEntry{}, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%s is not a scan action", action))
	}
	if !p.IsAssignedTo(messengerID) {
		return HistoryEntry{}, ErrNotAssignedMessenger
	}
	if p.status.IsTerminal() {
		return HistoryEntry{}, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is a final status", p.status),
		)
	}

	p.moveTo(target, now)

	return NewHistoryEntry(entryID, p.id, target, &messengerID, ScanLocation, action.Note(), now)
}

// Edit merges the non-blank fields of changes. The cost is recomputed with tariff only when the
// weight actually changes.
func (p *Parcel) Edit(changes Changes, tariff Tariff, now time.Time) error {
	next := p.details
	next.SenderName = pick(next.SenderName, changes.SenderName)
	next.RecipientName = pick(next.RecipientName, changes.RecipientName)
	next.DeliveryAddress = pick(next.DeliveryAddress, changes.DeliveryAddress)
	next.Description = pick(next.Description, changes.Description)
	if changes.Weight != nil {
		next.Weight = *changes.Weight
	}
	next = next.normalized()

	if err := next.validate(); err != nil {
		return err
	}

	if !next.Weight.Equal(p.details.Weight) {
		p.cost = tariff.Cost(next.Weight)
	}
	p.details = next
	p.updatedAt = now
	return nil
}

func (p *Parcel) moveTo(next Status, now time.Time) {
	p.events = append(p.events, StatusChanged{
		ParcelID:     p.id,
		TrackingCode: p.trackingCode.String(),
		From:         p.status,
		To:           next,
		MessengerID:  p.messengerID,
		OccurredAt:   now,
	})
	p.status = next
	p.updatedAt = now
}

func requiredField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func pick(current string, next *string) string {
	if next == nil || strings.TrimSpace(*next) == "" {
		return current
	}
	return *next
}
