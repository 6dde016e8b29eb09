package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrScanParcelCommandIsNotConstructed = errors.New(
	"ScanParcelCommand must be created via NewScanParcelCommand constructor",
)

// ScanParcelCommand records a messenger's pickup or delivery scan.
type ScanParcelCommand struct {
	messengerID  kernel.UUID
	trackingCode *parcel.TrackingCode
	parcelID     *kernel.UUID
	action       parcel.ScanAction

	guard guard.ConstructorGuard
}

func NewScanParcelCommand(actor session.Claims, payload parcel.QRPayload, action string) (ScanParcelCommand, error) {
	scanAction, err := parcel.ParseScanAction(action)
	if err != nil {
		return ScanParcelCommand{}, err
	}

	cmd := ScanParcelCommand{messengerID: actor.UserID, action: scanAction}

	if payload.TrackingCode != "" {
		code, err := parcel.ParseTrackingCode(payload.TrackingCode)
		if err != nil {
			return ScanParcelCommand{}, err
		}
		cmd.trackingCode = &code
	}
	if payload.PackageID != "" {
		id, err := kernel.ParseID("package_id", payload.PackageID)
		if err != nil {
			return ScanParcelCommand{}, err
		}
		cmd.parcelID = &id
	}
	if cmd.trackingCode == nil && cmd.parcelID == nil {
		return ScanParcelCommand{}, errs.NewValueIsRequiredError("qr_data")
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c ScanParcelCommand) Validate() error {
	return c.guard.Validate(ErrScanParcelCommandIsNotConstructed)
}

func (c ScanParcelCommand) MessengerID() kernel.UUID { return c.messengerID }

func (c ScanParcelCommand) TrackingCode() *parcel.TrackingCode { return c.trackingCode }

func (c ScanParcelCommand) ParcelID() *kernel.UUID { return c.parcelID }

func (c ScanParcelCommand) Action() parcel.ScanAction { return c.action }
