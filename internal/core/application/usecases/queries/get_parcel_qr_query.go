package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

var ErrGetParcelQRQueryIsNotConstructed = errors.New(
	"GetParcelQRQuery must be created via NewGetParcelQRQuery constructor",
)

// GetParcelQRQuery renders the label QR code of a parcel as a PNG image.
type GetParcelQRQuery struct {
	actor    session.Claims
	parcelID kernel.UUID
	size     int

	guard guard.ConstructorGuard
}

// NewGetParcelQRQuery uses DefaultQRSize when size is zero.
func NewGetParcelQRQuery(actor session.Claims, parcelID kernel.UUID, size int) (GetParcelQRQuery, error) {
	if size == 0 {
		size = DefaultQRSize
	}

	var sizeErr error
	if size < MinQRSize || size > MaxQRSize {
		sizeErr = errs.NewValueIsOutOfRangeError("size", size, MinQRSize, MaxQRSize)
	}
	if err := errors.Join(parcelID.Validate(), sizeErr); err != nil {
		return GetParcelQRQuery{}, err
	}

	return GetParcelQRQuery{actor: actor, parcelID: parcelID, size: size, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelQRQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQRQueryIsNotConstructed)
}

func (q GetParcelQRQuery) Actor() session.Claims { return q.actor }

func (q GetParcelQRQuery) ParcelID() kernel.UUID { return q.parcelID }

func (q GetParcelQRQuery) Size() int { return q.size }

// ParcelQRResponse carries the PNG and the content it encodes.
type ParcelQRResponse struct {
	TrackingCode string
	Content      string
	PNG          []byte
}
