package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// EstimatedDeliveryWindow is added to the registration time to estimate delivery.
const EstimatedDeliveryWindow = 3 * 24 * time.Hour

// TrackParcelQuery is the public tracking lookup. Codes are matched
// case-insensitively.
type TrackParcelQuery struct {
	code parcel.TrackingCode

	guard guard.ConstructorGuard
}

func NewTrackParcelQuery(code string) (TrackParcelQuery, error) {
	tc, err := parcel.ParseTrackingCode(code)
	if err != nil {
		return TrackParcelQuery{}, err
	}
	return TrackParcelQuery{code: tc, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

func (q TrackParcelQuery) Code() parcel.TrackingCode { return q.code }

// TrackParcelResponse is what anyone holding the code may see.
type TrackParcelResponse struct {
	TrackingCode      string
	Status            parcel.Status
	Location          string
	SenderName        string
	RecipientName     string
	DeliveryAddress   string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	EstimatedDelivery time.Time
}
