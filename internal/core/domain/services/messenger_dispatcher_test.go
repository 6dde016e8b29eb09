package services_test

import (
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

func newUser(t *testing.T, id string, role user.Role, verified bool) *user.User {
	t.Helper()
	uid, err := kernel.UUIDFromString(id)
	require.NoError(t, err)
	u, err := user.RestoreUser(uid, user.Profile{
		FirstName: "Test", LastName: role.String(), DocumentNumber: id, Email: id + "@example.com",
	}, role, "hash", verified, "", now, now)
	require.NoError(t, err)
	return u
}

func approvedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	code, err := parcel.NewTrackingCode("URABA")
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), code, parcel.Details{
		SenderName: "Ana", RecipientName: "Luis", DeliveryAddress: "Calle 1", Weight: decimal.NewFromInt(1),
	}, kernel.NewUUID(), parcel.DefaultTariff(), now)
	require.NoError(t, err)
	require.NoError(t, p.Approve(now))
	return p
}

const (
	idA = "00000000-0000-0000-0000-00000000000a"
	idB = "00000000-0000-0000-0000-00000000000b"
	idC = "00000000-0000-0000-0000-00000000000c"
)

func TestMessengerDispatcher_SelectLeastLoaded(t *testing.T) {
	d := services.NewMessengerDispatcher()

	t.Run("fewest active parcels wins", func(t *testing.T) {
		best := d.SelectLeastLoaded([]services.MessengerCandidate{
			{Messenger: newUser(t, idA, user.Messenger, true), ActiveLoad: 3},
			{Messenger: newUser(t, idB, user.Messenger, true), ActiveLoad: 1},
			{Messenger: newUser(t, idC, user.Messenger, true), ActiveLoad: 2},
		})
		require.NotNil(t, best)
		assert.Equal(t, idB, best.ID().String())
	})

	t.Run("ties go to the lowest id", func(t *testing.T) {
		best := d.SelectLeastLoaded([]services.MessengerCandidate{
			{Messenger: newUser(t, idC, user.Messenger, true), ActiveLoad: 0},
			{Messenger: newUser(t, idA, user.Messenger, true), ActiveLoad: 0},
			{Messenger: newUser(t, idB, user.Messenger, true), ActiveLoad: 0},
		})
		require.NotNil(t, best)
		assert.Equal(t, idA, best.ID().String())
	})

	t.Run("never picks unverified or non-messenger users", func(t *testing.T) {
		best := d.SelectLeastLoaded([]services.MessengerCandidate{
			{Messenger: newUser(t, idA, user.Messenger, false), ActiveLoad: 0},
			{Messenger: newUser(t, idB, user.Operator, true), ActiveLoad: 0},
			{Messenger: newUser(t, idC, user.Messenger, true), ActiveLoad: 9},
			{Messenger: nil},
		})
		require.NotNil(t, best)
		assert.Equal(t, idC, best.ID().String())
	})

	t.Run("nobody eligible", func(t *testing.T) {
		assert.Nil(t, d.SelectLeastLoaded(nil))
	})
}

func TestMessengerDispatcher_DispatchAutomatic(t *testing.T) {
	d := services.NewMessengerDispatcher()

	t.Run("assigns and moves to in transit", func(t *testing.T) {
		p := approvedParcel(t)
		m := newUser(t, idA, user.Messenger, true)

		chosen, err := d.DispatchAutomatic(p, []services.MessengerCandidate{{Messenger: m}}, now)

		require.NoError(t, err)
		assert.Equal(t, m, chosen)
		assert.Equal(t, parcel.InTransit, p.Status())
		assert.True(t, p.IsAssignedTo(m.ID()))
	})

	t.Run("no eligible messenger is not found", func(t *testing.T) {
		p := approvedParcel(t)

		_, err := d.DispatchAutomatic(p, []services.MessengerCandidate{
			{Messenger: newUser(t, idA, user.Messenger, false)},
		}, now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, parcel.Approved, p.Status())
	})

	t.Run("registered parcel cannot be assigned", func(t *testing.T) {
		code, _ := parcel.NewTrackingCode("URABA")
		p, err := parcel.NewParcel(kernel.NewUUID(), code, parcel.Details{
			SenderName: "Ana", RecipientName: "Luis", DeliveryAddress: "Calle 1",
		}, kernel.NewUUID(), parcel.DefaultTariff(), now)
		require.NoError(t, err)

		_, err = d.DispatchAutomatic(p, []services.MessengerCandidate{{Messenger: newUser(t, idA, user.Messenger, true)}}, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMessengerDispatcher_Dispatch(t *testing.T) {
	d := services.NewMessengerDispatcher()

	testCases := []struct {
		name    string
		target  *user.User
		wantErr error
	}{
		{name: "verified messenger", target: newUser(t, idA, user.Messenger, true)},
		{name: "unverified messenger", target: newUser(t, idA, user.Messenger, false), wantErr: errs.ErrValueIsInvalid},
		{name: "client", target: newUser(t, idA, user.Client, true), wantErr: errs.ErrValueIsInvalid},
		{name: "not constructed", target: &user.User{}, wantErr: user.ErrUserIsNotConstructed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := approvedParcel(t)
			err := d.Dispatch(p, tc.target, now)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, parcel.Approved, p.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, parcel.InTransit, p.Status())
		})
	}
}
