package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClock() kernel.Clock {
	return kernel.FixedClock{At: testNow}
}

func newTestProfile(email, document string) user.Profile {
	return user.Profile{
		FirstName:      "Ana",
		LastName:       "Restrepo",
		DocumentNumber: document,
		Email:          email,
		Address:        "Calle 10 # 4-20, Apartadó",
		Phone:          "3001234567",
	}
}

func newTestUser(t *testing.T, role user.Role, verified bool) *user.User {
	t.Helper()
	id := kernel.NewUUID()
	u, err := user.NewUser(id, newTestProfile(id.String()[:8]+"@example.com", id.String()[:10]), role, "hash", "token", testNow)
	require.NoError(t, err)
	if verified {
		u.VerifyEmail(testNow)
	}
	return u
}

func claimsFor(u *user.User) session.Claims {
	return session.Claims{
		TokenID:   kernel.NewUUID().String(),
		UserID:    u.ID(),
		Email:     u.Email(),
		Role:      u.Role(),
		IssuedAt:  testNow,
		ExpiresAt: testNow.Add(session.DefaultFullTTL),
	}
}

func newTestParcel(t *testing.T, clientID kernel.UUID, weight string) *parcel.Parcel {
	t.Helper()
	code, err := parcel.NewTrackingCode(parcel.DefaultTrackingPrefix)
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), code, parcel.Details{
		SenderName:      "Ana",
		RecipientName:   "Pedro",
		DeliveryAddress: "Carrera 100, Turbo",
		Weight:          decimal.RequireFromString(weight),
	}, clientID, parcel.DefaultTariff(), testNow)
	require.NoError(t, err)
	return p
}

// plainHasher keeps tests fast; bcrypt is covered by its own adapter tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Matches(hash, password string) bool { return hash == "hashed:"+password }

// stubIssuer returns a token that names the user and the session kind.
type stubIssuer struct{}

func (stubIssuer) Issue(u *user.User, temporary bool, now time.Time) (session.Token, error) {
	ttl := session.DefaultFullTTL
	if temporary {
		ttl = session.DefaultTemporaryTTL
	}
	claims := session.Claims{
		TokenID:   kernel.NewUUID().String(),
		UserID:    u.ID(),
		Email:     u.Email(),
		Role:      u.Role(),
		Temporary: temporary,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	return session.Token{Value: "token-" + u.ID().String(), Claims: claims}, nil
}

func (stubIssuer) Parse(string) (session.Claims, error) {
	return session.Claims{}, errs.NewNotAuthenticatedError("invalid token")
}

// recordingMailer keeps the last code and link it was asked to send.
type recordingMailer struct {
	lastCode string
	lastLink string
	fail     error
}

func (m *recordingMailer) SendVerificationEmail(_ context.Context, _, _, link string) error {
	m.lastLink = link
	return m.fail
}

func (m *recordingMailer) SendOneTimeCode(_ context.Context, _, code string, _ time.Duration) error {
	m.lastCode = code
	return m.fail
}
