package commands_test

import (
	"context"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindConflicts(ctx context.Context, email, documentNumber string) (bool, bool, error) {
	args := m.Called(ctx, email, documentNumber)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) GetMessengerCandidates(ctx context.Context) ([]services.MessengerCandidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.MessengerCandidate), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingCode(ctx context.Context, code parcel.TrackingCode) (*parcel.Parcel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, entry parcel.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) SaveCode(ctx context.Context, code session.OneTimeCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockSessionStore) ConsumeCode(ctx context.Context, email, code string, now time.Time) error {
	args := m.Called(ctx, email, code, now)
	return args.Error(0)
}

func (m *MockSessionStore) SaveTemporarySession(ctx context.Context, s session.TemporarySession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionStore) GetTemporarySession(ctx context.Context, id string, now time.Time) (session.TemporarySession, error) {
	args := m.Called(ctx, id, now)
	return args.Get(0).(session.TemporarySession), args.Error(1)
}

func (m *MockSessionStore) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockSessionStore) IsTokenRevoked(ctx context.Context, tokenID string, now time.Time) (bool, error) {
	args := m.Called(ctx, tokenID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionStore) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendVerificationEmail(ctx context.Context, to, name, link string) error {
	args := m.Called(ctx, to, name, link)
	return args.Error(0)
}

func (m *MockMailer) SendOneTimeCode(ctx context.Context, to, code string, ttl time.Duration) error {
	args := m.Called(ctx, to, code, ttl)
	return args.Error(0)
}

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Matches(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(u *user.User, temporary bool, now time.Time) (session.Token, error) {
	args := m.Called(u, temporary, now)
	return args.Get(0).(session.Token), args.Error(1)
}

func (m *MockTokenIssuer) Parse(token string) (session.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(session.Claims), args.Error(1)
}
