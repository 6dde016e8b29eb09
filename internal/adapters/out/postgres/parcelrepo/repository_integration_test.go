package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcels/internal/adapters/out/postgres/historyrepo"
	"parcels/internal/adapters/out/postgres/parcelrepo"
	"parcels/internal/adapters/out/postgres/pgtest"
	"parcels/internal/adapters/out/postgres/userrepo"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
	client     *user.User
	messenger  *user.User
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)

	users := userrepo.NewGormUserRepository(suite.db, suite.tracker)
	suite.client = suite.newUser(user.Client, "ana@example.com", "1001")
	suite.messenger = suite.newUser(user.Messenger, "luis@example.com", "2002")
	suite.tracker.On("TrackAggregate", suite.client.ID(), suite.client).Once()
	suite.tracker.On("TrackAggregate", suite.messenger.ID(), suite.messenger).Once()
	suite.Require().NoError(users.Add(ctx, suite.client))
	suite.Require().NoError(users.Add(ctx, suite.messenger))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	p := suite.newParcel("2.5")
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.ID(), got.ID())
	suite.Equal(p.TrackingCode(), got.TrackingCode())
	suite.Equal("Ana", got.Details().SenderName)
	suite.True(decimal.RequireFromString("2.5").Equal(got.Weight()))
	suite.True(p.Cost().Equal(got.Cost()))
	suite.Equal(parcel.Registered, got.Status())
	suite.Equal(suite.client.ID(), got.ClientID())
	suite.Nil(got.MessengerID())
	suite.Empty(got.DomainEvents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_UnknownClient_AlreadyExists() {
	code, err := parcel.NewTrackingCode(parcel.DefaultTrackingPrefix)
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), code, parcel.Details{
		SenderName:      "Ana",
		RecipientName:   "Pedro",
		DeliveryAddress: "Carrera 100, Turbo",
		Weight:          decimal.NewFromInt(1),
	}, kernel.NewUUID(), parcel.DefaultTariff(), testNow)
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), p)

	suite.Require().ErrorIs(err, errs.ErrAlreadyExists)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", p.ID(), p)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingCode() {
	ctx := context.Background()
	p := suite.newParcel("1")
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.GetByTrackingCode(ctx, p.TrackingCode())
	suite.Require().NoError(err)
	suite.Equal(p.ID(), got.ID())

	unknown, err := parcel.ParseTrackingCode("URABA-NOPE")
	suite.Require().NoError(err)
	_, err = suite.repository.GetByTrackingCode(ctx, unknown)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignmentAndStatus() {
	ctx := context.Background()
	p := suite.newParcel("3")
	suite.tracker.On("TrackAggregate", p.ID(), p).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	later := testNow.Add(time.Hour)
	suite.Require().NoError(p.Approve(later))
	suite.Require().NoError(p.AssignMessenger(suite.messenger.ID(), later))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.InTransit, got.Status())
	suite.Require().NotNil(got.MessengerID())
	suite.Equal(suite.messenger.ID(), *got.MessengerID())
	suite.True(later.Equal(got.UpdatedAt()))
	suite.True(testNow.Equal(got.CreatedAt()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_Unknown_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newParcel("1"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_CascadesHistory() {
	ctx := context.Background()
	p := suite.newParcel("1")
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	entry, err := parcel.NewHistoryEntry(
		kernel.NewUUID(), p.ID(), parcel.InTransit, nil, "Warehouse", "note", testNow,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(historyrepo.NewGormHistoryRepository(suite.db).Add(ctx, entry))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	var count int64
	suite.Require().NoError(suite.db.Model(&historyrepo.HistoryEntryDTO{}).Count(&count).Error)
	suite.Zero(count)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, p.ID()), errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestHistoryAdd_UnknownParcel_NotFound() {
	entry, err := parcel.NewHistoryEntry(
		kernel.NewUUID(), kernel.NewUUID(), parcel.InTransit, nil, "Warehouse", "", testNow,
	)
	suite.Require().NoError(err)

	err = historyrepo.NewGormHistoryRepository(suite.db).Add(context.Background(), entry)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) newUser(role user.Role, email, document string) *user.User {
	profile, err := user.NewProfile(user.Profile{
		FirstName:      "Luis",
		LastName:       "Mena",
		DocumentNumber: document,
		Email:          email,
		Address:        "Calle 5, Turbo",
		Phone:          "3107654321",
	})
	suite.Require().NoError(err)

	u, err := user.NewUser(kernel.NewUUID(), profile, role, "hash", "token-"+document, testNow)
	suite.Require().NoError(err)
	return u
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(weight string) *parcel.Parcel {
	code, err := parcel.NewTrackingCode(parcel.DefaultTrackingPrefix)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), code, parcel.Details{
		SenderName:      "Ana",
		RecipientName:   "Pedro",
		DeliveryAddress: "Carrera 100, Turbo",
		Weight:          decimal.RequireFromString(weight),
	}, suite.client.ID(), parcel.DefaultTariff(), testNow)
	suite.Require().NoError(err)
	return p
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
