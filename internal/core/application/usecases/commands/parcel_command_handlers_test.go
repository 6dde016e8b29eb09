package commands_test

import (
	"errors"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validDetails(weight string) parcel.Details {
	return parcel.Details{
		SenderName:      "Ana",
		RecipientName:   "Luis",
		DeliveryAddress: "Calle 1",
		Weight:          decimal.RequireFromString(weight),
	}
}

// seedParcel stores a parcel for clientID after moving it through steps.
func seedParcel(t *testing.T, store *memoryStore, clientID kernel.UUID, steps ...func(*parcel.Parcel) error) *parcel.Parcel {
	t.Helper()
	p := newTestParcel(t, clientID, "1")
	for _, step := range steps {
		require.NoError(t, step(p))
	}
	store.putParcel(p)
	return store.parcel(p.ID())
}

func approve(p *parcel.Parcel) error { return p.Approve(testNow) }

func assignTo(messengerID kernel.UUID) func(*parcel.Parcel) error {
	return func(p *parcel.Parcel) error { return p.AssignMessenger(messengerID, testNow) }
}

func TestNewRegisterParcelCommand_Ownership(t *testing.T) {
	client := newTestUser(t, user.Client, true)
	other := newTestUser(t, user.Client, true)
	operator := newTestUser(t, user.Operator, true)
	messenger := newTestUser(t, user.Messenger, true)

	otherID := other.ID()
	clientID := client.ID()

	cmd, err := commands.NewRegisterParcelCommand(claimsFor(client), validDetails("1"), nil)
	require.NoError(t, err)
	assert.Equal(t, client.ID(), cmd.ClientID())

	cmd, err = commands.NewRegisterParcelCommand(claimsFor(client), validDetails("1"), &clientID)
	require.NoError(t, err)
	assert.Equal(t, client.ID(), cmd.ClientID())

	_, err = commands.NewRegisterParcelCommand(claimsFor(client), validDetails("1"), &otherID)
	require.ErrorIs(t, err, errs.ErrForbidden)

	cmd, err = commands.NewRegisterParcelCommand(claimsFor(operator), validDetails("1"), &otherID)
	require.NoError(t, err)
	assert.Equal(t, other.ID(), cmd.ClientID())

	_, err = commands.NewRegisterParcelCommand(claimsFor(messenger), validDetails("1"), nil)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestRegisterParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, user.Client, true)

	cmd, err := commands.NewRegisterParcelCommand(claimsFor(client), validDetails("2.5"), nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterParcelCommandHandler(factory, parcel.DefaultTariff(), "URABA", testClock())
	p, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Registered, p.Status())
	assert.True(t, decimal.NewFromInt(7500).Equal(p.Cost()))
	assert.Equal(t, "URABA", p.TrackingCode().Prefix())
	assert.Equal(t, testNow, p.CreatedAt())
	uow.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
}

func TestRegisterParcelCommandHandler_Handle_UnknownClient(t *testing.T) {
	ctx := t.Context()
	operator := newTestUser(t, user.Operator, true)
	missing := kernel.NewUUID()

	cmd, err := commands.NewRegisterParcelCommand(claimsFor(operator), validDetails("1"), &missing)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("id", missing.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterParcelCommandHandler(factory, parcel.DefaultTariff(), "URABA", testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ParcelRepository")
}

func TestRegisterParcelCommandHandler_Handle_InvalidDetails(t *testing.T) {
	client := newTestUser(t, user.Client, true)
	details := validDetails("-1")
	details.SenderName = "  "

	cmd, err := commands.NewRegisterParcelCommand(claimsFor(client), details, nil)
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := commands.NewRegisterParcelCommandHandler(factory, parcel.DefaultTariff(), "URABA", testClock())
	_, err = handler.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestReviewParcelCommandHandler_Handle_ApproveLeavesEventForCommit(t *testing.T) {
	ctx := t.Context()
	p := newTestParcel(t, kernel.NewUUID(), "1")

	cmd, err := commands.NewApproveParcelCommand(p.ID())
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		repo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewParcelCommandHandler(factory, testClock())
	approved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Approved, approved.Status())
	events := approved.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, parcel.Registered, events[0].From)
	assert.Equal(t, parcel.Approved, events[0].To)
	uow.AssertExpectations(t)
}

func TestReviewParcelCommandHandler_Handle_RejectPublishedOnCommit(t *testing.T) {
	store := newMemoryStore()
	p := seedParcel(t, store, kernel.NewUUID())

	cmd, err := commands.NewRejectParcelCommand(p.ID())
	require.NoError(t, err)

	handler := commands.NewReviewParcelCommandHandler(store.parcelFactory(), testClock())
	rejected, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Rejected, rejected.Status())
	assert.Equal(t, parcel.Rejected, store.parcel(p.ID()).Status())
	require.Len(t, store.published, 1)
	assert.Equal(t, parcel.Rejected, store.published[0].To)
}

func TestReviewParcelCommandHandler_Handle_IllegalTransition(t *testing.T) {
	store := newMemoryStore()
	p := seedParcel(t, store, kernel.NewUUID(), approve, assignTo(kernel.NewUUID()))

	cmd, err := commands.NewRejectParcelCommand(p.ID())
	require.NoError(t, err)

	handler := commands.NewReviewParcelCommandHandler(store.parcelFactory(), testClock())
	_, err = handler.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, parcel.InTransit, store.parcel(p.ID()).Status())
	assert.Empty(t, store.published)
}

func TestReviewParcelCommandHandler_Handle_NotFound(t *testing.T) {
	cmd, err := commands.NewApproveParcelCommand(kernel.NewUUID())
	require.NoError(t, err)

	handler := commands.NewReviewParcelCommandHandler(newMemoryStore().parcelFactory(), testClock())
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignMessengerCommandHandler_Handle_Manual(t *testing.T) {
	store := newMemoryStore()
	p := seedParcel(t, store, kernel.NewUUID(), approve)
	messenger := seedUser(t, store, user.Messenger)

	cmd, err := commands.NewAssignMessengerCommand(p.ID(), messenger.ID())
	require.NoError(t, err)

	handler := commands.NewAssignMessengerCommandHandler(store, services.NewMessengerDispatcher(), testClock(), discardLogger())
	result, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, result.Parcel.Status())
	assert.True(t, result.Parcel.IsAssignedTo(messenger.ID()))
	assert.True(t, store.parcel(p.ID()).IsAssignedTo(messenger.ID()))
	require.Len(t, store.published, 1)
	assert.Equal(t, parcel.Approved, store.published[0].From)
	assert.Equal(t, parcel.InTransit, store.published[0].To)
}

func TestAssignMessengerCommandHandler_Handle_RejectsIneligibleTargets(t *testing.T) {
	store := newMemoryStore()
	p := seedParcel(t, store, kernel.NewUUID(), approve)

	unverified := newTestUser(t, user.Messenger, false)
	store.users[unverified.ID().String()] = unverified
	operator := seedUser(t, store, user.Operator)

	for _, target := range []kernel.UUID{unverified.ID(), operator.ID(), kernel.NewUUID()} {
		cmd, err := commands.NewAssignMessengerCommand(p.ID(), target)
		require.NoError(t, err)

		handler := commands.NewAssignMessengerCommandHandler(store, services.NewMessengerDispatcher(), testClock(), discardLogger())
		_, err = handler.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	}
	assert.Equal(t, parcel.Approved, store.parcel(p.ID()).Status())
	assert.Empty(t, store.published)
}

func TestAssignMessengerCommandHandler_Handle_AutomaticPicksLeastLoaded(t *testing.T) {
	store := newMemoryStore()
	busy := seedUser(t, store, user.Messenger)
	idle := seedUser(t, store, user.Messenger)
	unverified := newTestUser(t, user.Messenger, false)
	store.users[unverified.ID().String()] = unverified
	seedUser(t, store, user.Operator)

	seedParcel(t, store, kernel.NewUUID(), approve, assignTo(busy.ID()))
	p := seedParcel(t, store, kernel.NewUUID(), approve)

	cmd, err := commands.NewAssignAutomaticCommand(p.ID())
	require.NoError(t, err)

	handler := commands.NewAssignMessengerCommandHandler(store, services.NewMessengerDispatcher(), testClock(), discardLogger())
	result, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, idle.ID(), result.Messenger.ID())
	assert.True(t, store.parcel(p.ID()).IsAssignedTo(idle.ID()))
}

func TestAssignMessengerCommandHandler_Handle_AutomaticWithoutCandidates(t *testing.T) {
	ctx := t.Context()
	p := newTestParcel(t, kernel.NewUUID(), "1")
	require.NoError(t, p.Approve(testNow))

	cmd, err := commands.NewAssignAutomaticCommand(p.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetMessengerCandidates", ctx).Return([]services.MessengerCandidate{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignMessengerCommandHandler(factory, services.NewMessengerDispatcher(), testClock(), discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoEligibleMessenger)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateParcelStatusCommandHandler_Handle_HappyPath(t *testing.T) {
	store := newMemoryStore()
	operator := seedUser(t, store, user.Operator)
	messenger := seedUser(t, store, user.Messenger)
	p := seedParcel(t, store, kernel.NewUUID())

	handler := commands.NewUpdateParcelStatusCommandHandler(store.parcelFactory(), testClock())

	steps := []struct {
		actor  *user.User
		status string
	}{
		{operator, "approved"},
		{operator, "in_transit"},
		{messenger, "out_for_delivery"},
		{messenger, "delivered"},
	}

	for i, step := range steps {
		if i == 2 {
			current := store.parcel(p.ID())
			require.NoError(t, current.AssignMessenger(messenger.ID(), testNow))
			store.putParcel(current)
		}
		cmd, err := commands.NewUpdateParcelStatusCommand(claimsFor(step.actor), p.ID(), step.status)
		require.NoError(t, err)
		updated, err := handler.Handle(t.Context(), cmd)
		require.NoError(t, err, step.status)
		assert.Equal(t, step.status, updated.Status().String())
	}

	require.Len(t, store.published, 4)
	assert.Equal(t, parcel.Delivered, store.published[3].To)
	assert.Equal(t, parcel.Delivered, store.parcel(p.ID()).Status())

	for _, next := range []string{"in_transit", "registered", "out_for_delivery"} {
		cmd, err := commands.NewUpdateParcelStatusCommand(claimsFor(operator), p.ID(), next)
		require.NoError(t, err)
		_, err = handler.Handle(t.Context(), cmd)
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err), next)
	}
}

func TestUpdateParcelStatusCommandHandler_Handle_Authorization(t *testing.T) {
	store := newMemoryStore()
	assigned := seedUser(t, store, user.Messenger)
	stranger := seedUser(t, store, user.Messenger)
	client := seedUser(t, store, user.Client)

	p := seedParcel(t, store, client.ID(), approve, assignTo(assigned.ID()))

	handler := commands.NewUpdateParcelStatusCommandHandler(store.parcelFactory(), testClock())

	tests := []struct {
		name   string
		actor  *user.User
		status string
	}{
		{"messenger not assigned", stranger, "out_for_delivery"},
		{"client cannot update status", client, "out_for_delivery"},
		{"messenger cannot cancel", assigned, "cancelled"},
		{"messenger cannot reset to registered", assigned, "registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewUpdateParcelStatusCommand(claimsFor(tt.actor), p.ID(), tt.status)
			require.NoError(t, err)

			_, err = handler.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, errs.ErrForbidden)
		})
	}
	assert.Equal(t, parcel.InTransit, store.parcel(p.ID()).Status())
	assert.Empty(t, store.published)
}

func TestNewUpdateParcelStatusCommand_UnknownStatus(t *testing.T) {
	operator := newTestUser(t, user.Operator, true)

	_, err := commands.NewUpdateParcelStatusCommand(claimsFor(operator), kernel.NewUUID(), "lost")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestScanParcelCommandHandler_Handle_Rules(t *testing.T) {
	store := newMemoryStore()
	assigned := seedUser(t, store, user.Messenger)
	stranger := seedUser(t, store, user.Messenger)

	p := seedParcel(t, store, kernel.NewUUID(), approve, assignTo(assigned.ID()))

	handler := commands.NewScanParcelCommandHandler(store, testClock(), discardLogger())
	payload := parcel.QRPayload{TrackingCode: p.TrackingCode().String()}

	_, err := commands.NewScanParcelCommand(claimsFor(assigned), payload, "teleport")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewScanParcelCommand(claimsFor(stranger), payload, "pickup")
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)

	missing, err := commands.NewScanParcelCommand(claimsFor(assigned), parcel.QRPayload{PackageID: kernel.NewUUID().String()}, "pickup")
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), missing)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	byID, err := commands.NewScanParcelCommand(claimsFor(assigned), parcel.QRPayload{PackageID: p.ID().String()}, "pickup")
	require.NoError(t, err)
	result, err := handler.Handle(t.Context(), byID)
	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, result.Parcel.Status())
	assert.Equal(t, "pickup via QR scan", result.Entry.Notes())

	cmd, err = commands.NewScanParcelCommand(claimsFor(assigned), payload, "delivery")
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), cmd)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Len(t, store.history, 2)
	require.Len(t, store.published, 2)
	assert.Equal(t, parcel.InTransit, store.published[0].To)
	assert.Equal(t, parcel.Delivered, store.published[1].To)
}

func TestScanParcelCommandHandler_Handle_HistoryFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	messenger := newTestUser(t, user.Messenger, true)
	p := newTestParcel(t, kernel.NewUUID(), "1")
	require.NoError(t, p.Approve(testNow))
	require.NoError(t, p.AssignMessenger(messenger.ID(), testNow))
	p.ClearDomainEvents()

	cmd, err := commands.NewScanParcelCommand(claimsFor(messenger), parcel.QRPayload{TrackingCode: p.TrackingCode().String()}, "delivery")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetByTrackingCode", ctx, p.TrackingCode()).Return(p, nil).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("parcel.HistoryEntry")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScanParcelCommandHandler(factory, testClock(), discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestEditParcelCommandHandler_Handle(t *testing.T) {
	store := newMemoryStore()
	owner := seedUser(t, store, user.Client)
	other := seedUser(t, store, user.Client)
	operator := seedUser(t, store, user.Operator)
	messenger := seedUser(t, store, user.Messenger)
	p := seedParcel(t, store, owner.ID())

	handler := commands.NewEditParcelCommandHandler(store.parcelFactory(), parcel.DefaultTariff(), testClock())
	weight := decimal.RequireFromString("3")
	recipient := "Luis Gómez"

	for _, actor := range []*user.User{other, messenger} {
		cmd, err := commands.NewEditParcelCommand(claimsFor(actor), p.ID(), parcel.Changes{Weight: &weight})
		require.NoError(t, err)
		_, err = handler.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrForbidden)
	}

	cmd, err := commands.NewEditParcelCommand(claimsFor(owner), p.ID(), parcel.Changes{Weight: &weight, RecipientName: &recipient})
	require.NoError(t, err)
	edited, err := handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8000).Equal(edited.Cost()))
	assert.Equal(t, recipient, edited.Details().RecipientName)
	assert.Equal(t, "Ana", edited.Details().SenderName)

	blank := ""
	cmd, err = commands.NewEditParcelCommand(claimsFor(operator), p.ID(), parcel.Changes{SenderName: &blank})
	require.NoError(t, err)
	edited, err = handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "Ana", edited.Details().SenderName)
}

func TestRemoveParcelCommandHandler_Handle(t *testing.T) {
	store := newMemoryStore()
	p := seedParcel(t, store, kernel.NewUUID())
	handler := commands.NewRemoveParcelCommandHandler(store.parcelFactory())

	cmd, err := commands.NewRemoveParcelCommand(p.ID())
	require.NoError(t, err)
	require.NoError(t, handler.Handle(t.Context(), cmd))
	assert.Empty(t, store.parcels)

	err = handler.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

// Ana registers a parcel for Luis; an operator approves it and assigns it
// automatically; the only eligible messenger delivers it by scanning the label.
func TestParcelLifecycle_AnaToLuis(t *testing.T) {
	ctx := t.Context()
	store := newMemoryStore()

	registerCmd, err := commands.NewRegisterUserCommand(user.Profile{
		FirstName:      "Ana",
		LastName:       "Gómez",
		DocumentNumber: "900111222",
		Email:          "ana@x.com",
		Address:        "Calle 1",
		Phone:          "3000000000",
	}, "secret1")
	require.NoError(t, err)
	registered, err := commands.NewRegisterUserCommandHandler(store.userFactory(), plainHasher{}, &recordingMailer{}, testClock(), testBaseURL, discardLogger()).
		Handle(ctx, registerCmd)
	require.NoError(t, err)
	ana := registered.User

	operator := seedUser(t, store, user.Operator)
	messenger := seedUser(t, store, user.Messenger)
	unverified := newTestUser(t, user.Messenger, false)
	store.users[unverified.ID().String()] = unverified

	parcelCmd, err := commands.NewRegisterParcelCommand(claimsFor(ana), validDetails("2.5"), nil)
	require.NoError(t, err)
	p, err := commands.NewRegisterParcelCommandHandler(store, parcel.DefaultTariff(), parcel.DefaultTrackingPrefix, testClock()).
		Handle(ctx, parcelCmd)
	require.NoError(t, err)
	expectedCost := parcel.DefaultBaseFee.Add(decimal.RequireFromString("2.5").Mul(parcel.DefaultPerKgFee))
	assert.True(t, expectedCost.Equal(p.Cost()))
	assert.Equal(t, parcel.Registered, p.Status())

	approveCmd, err := commands.NewApproveParcelCommand(p.ID())
	require.NoError(t, err)
	p, err = commands.NewReviewParcelCommandHandler(store.parcelFactory(), testClock()).Handle(ctx, approveCmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.Approved, p.Status())

	assignCmd, err := commands.NewAssignAutomaticCommand(p.ID())
	require.NoError(t, err)
	assigned, err := commands.NewAssignMessengerCommandHandler(store, services.NewMessengerDispatcher(), testClock(), discardLogger()).
		Handle(ctx, assignCmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, assigned.Parcel.Status())
	assert.Equal(t, messenger.ID(), *assigned.Parcel.MessengerID())
	assert.NotEqual(t, operator.ID(), assigned.Messenger.ID())

	scanCmd, err := commands.NewScanParcelCommand(claimsFor(messenger),
		parcel.QRPayload{TrackingCode: p.TrackingCode().String(), PackageID: p.ID().String()}, "delivery")
	require.NoError(t, err)
	scanned, err := commands.NewScanParcelCommandHandler(store, testClock(), discardLogger()).Handle(ctx, scanCmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.Delivered, scanned.Parcel.Status())
	require.Len(t, store.history, 1)
	entry := store.history[0]
	assert.Equal(t, p.ID(), entry.ParcelID())
	assert.Equal(t, parcel.Delivered, entry.Status())
	assert.Equal(t, "delivery via QR scan", entry.Notes())
	assert.Equal(t, messenger.ID(), *entry.MessengerID())

	require.Len(t, store.published, 3)
	assert.Equal(t, parcel.Approved, store.published[0].To)
	assert.Equal(t, parcel.InTransit, store.published[1].To)
	assert.Equal(t, parcel.Delivered, store.published[2].To)
	assert.Equal(t, parcel.Delivered, store.parcel(p.ID()).Status())
}
