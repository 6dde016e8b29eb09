package commands_test

import (
	"strings"
	"testing"

	"parcels/internal/adapters/out/sessionstore"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoginHandler(store *memoryStore, sessions *sessionstore.MemoryStore) commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(store.userFactory(), sessions, plainHasher{}, stubIssuer{}, testClock())
}

func registerUser(t *testing.T, store *memoryStore, mailer *recordingMailer) *user.User {
	t.Helper()
	handler := commands.NewRegisterUserCommandHandler(store.userFactory(), plainHasher{}, mailer, testClock(), testBaseURL, discardLogger())
	result, err := handler.Handle(t.Context(), newRegisterCommand(t))
	require.NoError(t, err)
	return result.User
}

func TestNewLoginCommand_Validation(t *testing.T) {
	_, err := commands.NewLoginCommand("", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewLoginCommand("  Ana@Example.COM ", "secret1", "")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", cmd.Email())
}

func TestLoginCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginCommand("ghost@example.com", "secret1", "")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "ghost@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ghost@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginCommandHandler(factory, new(MockSessionStore), plainHasher{}, new(MockTokenIssuer), testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
	uow.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	store := newMemoryStore()
	registerUser(t, store, &recordingMailer{})

	cmd, err := commands.NewLoginCommand("ana@example.com", "wrong-password", "")
	require.NoError(t, err)

	_, err = newLoginHandler(store, sessionstore.NewMemoryStore()).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestLoginCommandHandler_Handle_UnverifiedWithoutSession(t *testing.T) {
	store := newMemoryStore()
	registerUser(t, store, &recordingMailer{})

	cmd, err := commands.NewLoginCommand("ana@example.com", "secret1", "")
	require.NoError(t, err)

	_, err = newLoginHandler(store, sessionstore.NewMemoryStore()).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrEmailNotVerified)
}

func TestLoginCommandHandler_Handle_TemporarySessionForAnotherEmail(t *testing.T) {
	ctx := t.Context()
	store := newMemoryStore()
	registerUser(t, store, &recordingMailer{})

	sessions := sessionstore.NewMemoryStore()
	require.NoError(t, sessions.SaveTemporarySession(ctx, session.TemporarySession{
		ID:        "foreign",
		Email:     "someone@example.com",
		ExpiresAt: testNow.Add(session.TemporarySessionTTL),
	}))

	cmd, err := commands.NewLoginCommand("ana@example.com", "secret1", "foreign")
	require.NoError(t, err)

	_, err = newLoginHandler(store, sessions).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEmailNotVerified)
}

func TestLoginCommandHandler_Handle_ExpiredTemporarySession(t *testing.T) {
	ctx := t.Context()
	store := newMemoryStore()
	registerUser(t, store, &recordingMailer{})

	sessions := sessionstore.NewMemoryStore()
	require.NoError(t, sessions.SaveTemporarySession(ctx, session.TemporarySession{
		ID:        "stale",
		Email:     "ana@example.com",
		ExpiresAt: testNow.Add(-1),
	}))

	cmd, err := commands.NewLoginCommand("ana@example.com", "secret1", "stale")
	require.NoError(t, err)

	_, err = newLoginHandler(store, sessions).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEmailNotVerified)
}

// Register, then obtain a temporary session through a one-time code, then
// confirm the e-mail and log in permanently.
func TestIdentityFlow_RegisterThenLogin(t *testing.T) {
	ctx := t.Context()
	store := newMemoryStore()
	sessions := sessionstore.NewMemoryStore()
	mailer := &recordingMailer{}

	registered := registerUser(t, store, mailer)
	require.NotEmpty(t, mailer.lastLink)

	requestCmd, err := commands.NewRequestCodeCommand("ana@example.com")
	require.NoError(t, err)
	requestHandler := commands.NewRequestCodeCommandHandler(sessions, mailer, testClock(), session.DefaultCodeTTL, discardLogger())
	expiresAt, err := requestHandler.Handle(ctx, requestCmd)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(session.DefaultCodeTTL), expiresAt)
	require.Len(t, mailer.lastCode, session.CodeLength)

	verifyCmd, err := commands.NewVerifyCodeCommand("ana@example.com", mailer.lastCode)
	require.NoError(t, err)
	temp, err := commands.NewVerifyCodeCommandHandler(sessions, testClock()).Handle(ctx, verifyCmd)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", temp.Email)

	loginCmd, err := commands.NewLoginCommand("ana@example.com", "secret1", temp.ID)
	require.NoError(t, err)
	result, err := newLoginHandler(store, sessions).Handle(ctx, loginCmd)
	require.NoError(t, err)
	assert.True(t, result.Token.Claims.Temporary)
	assert.Equal(t, registered.ID(), result.Token.Claims.UserID)

	token := mailer.lastLink[strings.LastIndex(mailer.lastLink, "/")+1:]
	confirmCmd, err := commands.NewConfirmEmailCommand(token)
	require.NoError(t, err)
	confirmed, err := commands.NewConfirmEmailCommandHandler(store.userFactory(), stubIssuer{}, testClock()).Handle(ctx, confirmCmd)
	require.NoError(t, err)
	assert.True(t, confirmed.User.IsEmailVerified())
	assert.Empty(t, confirmed.User.VerificationToken())
	assert.False(t, confirmed.Token.Claims.Temporary)

	loginCmd, err = commands.NewLoginCommand("ana@example.com", "secret1", "")
	require.NoError(t, err)
	result, err = newLoginHandler(store, sessions).Handle(ctx, loginCmd)
	require.NoError(t, err)
	assert.False(t, result.Token.Claims.Temporary)
	assert.Equal(t, testNow.Add(session.DefaultFullTTL), result.Token.Claims.ExpiresAt)

	_, err = commands.NewConfirmEmailCommandHandler(store.userFactory(), stubIssuer{}, testClock()).Handle(ctx, confirmCmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
