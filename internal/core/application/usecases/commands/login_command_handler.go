package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

var (
	// ErrInvalidCredentials hides whether the e-mail or the password was wrong.
	ErrInvalidCredentials = errs.NewNotAuthenticatedError("invalid credentials")

	// ErrEmailNotVerified asks the caller to obtain a temporary session first.
	ErrEmailNotVerified = errs.NewNotAuthenticatedError("email not verified")
)

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token session.Token
	User  *user.User
}

// LoginCommandHandler authenticates users.
//
// Verified users receive a full token. Unverified users receive a
// temporary token only when they present a live temporary session issued
// for their own e-mail; otherwise ErrEmailNotVerified is returned.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	sessions   ports.SessionStore
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	clock      kernel.Clock
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	sessions ports.SessionStore,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	clock kernel.Clock,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		hasher:     hasher,
		issuer:     issuer,
		clock:      clock,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !h.hasher.Matches(u.PasswordHash(), cmd.Password()) {
		return LoginResult{}, ErrInvalidCredentials
	}

	now := h.clock.Now()
	temporary := false

	if !u.IsEmailVerified() {
		if err = h.checkTemporarySession(ctx, cmd.TemporarySessionID(), u.Email()); err != nil {
			return LoginResult{}, err
		}
		temporary = true
	}

	token, err := h.issuer.Issue(u, temporary, now)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, User: u}, nil
}

func (h LoginCommandHandler) checkTemporarySession(ctx context.Context, id, email string) error {
	if id == "" {
		return ErrEmailNotVerified
	}

	s, err := h.sessions.GetTemporarySession(ctx, id, h.clock.Now())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrEmailNotVerified
	}
	if err != nil {
		return err
	}

	if !s.BelongsTo(email) {
		return ErrEmailNotVerified
	}
	return nil
}
