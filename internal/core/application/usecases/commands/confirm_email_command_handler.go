package commands

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
)

// ConfirmEmailCommandHandler marks the holder of a verification token as
// verified, clears the token and logs the user in with a full session.
type ConfirmEmailCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     ports.TokenIssuer
	clock      kernel.Clock
}

func NewConfirmEmailCommandHandler(uowFactory UserUoWFactory, issuer ports.TokenIssuer, clock kernel.Clock) ConfirmEmailCommandHandler {
	return ConfirmEmailCommandHandler{uowFactory: uowFactory, issuer: issuer, clock: clock}
}

func (h ConfirmEmailCommandHandler) Handle(ctx context.Context, cmd ConfirmEmailCommand) (LoginResult, error) {
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

	repo := uow.UserRepository()

	u, err := repo.GetByVerificationToken(ctx, cmd.Token())
	if err != nil {
		return LoginResult{}, err
	}

	now := h.clock.Now()
	u.VerifyEmail(now)

	if err = repo.Update(ctx, u); err != nil {
		return LoginResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}

	token, err := h.issuer.Issue(u, false, now)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, User: u}, nil
}
