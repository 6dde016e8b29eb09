package commands

import (
	"context"
	"log/slog"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
)

// ResendVerificationCommandHandler rotates the verification token so that
// only the newest link works. It reports whether the e-mail was sent.
type ResendVerificationCommandHandler struct {
	uowFactory UserUoWFactory
	mailer     ports.Mailer
	clock      kernel.Clock
	baseURL    string
	logger     *slog.Logger
}

func NewResendVerificationCommandHandler(
	uowFactory UserUoWFactory,
	mailer ports.Mailer,
	clock kernel.Clock,
	baseURL string,
	logger *slog.Logger,
) ResendVerificationCommandHandler {
	return ResendVerificationCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
		clock:      clock,
		baseURL:    baseURL,
		logger:     logger.With("component", "resend_verification"),
	}
}

func (h ResendVerificationCommandHandler) Handle(ctx context.Context, cmd ResendVerificationCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	token, err := newVerificationToken()
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	u, err := repo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return false, err
	}

	if err = u.ReissueVerification(token, h.clock.Now()); err != nil {
		return false, err
	}

	if err = repo.Update(ctx, u); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	profile := u.Profile()
	if err = h.mailer.SendVerificationEmail(ctx, profile.Email, profile.FullName(), verificationLink(h.baseURL, token)); err != nil {
		h.logger.WarnContext(ctx, "verification email not sent", "user_id", u.ID().String(), "error", err)
		return false, nil
	}

	return true, nil
}
