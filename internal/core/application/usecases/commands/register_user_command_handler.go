package commands

import (
	"context"
	"log/slog"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// RegisterUserResult reports the created user and whether the verification
// e-mail left the building.
type RegisterUserResult struct {
	User                  *user.User
	VerificationEmailSent bool
}

// RegisterUserCommandHandler persists new accounts and dispatches the
// verification e-mail. A failed dispatch does not fail the registration.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	clock      kernel.Clock
	baseURL    string
	logger     *slog.Logger
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	clock kernel.Clock,
	baseURL string,
	logger *slog.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		clock:      clock,
		baseURL:    baseURL,
		logger:     logger.With("component", "register_user"),
	}
}

// Handle checks e-mail and document uniqueness first; a concurrent insert
// that slips through is still reported by the store as a duplicate.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterUserResult{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return RegisterUserResult{}, err
	}

	token, err := newVerificationToken()
	if err != nil {
		return RegisterUserResult{}, err
	}

	now := h.clock.Now()
	profile := cmd.Profile()

	u, err := user.NewUser(kernel.NewUUID(), profile, cmd.Role(), hash, token, now)
	if err != nil {
		return RegisterUserResult{}, err
	}
	if cmd.PreVerified() {
		u.VerifyEmail(now)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RegisterUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	emailTaken, documentTaken, err := repo.FindConflicts(ctx, profile.Email, profile.DocumentNumber)
	if err != nil {
		return RegisterUserResult{}, err
	}
	if emailTaken {
		return RegisterUserResult{}, errs.NewAlreadyExistsError("email")
	}
	if documentTaken {
		return RegisterUserResult{}, errs.NewAlreadyExistsError("document_number")
	}

	if err = repo.Add(ctx, u); err != nil {
		return RegisterUserResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterUserResult{}, err
	}

	result := RegisterUserResult{User: u}
	if cmd.PreVerified() {
		return result, nil
	}

	link := verificationLink(h.baseURL, token)
	if err = h.mailer.SendVerificationEmail(ctx, profile.Email, profile.FullName(), link); err != nil {
		h.logger.WarnContext(ctx, "verification email not sent", "user_id", u.ID().String(), "error", err)
		return result, nil
	}

	result.VerificationEmailSent = true
	return result, nil
}
