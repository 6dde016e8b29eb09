package commands

import (
	"context"
	"errors"
	"log/slog"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"
)

type AssignMessengerResult struct {
	Parcel    *parcel.Parcel
	Messenger *user.User
}

type AssignMessengerCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.MessengerDispatcher
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewAssignMessengerCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.MessengerDispatcher,
	clock kernel.Clock,
	logger *slog.Logger,
) AssignMessengerCommandHandler {
	return AssignMessengerCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger.With("component", "assign_messenger"),
	}
}

func (h AssignMessengerCommandHandler) Handle(ctx context.Context, cmd AssignMessengerCommand) (AssignMessengerResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignMessengerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignMessengerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return AssignMessengerResult{}, err
	}

	now := h.clock.Now()
	var messenger *user.User

	if cmd.IsAutomatic() {
		candidates, err := uow.UserRepository().GetMessengerCandidates(ctx)
		if err != nil {
			return AssignMessengerResult{}, err
		}
		messenger, err = h.dispatcher.DispatchAutomatic(p, candidates, now)
		if err != nil {
			return AssignMessengerResult{}, err
		}
	} else {
		messenger, err = uow.UserRepository().Get(ctx, *cmd.MessengerID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return AssignMessengerResult{}, errs.NewValueIsInvalidErrorWithCause("messenger_id", err)
			}
			return AssignMessengerResult{}, err
		}
		if err = h.dispatcher.Dispatch(p, messenger, now); err != nil {
			return AssignMessengerResult{}, err
		}
	}

	if err = parcels.Update(ctx, p); err != nil {
		return AssignMessengerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignMessengerResult{}, err
	}

	h.logger.InfoContext(ctx, "messenger assigned",
		"parcel_id", p.ID().String(),
		"messenger_id", messenger.ID().String(),
		"automatic", cmd.IsAutomatic())

	return AssignMessengerResult{Parcel: p, Messenger: messenger}, nil
}
