package commands

import (
	"context"
	"errors"
	"log/slog"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

type ScanParcelResult struct {
	Parcel *parcel.Parcel
	Entry  parcel.HistoryEntry
}

type ScanParcelCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewScanParcelCommandHandler(uowFactory UoWFactory, clock kernel.Clock, logger *slog.Logger) ScanParcelCommandHandler {
	return ScanParcelCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "scan_parcel"),
	}
}

func (h ScanParcelCommandHandler) Handle(ctx context.Context, cmd ScanParcelCommand) (ScanParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScanParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ScanParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	p, err := h.locate(ctx, repo, cmd)
	if err != nil {
		return ScanParcelResult{}, err
	}

	entry, err := p.Scan(cmd.Action(), cmd.MessengerID(), kernel.NewUUID(), h.clock.Now())
	if err != nil {
		return ScanParcelResult{}, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return ScanParcelResult{}, err
	}

	if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
		return ScanParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ScanParcelResult{}, err
	}

	h.logger.InfoContext(ctx, "parcel scanned",
		"parcel_id", p.ID().String(),
		"messenger_id", cmd.MessengerID().String(),
		"status", entry.Status().String())

	return ScanParcelResult{Parcel: p, Entry: entry}, nil
}

// locate prefers the tracking code and falls back to the parcel id.
func (h ScanParcelCommandHandler) locate(ctx context.Context, repo ports.ParcelRepository, cmd ScanParcelCommand) (*parcel.Parcel, error) {
	if code := cmd.TrackingCode(); code != nil {
		p, err := repo.GetByTrackingCode(ctx, *code)
		if err == nil || !errors.Is(err, errs.ErrObjectNotFound) || cmd.ParcelID() == nil {
			return p, err
		}
	}
	return repo.Get(ctx, *cmd.ParcelID())
}
