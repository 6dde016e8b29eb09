package events

import (
	"context"
	"log/slog"

	"parcels/internal/core/domain/model/parcel"
)

// NoopPublisher drops events, logging them at debug level. It is used when
// no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) NoopPublisher {
	return NoopPublisher{logger: logger.With("component", "NoopPublisher")}
}

func (p NoopPublisher) Publish(ctx context.Context, events ...parcel.StatusChanged) error {
	for _, e := range events {
		p.logger.DebugContext(ctx, "event dropped",
			"event", e.Name(), "package_id", e.ParcelID.String(), "to", e.To.String())
	}
	return nil
}
