// Package postgres implements the parcels unit of work on top of GORM.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it after Begin run inside that transaction; before Begin they use the
// plain connection pool.
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ParcelRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//	if err := uow.HistoryRepository().Add(ctx, entry); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op error and may be ignored.
//
// Aggregates written through the repositories are tracked. After a successful
// Commit their pending status changes are handed to the EventPublisher;
// Rollback discards them.
package postgres

import (
	"context"
	"log/slog"

	"parcels/internal/adapters/out/postgres/historyrepo"
	"parcels/internal/adapters/out/postgres/parcelrepo"
	"parcels/internal/adapters/out/postgres/userrepo"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record status changes.
type eventSource interface {
	DomainEvents() []parcel.StatusChanged
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and remembers which
// aggregates were added or updated through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it twice keeps the first one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the status changes of
// the tracked aggregates. It returns gorm.ErrInvalidTransaction when none is
// open. Publish failures are logged only.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	var events []parcel.StatusChanged
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	if len(events) == 0 || uow.publisher == nil {
		return
	}
	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.WarnContext(ctx, "publish status changes failed",
			"events", len(events), "error", err)
	}
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when none is open, which is the normal case after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
