package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it after Begin run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	ParcelRepository() ParcelRepository
	HistoryRepository() HistoryRepository
}
