// Package commands contains the use cases that change the state of the
// parcels service. Every command is a constructed value object validated
// up front; every handler runs inside a unit of work and commits once.
package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// UserUoW is used by identity commands that only touch users.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// ParcelUoW is used by lifecycle commands that only touch parcels.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW spans users, parcels and history for commands that coordinate
	// them, such as messenger assignment and scans.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//	...
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		ParcelRepoFactory
		HistoryRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
