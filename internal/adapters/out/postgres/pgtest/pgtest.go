// Package pgtest starts a throwaway PostgreSQL container with the parcels
// schema applied. It is imported by integration suites only.
package pgtest

import (
	"context"
	"time"

	postgresadapter "parcels/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every schema table, children first.
const Tables = "package_history, packages, users"

// Start runs postgres:15-alpine, connects with GORM and applies migrations.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	db, err := postgresadapter.Open(dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	if err = postgresadapter.Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}
