// Package pgtest starts a throwaway PostgreSQL container with the service
// schema applied, for integration suites.
package pgtest

import (
	"context"
	"time"

	adapter "ordering/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table in an order TRUNCATE ... CASCADE accepts.
const Tables = "order_items, orders, products, categories, users"

// Database is a migrated database running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects through lib/pq and migrates.
func Start(ctx context.Context) (*Database, error) {
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
		return nil, err
	}

	database := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	db, err := adapter.Open(dsn)
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}
	database.DB = db

	if err = adapter.Migrate(db); err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	return database, nil
}

// Truncate empties every table and resets identity sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + Tables + " RESTART IDENTITY CASCADE").Error
}

// Terminate closes the connection and stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		_ = adapter.Close(d.DB)
	}
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
