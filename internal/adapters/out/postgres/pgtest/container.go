// Package pgtest starts a throwaway PostgreSQL for integration tests and
// prepares the schema.
package pgtest

import (
	"context"
	"time"

	adapter "qrave/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a running container with a migrated schema.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), adapter.NewGormConfig())
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = adapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every table between tests.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE order_events, order_items, orders, menu_items, restaurants RESTART IDENTITY CASCADE").Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return d.Container.Terminate(ctx)
}
