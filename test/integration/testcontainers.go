package integration

import (
	"context"
	"fmt"
	"io/fs"
	"net/http/httptest"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	migrations "github.com/odmforest/treesurvey/db"
	"github.com/odmforest/treesurvey/pkg/db"
	"github.com/odmforest/treesurvey/pkg/server"
	"github.com/odmforest/treesurvey/pkg/server/endpoints"
)

// TestContext holds the resources for one integration test run: a PostGIS
// container with the full schema applied and an in-process HTTP server.
type TestContext struct {
	DB          *gorm.DB
	Container   testcontainers.Container
	Server      *server.Server
	HTTPServer  *httptest.Server
	DatabaseURL string
}

// NewTestContext starts a PostGIS testcontainer, applies the embedded
// migrations and wires the API server in-process.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	pgContainer, err := tcpostgres.Run(ctx,
		"postgis/postgis:16-3.4-alpine",
		tcpostgres.WithDatabase("survey_test"),
		tcpostgres.WithUsername("survey"),
		tcpostgres.WithPassword("survey"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	databaseURL, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	if err := applyMigrations(databaseURL); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	database, err := db.Connect(db.Config{URL: databaseURL})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	s := server.NewServer(database, "127.0.0.1", "0", []string{"*"})
	endpoints.RegisterAll(s)

	return &TestContext{
		DB:          database,
		Container:   pgContainer,
		Server:      s,
		HTTPServer:  httptest.NewServer(s.Router),
		DatabaseURL: databaseURL,
	}, nil
}

func applyMigrations(databaseURL string) error {
	migrationsFS, err := fs.Sub(migrations.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to get embedded migrations: %w", err)
	}

	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Close releases the HTTP server and the container.
func (tc *TestContext) Close(ctx context.Context) {
	if tc.HTTPServer != nil {
		tc.HTTPServer.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}
