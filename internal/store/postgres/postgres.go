package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib" // register pgx driver
	"github.com/jmoiron/sqlx"
	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx" // register instrumented DB driver
	"go.nhat.io/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

//go:embed migrations/*.sql
var fs embed.FS

const (
	pgDriverName = "nrpgx"
	instanceName = "catalogindex"

	DefaultMaxResultSize = 100
)

// Client is a wrapper over sqlx
type Client struct {
	db *sqlx.DB
}

// NewClient opens an instrumented connection pool to the database.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	driverName, err := otelsql.Register(
		pgDriverName,
		otelsql.TraceQueryWithoutArgs(),
		otelsql.TraceRowsClose(),
		otelsql.TraceRowsAffected(),
		otelsql.WithSystem(semconv.DBSystemPostgreSQL),
		otelsql.WithInstanceName(instanceName),
	)
	if err != nil {
		return nil, fmt.Errorf("register instrumented driver: %w", err)
	}

	db, err := sql.Open(driverName, cfg.ConnectionURL().String())
	if err != nil {
		return nil, fmt.Errorf("error creating DB: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting DB: %w", err)
	}

	if err := otelsql.RecordStats(
		db,
		otelsql.WithSystem(semconv.DBSystemPostgreSQL),
		otelsql.WithInstanceName(instanceName),
	); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	if cfg.MaxIdleConns != 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if maxLifetime := cfg.ConnMaxLifetimeWithJitter(); maxLifetime != 0 {
		db.SetConnMaxLifetime(maxLifetime)
	}
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return NewClientWithDB(db)
}

// NewClientWithDB wraps an already opened database.
func NewClientWithDB(db *sql.DB) (*Client, error) {
	if db == nil {
		return nil, errNilDBClient
	}
	return &Client{db: sqlx.NewDb(db, "pgx")}, nil
}

// Migrate applies every pending migration and returns the resulting
// schema version.
func (c *Client) Migrate() (uint, error) {
	m, err := c.initMigration()
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	return c.version(m)
}

// MigrateDown reverts the last applied migration.
func (c *Client) MigrateDown() (uint, error) {
	m, err := c.initMigration()
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	return c.version(m)
}

func (c *Client) version(m *migrate.Migrate) (uint, error) {
	ver, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return ver, err
}

func (c *Client) initMigration() (*migrate.Migrate, error) {
	src, err := iofs.New(fs, "migrations")
	if err != nil {
		return nil, err
	}
	driver, err := migratepg.WithInstance(c.db.DB, &migratepg.Config{})
	if err != nil {
		return nil, err
	}
	return migrate.NewWithInstance("iofs", src, "postgres", driver)
}

// ExecQueries is used for executing list of db query
func (c *Client) ExecQueries(ctx context.Context, queries []string) error {
	for _, query := range queries {
		if _, err := c.db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) RunWithinTx(ctx context.Context, f func(tx *sqlx.Tx) error) error {
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if err := f(tx); err != nil {
		if txErr := tx.Rollback(); txErr != nil {
			return fmt.Errorf("rollback transaction error: %v (original error: %w)", txErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func checkPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w [%s]", errDuplicateKey, pgErr.Detail)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%w [%s]", errCheckViolation, pgErr.Detail)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w [%s]", errForeignKeyViolation, pgErr.Detail)
		}
	}
	return err
}
