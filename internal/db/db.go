package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/eamcet-predictor/internal/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Row is a single-row result (pgx.Row, *sql.Row)
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result cursor
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier runs statements against a pool or an open transaction
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) error
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx Querier) error

// Database is the SQL surface shared by the Postgres and SQLite backends
type Database interface {
	Querier
	WithTransaction(ctx context.Context, fn TransactionFn) error
	Ping(ctx context.Context) error
	// Driver returns DriverPostgres or DriverSQLite
	Driver() string
	Close()
}

// StatementBuilder returns a squirrel builder with the placeholder format of the database
func StatementBuilder(database Database) squirrel.StatementBuilderType {
	return StatementBuilderFor(database.Driver())
}

// StatementBuilderFor returns a squirrel builder for a driver name
func StatementBuilderFor(driver string) squirrel.StatementBuilderType {
	if driver == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Open connects to the database configured in cfg
func Open(cfg *config.Config) (Database, error) {
	switch strings.ToLower(cfg.Database.Driver) {
	case DriverPostgres:
		pg, err := NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case DriverSQLite:
		lite, err := NewSQLiteDB(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		return lite, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}
