package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/migrations"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// Supported database/sql driver names.
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps the raw *sql.DB handle together with the driver it was opened
// with and a squirrel statement builder preconfigured with the correct
// placeholder format ($1 for PostgreSQL, ? for SQLite). All repositories
// share a single DB instance.
type DB struct {
	*sql.DB

	driver  string
	builder squirrel.StatementBuilderType
	logger  *logger.Logger
}

// NewDB opens a database connection for the given configuration and brings
// the schema up to date. The driver is selected from the DSN: a
// "postgres://" or "postgresql://" scheme means PostgreSQL via pgx, anything
// else is treated as a SQLite database file path.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending goose migrations. Only meaningful for the
// PostgreSQL backend; the SQLite backend bootstraps its schema at connect
// time.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// IsUniqueViolation reports whether err is the driver-specific error raised
// when an INSERT violates a UNIQUE constraint (e.g. a duplicate username).
func (db *DB) IsUniqueViolation(err error) bool {
	switch db.driver {
	case driverPostgres:
		return postgresError(err) == pgerrcode.UniqueViolation
	case driverSQLite:
		return isSQLiteUniqueViolation(err)
	default:
		return false
	}
}
