package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cyverse-de/dbutil"
	"github.com/pkg/errors"

	_ "github.com/lib/pq"
)

// DriverName is the name of the database/sql driver used to connect to PostgreSQL.
const DriverName = "postgres"

// DatabaseAccessor describes the subset of *sql.DB and *sql.Tx used by the functions in this package.
type DatabaseAccessor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// InitDatabase establishes a database connection and verifies that the database can be reached.
func InitDatabase(driverName, databaseURI string) (*sql.DB, error) {
	wrapMsg := "unable to initialize the database"

	// Create a database connector to establish the connection.
	connector, err := dbutil.NewDefaultConnector("1m")
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Establish the database connection.
	db, err := connector.Connect(driverName, databaseURI)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return db, nil
}

// Store provides access to the appointment, result and notification collections through a single
// connection pool. The pool is owned by the caller.
type Store struct {
	db DatabaseAccessor
}

// NewStore returns a new store backed by the given database handle.
func NewStore(db DatabaseAccessor) *Store {
	return &Store{db: db}
}

// returning builds a RETURNING clause for the given columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
