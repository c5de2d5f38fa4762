package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/syssam/tablegen/dialect"
)

// ExecQuerier wraps the standard Exec and Query methods.
// *sql.DB, *sql.Tx and *sql.Conn implement it.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type (
	// Result is an alias to sql.Result.
	Result = sql.Result
	// DB is an alias to sql.DB.
	DB = sql.DB
	// Tx is an alias to sql.Tx.
	Tx = sql.Tx
)

// Open opens a PostgreSQL database using the lib/pq connector.
// The source is a lib/pq connection string or URL.
func Open(source string) (*sql.DB, error) {
	connector, err := pq.NewConnector(source)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: open %s: %w", dialect.Postgres, err)
	}
	return sql.OpenDB(connector), nil
}

var (
	_ ExecQuerier = (*sql.DB)(nil)
	_ ExecQuerier = (*sql.Tx)(nil)
	_ ExecQuerier = (*sql.Conn)(nil)
)
