package sql

import (
	"context"

	"github.com/syssam/tablegen"
)

// QueryOne runs query and scans the first returned row into dest.
// It returns a *tablegen.NotFoundError labelled with label when the query
// yields no rows. Errors from the driver are returned unchanged.
func QueryOne(ctx context.Context, db ExecQuerier, label, query string, args []any, dest ...any) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return tablegen.NewNotFoundErrorWithKey(label, args...)
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	return rows.Close()
}

// QueryAll runs query and scans every returned row into a new T.
// fields returns the scan destinations of a row value in column order.
func QueryAll[T any](ctx context.Context, db ExecQuerier, query string, args []any, fields func(*T) []any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*T
	for rows.Next() {
		v := new(T)
		if err := rows.Scan(fields(v)...); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
