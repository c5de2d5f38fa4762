// Package sql provides the runtime that tablegen-generated code is written against.
//
// Generated entities never build SQL through reflection: their static
// statements (insert, update, delete, get) are string constants produced at
// generation time, and only the filtered list query is assembled at call time
// through ListBuilder.
//
// # Executing statements
//
// Every generated operation accepts an ExecQuerier, which both *sql.DB and
// *sql.Tx implement:
//
//	db, err := sql.Open("postgres://app@localhost/app?sslmode=disable")
//	if err != nil {
//	    return err
//	}
//	u, err := models.GetUser(ctx, db, id)
//
// QueryOne and QueryAll scan rows for the generated Get and List functions.
// QueryOne reports a *tablegen.NotFoundError when the statement yields no row.
// Driver errors are returned unchanged.
//
// # Filtered lists
//
// ListBuilder appends a predicate and its bind value in the same call, so the
// n-th placeholder in the statement text always receives the n-th bind value:
//
//	b := sql.List("users", "id", "name", "email")
//	if q.Email != nil {
//	    b.Where("email", sql.OpEQ, *q.Email)
//	}
//	query, args := b.Paginate(q.Limit, q.Offset).Query()
//	// SELECT id, name, email FROM users WHERE email = $1 LIMIT $2 OFFSET $3
//
// The first present filter is introduced with WHERE and every later one with
// OR. Limits are clamped to [0, MaxLimit] and default to DefaultLimit; offsets
// are floored at 0.
//
// # Constraint errors
//
// IsUniqueConstraintError, IsForeignKeyConstraintError and
// IsCheckConstraintError classify PostgreSQL errors returned through lib/pq.
package sql
