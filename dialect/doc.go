// Package dialect holds the database dialect constants used by tablegen.
//
// Generated code targets a single placeholder style: PostgreSQL positional
// parameters of the form $1, $2, ... . Both the generator (static statements)
// and the runtime list builder number their parameters through Placeholder,
// so the two can never disagree on the format.
//
//	dialect.Postgres        = "postgres"
//	dialect.Placeholder(3)  = "$3"
//
// # Sub-packages
//
//   - dialect/sql: runtime helpers imported by generated code
package dialect
