// Package sql renders the table declarations built by package gen as Go
// source for PostgreSQL, using the Jennifer code generation library.
//
// Each table is rendered into a single file holding, in order:
//
//   - the entity struct and its New<Entity> constructor
//   - the Save, Update and Delete methods and the Get<Entity> and
//     List<Entities> functions
//   - the payload struct and its To<Entity> conversion, when requested
//   - the <Entity>Query struct of optional list filters
//
// Generated code depends only on the runtime package
// github.com/syssam/tablegen/dialect/sql, which assembles list queries at
// call time and scans rows.
//
// Usage:
//
//	import "github.com/syssam/tablegen/compiler/gen/sql"
//
//	err := sql.Generate(ctx, graph)
package sql
