// Package gen synthesizes the Go declarations and SQL statements generated
// for a database table.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Table description (YAML/JSON)
//	        ↓
//	   load.Project
//	        ↓
//	   Graph of Catalogs (ordered fields, primary keys, search fields)
//	        ↓
//	   Build: entity, constructor, statements, list plan, query, payload
//	        ↓
//	   Dialect (renders declarations with Jennifer)
//	        ↓
//	   {entity}.go per table
//
// # Builders
//
// Every builder is a pure function of a Catalog:
//
//   - BuildEntity: entity struct, constructor and ConstructorPartition
//   - BuildStatements: insert, update, delete and get statements
//   - BuildList: the list plan whose WHERE clause is assembled at call time
//   - BuildQuery: the query-parameters struct
//   - BuildPayload: the optional payload struct and conversion method
//
// Build runs them all and returns the Artifacts of a table; Artifacts.Decls
// yields the declarations in the order the renderer emits them.
//
// # Statements
//
// Statements use $N placeholders. Placeholder $N of a statement is bound to
// the Nth entry of its Bound fields:
//
//	INSERT INTO users (id, name, email) VALUES ($1, $2, $3)
//	UPDATE users SET id = $1, name = $2, email = $3 WHERE id = $4
//	DELETE FROM users WHERE id = $1
//	SELECT id, name, email FROM users WHERE id = $1
//
// A table without primary keys is rejected with a SchemaError wrapping
// ErrNoPrimaryKey.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: invalid table descriptions (ErrNoFields, ErrNoPrimaryKey)
//   - ConfigError: invalid options and out of range field selections
//   - GenerationError: rendering, formatting and writing failures
//   - ValidationError: statements whose placeholders do not match their binds
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./store"),
//	    gen.WithPackage("store"),
//	    gen.WithPagination(gen.PaginationLegacy),
//	)
//
// # Usage
//
//	import "github.com/syssam/tablegen/compiler/gen/sql"
//
//	graph, err := gen.NewProjectGraph(config, project)
//	if err != nil {
//	    return err
//	}
//	err = sql.Generate(ctx, graph)
package gen
