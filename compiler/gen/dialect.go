package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/tablegen/schema/field"
)

// TableGenerator generates per-table code.
// GenTable is called once per table in the graph.
type TableGenerator interface {
	// GenTable generates the table file ({entity}.go) from the declarations
	// of the artifacts, in the order returned by Artifacts.Decls.
	GenTable(a *Artifacts) *jen.File
}

// Dialect defines the interface for dialect-specific code generation.
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                    JenniferGenerator                        │
//	│  (Orchestration: parallel rendering, formatting, writing)   │
//	└─────────────────────────┬───────────────────────────────────┘
//	                          │ uses
//	                          ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                        Dialect                              │
//	│  (Turns abstract declarations into Go source)               │
//	└─────────────────────────────────────────────────────────────┘
//
// Usage:
//
//	import "github.com/syssam/tablegen/compiler/gen/sql"
//
//	generator := gen.NewJenniferGenerator(graph, outDir)
//	generator.WithDialect(sql.NewDialect(generator))
type Dialect interface {
	// Name returns the dialect name (e.g., "sql").
	Name() string
	TableGenerator
}

// GeneratorHelper provides helper methods for dialect implementations.
// JenniferGenerator implements this interface, allowing dialect packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// GoType returns the Jennifer code for a declared type.
	GoType(t *field.TypeInfo) jen.Code

	// MemberType returns the Jennifer code for a struct member's type,
	// wrapping it in a pointer when the member is optional.
	MemberType(m *Member) jen.Code

	// SQLPkg returns the import path of the runtime dialect/sql package.
	SQLPkg() string

	// Graph returns the table graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string
}
