package sql

import (
	"context"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/tablegen/compiler/gen"
)

// Generate renders every table of the graph and writes one file per table
// to the configured target directory.
func Generate(ctx context.Context, g *gen.Graph) error {
	if g.Config == nil || g.Config.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	return newGenerator(g, g.Config.Target).Generate(ctx)
}

// WriteTo renders every table of the graph and writes the sources to w.
func WriteTo(ctx context.Context, g *gen.Graph, w io.Writer) error {
	return newGenerator(g, "").WriteTo(ctx, w)
}

// Render renders every table of the graph without writing anything.
func Render(ctx context.Context, g *gen.Graph) ([]*gen.File, error) {
	return newGenerator(g, "").Render(ctx)
}

func newGenerator(g *gen.Graph, target string) *gen.JenniferGenerator {
	generator := gen.NewJenniferGenerator(g, target)
	generator.WithDialect(NewDialect(generator))
	return generator
}

// Dialect implements gen.Dialect for PostgreSQL through database/sql.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new SQL dialect generator.
// The helper parameter should be a *gen.JenniferGenerator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "sql"
}

// GenTable generates the table file ({entity}.go).
func (d *Dialect) GenTable(a *gen.Artifacts) *jen.File {
	return genTable(d.helper, a)
}

var _ gen.Dialect = (*Dialect)(nil)

// genTable renders the declarations of a table in order.
func genTable(h gen.GeneratorHelper, a *gen.Artifacts) *jen.File {
	f := h.NewFile(h.Pkg())
	for _, decl := range a.Decls() {
		switch decl := decl.(type) {
		case *gen.Struct:
			genStruct(h, f, decl)
		case *gen.Impl:
			for _, fn := range decl.Funcs {
				genFunc(h, f, a, fn)
			}
		}
	}
	return f
}

// genFunc renders one function of an impl block.
func genFunc(h gen.GeneratorHelper, f *jen.File, a *gen.Artifacts, fn *gen.Func) {
	if fn.Doc != "" {
		f.Comment(fn.Doc)
	}
	switch fn.Kind {
	case gen.FuncConstructor:
		genConstructor(h, f, fn)
	case gen.FuncSave, gen.FuncUpdate, gen.FuncDelete:
		genExec(h, f, fn)
	case gen.FuncGet:
		genGet(h, f, a, fn)
	case gen.FuncList:
		genList(h, f, a, fn)
	case gen.FuncConversion:
		genConversion(f, fn)
	}
}
