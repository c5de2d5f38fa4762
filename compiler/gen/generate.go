package gen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/syssam/tablegen/schema/field"
)

// sqlPkg is the import path of the runtime package used by generated code.
const sqlPkg = "github.com/syssam/tablegen/dialect/sql"

// JenniferGenerator generates one Go file per table using Jennifer.
// Tables are built and rendered in parallel; nothing is written unless
// every table renders.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string
	header  string
	log     *slog.Logger

	// Dialect generator that renders the declarations.
	dialect Dialect
}

// File is the formatted source of one generated file.
type File struct {
	Name   string
	Table  string
	Source []byte
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithDialect() to set a dialect before generating.
//
// Example:
//
//	import "github.com/syssam/tablegen/compiler/gen/sql"
//
//	gen := gen.NewJenniferGenerator(graph, outDir)
//	gen.WithDialect(sql.NewDialect(gen))
//	gen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	return &JenniferGenerator{
		graph:   g,
		workers: g.Config.WorkerCount(),
		outDir:  outDir,
		pkg:     g.Config.PackageName(),
		header:  g.Config.HeaderComment(),
		log:     g.Config.Log(),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithDialect sets the dialect generator.
func (g *JenniferGenerator) WithDialect(d Dialect) *JenniferGenerator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// Generate renders every table and writes one file per table to the output
// directory. Returns an error if no dialect has been set via WithDialect().
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.outDir == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	files, err := g.Render(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError("write", g.outDir, "cannot create target directory", err)
	}
	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, f := range files {
		errg.Go(func() error {
			return g.writeFile(f)
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	g.log.Info("tablegen: generated", "tables", len(files), "target", g.outDir, "dialect", g.dialect.Name())
	return nil
}

// WriteTo renders every table and writes the sources to w in graph order,
// each preceded by a comment naming its file.
func (g *JenniferGenerator) WriteTo(ctx context.Context, w io.Writer) error {
	files, err := g.Render(ctx)
	if err != nil {
		return err
	}
	for i, f := range files {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "// %s\n", f.Name); err != nil {
			return err
		}
		if _, err := w.Write(f.Source); err != nil {
			return err
		}
	}
	return nil
}

// Render builds and renders every table in parallel. The returned files
// follow graph order.
func (g *JenniferGenerator) Render(ctx context.Context) ([]*File, error) {
	if g.dialect == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before generating")
	}
	files := make([]*File, len(g.graph.Nodes))
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for i, n := range g.graph.Nodes {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := g.renderTable(n)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// =============================================================================
// GeneratorHelper interface implementation
// =============================================================================

// NewFile creates a new Jennifer file with the standard header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(g.header)
	return f
}

// GoType returns the Jennifer code for a declared type.
func (g *JenniferGenerator) GoType(t *field.TypeInfo) jen.Code {
	return goType(t)
}

// MemberType returns the Jennifer code for a struct member's type.
func (g *JenniferGenerator) MemberType(m *Member) jen.Code {
	if !m.Optional {
		return goType(m.Type)
	}
	// For unqualified types, use Id("*type") to avoid whitespace issues
	// in struct field definitions.
	if !m.Type.Qualified() {
		return jen.Id("*" + m.Type.Ident)
	}
	return jen.Op("*").Add(goType(m.Type))
}

// SQLPkg returns the import path of the runtime dialect/sql package.
func (g *JenniferGenerator) SQLPkg() string {
	return sqlPkg
}

// Graph returns the table graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)

// =============================================================================
// Internal helper methods (unexported)
// =============================================================================

// renderTable builds the artifacts of one table, renders them with the
// dialect and runs the imports pass over the result.
func (g *JenniferGenerator) renderTable(c *Catalog) (*File, error) {
	a, err := Build(c, g.graph.Config)
	if err != nil {
		return nil, err
	}
	name := FileName(c.Entity)
	var buf bytes.Buffer
	if err := g.dialect.GenTable(a).Render(&buf); err != nil {
		return nil, NewGenerationError("render", name, "", err)
	}
	src, err := format(name, buf.Bytes())
	if err != nil {
		return nil, NewGenerationError("format", name, "", err)
	}
	return &File{Name: name, Table: c.Table, Source: src}, nil
}

// writeFile writes a rendered file to the output directory.
func (g *JenniferGenerator) writeFile(f *File) error {
	path := filepath.Join(g.outDir, f.Name)
	if err := os.WriteFile(path, f.Source, 0o644); err != nil {
		return NewGenerationError("write", f.Name, "", err)
	}
	g.log.Debug("tablegen: wrote file", "path", path, "table", f.Table, "bytes", len(f.Source))
	return nil
}

// format resolves the imports of unqualified package references and
// formats the source.
func format(name string, src []byte) ([]byte, error) {
	return imports.Process(name, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
}

// goType returns the Jennifer code for a declared type. Qualified types are
// rendered through their import path so Jennifer tracks the import.
func goType(t *field.TypeInfo) jen.Code {
	if t == nil {
		return jen.Any()
	}
	if !t.Qualified() {
		return jen.Id(t.Ident)
	}
	s := new(jen.Statement)
	for rest := t.Prefix; rest != ""; {
		if strings.HasPrefix(rest, "[]") {
			s = s.Index()
			rest = rest[2:]
		} else {
			s = s.Op("*")
			rest = rest[1:]
		}
	}
	return s.Qual(t.PkgPath, t.Name)
}
