package gen

import (
	"errors"
	"fmt"

	"github.com/syssam/tablegen/compiler/load"
)

// Graph holds the catalogs of all tables generated in one run.
type Graph struct {
	*Config
	// Nodes are the table catalogs in input order.
	Nodes []*Catalog
}

// NewGraph creates a graph for the given table descriptions. Every invalid
// table is reported. Two tables may not map to the same entity file.
func NewGraph(c *Config, schemas ...*load.Schema) (*Graph, error) {
	if c == nil {
		c = &Config{}
	}
	g := &Graph{Config: c}
	var errs []error
	files := make(map[string]string)
	for _, s := range schemas {
		if s == nil {
			continue
		}
		cat, err := CatalogFromSchema(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		name := FileName(cat.Entity)
		if table, ok := files[name]; ok {
			errs = append(errs, NewSchemaError(s.Table, "", fmt.Sprintf("entity %s collides with table %s", cat.Entity, table), nil))
			continue
		}
		files[name] = s.Table
		g.Nodes = append(g.Nodes, cat)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// NewProjectGraph creates a graph for a loaded project. The package of the
// project is used unless the config already sets one.
func NewProjectGraph(c *Config, p *load.Project) (*Graph, error) {
	if c == nil {
		c = &Config{}
	}
	if c.Package == "" && p.Package != "" {
		if err := WithPackage(p.Package)(c); err != nil {
			return nil, err
		}
	}
	return NewGraph(c, p.Tables...)
}

// Node returns the catalog of the named table, or nil.
func (g *Graph) Node(table string) *Catalog {
	for _, n := range g.Nodes {
		if n.Table == table {
			return n
		}
	}
	return nil
}
