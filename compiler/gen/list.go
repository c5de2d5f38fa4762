package gen

import (
	"github.com/syssam/tablegen/dialect/sql"
)

// Filter is an optional list filter on one search field.
type Filter struct {
	Field *Field
	Op    sql.Op
}

// ListPlan describes the filtered and paginated list query of a table. The
// WHERE clause is assembled at call time from the filters whose values are
// present.
type ListPlan struct {
	Table         string
	Columns       []string
	Filters       []*Filter
	LimitDefault  int
	LimitMax      int
	OffsetDefault int
	Pagination    Pagination
}

// BuildList builds the list plan of the catalog. Filters follow the search
// fields in catalog order; string fields match with LIKE and every other
// type with =.
func BuildList(c *Catalog, p Pagination) *ListPlan {
	plan := &ListPlan{
		Table:         c.Table,
		Columns:       c.Columns(),
		LimitDefault:  sql.DefaultLimit,
		LimitMax:      sql.MaxLimit,
		OffsetDefault: sql.DefaultOffset,
		Pagination:    p,
	}
	for _, f := range c.SearchFields() {
		plan.Filters = append(plan.Filters, &Filter{Field: f, Op: sql.Op(f.Kind().Operator())})
	}
	return plan
}

// Builder returns the runtime builder the generated list function starts from.
func (p *ListPlan) Builder() *sql.ListBuilder {
	b := sql.List(p.Table, p.Columns...)
	if p.Pagination == PaginationLegacy {
		b.LegacyPagination()
	}
	return b
}

// ListStatement is a list query assembled for one set of present filters.
type ListStatement struct {
	Text string
	Args []any
	// Binds names the bound values in order: the filtered columns followed
	// by limit and offset.
	Binds []string
}

// Assemble runs the runtime builder for the filters present in values,
// keyed by field name, and the requested limit and offset.
func (p *ListPlan) Assemble(values map[string]any, limit, offset *int) *ListStatement {
	b := p.Builder()
	for _, f := range p.Filters {
		if v, ok := values[f.Field.Name]; ok {
			b.Where(f.Field.Column, f.Op, v)
		}
	}
	text, args := b.Paginate(limit, offset).Query()
	return &ListStatement{Text: text, Args: args, Binds: b.Binds()}
}
