package gen

import (
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/syssam/tablegen/compiler/load"
	"github.com/syssam/tablegen/schema/field"
)

// Field is one column of a table. It is immutable once the catalog is built.
type Field struct {
	// Name is the declared field name, e.g. user_id.
	Name string
	// Column is the database column, defaulting to Name.
	Column string
	// Type is the declared Go type.
	Type *field.TypeInfo
	// Required reports whether the constructor takes the field as a parameter.
	Required bool
	// Position is the index of the field in its catalog.
	Position int
}

// StructField returns the Go name of the field's struct member.
func (f *Field) StructField() string { return pascal(f.Name) }

// Param returns the Go name of the field's function parameter.
func (f *Field) Param() string { return paramName(f.Name) }

// Kind returns the recognized kind of the field type.
func (f *Field) Kind() field.Kind {
	if f.Type == nil {
		return field.KindOther
	}
	return f.Type.Kind
}

// Catalog is the ordered field list of one table with its primary-key and
// search selections. It is read-only after construction.
type Catalog struct {
	Table  string
	Entity string
	Fields []*Field
	// PrimaryKeys holds the primary-key fields in catalog order.
	PrimaryKeys []*Field
	// Excluded holds the fields excluded from list filters in catalog order.
	Excluded []*Field
	// Payload is the requested payload declaration, or nil.
	Payload *load.Payload
}

// NewCatalog builds the catalog of a table. An empty entity defaults to
// EntityName(table). Selections are field indices; out of range indices are
// configuration errors and duplicates collapse.
func NewCatalog(table, entity string, fields []*Field, primaryKeys, excluded []int) (*Catalog, error) {
	if strings.TrimSpace(table) == "" {
		return nil, NewSchemaError(table, "", "table name cannot be empty", nil)
	}
	if entity == "" {
		entity = EntityName(table)
	}
	if !token.IsIdentifier(entity) {
		return nil, NewSchemaError(table, "", fmt.Sprintf("entity name %q is not a valid identifier", entity), nil)
	}
	if len(fields) == 0 {
		return nil, NewSchemaError(table, "", "", ErrNoFields)
	}
	c := &Catalog{Table: table, Entity: entity, Fields: fields}
	for i, f := range fields {
		f.Position = i
		if f.Column == "" {
			f.Column = f.Name
		}
	}
	var err error
	if c.PrimaryKeys, err = c.selection("PrimaryKeys", primaryKeys); err != nil {
		return nil, err
	}
	if c.Excluded, err = c.selection("ExcludeFromSearch", excluded); err != nil {
		return nil, err
	}
	if err := c.checkMembers(); err != nil {
		return nil, err
	}
	return c, nil
}

// Member names the generated declarations reserve. Entity fields share a
// method set with the statement methods and query fields share a struct with
// the pagination members.
var (
	entityMethods = []string{"Save", "Update", "Delete"}
	queryMembers  = []string{"Limit", "Offset"}
)

// checkMembers reports fields whose struct member would collide with a
// generated method or member.
func (c *Catalog) checkMembers() error {
	for _, f := range c.Fields {
		if name := f.StructField(); slices.Contains(entityMethods, name) {
			return NewSchemaError(c.Table, f.Name, fmt.Sprintf("member %s collides with the %s.%s method", name, c.Entity, name), nil)
		}
	}
	for _, f := range c.SearchFields() {
		if name := f.StructField(); slices.Contains(queryMembers, name) {
			return NewSchemaError(c.Table, f.Name, fmt.Sprintf("member %s collides with the %s pagination member", name, c.QueryName()), nil)
		}
	}
	return nil
}

// CatalogFromSchema builds the catalog of a loaded table description.
func CatalogFromSchema(s *load.Schema) (*Catalog, error) {
	fields := make([]*Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		typ := f.Type
		if typ == "" {
			typ = load.DefaultType
		}
		fields = append(fields, &Field{
			Name:     f.Name,
			Column:   f.Column,
			Type:     field.Parse(typ, f.Import),
			Required: f.IsRequired(),
		})
	}
	c, err := NewCatalog(s.Table, s.Entity, fields, s.PrimaryKeys, s.ExcludeFromSearch)
	if err != nil {
		return nil, err
	}
	if s.Payload != nil {
		name := s.Payload.Name
		if name != "" && !token.IsIdentifier(name) {
			return nil, NewSchemaError(s.Table, "", fmt.Sprintf("payload name %q is not a valid identifier", name), nil)
		}
		if s.Payload.WantConversion() {
			method := "To" + c.Entity
			for _, f := range c.Fields {
				if f.Required && f.StructField() == method {
					return nil, NewSchemaError(s.Table, f.Name, fmt.Sprintf("payload member %s collides with the conversion method", method), nil)
				}
			}
		}
		c.Payload = s.Payload
	}
	return c, nil
}

// selection resolves field indices to fields in catalog order.
func (c *Catalog) selection(option string, indices []int) ([]*Field, error) {
	seen := make([]bool, len(c.Fields))
	for _, i := range indices {
		if i < 0 || i >= len(c.Fields) {
			return nil, NewConfigError(option, i, fmt.Sprintf("index out of range for table %s with %d fields", c.Table, len(c.Fields)))
		}
		seen[i] = true
	}
	var fields []*Field
	for i, ok := range seen {
		if ok {
			fields = append(fields, c.Fields[i])
		}
	}
	return fields, nil
}

// SearchFields returns the fields eligible as list filters, that is all
// fields except the excluded ones, in catalog order.
func (c *Catalog) SearchFields() []*Field {
	fields := make([]*Field, 0, len(c.Fields)-len(c.Excluded))
	for _, f := range c.Fields {
		if !slices.Contains(c.Excluded, f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// IsPrimaryKey reports whether f is a primary-key field of the catalog.
func (c *Catalog) IsPrimaryKey(f *Field) bool {
	return slices.Contains(c.PrimaryKeys, f)
}

// Columns returns the columns of all fields in catalog order.
func (c *Catalog) Columns() []string {
	columns := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		columns[i] = f.Column
	}
	return columns
}

// QueryName returns the name of the query-parameters declaration.
func (c *Catalog) QueryName() string { return c.Entity + "Query" }

// ConstructorName returns the name of the entity constructor.
func (c *Catalog) ConstructorName() string { return "New" + c.Entity }

// GetName returns the name of the fetch-by-key function.
func (c *Catalog) GetName() string { return "Get" + c.Entity }

// ListName returns the name of the list function.
func (c *Catalog) ListName() string { return "List" + plural(c.Entity) }

// PayloadName returns the name of the payload declaration.
func (c *Catalog) PayloadName() string {
	if c.Payload != nil && c.Payload.Name != "" {
		return c.Payload.Name
	}
	return c.Entity + "Payload"
}
