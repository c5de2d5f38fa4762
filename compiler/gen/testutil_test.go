package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/tablegen/compiler/load"
	"github.com/syssam/tablegen/schema/field"
)

// newField creates a required field with the given declared type.
func newField(name, typ string) *Field {
	return &Field{Name: name, Type: field.Parse(typ, ""), Required: true}
}

// usersCatalog returns the catalog users(id uuid.UUID, name string,
// email string) keyed by id.
func usersCatalog(t testing.TB, opts ...func([]*Field)) *Catalog {
	t.Helper()
	fields := []*Field{
		newField("id", "uuid.UUID"),
		newField("name", "string"),
		newField("email", "string"),
	}
	for _, opt := range opts {
		opt(fields)
	}
	c, err := NewCatalog("users", "", fields, []int{0}, nil)
	require.NoError(t, err)
	return c
}

// optional marks the named fields as default-initialized.
func optional(names ...string) func([]*Field) {
	return func(fields []*Field) {
		for _, f := range fields {
			for _, n := range names {
				if f.Name == n {
					f.Required = false
				}
			}
		}
	}
}

func fieldNames(fields []*Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func memberNames(members []*Member) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

func boolp(v bool) *bool { return &v }

func intp(v int) *int { return &v }

func usersSchema() *load.Schema {
	return &load.Schema{
		Table:       "users",
		PrimaryKeys: []int{0},
		Fields: []*load.Field{
			{Name: "id", Column: "id", Type: "uuid.UUID"},
			{Name: "name", Column: "name", Type: "string"},
			{Name: "email", Column: "email", Type: "string"},
		},
	}
}
