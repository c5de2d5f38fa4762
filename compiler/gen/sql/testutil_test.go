package sql

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/tablegen/compiler/gen"
	"github.com/syssam/tablegen/compiler/load"
)

func boolp(v bool) *bool { return &v }

// usersSchema returns users(id uuid.UUID, name string, email string) keyed
// by id.
func usersSchema() *load.Schema {
	return &load.Schema{
		Table:       "users",
		PrimaryKeys: []int{0},
		Fields: []*load.Field{
			{Name: "id", Type: "uuid.UUID"},
			{Name: "name", Type: "string"},
			{Name: "email", Type: "string"},
		},
	}
}

// newHelper returns a generator over the given tables, used as the
// rendering helper.
func newHelper(t testing.TB, cfg *gen.Config, schemas ...*load.Schema) *gen.JenniferGenerator {
	t.Helper()
	g, err := gen.NewGraph(cfg, schemas...)
	require.NoError(t, err)
	h := gen.NewJenniferGenerator(g, "")
	h.WithDialect(NewDialect(h))
	return h
}

// renderTable builds the single table of the helper and returns its
// unformatted source.
func renderTable(t testing.TB, cfg *gen.Config, s *load.Schema) string {
	t.Helper()
	h := newHelper(t, cfg, s)
	a, err := gen.Build(h.Graph().Nodes[0], h.Graph().Config)
	require.NoError(t, err)
	return genTable(h, a).GoString()
}
