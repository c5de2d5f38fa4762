package sql

import (
	"context"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/syssam/tablegen/compiler/gen"
	"github.com/syssam/tablegen/compiler/load"
)

// typeCheck writes files into a throwaway package under testdata, so the
// generated imports resolve against the module's go.mod, and type-checks it.
func typeCheck(t *testing.T, files map[string][]byte) *types.Package {
	t.Helper()
	require.NoError(t, os.MkdirAll("testdata", 0o755))
	dir, err := os.MkdirTemp("testdata", "typecheck")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), src, 0o644))
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, "./"+filepath.ToSlash(dir))
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	for _, e := range pkgs[0].Errors {
		t.Errorf("%s: %s", dir, e)
	}
	require.Empty(t, pkgs[0].Errors)
	require.NotNil(t, pkgs[0].Types)
	return pkgs[0].Types
}

// paramNames returns the parameter names of the package-level function name.
func paramNames(t *testing.T, pkg *types.Package, name string) []string {
	t.Helper()
	fn, ok := pkg.Scope().Lookup(name).(*types.Func)
	require.True(t, ok, "%s is not a function", name)
	params := fn.Type().(*types.Signature).Params()
	names := make([]string, params.Len())
	for i := range names {
		names[i] = params.At(i).Name()
	}
	return names
}

// structFields returns the field names of the package-level struct name.
func structFields(t *testing.T, pkg *types.Package, name string) []string {
	t.Helper()
	obj := pkg.Scope().Lookup(name)
	require.NotNil(t, obj, "%s is not declared", name)
	st, ok := obj.Type().Underlying().(*types.Struct)
	require.True(t, ok, "%s is not a struct", name)
	names := make([]string, st.NumFields())
	for i := range names {
		names[i] = st.Field(i).Name()
	}
	return names
}

func ordersSchema() *load.Schema {
	return &load.Schema{
		Table:             "orders",
		PrimaryKeys:       []int{0, 1},
		ExcludeFromSearch: []int{2},
		Fields: []*load.Field{
			{Name: "user_id", Type: "uuid.UUID"},
			{Name: "seq", Type: "int64"},
			{Name: "created_at", Type: "time.Time@utc", Required: boolp(false)},
		},
	}
}

const callerHeader = `package models

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syssam/tablegen/dialect/sql"
)

var (
	_ = time.Now
	_ = uuid.New
)
`

func TestGeneratedSourceTypeChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}
	tests := []struct {
		name    string
		opts    []gen.Option
		schemas func() []*load.Schema
		// caller is compiled with the generated files and must use their API.
		caller string
		check  func(t *testing.T, pkg *types.Package)
	}{
		{
			name:    "all fields required",
			schemas: func() []*load.Schema { return []*load.Schema{usersSchema()} },
			caller: `
func exercise(ctx context.Context, db sql.ExecQuerier) error {
	u := NewUser(uuid.New(), "ada", "ada@example.com")
	if _, err := u.Save(ctx, db); err != nil {
		return err
	}
	if _, err := u.Update(ctx, db); err != nil {
		return err
	}
	got, err := GetUser(ctx, db, u.ID)
	if err != nil {
		return err
	}
	limit := 10
	if _, err := ListUsers(ctx, db, UserQuery{ID: &got.ID, Name: &got.Name, Limit: &limit}); err != nil {
		return err
	}
	_, err = got.Delete(ctx, db)
	return err
}
`,
			check: func(t *testing.T, pkg *types.Package) {
				assert.Equal(t, []string{"id", "name", "email"}, paramNames(t, pkg, "NewUser"))
				assert.Equal(t, []string{"ctx", "db", "id"}, paramNames(t, pkg, "GetUser"))
			},
		},
		{
			name: "name defaulted with payload",
			schemas: func() []*load.Schema {
				s := usersSchema()
				s.Fields[1].Required = boolp(false)
				s.Payload = &load.Payload{}
				return []*load.Schema{s}
			},
			caller: `
func exercise(ctx context.Context, db sql.ExecQuerier) error {
	p := &UserPayload{ID: uuid.New(), Email: "ada@example.com"}
	u := p.ToUser()
	u.Name = "ada"
	_, err := u.Save(ctx, db)
	return err
}
`,
			check: func(t *testing.T, pkg *types.Package) {
				assert.Equal(t, []string{"id", "email"}, paramNames(t, pkg, "NewUser"))
				assert.Equal(t, []string{"ID", "Email"}, structFields(t, pkg, "UserPayload"))
			},
		},
		{
			name: "search by name and email",
			schemas: func() []*load.Schema {
				s := usersSchema()
				s.ExcludeFromSearch = []int{0}
				return []*load.Schema{s}
			},
			caller: `
func exercise(ctx context.Context, db sql.ExecQuerier) ([]*User, error) {
	email := "ada@example.com"
	return ListUsers(ctx, db, UserQuery{Email: &email})
}
`,
			check: func(t *testing.T, pkg *types.Package) {
				assert.Equal(t, []string{"Name", "Email", "Limit", "Offset"}, structFields(t, pkg, "UserQuery"))
			},
		},
		{
			name:    "composite key with legacy pagination",
			opts:    []gen.Option{gen.WithPagination(gen.PaginationLegacy)},
			schemas: func() []*load.Schema { return []*load.Schema{usersSchema(), ordersSchema()} },
			caller: `
func exercise(ctx context.Context, db sql.ExecQuerier) error {
	o := NewOrder(uuid.New(), 1)
	_ = o.CreatedAt.Location()
	got, err := GetOrder(ctx, db, o.UserID, o.Seq)
	if err != nil {
		return err
	}
	_, err = ListOrders(ctx, db, OrderQuery{UserID: &got.UserID, Seq: &got.Seq})
	return err
}
`,
			check: func(t *testing.T, pkg *types.Package) {
				assert.Equal(t, []string{"userID", "seq"}, paramNames(t, pkg, "NewOrder"))
				assert.Equal(t, []string{"UserID", "Seq", "Limit", "Offset"}, structFields(t, pkg, "OrderQuery"))
			},
		},
		{
			name: "reserved names and pointer types",
			schemas: func() []*load.Schema {
				return []*load.Schema{{
					Table:       "jobs",
					PrimaryKeys: []int{0},
					Fields: []*load.Field{
						{Name: "id", Type: "int64"},
						{Name: "type"},
						{Name: "query"},
						{Name: "order", Type: "int"},
						{Name: "deleted_at", Type: "*time.Time", Required: boolp(false)},
					},
				}}
			},
			caller: `
func exercise(ctx context.Context, db sql.ExecQuerier) ([]*Job, error) {
	j := NewJob(1, "email", "select", 2)
	return ListJobs(ctx, db, JobQuery{Type: &j.Type, Order: &j.Order, DeletedAt: j.DeletedAt})
}
`,
			check: func(t *testing.T, pkg *types.Package) {
				assert.Equal(t, []string{"id", "_type", "_query", "order"}, paramNames(t, pkg, "NewJob"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := gen.NewConfig(tt.opts...)
			require.NoError(t, err)
			g, err := gen.NewGraph(cfg, tt.schemas()...)
			require.NoError(t, err)
			files, err := Render(context.Background(), g)
			require.NoError(t, err)

			sources := map[string][]byte{"caller.go": []byte(callerHeader + tt.caller)}
			for _, f := range files {
				sources[f.Name] = f.Source
			}
			pkg := typeCheck(t, sources)
			assert.Equal(t, "models", pkg.Name())
			tt.check(t, pkg)
		})
	}
}
