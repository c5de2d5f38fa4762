package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/tablegen/compiler/load"
)

func TestBuild(t *testing.T) {
	c := usersCatalog(t)
	c.Payload = &load.Payload{Conversion: boolp(true)}
	a, err := Build(c, nil)
	require.NoError(t, err)

	decls := a.Decls()
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.DeclName()
	}
	assert.Equal(t, []string{"User", "User", "UserPayload", "UserPayload", "UserQuery"}, names)
	assert.IsType(t, &Struct{}, decls[0])
	assert.IsType(t, &Impl{}, decls[1])
	assert.IsType(t, &Impl{}, decls[3])

	kinds := make([]FuncKind, len(a.Impl.Funcs))
	for i, f := range a.Impl.Funcs {
		kinds[i] = f.Kind
	}
	assert.Equal(t, []FuncKind{FuncConstructor, FuncSave, FuncUpdate, FuncDelete, FuncGet, FuncList}, kinds)

	save := a.Impl.Funcs[1]
	assert.Equal(t, "User", save.Receiver)
	assert.Same(t, a.Statements.Insert, save.Statement)

	get := a.Impl.Funcs[4]
	assert.Equal(t, "GetUser", get.Name)
	assert.Empty(t, get.Receiver)
	assert.Equal(t, []string{"id"}, fieldNames(get.Params))

	list := a.Impl.Funcs[5]
	assert.Equal(t, "ListUsers", list.Name)
	assert.Equal(t, "UserQuery", list.Query)
	assert.Same(t, a.List, list.List)
	assert.Equal(t, PaginationSequential, a.List.Pagination)
}

func TestBuild_NoPayload(t *testing.T) {
	a, err := Build(usersCatalog(t), &Config{Pagination: PaginationLegacy})
	require.NoError(t, err)
	assert.Len(t, a.Decls(), 3)
	assert.Nil(t, a.Payload)
	assert.Nil(t, a.Conversion)
	assert.Equal(t, PaginationLegacy, a.List.Pagination)
}

func TestBuild_NoPrimaryKey(t *testing.T) {
	c, err := NewCatalog("events", "", []*Field{newField("kind", "string")}, nil, nil)
	require.NoError(t, err)
	a, err := Build(c, nil)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNoPrimaryKey)
	assert.True(t, IsSchemaError(err))
}
