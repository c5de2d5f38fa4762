package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/tablegen/compiler/load"
)

func TestGenQueryStruct(t *testing.T) {
	code := renderTable(t, nil, usersSchema())
	assert.Contains(t, code, "// UserQuery holds the optional filters and pagination of ListUsers.\ntype UserQuery struct {")
	assert.Regexp(t, "ID\\s+\\*uuid\\.UUID\\s+`json:\"id,omitempty\"`", code)
	assert.Regexp(t, "Email\\s+\\*string\\s+`json:\"email,omitempty\"`", code)
	assert.Regexp(t, "Limit\\s+\\*int\\s+`json:\"limit,omitempty\"`", code)
	assert.Regexp(t, "Offset\\s+\\*int\\s+`json:\"offset,omitempty\"`", code)
}

func TestGenQueryStruct_PointerField(t *testing.T) {
	s := &load.Schema{
		Table:       "posts",
		PrimaryKeys: []int{0},
		Fields: []*load.Field{
			{Name: "id", Type: "int64"},
			{Name: "deleted_at", Type: "*time.Time"},
		},
	}
	code := renderTable(t, nil, s)
	assert.Regexp(t, "DeletedAt\\s+\\*time\\.Time\\s+`json:\"deleted_at,omitempty\"`", code)
	assert.NotContains(t, code, "**time.Time")
}
