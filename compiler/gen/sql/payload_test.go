package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/tablegen/compiler/load"
)

func TestGenPayload(t *testing.T) {
	t.Run("with conversion", func(t *testing.T) {
		s := usersSchema()
		s.Fields[0].Required = boolp(false)
		s.Payload = &load.Payload{}
		code := renderTable(t, nil, s)
		assert.Contains(t, code, "// UserPayload holds the fields required to create a User.\ntype UserPayload struct {")
		assert.Regexp(t, "Name\\s+string\\s+`json:\"name\"`", code)
		assert.Contains(t, code, "// ToUser returns a new User built from the payload.\n"+
			"func (p *UserPayload) ToUser() *User {\n\treturn NewUser(p.Name, p.Email)\n}")
	})

	t.Run("named without conversion", func(t *testing.T) {
		s := usersSchema()
		s.Payload = &load.Payload{Name: "SignUp", Conversion: boolp(false)}
		code := renderTable(t, nil, s)
		assert.Contains(t, code, "type SignUp struct {")
		assert.NotContains(t, code, "ToUser")
	})

	t.Run("absent", func(t *testing.T) {
		code := renderTable(t, nil, usersSchema())
		assert.NotContains(t, code, "Payload")
	})
}
