package gen

import (
	"fmt"

	"github.com/syssam/tablegen/compiler/load"
)

// BuildPayload builds the payload declaration requested by p: one member per
// required field in constructor order. When conversion is requested it also
// builds the To<Entity> method, which passes the payload members to the
// constructor positionally. It returns nil declarations when p is nil.
func BuildPayload(c *Catalog, part *ConstructorPartition, p *load.Payload) (*Struct, *Impl) {
	if p == nil {
		return nil, nil
	}
	name := c.PayloadName()
	if p.Name != "" {
		name = p.Name
	}
	payload := &Struct{
		Name:    name,
		Doc:     fmt.Sprintf("%s holds the fields required to create a %s.", name, c.Entity),
		Members: make([]*Member, 0, len(part.Required)),
	}
	for _, f := range part.Required {
		payload.Members = append(payload.Members, &Member{
			Name:  f.StructField(),
			Field: f,
			Type:  f.Type,
			Tags:  map[string]string{"json": f.Name},
		})
	}
	if !p.WantConversion() {
		return payload, nil
	}
	to := &Func{
		Kind:     FuncConversion,
		Name:     "To" + c.Entity,
		Doc:      fmt.Sprintf("To%s returns a new %s built from the payload.", c.Entity, c.Entity),
		Receiver: name,
		Calls:    c.ConstructorName(),
		Args:     payload.Members,
		Returns:  c.Entity,
	}
	return payload, &Impl{Type: name, Funcs: []*Func{to}}
}
