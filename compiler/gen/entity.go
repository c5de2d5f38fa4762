package gen

import "fmt"

// ConstructorPartition splits the catalog fields into the constructor
// parameters and the default-initialized members. Both sides keep catalog
// order and every field is in exactly one side.
type ConstructorPartition struct {
	Required  []*Field
	Defaulted []*Field
}

// BuildEntity builds the entity declaration, with one member per field in
// catalog order, and its constructor. The constructor takes the required
// fields as parameters and initializes every other member from the default
// of its type.
func BuildEntity(c *Catalog) (*Struct, *Func, *ConstructorPartition) {
	entity := &Struct{
		Name:    c.Entity,
		Doc:     fmt.Sprintf("%s represents a row in the %s table.", c.Entity, c.Table),
		Members: make([]*Member, 0, len(c.Fields)),
	}
	ctor := &Func{
		Kind:    FuncConstructor,
		Name:    c.ConstructorName(),
		Doc:     fmt.Sprintf("%s returns a new %s.", c.ConstructorName(), c.Entity),
		Returns: c.Entity,
	}
	part := &ConstructorPartition{}
	for _, f := range c.Fields {
		entity.Members = append(entity.Members, &Member{
			Name:  f.StructField(),
			Field: f,
			Type:  f.Type,
			Tags:  map[string]string{"db": f.Column, "json": f.Name},
		})
		init := &Init{Field: f}
		if f.Required {
			part.Required = append(part.Required, f)
			ctor.Params = append(ctor.Params, f)
			init.Param = f.Param()
		} else {
			part.Defaulted = append(part.Defaulted, f)
			init.Default = f.Type.Default()
		}
		ctor.Inits = append(ctor.Inits, init)
	}
	return entity, ctor, part
}
