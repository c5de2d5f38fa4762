package gen

import (
	"fmt"

	"github.com/syssam/tablegen/schema/field"
)

// BuildQuery builds the query-parameters declaration of the catalog: one
// optional member per search field, followed by the optional Limit and
// Offset members. Types that are already pointers are not wrapped again.
func BuildQuery(c *Catalog) *Struct {
	search := c.SearchFields()
	s := &Struct{
		Name:    c.QueryName(),
		Doc:     fmt.Sprintf("%s holds the optional filters and pagination of %s.", c.QueryName(), c.ListName()),
		Members: make([]*Member, 0, len(search)+2),
	}
	for _, f := range search {
		s.Members = append(s.Members, &Member{
			Name:     f.StructField(),
			Field:    f,
			Type:     f.Type,
			Optional: !f.Type.Optional(),
			Tags:     map[string]string{"json": f.Name + ",omitempty"},
		})
	}
	for _, name := range []string{"limit", "offset"} {
		s.Members = append(s.Members, &Member{
			Name:     pascal(name),
			Type:     field.Parse("int", ""),
			Optional: true,
			Tags:     map[string]string{"json": name + ",omitempty"},
		})
	}
	return s
}
