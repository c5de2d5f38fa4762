package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/tablegen/compiler/gen"
	"github.com/syssam/tablegen/schema/field"
)

// genStruct renders a struct declaration. Entity, payload and query
// parameter structs share the same shape.
func genStruct(h gen.GeneratorHelper, f *jen.File, s *gen.Struct) {
	if s.Doc != "" {
		f.Comment(s.Doc)
	}
	f.Type().Id(s.Name).StructFunc(func(group *jen.Group) {
		for _, m := range s.Members {
			group.Id(m.Name).Add(h.MemberType(m)).Tag(m.Tags)
		}
	})
}

// genConstructor renders New<Entity>. Members are initialized in catalog
// order and members with a zero default are left out of the composite literal.
func genConstructor(h gen.GeneratorHelper, f *jen.File, fn *gen.Func) {
	f.Func().Id(fn.Name).ParamsFunc(func(group *jen.Group) {
		for _, p := range fn.Params {
			group.Id(p.Param()).Add(h.GoType(p.Type))
		}
	}).Op("*").Id(fn.Returns).Block(
		jen.Return(jen.Op("&").Id(fn.Returns).ValuesFunc(func(group *jen.Group) {
			n := 0
			for _, init := range fn.Inits {
				if v := initValue(init); v != nil {
					group.Line().Id(init.Field.StructField()).Op(":").Add(v)
					n++
				}
			}
			if n > 0 {
				group.Line()
			}
		})),
	)
}

// initValue returns the initializer of a constructor member, or nil for a
// zero-valued member.
func initValue(init *gen.Init) jen.Code {
	if init.FromParam() {
		return jen.Id(init.Param)
	}
	return defaultValue(init.Default)
}

// defaultValue returns the expression of a type-directed default.
func defaultValue(d field.Default) jen.Code {
	switch d {
	case field.DefaultEmptyString:
		return jen.Lit("")
	case field.DefaultNow:
		return jen.Qual("time", "Now").Call()
	case field.DefaultNowUTC:
		return jen.Qual("time", "Now").Call().Dot("UTC").Call()
	case field.DefaultUUID:
		return jen.Qual(uuidPkg, "New").Call()
	default:
		return nil
	}
}
