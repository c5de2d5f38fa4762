package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/tablegen/compiler/gen"
	runtime "github.com/syssam/tablegen/dialect/sql"
)

// genList renders List<Entities>. The WHERE clause is assembled at call time
// by the runtime list builder from the filters present in q.
func genList(h gen.GeneratorHelper, f *jen.File, a *gen.Artifacts, fn *gen.Func) {
	plan := fn.List
	pkg := h.SQLPkg()
	columns := append([]jen.Code{jen.Lit(plan.Table)}, lits(plan.Columns)...)
	builder := jen.Qual(pkg, "List").Call(columns...)
	if plan.Pagination == gen.PaginationLegacy {
		builder = builder.Dot("LegacyPagination").Call()
	}
	f.Func().Id(fn.Name).Params(append(contextParams(h), jen.Id("q").Id(fn.Query))...).
		Params(jen.Index().Op("*").Id(fn.Returns), jen.Error()).
		BlockFunc(func(group *jen.Group) {
			group.Id("b").Op(":=").Add(builder)
			for _, filter := range plan.Filters {
				name := filter.Field.StructField()
				// jen statements mutate in place, so cond and arg must not share one.
				cond := jen.Id("q").Dot(name).Op("!=").Nil()
				arg := jen.Op("*").Id("q").Dot(name)
				if filter.Field.Type.Optional() {
					arg = jen.Id("q").Dot(name)
				}
				group.If(cond).Block(
					jen.Id("b").Dot("Where").Call(jen.Lit(filter.Field.Column), jen.Qual(pkg, opName(filter.Op)), arg),
				)
			}
			group.List(jen.Id("query"), jen.Id("args")).Op(":=").Id("b").
				Dot("Paginate").Call(jen.Id("q").Dot("Limit"), jen.Id("q").Dot("Offset")).
				Dot("Query").Call()
			group.Return(jen.Qual(pkg, "QueryAll").Call(
				jen.Id("ctx"),
				jen.Id("db"),
				jen.Id("query"),
				jen.Id("args"),
				jen.Func().Params(jen.Id(receiver).Op("*").Id(fn.Returns)).Index().Any().Block(
					jen.Return(jen.Index().Any().Values(scanDest(a.Catalog.Fields)...)),
				),
			))
		})
}

// opName returns the name of the runtime constant of a filter operator.
func opName(op runtime.Op) string {
	if op == runtime.OpLike {
		return "OpLike"
	}
	return "OpEQ"
}

func lits(values []string) []jen.Code {
	out := make([]jen.Code, len(values))
	for i, v := range values {
		out[i] = jen.Lit(v)
	}
	return out
}
