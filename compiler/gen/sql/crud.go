package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/tablegen/compiler/gen"
)

// genExec renders Save, Update or Delete: a method executing its static
// statement with the bound members of the receiver.
func genExec(h gen.GeneratorHelper, f *jen.File, fn *gen.Func) {
	stmt := fn.Statement
	args := append([]jen.Code{jen.Id("ctx"), jen.Lit(stmt.Text)}, members(stmt.Bound)...)
	f.Func().Params(jen.Id(receiver).Op("*").Id(fn.Receiver)).Id(fn.Name).
		Params(contextParams(h)...).
		Params(jen.Qual(h.SQLPkg(), "Result"), jen.Error()).
		Block(
			jen.Return(jen.Id("db").Dot("ExecContext").Call(args...)),
		)
}

// genGet renders Get<Entity>, which takes the primary-key values as
// parameters and scans exactly one row.
func genGet(h gen.GeneratorHelper, f *jen.File, a *gen.Artifacts, fn *gen.Func) {
	params := contextParams(h)
	keys := make([]jen.Code, len(fn.Params))
	for i, p := range fn.Params {
		params = append(params, jen.Id(p.Param()).Add(h.GoType(p.Type)))
		keys[i] = jen.Id(p.Param())
	}
	call := append([]jen.Code{
		jen.Id("ctx"),
		jen.Id("db"),
		jen.Lit(fn.Returns),
		jen.Lit(fn.Statement.Text),
		jen.Index().Any().Values(keys...),
	}, scanDest(a.Catalog.Fields)...)
	f.Func().Id(fn.Name).Params(params...).Params(jen.Op("*").Id(fn.Returns), jen.Error()).Block(
		jen.Id(receiver).Op(":=").Op("&").Id(fn.Returns).Values(),
		jen.If(
			jen.Err().Op(":=").Qual(h.SQLPkg(), "QueryOne").Call(call...),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Return(jen.Id(receiver), jen.Nil()),
	)
}
