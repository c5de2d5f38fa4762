package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/tablegen/compiler/gen"
)

// genConversion renders To<Entity>, which passes the payload members to the
// constructor positionally.
func genConversion(f *jen.File, fn *gen.Func) {
	args := make([]jen.Code, len(fn.Args))
	for i, m := range fn.Args {
		args[i] = jen.Id("p").Dot(m.Name)
	}
	f.Func().Params(jen.Id("p").Op("*").Id(fn.Receiver)).Id(fn.Name).Params().Op("*").Id(fn.Returns).Block(
		jen.Return(jen.Id(fn.Calls).Call(args...)),
	)
}
