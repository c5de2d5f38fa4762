package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/tablegen/compiler/gen"
)

const uuidPkg = "github.com/google/uuid"

// receiver is the receiver name of generated entity methods.
const receiver = "_e"

// contextParams returns the leading ctx and db parameters shared by every
// generated database function.
func contextParams(h gen.GeneratorHelper) []jen.Code {
	return []jen.Code{
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("db").Qual(h.SQLPkg(), "ExecQuerier"),
	}
}

// members returns _e.F for each field.
func members(fields []*gen.Field) []jen.Code {
	out := make([]jen.Code, len(fields))
	for i, f := range fields {
		out[i] = jen.Id(receiver).Dot(f.StructField())
	}
	return out
}

// scanDest returns &_e.F for each field.
func scanDest(fields []*gen.Field) []jen.Code {
	out := make([]jen.Code, len(fields))
	for i, f := range fields {
		out[i] = jen.Op("&").Id(receiver).Dot(f.StructField())
	}
	return out
}
