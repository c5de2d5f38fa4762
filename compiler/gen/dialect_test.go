package gen

import (
	"fmt"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"

	"github.com/syssam/tablegen/schema/field"
)

var (
	_ Dialect         = (*stubDialect)(nil)
	_ GeneratorHelper = (*JenniferGenerator)(nil)
)

func TestGoType(t *testing.T) {
	tests := []struct {
		spelling string
		want     string
	}{
		{"string", "string"},
		{"int64", "int64"},
		{"*string", "*string"},
		{"[]byte", "[]byte"},
		{"time.Time", "time.Time"},
		{"time.Time@utc", "time.Time"},
		{"uuid.UUID", "uuid.UUID"},
		{"github.com/google/uuid.UUID", "uuid.UUID"},
		{"*decimal.Decimal", "*decimal.Decimal"},
		{"[]uuid.UUID", "[]uuid.UUID"},
		{"Status", "Status"},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			code := jen.Var().Id("v").Add(goType(field.Parse(tt.spelling, "")))
			assert.Equal(t, "var v "+tt.want, fmt.Sprintf("%#v", code))
		})
	}
	assert.Equal(t, "var v any", fmt.Sprintf("%#v", jen.Var().Id("v").Add(goType(nil))))
}

func TestMemberType(t *testing.T) {
	g := &JenniferGenerator{}
	tests := []struct {
		name   string
		member *Member
		want   string
	}{
		{"required", &Member{Type: field.Parse("string", "")}, "string"},
		{"optional builtin", &Member{Type: field.Parse("int", ""), Optional: true}, "*int"},
		{"optional qualified", &Member{Type: field.Parse("time.Time", ""), Optional: true}, "*time.Time"},
		{"pointer kept", &Member{Type: field.Parse("*time.Time", "")}, "*time.Time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := jen.Var().Id("v").Add(g.MemberType(tt.member))
			assert.Equal(t, "var v "+tt.want, fmt.Sprintf("%#v", code))
		})
	}
}

func TestNewFile(t *testing.T) {
	g := &JenniferGenerator{header: DefaultHeader}
	f := g.NewFile("models")
	f.Type().Id("T").Struct()
	out := fmt.Sprintf("%#v", f)
	assert.Contains(t, out, "// Code generated by tablegen. DO NOT EDIT.")
	assert.Contains(t, out, "package models")
}
