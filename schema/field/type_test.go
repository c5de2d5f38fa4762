package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/tablegen/schema/field"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		spelling string
		kind     field.Kind
	}{
		{"string", field.KindString},
		{"time.Time", field.KindLocalTime},
		{"time.Time@utc", field.KindUTCTime},
		{"uuid.UUID", field.KindUUID},
		{"github.com/google/uuid.UUID", field.KindUUID},
		// Near misses fall back to the generic kind.
		{"String", field.KindOther},
		{"*string", field.KindOther},
		{"Time", field.KindOther},
		{"*time.Time", field.KindOther},
		{"time.Time@UTC", field.KindOther},
		{"UUID", field.KindOther},
		{"uuid.UUID ", field.KindOther},
		{"[]uuid.UUID", field.KindOther},
		{"int64", field.KindOther},
		{"", field.KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			assert.Equal(t, tt.kind, field.KindOf(tt.spelling))
		})
	}
}

func TestKind_Default(t *testing.T) {
	assert.Equal(t, field.DefaultEmptyString, field.KindString.Default())
	assert.Equal(t, field.DefaultNow, field.KindLocalTime.Default())
	assert.Equal(t, field.DefaultNowUTC, field.KindUTCTime.Default())
	assert.Equal(t, field.DefaultUUID, field.KindUUID.Default())
	assert.Equal(t, field.DefaultZero, field.KindOther.Default())
	assert.Equal(t, field.DefaultZero, field.Kind(42).Default())
}

func TestKind_Operator(t *testing.T) {
	assert.Equal(t, "LIKE", field.KindString.Operator())
	for _, k := range []field.Kind{field.KindOther, field.KindLocalTime, field.KindUTCTime, field.KindUUID} {
		assert.Equal(t, "=", k.Operator(), k.String())
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "other", field.KindOther.String())
	assert.Equal(t, "time@utc", field.KindUTCTime.String())
	assert.Equal(t, "invalid", field.Kind(42).String())
}

func TestDefault_String(t *testing.T) {
	assert.Equal(t, `""`, field.DefaultEmptyString.String())
	assert.Equal(t, "time.Now()", field.DefaultNow.String())
	assert.Equal(t, "time.Now().UTC()", field.DefaultNowUTC.String())
	assert.Equal(t, "uuid.New()", field.DefaultUUID.String())
	assert.Equal(t, "zero", field.DefaultZero.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		spelling, importPath string
		ident, prefix        string
		pkgPath, name        string
		optional             bool
	}{
		{spelling: "string", ident: "string"},
		{spelling: "int64", ident: "int64"},
		{spelling: "*string", ident: "*string", prefix: "*", optional: true},
		{spelling: "[]byte", ident: "[]byte", prefix: "[]"},
		{spelling: "time.Time", ident: "time.Time", pkgPath: "time", name: "Time"},
		{spelling: "time.Time@utc", ident: "time.Time", pkgPath: "time", name: "Time"},
		{spelling: "*time.Time", ident: "*time.Time", prefix: "*", pkgPath: "time", name: "Time", optional: true},
		{spelling: "uuid.UUID", ident: "uuid.UUID", pkgPath: "github.com/google/uuid", name: "UUID"},
		{spelling: "github.com/google/uuid.UUID", ident: "uuid.UUID", pkgPath: "github.com/google/uuid", name: "UUID"},
		{spelling: "[]*decimal.Decimal", ident: "[]*decimal.Decimal", prefix: "[]*", pkgPath: "github.com/shopspring/decimal", name: "Decimal"},
		{spelling: "json.RawMessage", ident: "json.RawMessage", pkgPath: "encoding/json", name: "RawMessage"},
		{spelling: "money.Amount", importPath: "example.com/billing/money", ident: "money.Amount", pkgPath: "example.com/billing/money", name: "Amount"},
		{spelling: "money.Amount", ident: "money.Amount"},
		{spelling: "map[string]time.Time", ident: "map[string]time.Time"},
		{spelling: "Status", ident: "Status"},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			info := field.Parse(tt.spelling, tt.importPath)
			assert.Equal(t, tt.spelling, info.Spelling)
			assert.Equal(t, tt.ident, info.Ident)
			assert.Equal(t, tt.ident, info.String())
			assert.Equal(t, tt.prefix, info.Prefix)
			assert.Equal(t, tt.pkgPath, info.PkgPath)
			assert.Equal(t, tt.name, info.Name)
			assert.Equal(t, tt.pkgPath != "", info.Qualified())
			assert.Equal(t, tt.optional, info.Optional())
			assert.Equal(t, field.KindOf(tt.spelling), info.Kind)
		})
	}
}

func TestTypeInfo_Nil(t *testing.T) {
	var info *field.TypeInfo
	assert.Equal(t, "", info.String())
	assert.False(t, info.Optional())
	assert.False(t, info.Qualified())
	assert.Equal(t, field.DefaultZero, info.Default())
}
