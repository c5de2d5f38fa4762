// Package field describes the declared types of table fields.
//
// A field type is declared as a Go type spelling, for example "string",
// "int64", "*time.Time" or "decimal.Decimal". A small closed set of
// spellings is recognized and drives the code tablegen emits:
//
//	string                       KindString     default ""
//	time.Time                    KindLocalTime  default time.Now()
//	time.Time@utc                KindUTCTime    default time.Now().UTC()
//	uuid.UUID                    KindUUID       default uuid.New()
//	github.com/google/uuid.UUID  KindUUID       default uuid.New()
//
// Matching is by exact spelling. Every other spelling, including near
// misses such as "Time", "UUID" or "*time.Time", is KindOther and gets the
// zero value of its type.
//
// Qualified spellings resolve their import path through a table of well
// known packages or through an explicit import path:
//
//	info := field.Parse("decimal.Decimal", "")
//	info.PkgPath // github.com/shopspring/decimal
//	info.Ident   // decimal.Decimal
package field
