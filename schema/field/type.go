package field

import (
	"path"
	"strings"
)

// Kind is the closed set of field type kinds recognized by tablegen.
type Kind uint8

// Type kinds.
const (
	KindOther Kind = iota
	KindString
	KindLocalTime
	KindUTCTime
	KindUUID
	endKinds
)

var kindNames = [...]string{
	KindOther:     "other",
	KindString:    "string",
	KindLocalTime: "time",
	KindUTCTime:   "time@utc",
	KindUUID:      "uuid",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return "invalid"
}

// Default returns the default-expression class for values of kind k.
func (k Kind) Default() Default {
	switch k {
	case KindString:
		return DefaultEmptyString
	case KindLocalTime:
		return DefaultNow
	case KindUTCTime:
		return DefaultNowUTC
	case KindUUID:
		return DefaultUUID
	default:
		return DefaultZero
	}
}

// Operator returns the comparison operator used when filtering on a value of
// kind k in a list query.
func (k Kind) Operator() string {
	if k == KindString {
		return "LIKE"
	}
	return "="
}

// Default is the class of expression a constructor uses to initialize a
// field that is not one of its parameters.
type Default uint8

// Default expressions.
const (
	// DefaultZero leaves the member at the zero value of its type.
	DefaultZero Default = iota
	// DefaultEmptyString initializes the member to "".
	DefaultEmptyString
	// DefaultNow initializes the member to time.Now().
	DefaultNow
	// DefaultNowUTC initializes the member to time.Now().UTC().
	DefaultNowUTC
	// DefaultUUID initializes the member to uuid.New().
	DefaultUUID
)

// String returns the Go expression of the default, or "zero".
func (d Default) String() string {
	switch d {
	case DefaultEmptyString:
		return `""`
	case DefaultNow:
		return "time.Now()"
	case DefaultNowUTC:
		return "time.Now().UTC()"
	case DefaultUUID:
		return "uuid.New()"
	default:
		return "zero"
	}
}

// UTCSuffix marks a time.Time spelling as UTC-zoned.
const UTCSuffix = "@utc"

// kinds maps the recognized spellings to their kind.
var kinds = map[string]Kind{
	"string":                      KindString,
	"time.Time":                   KindLocalTime,
	"time.Time" + UTCSuffix:       KindUTCTime,
	"uuid.UUID":                   KindUUID,
	"github.com/google/uuid.UUID": KindUUID,
}

// KindOf returns the kind of a declared type spelling.
// Unrecognized spellings are KindOther.
func KindOf(spelling string) Kind {
	return kinds[spelling]
}

// KnownPackages maps package qualifiers to their import paths.
var KnownPackages = map[string]string{
	"time":    "time",
	"uuid":    "github.com/google/uuid",
	"json":    "encoding/json",
	"decimal": "github.com/shopspring/decimal",
	"sql":     "database/sql",
	"netip":   "net/netip",
}

// TypeInfo holds the information of a declared field type.
type TypeInfo struct {
	// Spelling is the type as declared.
	Spelling string
	// Ident is the Go spelling of the type, including any pointer or slice
	// prefix and the package qualifier. For example "*decimal.Decimal".
	Ident string
	// Prefix holds the leading "*" and "[]" tokens of Ident.
	Prefix string
	// PkgPath is the import path of the qualified type, or empty for
	// builtin, local and unresolved types.
	PkgPath string
	// Name is the unqualified type name when PkgPath is set.
	Name string
	// Kind is the recognized kind of Spelling.
	Kind Kind
}

// Parse returns the type information of a declared spelling. A non-empty
// importPath overrides the import path of a qualified spelling.
func Parse(spelling, importPath string) *TypeInfo {
	t := &TypeInfo{Spelling: spelling, Kind: KindOf(spelling)}
	s := spelling
	if t.Kind == KindUTCTime {
		s = strings.TrimSuffix(s, UTCSuffix)
	}
	t.Prefix, s = splitPrefix(s)
	if i := strings.LastIndexByte(s, '.'); i > 0 && !strings.ContainsAny(s[:i], "[]{}()* ") {
		qual, name := s[:i], s[i+1:]
		switch {
		case importPath != "":
			t.PkgPath = importPath
		case strings.Contains(qual, "/"):
			t.PkgPath = qual
		default:
			t.PkgPath = KnownPackages[qual]
		}
		if t.PkgPath != "" {
			t.Name = name
			s = path.Base(qual) + "." + name
		}
	}
	t.Ident = t.Prefix + s
	return t
}

// String returns the Go spelling of the type.
func (t *TypeInfo) String() string {
	if t == nil {
		return ""
	}
	return t.Ident
}

// Optional reports whether the type is already optional (a pointer).
func (t *TypeInfo) Optional() bool {
	return t != nil && strings.HasPrefix(t.Ident, "*")
}

// Qualified reports whether the type resolves to an imported package.
func (t *TypeInfo) Qualified() bool {
	return t != nil && t.PkgPath != ""
}

// Default returns the default-expression class of the type.
func (t *TypeInfo) Default() Default {
	if t == nil {
		return DefaultZero
	}
	return t.Kind.Default()
}

// splitPrefix splits the leading pointer and slice tokens off s.
func splitPrefix(s string) (prefix, rest string) {
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '*':
			i++
		case strings.HasPrefix(s[i:], "[]"):
			i += 2
		default:
			return s[:i], s[i:]
		}
	}
	return s, ""
}
