package gen

import "github.com/syssam/tablegen/schema/field"

// Decl is an abstract declaration handed to a dialect renderer.
// It is either a *Struct or an *Impl.
type Decl interface {
	// DeclName returns the name of the declared type.
	DeclName() string
}

// Struct is a struct type declaration.
type Struct struct {
	Name    string
	Doc     string
	Members []*Member
}

// DeclName implements Decl.
func (s *Struct) DeclName() string { return s.Name }

// Member is one member of a Struct.
type Member struct {
	// Name is the Go name of the member.
	Name string
	// Field is the catalog field the member holds, or nil.
	Field *Field
	// Type is the declared type of the member.
	Type *field.TypeInfo
	// Optional wraps Type in a pointer.
	Optional bool
	// Tags holds the struct tags of the member, rendered in key order.
	Tags map[string]string
}

// Impl groups the functions declared for one type.
type Impl struct {
	Type  string
	Funcs []*Func
}

// DeclName implements Decl.
func (i *Impl) DeclName() string { return i.Type }

// FuncKind is the kind of a generated function.
type FuncKind uint8

// Function kinds.
const (
	FuncConstructor FuncKind = iota
	FuncSave
	FuncUpdate
	FuncDelete
	FuncGet
	FuncList
	FuncConversion
)

var funcKindNames = [...]string{
	FuncConstructor: "constructor",
	FuncSave:        "save",
	FuncUpdate:      "update",
	FuncDelete:      "delete",
	FuncGet:         "get",
	FuncList:        "list",
	FuncConversion:  "conversion",
}

// String returns the kind name.
func (k FuncKind) String() string {
	if int(k) < len(funcKindNames) {
		return funcKindNames[k]
	}
	return "invalid"
}

// Func is a generated function or method.
type Func struct {
	Kind FuncKind
	Name string
	Doc  string
	// Receiver is the type of the method receiver, or empty for a package
	// level function.
	Receiver string
	// Params holds the field parameters of the function in order.
	Params []*Field
	// Inits holds the member initializers of a constructor.
	Inits []*Init
	// Statement is the SQL statement executed by a save, update, delete or
	// get function.
	Statement *Statement
	// List is the plan executed by a list function.
	List *ListPlan
	// Query is the query-parameters type taken by a list function.
	Query string
	// Calls is the constructor called by a conversion and Args are the
	// payload members passed to it positionally.
	Calls string
	Args  []*Member
	// Returns is the entity type the function returns or operates on.
	Returns string
}

// Init initializes one entity member in a constructor. Param is set for a
// required field; otherwise the member takes its type-directed Default.
type Init struct {
	Field   *Field
	Param   string
	Default field.Default
}

// FromParam reports whether the member is initialized from a parameter.
func (i *Init) FromParam() bool { return i.Param != "" }
