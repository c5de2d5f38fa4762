package gen

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/syssam/tablegen/dialect"
)

// Op is the operation of a static statement.
type Op string

// Statement operations.
const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpGet    Op = "get"
)

// Statement is a fully parameterized SQL statement. Placeholder $N of Text
// is filled by Bound[N-1].
type Statement struct {
	Op    Op
	Table string
	Text  string
	Bound []*Field
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// Placeholders returns the distinct placeholder numbers referenced by the
// statement text in ascending order.
func (s *Statement) Placeholders() []int {
	var nums []int
	for _, m := range placeholderRe.FindAllStringSubmatch(s.Text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if !slices.Contains(nums, n) {
			nums = append(nums, n)
		}
	}
	slices.Sort(nums)
	return nums
}

// Check verifies that the statement references exactly the placeholders
// $1 through $len(Bound).
func (s *Statement) Check() error {
	nums := s.Placeholders()
	if len(nums) != len(s.Bound) {
		return NewValidationError(s.Table, string(s.Op), len(nums),
			fmt.Sprintf("statement references %d placeholders but binds %d fields", len(nums), len(s.Bound)))
	}
	for i, n := range nums {
		if n != i+1 {
			return NewValidationError(s.Table, string(s.Op), n,
				fmt.Sprintf("placeholder $%d has no bound field", n))
		}
	}
	return nil
}

// Statements holds the static statements of a table.
type Statements struct {
	Insert *Statement
	Update *Statement
	Delete *Statement
	Get    *Statement
}

// All returns the statements in insert, update, delete, get order.
func (s *Statements) All() []*Statement {
	return []*Statement{s.Insert, s.Update, s.Delete, s.Get}
}

// BuildStatements builds the insert, update, delete and get statements of
// the catalog. A table without primary keys is rejected, since update,
// delete and get would have an empty WHERE clause.
func BuildStatements(c *Catalog) (*Statements, error) {
	if len(c.Fields) == 0 {
		return nil, NewSchemaError(c.Table, "", "", ErrNoFields)
	}
	if len(c.PrimaryKeys) == 0 {
		return nil, NewSchemaError(c.Table, "", "", ErrNoPrimaryKey)
	}
	return &Statements{
		Insert: insertStatement(c),
		Update: updateStatement(c),
		Delete: deleteStatement(c),
		Get:    getStatement(c),
	}, nil
}

// INSERT INTO t (c1, ..., cn) VALUES ($1, ..., $n)
func insertStatement(c *Catalog) *Statement {
	values := make([]string, len(c.Fields))
	for i := range c.Fields {
		values[i] = dialect.Placeholder(i + 1)
	}
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(dialect.Quote(c.Table))
	b.WriteString(" (")
	b.WriteString(strings.Join(dialect.QuoteAll(c.Columns()), ", "))
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(values, ", "))
	b.WriteString(")")
	return &Statement{Op: OpInsert, Table: c.Table, Text: b.String(), Bound: slices.Clone(c.Fields)}
}

// UPDATE t SET c1 = $1, ..., cn = $n WHERE k1 = $n+1 AND ...
func updateStatement(c *Catalog) *Statement {
	set := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		set[i] = dialect.Quote(f.Column) + " = " + dialect.Placeholder(i+1)
	}
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(dialect.Quote(c.Table))
	b.WriteString(" SET ")
	b.WriteString(strings.Join(set, ", "))
	b.WriteString(whereKeys(c.PrimaryKeys, len(c.Fields)+1))
	bound := make([]*Field, 0, len(c.Fields)+len(c.PrimaryKeys))
	bound = append(bound, c.Fields...)
	bound = append(bound, c.PrimaryKeys...)
	return &Statement{Op: OpUpdate, Table: c.Table, Text: b.String(), Bound: bound}
}

// DELETE FROM t WHERE k1 = $1 AND ...
func deleteStatement(c *Catalog) *Statement {
	text := "DELETE FROM " + dialect.Quote(c.Table) + whereKeys(c.PrimaryKeys, 1)
	return &Statement{Op: OpDelete, Table: c.Table, Text: text, Bound: slices.Clone(c.PrimaryKeys)}
}

// SELECT c1, ..., cn FROM t WHERE k1 = $1 AND ...
func getStatement(c *Catalog) *Statement {
	text := "SELECT " + strings.Join(dialect.QuoteAll(c.Columns()), ", ") + " FROM " + dialect.Quote(c.Table) + whereKeys(c.PrimaryKeys, 1)
	return &Statement{Op: OpGet, Table: c.Table, Text: text, Bound: slices.Clone(c.PrimaryKeys)}
}

// whereKeys returns the WHERE clause conjoining keys with placeholders
// numbered from start.
func whereKeys(keys []*Field, start int) string {
	preds := make([]string, len(keys))
	for i, k := range keys {
		preds[i] = dialect.Quote(k.Column) + " = " + dialect.Placeholder(start+i)
	}
	return " WHERE " + strings.Join(preds, " AND ")
}
