package sql

import (
	"strings"

	"github.com/syssam/tablegen/dialect"
)

// Pagination defaults applied by ListBuilder.
const (
	// DefaultLimit is the page size used when no limit is requested.
	DefaultLimit = 50
	// MaxLimit is the largest page size a caller may request.
	MaxLimit = 100
	// DefaultOffset is the offset used when no offset is requested.
	DefaultOffset = 0
)

// Bind names reported by ListBuilder.Binds for the pagination values.
const (
	BindLimit  = "limit"
	BindOffset = "offset"
)

// Op is a comparison operator used by a list filter.
type Op string

// Filter operators.
const (
	OpEQ   Op = "="
	OpLike Op = "LIKE"
)

// predicate is one present filter. Its placeholder number is its position in
// ListBuilder.preds, and its bind value is arg.
type predicate struct {
	column string
	op     Op
	arg    any
}

// ListBuilder assembles a filtered and paginated SELECT statement at call time.
// The zero value is not usable; create builders with List.
type ListBuilder struct {
	table   string
	columns []string
	preds   []predicate
	limit   int
	offset  int
	legacy  bool
}

// List returns a builder selecting columns from table with default pagination.
func List(table string, columns ...string) *ListBuilder {
	return &ListBuilder{
		table:   table,
		columns: columns,
		limit:   DefaultLimit,
		offset:  DefaultOffset,
	}
}

// LegacyPagination numbers LIMIT and OFFSET after the predicate counter
// instead of after the last predicate. With n filters present the statement
// references $n+2 and $n+3 while only n+2 values are bound, leaving $n+1
// unreferenced. It exists for code generated with legacy pagination numbering.
func (b *ListBuilder) LegacyPagination() *ListBuilder {
	b.legacy = true
	return b
}

// Where adds a filter on column. The first filter is introduced with WHERE,
// every later one with OR.
func (b *ListBuilder) Where(column string, op Op, arg any) *ListBuilder {
	b.preds = append(b.preds, predicate{column: column, op: op, arg: arg})
	return b
}

// Paginate sets the requested limit and offset. Nil values select the defaults.
func (b *ListBuilder) Paginate(limit, offset *int) *ListBuilder {
	b.limit = ClampLimit(limit)
	b.offset = ClampOffset(offset)
	return b
}

// ClampLimit returns the effective page size for a requested limit:
// DefaultLimit when absent, otherwise the limit clamped to [0, MaxLimit].
func ClampLimit(limit *int) int {
	if limit == nil {
		return DefaultLimit
	}
	return min(max(*limit, 0), MaxLimit)
}

// ClampOffset returns the effective offset for a requested offset:
// DefaultOffset when absent, otherwise the offset floored at 0.
func ClampOffset(offset *int) int {
	if offset == nil {
		return DefaultOffset
	}
	return max(*offset, 0)
}

// Query returns the statement text and its bind values. Filter values are
// bound in the order they were added, followed by the limit and the offset.
func (b *ListBuilder) Query() (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(b.preds)+2)
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(dialect.QuoteAll(b.columns), ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(dialect.Quote(b.table))
	for i, p := range b.preds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" OR ")
		}
		sb.WriteString(dialect.Quote(p.column))
		sb.WriteByte(' ')
		sb.WriteString(string(p.op))
		sb.WriteByte(' ')
		sb.WriteString(dialect.Placeholder(i + 1))
		args = append(args, p.arg)
	}
	next := b.nextPlaceholder()
	sb.WriteString(" LIMIT ")
	sb.WriteString(dialect.Placeholder(next))
	sb.WriteString(" OFFSET ")
	sb.WriteString(dialect.Placeholder(next + 1))
	args = append(args, b.limit, b.offset)
	return sb.String(), args
}

// Binds returns the names of the bound values in bind order: the filtered
// columns followed by BindLimit and BindOffset.
func (b *ListBuilder) Binds() []string {
	names := make([]string, 0, len(b.preds)+2)
	for _, p := range b.preds {
		names = append(names, p.column)
	}
	return append(names, BindLimit, BindOffset)
}

// nextPlaceholder returns the number of the LIMIT placeholder.
func (b *ListBuilder) nextPlaceholder() int {
	// counter starts at 1 and advances once per emitted predicate.
	counter := len(b.preds) + 1
	if b.legacy {
		return counter + 1
	}
	return counter
}
