package dialect

import (
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// Postgres is the only dialect tablegen generates statements for.
const Postgres = "postgres"

// Placeholder returns the positional parameter marker for the n-th bind value.
// Numbering starts at 1.
func Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// reserved holds the PostgreSQL key words that cannot name a table or a
// column unquoted.
var reserved = func() map[string]struct{} {
	words := []string{
		"all", "analyse", "analyze", "and", "any", "array", "as", "asc",
		"asymmetric", "authorization", "binary", "both", "case", "cast",
		"check", "collate", "collation", "column", "concurrently",
		"constraint", "create", "cross", "current_catalog", "current_date",
		"current_role", "current_schema", "current_time", "current_timestamp",
		"current_user", "default", "deferrable", "desc", "distinct", "do",
		"else", "end", "except", "false", "fetch", "for", "foreign", "freeze",
		"from", "full", "grant", "group", "having", "ilike", "in", "initially",
		"inner", "intersect", "into", "is", "isnull", "join", "lateral",
		"leading", "left", "like", "limit", "localtime", "localtimestamp",
		"natural", "not", "notnull", "null", "offset", "on", "only", "or",
		"order", "outer", "overlaps", "placing", "primary", "references",
		"returning", "right", "select", "session_user", "similar", "some",
		"symmetric", "system_user", "table", "tablesample", "then", "to",
		"trailing", "true", "union", "unique", "user", "using", "variadic",
		"verbose", "when", "where", "window", "with",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

// Quote returns ident ready to be written into a statement. Each dot
// separated part that is a reserved key word is double quoted, the others
// are left as written so PostgreSQL still folds their case.
func Quote(ident string) string {
	parts := strings.Split(ident, ".")
	for i, p := range parts {
		if _, ok := reserved[strings.ToLower(p)]; ok {
			parts[i] = pq.QuoteIdentifier(p)
		}
	}
	return strings.Join(parts, ".")
}

// QuoteAll applies Quote to every identifier of idents.
func QuoteAll(idents []string) []string {
	out := make([]string, len(idents))
	for i, ident := range idents {
		out[i] = Quote(ident)
	}
	return out
}
