package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Common initialisms from golint and more.
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GUID",
		"HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "LHS", "MAC", "QPS",
		"RAM", "RHS", "RPC", "SKU", "SLA", "SMTP", "SQL", "SSH", "SSO",
		"TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8",
		"UUID", "VM", "XML", "XMPP", "XSRF", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// words splits a snake, kebab or dotted name into its words.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})
}

// pascal converts a name to PascalCase, e.g. user_id to UserID.
func pascal(s string) string {
	ws := words(s)
	// A Caser is stateful and must not be shared between goroutines.
	title := cases.Title(language.Und, cases.NoLower)
	for i, w := range ws {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			ws[i] = upper
		} else {
			ws[i] = title.String(w)
		}
	}
	return strings.Join(ws, "")
}

// camel converts a name to camelCase, e.g. user_id to userID.
func camel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	first := strings.ToLower(ws[0])
	if len(ws) == 1 {
		return first
	}
	return first + pascal(strings.Join(ws[1:], "_"))
}

// snake converts a PascalCase name to snake_case, e.g. UserInfo to user_info.
func snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' if it is not a start or end of a word, current letter is uppercase,
		// and previous is lowercase (cases like: "UserInfo"), or next letter is also
		// a lowercase and previous letter is not "_".
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(rune(s[i-1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// plural returns the plural form of an entity name, e.g. User to Users.
func plural(name string) string {
	return rules.Pluralize(name)
}

// EntityName returns the default entity name of a table: the PascalCase
// singular of its unqualified name. For example, public.order_items becomes
// OrderItem.
func EntityName(table string) string {
	if i := strings.LastIndexByte(table, '.'); i >= 0 {
		table = table[i+1:]
	}
	return pascal(rules.Singularize(table))
}

// FileName returns the name of the file generated for an entity.
func FileName(entity string) string {
	return snake(entity) + ".go"
}

// paramName returns the parameter name of a field and ensures it doesn't
// conflict with Go keywords, the identifiers used in generated function
// bodies and the packages those bodies import.
func paramName(name string) string {
	p := camel(name)
	_, ok := reservedIdent[p]
	if ok || token.Lookup(p).IsKeyword() || !token.IsIdentifier(p) {
		return "_" + p
	}
	return p
}

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{})
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}

// reservedIdent holds the identifiers used by generated function bodies.
var reservedIdent = names(
	"args",
	"b",
	"context",
	"ctx",
	"db",
	"err",
	"p",
	"q",
	"query",
	"sql",
	"time",
	"uuid",
)
