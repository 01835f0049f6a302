// Package sqlguard validates model-generated SQL before it may touch the
// database. The gate is allow-list based and operates on a tokenized form of
// the statement, so table names hidden in comments or string literals cannot
// slip past it, and forbidden keywords inside string literals do not cause
// spurious rejections.
package sqlguard

import (
	"fmt"
	"regexp"
	"strings"
)

// AllowedTables is the fixed, lower-cased allow-list of queryable tables.
// The physical identifiers are mixed-case and quoted in SQL ("SalesFact",
// "ProfitMarginFact", "StockAgeingFact").
var AllowedTables = map[string]struct{}{
	"salesfact":        {},
	"profitmarginfact": {},
	"stockageingfact":  {},
}

// forbiddenKeywords reject any statement that could write or alter schema.
var forbiddenKeywords = map[string]struct{}{
	"insert": {}, "update": {}, "delete": {}, "drop": {}, "alter": {},
	"truncate": {}, "grant": {}, "revoke": {}, "create": {},
}

// RejectionError carries the offending SQL for diagnosis. Rejected statements
// are never retried or auto-corrected.
type RejectionError struct {
	SQL    string
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("sql rejected: %s", e.Reason)
}

var fenceRe = regexp.MustCompile("(?s)```(?:sql)?")

// StripCodeFences removes markdown fence markup that models sometimes emit
// despite being told not to.
func StripCodeFences(s string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(s, ""))
}

// Validate runs the full gate over a candidate statement: non-empty, SELECT
// shape, no data-modifying keyword, and every FROM/JOIN table on the
// allow-list. A statement referencing no table at all is rejected too.
func Validate(sql string) error {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return &RejectionError{SQL: sql, Reason: "empty statement"}
	}

	tokens := tokenize(trimmed)
	if len(tokens) == 0 || !tokens[0].isKeyword("select") {
		return &RejectionError{SQL: sql, Reason: "only SELECT statements are allowed"}
	}

	for _, tok := range tokens {
		if tok.kind != tokenWord {
			continue
		}
		if _, bad := forbiddenKeywords[strings.ToLower(tok.text)]; bad {
			return &RejectionError{SQL: sql, Reason: fmt.Sprintf("forbidden keyword %q", strings.ToLower(tok.text))}
		}
	}

	tables := extractTables(tokens)
	if len(tables) == 0 {
		return &RejectionError{SQL: sql, Reason: "no table found in statement"}
	}
	for _, t := range tables {
		if _, ok := AllowedTables[t]; !ok {
			return &RejectionError{SQL: sql, Reason: fmt.Sprintf("table %q is not allowed", t)}
		}
	}
	return nil
}

// EnsureLimit appends "LIMIT 200" before the terminating separator when the
// statement has no LIMIT clause of its own.
func EnsureLimit(sql string) string {
	trimmed := strings.TrimSpace(sql)
	for _, tok := range tokenize(trimmed) {
		if tok.isKeyword("limit") {
			if strings.HasSuffix(trimmed, ";") {
				return trimmed
			}
			return trimmed + ";"
		}
	}
	trimmed = strings.TrimRight(trimmed, "; \t\n")
	return trimmed + " LIMIT 200;"
}

// extractTables collects the lower-cased identifier following each FROM or JOIN
// keyword, deduplicated in first-seen order. Quoted and bare identifiers are
// both recognised; anything else after FROM (such as a subquery paren) simply
// yields no table, which Validate then rejects unless another table was seen.
func extractTables(tokens []token) []string {
	seen := make(map[string]struct{})
	var tables []string
	for i := 0; i < len(tokens)-1; i++ {
		if !tokens[i].isKeyword("from") && !tokens[i].isKeyword("join") {
			continue
		}
		next := tokens[i+1]
		if next.kind != tokenWord && next.kind != tokenQuotedIdent {
			continue
		}
		name := strings.ToLower(next.text)
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			tables = append(tables, name)
		}
	}
	return tables
}
