package sqlguard

import "strings"

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenQuotedIdent
	tokenString
	tokenSymbol
)

type token struct {
	kind tokenKind
	text string
}

func (t token) isKeyword(kw string) bool {
	return t.kind == tokenWord && strings.EqualFold(t.text, kw)
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// tokenize splits a statement into words, quoted identifiers, string
// literals and single-character symbols. Line and block comments are
// consumed and discarded so their contents can neither smuggle a table name
// past the allow-list nor trip the keyword check.
func tokenize(sql string) []token {
	var tokens []token
	i := 0
	for i < len(sql) {
		b := sql[i]
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			i++
		case b == '-' && i+1 < len(sql) && sql[i+1] == '-':
			for i < len(sql) && sql[i] != '\n' {
				i++
			}
		case b == '/' && i+1 < len(sql) && sql[i+1] == '*':
			i += 2
			for i+1 < len(sql) && !(sql[i] == '*' && sql[i+1] == '/') {
				i++
			}
			i += 2
		case b == '\'':
			start := i
			i++
			for i < len(sql) {
				if sql[i] == '\'' {
					// doubled quote is an escaped quote inside the literal
					if i+1 < len(sql) && sql[i+1] == '\'' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
			tokens = append(tokens, token{kind: tokenString, text: sql[start:min(i, len(sql))]})
		case b == '"':
			start := i + 1
			i++
			for i < len(sql) && sql[i] != '"' {
				i++
			}
			tokens = append(tokens, token{kind: tokenQuotedIdent, text: sql[start:min(i, len(sql))]})
			if i < len(sql) {
				i++
			}
		case isWordByte(b):
			start := i
			for i < len(sql) && isWordByte(sql[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenWord, text: sql[start:i]})
		default:
			tokens = append(tokens, token{kind: tokenSymbol, text: string(b)})
			i++
		}
	}
	return tokens
}
