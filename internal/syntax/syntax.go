// Package syntax holds the low-level pieces of the utility-class grammar
// shared by the modifier tokenizer and the category parsers: depth-aware
// splitting, bracket and custom-property unwrapping, and the underscore
// encoding used inside arbitrary values.
package syntax

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SplitTopLevel splits s on sep wherever sep appears outside of square
// brackets and parentheses.
func SplitTopLevel(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
			continue
		case ']', ')':
			if depth > 0 {
				depth--
			}
			continue
		case '\\':
			i++
			continue
		}
		if depth == 0 && strings.HasPrefix(s[i:], sep) {
			parts = append(parts, s[start:i])
			start = i + len(sep)
			i += len(sep) - 1
		}
	}
	return append(parts, s[start:])
}

// LastTopLevel returns the index of the last top-level occurrence of b, or -1.
func LastTopLevel(s string, b byte) int {
	depth, idx := 0, -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case b:
			if depth == 0 {
				idx = i
			}
		}
	}
	return idx
}

// Balanced reports whether every bracket and parenthesis in s is closed in
// the right order.
func Balanced(s string) bool {
	var stack []byte
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			i++
		case '[', '(':
			stack = append(stack, c)
		case ']', ')':
			if len(stack) == 0 {
				return false
			}
			open := stack[len(stack)-1]
			if (c == ']' && open != '[') || (c == ')' && open != '(') {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

// Bracketed returns the inside of "[...]" when s is exactly one balanced
// bracket group with non-empty content.
func Bracketed(s string) (string, bool) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if !Balanced(inner) {
		return "", false
	}
	return inner, true
}

// CustomProperty returns "--name" for the shorthand "(--name)".
func CustomProperty(s string) (string, bool) {
	if len(s) < 5 || s[0] != '(' || s[len(s)-1] != ')' {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if !strings.HasPrefix(inner, "--") || len(inner) == 2 || !Balanced(inner) {
		return "", false
	}
	return inner, true
}

// Decode turns an arbitrary value as written in a class into CSS text:
// underscores become spaces, "\_" is a literal underscore. Underscores
// inside url() are kept.
func Decode(s string) string {
	if !strings.ContainsAny(s, "_\\") {
		return s
	}
	var b strings.Builder
	inURL := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case c == '_' && inURL == 0:
			b.WriteByte(' ')
		default:
			if strings.HasPrefix(s[i:], "url(") {
				inURL++
			} else if c == ')' && inURL > 0 {
				inURL--
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Encode is the inverse of Decode.
func Encode(s string) string {
	if !strings.ContainsAny(s, " _") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			b.WriteByte('_')
		case '_':
			b.WriteString(`\_`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// WellFormed reports whether value lexes as a sequence of CSS component
// values with balanced blocks and no bad strings or urls.
func WellFormed(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	lexer := css.NewLexer(parse.NewInputString(value))
	depth := 0
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return lexer.Err() == io.EOF && depth == 0
		case css.BadStringToken, css.BadURLToken:
			return false
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
}

// Ident reports whether s is a non-empty run of [a-z0-9-].
func Ident(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}
