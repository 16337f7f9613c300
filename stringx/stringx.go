package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToArray splits a comma-separated list, trims whitespace
// from each element and drops empty elements.
func ToArray(commaSeparated string) []string {
	var out []string

	for _, part := range strings.Split(commaSeparated, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

// ContainsWord reports whether word occurs in s as a whole
// word, bounded by the string edges or by characters that
// are neither letters, digits nor underscores. An empty
// word never matches.
func ContainsWord(s, word string) bool {
	if word == "" {
		return false
	}

	for rest, base := s, 0; ; {
		idx := strings.Index(rest, word)
		if idx < 0 {
			return false
		}

		start := base + idx
		end := start + len(word)

		if isBoundary(s, start, true) && isBoundary(s, end, false) {
			return true
		}

		// Resume one byte past the match start; word may
		// overlap itself.
		base = start + 1
		rest = s[base:]
	}
}

func isBoundary(s string, pos int, before bool) bool {
	if before {
		if pos == 0 {
			return true
		}

		r, _ := utf8.DecodeLastRuneInString(s[:pos])

		return !isWordRune(r)
	}

	if pos >= len(s) {
		return true
	}

	r, _ := utf8.DecodeRuneInString(s[pos:])

	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// sqlEscaper doubles single quotes and backslash-escapes
// the characters MySQL-style string literals cannot carry
// raw.
var sqlEscaper = strings.NewReplacer(
	`'`, `''`,
	`\`, `\\`,
	"\x00", `\0`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1a", `\Z`,
)

// EscapeSQL escapes s for use inside a single-quoted SQL
// string literal.
func EscapeSQL(s string) string {
	return sqlEscaper.Replace(s)
}

// QuoteSQL escapes s and wraps it in single quotes.
func QuoteSQL(s string) string {
	return "'" + EscapeSQL(s) + "'"
}
