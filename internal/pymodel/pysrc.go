// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package pymodel

import (
	"errors"
	"strings"
	"unicode"
)

// logicalLine is one Python statement after joining bracket
// continuations, stripping comments, and collapsing multi-line
// strings. Indent is the column of the first physical line.
type logicalLine struct {
	indent int
	text   string
	num    int
}

var (
	errUnbalancedBrackets = errors.New("unbalanced brackets at end of file")
	errUnterminatedString = errors.New("unterminated string literal")
)

// logicalLines splits Python source into logical lines. Comments are
// removed; physical lines are joined while a bracket pair or a string
// literal remains open, or after a trailing backslash. An open bracket
// or string at end of file is a syntax error.
func logicalLines(src string) ([]logicalLine, error) {
	var lines []logicalLine
	var current strings.Builder

	runes := []rune(src)
	depth := 0
	indent := 0
	startNum := 1
	physical := 1
	started := false

	var inString bool
	var quote rune
	var triple bool

	emit := func() {
		text := strings.TrimSpace(current.String())
		if text != "" {
			lines = append(lines, logicalLine{indent: indent, text: text, num: startNum})
		}
		current.Reset()
		started = false
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if inString {
			current.WriteRune(r)
			switch {
			case r == '\\' && !triple:
				if i+1 < len(runes) {
					current.WriteRune(runes[i+1])
					i++
				}
			case r == '\n':
				physical++
				if !triple {
					return nil, errUnterminatedString
				}
			case r == quote:
				if !triple {
					inString = false
				} else if i+1 < len(runes) && runes[i+1] == quote &&
					i+2 < len(runes) && runes[i+2] == quote {
					current.WriteRune(quote)
					current.WriteRune(quote)
					i += 2
					inString = false
				}
			}
			continue
		}

		switch r {
		case '#':
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
			}
		case '\n':
			physical++
			if depth > 0 {
				current.WriteRune(' ')
			} else {
				emit()
			}
		case '\\':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				physical++
				current.WriteRune(' ')
				i++
			} else {
				current.WriteRune(r)
			}
		case '\'', '"':
			if !started {
				indent, startNum, started = columnOf(runes, i), physical, true
			}
			inString = true
			quote = r
			triple = false
			current.WriteRune(r)
			if i+1 < len(runes) && runes[i+1] == r &&
				i+2 < len(runes) && runes[i+2] == r {
				triple = true
				current.WriteRune(r)
				current.WriteRune(r)
				i += 2
			} else if i+1 < len(runes) && runes[i+1] == r {
				// Empty short string closes immediately.
				current.WriteRune(r)
				i++
				inString = false
			}
		case '(', '[', '{':
			depth++
			markStart(&started, &indent, &startNum, runes, i, physical)
			current.WriteRune(r)
		case ')', ']', '}':
			depth--
			current.WriteRune(r)
		default:
			if !unicode.IsSpace(r) {
				markStart(&started, &indent, &startNum, runes, i, physical)
			}
			if started || !unicode.IsSpace(r) {
				current.WriteRune(r)
			}
		}
	}

	if inString {
		return nil, errUnterminatedString
	}
	if depth != 0 {
		return nil, errUnbalancedBrackets
	}
	emit()
	return lines, nil
}

func markStart(started *bool, indent, startNum *int, runes []rune, i, physical int) {
	if !*started {
		*indent = columnOf(runes, i)
		*startNum = physical
		*started = true
	}
}

// columnOf computes the indent column of position i, counting back to
// the start of its physical line. Tabs advance to the next multiple of
// eight, matching Python's tokenizer.
func columnOf(runes []rune, i int) int {
	start := i
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	col := 0
	for j := start; j < i; j++ {
		if runes[j] == '\t' {
			col = (col/8 + 1) * 8
		} else {
			col++
		}
	}
	return col
}

// isIdentifier reports whether s is a plain Python identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// unquoteString extracts the content of a Python string literal. The
// second return is false when expr is not a recognizable literal.
func unquoteString(expr string) (string, bool) {
	expr = strings.TrimSpace(expr)
	for _, q := range []string{`"""`, "'''"} {
		if strings.HasPrefix(expr, q) && strings.HasSuffix(expr, q) && len(expr) >= 6 {
			return expr[3 : len(expr)-3], true
		}
	}
	for _, q := range []string{`"`, `'`} {
		if strings.HasPrefix(expr, q) && strings.HasSuffix(expr, q) && len(expr) >= 2 {
			return expr[1 : len(expr)-1], true
		}
	}
	return "", false
}

// splitCall decomposes a call-shaped expression into its callee and
// top-level argument texts. ok is false when expr is not a single call.
func splitCall(expr string) (callee string, args []string, ok bool) {
	expr = strings.TrimSpace(expr)
	open := strings.Index(expr, "(")
	if open <= 0 || !strings.HasSuffix(expr, ")") {
		return "", nil, false
	}
	callee = strings.TrimSpace(expr[:open])
	for _, part := range strings.Split(callee, ".") {
		if !isIdentifier(part) {
			return "", nil, false
		}
	}
	interior := expr[open+1 : len(expr)-1]
	return callee, splitTopLevel(interior, ','), true
}

// splitTopLevel splits on sep at zero bracket/paren/brace depth,
// skipping string literals.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	var inString bool
	var quote rune

	for i := 0; i < len(s); i++ {
		r := rune(s[i])

		if inString {
			current.WriteRune(r)
			if r == '\\' && i+1 < len(s) {
				current.WriteByte(s[i+1])
				i++
			} else if r == quote {
				inString = false
			}
			continue
		}

		switch r {
		case '\'', '"':
			inString = true
			quote = r
			current.WriteRune(r)
		case '(', '[', '{':
			depth++
			current.WriteRune(r)
		case ')', ']', '}':
			depth--
			current.WriteRune(r)
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}

	if part := strings.TrimSpace(current.String()); part != "" {
		parts = append(parts, part)
	}
	return parts
}

// indexTopLevel returns the first index of sep at zero depth outside
// strings, or -1.
func indexTopLevel(s string, sep byte) int {
	depth := 0
	var inString bool
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == quote {
				inString = false
			}
			continue
		}
		switch c {
		case '\'', '"':
			inString = true
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
