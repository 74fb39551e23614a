// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package typemap

import "strings"

// noneSpellings are the union alternatives that signal optionality.
var noneSpellings = map[string]bool{
	"None":       true,
	"NoneType":   true,
	"type(None)": true,
}

// Parse converts type-annotation text into an expression tree. It is
// total: any input, including malformed bracket syntax, produces a
// best-effort tree. An empty string parses to nil.
func Parse(typeText string) Expr {
	s := strings.TrimSpace(typeText)
	if s == "" {
		return nil
	}

	head, args, bracketed := splitBracketed(s)
	if !bracketed {
		switch s {
		case "list", "List":
			return List{}
		case "dict", "Dict":
			return Dict{}
		}
		if _, ok := swiftTypes[s]; ok {
			return Primitive{Name: s}
		}
		return Reference{Name: s}
	}

	switch head {
	case "Optional":
		if len(args) == 0 {
			return Optional{}
		}
		return Optional{Elem: Parse(args[0])}
	case "Union":
		return parseUnion(s, args)
	case "List", "list":
		if len(args) == 0 {
			return List{}
		}
		return List{Elem: Parse(args[0])}
	case "Dict", "dict":
		d := Dict{}
		if len(args) > 0 {
			d.Key = Parse(args[0])
		}
		if len(args) > 1 {
			d.Value = Parse(args[1])
		}
		return d
	case "Literal":
		return Literal{Values: args}
	}

	// Unknown generic head: keep the whole spelling as a reference.
	return Reference{Name: s}
}

// parseUnion separates none-alternatives from real ones. Exactly one
// real alternative is optionality; anything else is an opaque union.
func parseUnion(raw string, args []string) Expr {
	var alts []string
	for _, a := range args {
		if !noneSpellings[a] {
			alts = append(alts, a)
		}
	}
	switch len(alts) {
	case 0:
		return Optional{}
	case 1:
		return Optional{Elem: Parse(alts[0])}
	}

	parsed := make([]Expr, len(alts))
	for i, a := range alts {
		parsed[i] = Parse(a)
	}
	return Union{Alts: parsed, Raw: raw}
}

// splitBracketed splits "Head[interior]" into the head and its
// top-level arguments. Returns bracketed=false when the text has no
// wrapping bracket pair or the brackets are unbalanced.
func splitBracketed(s string) (head string, args []string, bracketed bool) {
	open := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if open < 0 || end < open || end != len(s)-1 {
		return "", nil, false
	}
	return s[:open], SplitArgs(s[open+1 : end]), true
}

// SplitArgs splits a generic-argument list on top-level commas,
// tracking bracket depth so nested brackets are never split. It
// handles arbitrary nesting depth.
func SplitArgs(interior string) []string {
	var args []string
	var current strings.Builder
	depth := 0

	for _, r := range interior {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
		}
		current.WriteRune(r)
	}

	if arg := strings.TrimSpace(current.String()); arg != "" {
		args = append(args, arg)
	}
	return args
}

// ExtractArgs returns the top-level generic arguments of a type
// spelling, locating the first '[' and its matching final ']'. Text
// without a bracket pair yields nil.
func ExtractArgs(typeText string) []string {
	open := strings.Index(typeText, "[")
	end := strings.LastIndex(typeText, "]")
	if open < 0 || end < open {
		return nil
	}
	return SplitArgs(typeText[open+1 : end])
}
