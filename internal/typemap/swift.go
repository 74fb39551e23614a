// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package typemap

import (
	"strings"
	"unicode"
)

// wildcard is the permissive element type used when a container's
// argument cannot be determined.
const wildcard = "Any"

// swiftTypes maps primitive and well-known Python spellings to Swift.
var swiftTypes = map[string]string{
	"str":   "String",
	"int":   "Int",
	"float": "Double",
	"bool":  "Bool",
	"bytes": "Data",

	"datetime.datetime": "Date",
	"datetime.date":     "Date",
	"datetime.time":     "Date", // Swift has no separate time-of-day type

	"EmailStr":                "String",
	"pydantic.EmailStr":       "String",
	"pydantic.types.EmailStr": "String",
	"HttpUrl":                 "String",
	"pydantic.HttpUrl":        "String",
	"AnyUrl":                  "String",
	"pydantic.AnyUrl":         "String",
	"uuid.UUID":               "String",
	"UUID":                    "String",

	"set": "Set",
}

// swiftImports maps Swift spellings to the module they require.
var swiftImports = map[string]string{
	"Date": "Foundation",
	"Data": "Foundation",
	"UUID": "Foundation",
}

// Map resolves a source type expression to its Swift spelling and the
// imports that spelling needs. It is total: every input returns a
// best-effort, non-empty spelling. genericArgs, when non-empty,
// supplies the arguments for a bare container spelling ("list",
// "dict") that carries none of its own.
//
// Imports are accumulated, not deduplicated; deduplication belongs to
// the generator.
func Map(typeText string, genericArgs []string) (string, []string) {
	expr := Parse(typeText)

	// A bare container annotated separately from its arguments picks
	// them up here.
	if len(genericArgs) > 0 {
		switch e := expr.(type) {
		case List:
			if e.Elem == nil {
				expr = List{Elem: Parse(genericArgs[0])}
			}
		case Dict:
			if e.Key == nil && e.Value == nil {
				d := Dict{Key: Parse(genericArgs[0])}
				if len(genericArgs) > 1 {
					d.Value = Parse(genericArgs[1])
				}
				expr = d
			}
		}
	}

	return MapExpr(expr)
}

// MapExpr maps a parsed expression tree to Swift by recursive descent.
// A nil expression maps to the wildcard.
func MapExpr(expr Expr) (string, []string) {
	switch e := expr.(type) {
	case nil:
		return wildcard, nil

	case Optional:
		inner, imports := MapExpr(e.Elem)
		// Exactly one optionality marker, even for Optional[Optional[T]].
		if strings.HasSuffix(inner, "?") {
			return inner, imports
		}
		return inner + "?", imports

	case List:
		elem, imports := MapExpr(e.Elem)
		return "[" + elem + "]", imports

	case Dict:
		// A missing key slot defaults to String rather than the
		// wildcard: Swift dictionary keys must be Hashable.
		key, imports := "String", []string(nil)
		if e.Key != nil {
			key, imports = MapExpr(e.Key)
		}
		value, valueImports := MapExpr(e.Value)
		return "[" + key + ": " + value + "]", append(imports, valueImports...)

	case Literal:
		// The value set is discarded; literals flatten to strings.
		return "String", nil

	case Primitive:
		swift := swiftTypes[e.Name]
		if module, ok := swiftImports[swift]; ok {
			return swift, []string{module}
		}
		return swift, nil

	case Reference:
		return lastSegment(e.Name), nil

	case Union:
		// No defined mapping; pass the raw spelling through.
		return lastSegment(e.Raw), nil
	}

	return wildcard, nil
}

// ImportsForSpelling returns the modules a Swift type spelling needs,
// matching whole identifier tokens against the import table so nested
// container spellings and optional markers resolve, while names that
// merely contain an importable spelling ("UpdateRecord") do not.
func ImportsForSpelling(spelling string) []string {
	var imports []string
	tokens := strings.FieldsFunc(spelling, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, token := range tokens {
		if module, ok := swiftImports[token]; ok {
			imports = append(imports, module)
		}
	}
	return imports
}

// References collects the forward-reference names in an expression
// tree, reduced to their final dotted segment, in traversal order.
func References(expr Expr) []string {
	switch e := expr.(type) {
	case Reference:
		return []string{lastSegment(e.Name)}
	case Optional:
		return References(e.Elem)
	case List:
		return References(e.Elem)
	case Dict:
		return append(References(e.Key), References(e.Value)...)
	case Union:
		var refs []string
		for _, alt := range e.Alts {
			refs = append(refs, References(alt)...)
		}
		return refs
	}
	return nil
}

// lastSegment reduces a dotted name to its final segment, the assumed
// name of a generated declaration in the same output package.
func lastSegment(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
