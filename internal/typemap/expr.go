// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

// Package typemap parses Python type-annotation text into a typed
// expression tree and maps it to Swift type spellings.
package typemap

// Expr is a parsed type-annotation expression. Exactly one concrete
// variant applies per node; precedence between variants is decided
// once, in Parse, never re-inferred from text.
type Expr interface {
	isExpr()
}

// Primitive is a spelling with a direct entry in the Swift type table,
// e.g. "str" or "datetime.datetime".
type Primitive struct {
	Name string
}

// Optional wraps an element that may be absent: Optional[T] or
// Union[T, None]. A nil Elem means the element type is unknown.
type Optional struct {
	Elem Expr
}

// List is an ordered container. A nil Elem means the element type was
// not declared and defaults to the wildcard.
type List struct {
	Elem Expr
}

// Dict is an associative container. Nil slots default to wildcards.
type Dict struct {
	Key   Expr
	Value Expr
}

// Literal is a Literal[...] value set. The values are carried for
// diagnostics but collapse to a plain string on mapping.
type Literal struct {
	Values []string
}

// Reference is a name with no table entry, treated as a forward
// reference to another generated declaration. Name keeps the original
// spelling, including dotted qualifiers.
type Reference struct {
	Name string
}

// Union is a union with two or more non-none alternatives. It has no
// defined Swift mapping and passes through as its raw spelling.
type Union struct {
	Alts []Expr
	Raw  string
}

func (Primitive) isExpr() {}
func (Optional) isExpr()  {}
func (List) isExpr()      {}
func (Dict) isExpr()      {}
func (Literal) isExpr()   {}
func (Reference) isExpr() {}
func (Union) isExpr()     {}
