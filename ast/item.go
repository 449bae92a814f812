package ast

import (
	"crane/report"
	"crane/typing"
)

// Item represents a top-level declaration.
type Item struct {
	// The name the item declares.
	Name Ident

	// The kind of the item.  This is one of FuncDecl, StructDecl, or
	// UnionDecl.
	Kind ItemKind
}

// ItemKind is the interface implemented by all top-level declaration kinds.
type ItemKind interface {
	itemKind()
}

// -----------------------------------------------------------------------------

// FuncDecl is the declaration of a function: the only item kind the backend
// currently lowers.
type FuncDecl struct {
	// The declared parameters of the function in order.
	Params []FuncParam

	// The flat list of statements making up the function body.
	Body []Stmt
}

// FuncParam represents a single declared function parameter.
type FuncParam struct {
	// The name of the parameter.
	Name Ident

	// The resolved type of the parameter.
	Ty typing.Type

	// The span of the parameter declaration.
	Span *report.TextSpan
}

func (*FuncDecl) itemKind() {}

// -----------------------------------------------------------------------------

// StructDecl is the declaration of a struct type.  The backend recognizes
// struct declarations but does not lower them.
type StructDecl struct {
	// The declared fields of the struct in order.
	Fields []FieldDecl
}

// FieldDecl represents a single field of a struct or union variant.
type FieldDecl struct {
	Name Ident
	Ty   typing.Type
}

func (*StructDecl) itemKind() {}

// -----------------------------------------------------------------------------

// UnionDecl is the declaration of a union type.  The backend recognizes
// union declarations but does not lower them.
type UnionDecl struct {
	// The declared variants of the union in order.
	Variants []Variant
}

// Variant represents a single variant of a union.
type Variant struct {
	Name   Ident
	Fields []FieldDecl
}

func (*UnionDecl) itemKind() {}
