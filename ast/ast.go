// Package ast defines the typed declaration tree consumed by the backend.
// The tree is produced by the front-end collaborators (parser + type
// checker): every parameter and expression reaching this package already
// carries a fully resolved type.
package ast

import "crane/report"

// ASTNode is the abstract interface for all AST nodes.
type ASTNode interface {
	// Span returns the text span of the AST node.
	Span() *report.TextSpan
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// Ident represents an identifier together with its source span.
type Ident struct {
	Name string
	Span *report.TextSpan
}
