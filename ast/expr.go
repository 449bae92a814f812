package ast

import "crane/typing"

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	ASTNode

	// Type is the resolved type yielded by the expression.
	Type() typing.Type
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase

	typ typing.Type
}

// NewExprBase creates a new expression base with the given resolved type.
func NewExprBase(typ typing.Type) ExprBase {
	return ExprBase{typ: typ}
}

func (eb *ExprBase) Type() typing.Type {
	return eb.typ
}

// -----------------------------------------------------------------------------

// Variable represents a reference to a name: a parameter of the enclosing
// function or, in callee position, a function in the module.
type Variable struct {
	ExprBase

	Name string
}

// Call represents a function call.
type Call struct {
	ExprBase

	// The callee expression.  The backend only supports bare names here.
	Callee Expr

	// The argument expressions in order.
	Args []Expr
}

// -----------------------------------------------------------------------------

// LitKind enumerates the kinds of literals.
type LitKind int

const (
	LitString  LitKind = iota // A string literal.
	LitInteger                // An integer literal.
)

// IntKind enumerates the width and signedness combinations an integer
// literal may carry.  Only unsigned 64-bit integers are currently lowerable.
type IntKind int

const (
	IntU64 IntKind = iota
	IntI64
	IntU32
	IntI32
)

// Literal represents a literal constant.
type Literal struct {
	ExprBase

	// The kind of the literal.
	Kind LitKind

	// The raw lexeme of the literal as stored by the tokenizer.  For string
	// literals this includes the surrounding quote characters.
	Text string

	// The value of an integer literal.  Unused for string literals.
	Value uint64

	// The width and signedness of an integer literal.  Unused for string
	// literals.
	IntKind IntKind
}
