package ast

// Stmt is the interface implemented by all statement nodes.
type Stmt interface {
	ASTNode
	stmtNode()
}

// ExprStmt is a statement consisting of a single expression whose value is
// discarded.
type ExprStmt struct {
	ASTBase

	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// ItemStmt is a top-level item nested inside a function body.  Nested items
// are not supported by the backend and always fail lowering.
type ItemStmt struct {
	ASTBase

	Item Item
}

func (*ItemStmt) stmtNode() {}
