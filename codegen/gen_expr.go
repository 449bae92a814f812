package codegen

import (
	"fmt"
	"math/big"

	"crane/ast"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr lowers an expression onto the given block and returns the machine
// value it yields.
func (g *Generator) genExpr(block *ir.Block, expr ast.Expr) (value.Value, error) {
	switch v := expr.(type) {
	case *ast.Literal:
		return g.genLiteral(block, v)
	case *ast.Variable:
		return g.genVariable(v)
	case *ast.Call:
		return g.genCall(block, v)
	default:
		return nil, &UnsupportedError{Construct: fmt.Sprintf("%T expressions", expr)}
	}
}

// genVariable resolves a variable reference.  References resolve only
// against the enclosing function's declared parameters: the backend has no
// local variable bindings and no outer scopes.
func (g *Generator) genVariable(v *ast.Variable) (value.Value, error) {
	for _, param := range g.enclosingFunc.Params {
		if param.Name() == v.Name {
			return param, nil
		}
	}

	return nil, &UnresolvedParamError{Name: v.Name}
}

// genCall lowers a function call.  The callee must be a bare name resolving
// to a function in the module symbol table; computed callees are not
// lowerable.  Arguments are lowered left to right and may themselves be
// literals, parameter references, or nested calls.
func (g *Generator) genCall(block *ir.Block, call *ast.Call) (value.Value, error) {
	callee, ok := call.Callee.(*ast.Variable)
	if !ok {
		return nil, &UnsupportedError{Construct: "computed call targets"}
	}

	fn, ok := g.symbols[callee.Name]
	if !ok {
		return nil, &UnresolvedCalleeError{Name: callee.Name}
	}

	args := make([]value.Value, 0, len(call.Args))
	for _, arg := range call.Args {
		llArg, err := g.genExpr(block, arg)
		if err != nil {
			return nil, err
		}

		args = append(args, llArg)
	}

	return block.NewCall(fn, args...), nil
}

// genLiteral lowers a literal constant.
func (g *Generator) genLiteral(block *ir.Block, lit *ast.Literal) (value.Value, error) {
	switch lit.Kind {
	case ast.LitString:
		// The stored lexeme includes its surrounding quote characters.
		text := lit.Text
		if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
			return nil, fmt.Errorf("malformed string literal lexeme: %s", text)
		}

		return g.internString(block, text[1:len(text)-1]), nil
	case ast.LitInteger:
		if lit.IntKind != ast.IntU64 {
			return nil, &UnsupportedError{Construct: "non-u64 integer literals"}
		}

		// The constant carries the literal's full unsigned bit pattern:
		// values with the high bit set are as valid as any other u64.
		return &constant.Int{Typ: types.I64, X: new(big.Int).SetUint64(lit.Value)}, nil
	default:
		return nil, &UnsupportedError{Construct: fmt.Sprintf("literals of kind %d", lit.Kind)}
	}
}

// internString interns a string as a fresh private constant global: a
// null-terminated byte array with internal linkage.  Each occurrence creates
// a new global; no deduplication is performed.  The returned value is the
// address of the array's first byte.
func (g *Generator) internString(block *ir.Block, text string) value.Value {
	glob := g.mod.NewGlobalDef(
		fmt.Sprintf("__strlit.%d", g.globalCounter),
		constant.NewCharArrayFromString(text+"\x00"),
	)
	g.globalCounter++

	glob.Linkage = enum.LinkageInternal
	glob.Immutable = true

	zero := constant.NewInt(types.I32, 0)
	ptr := block.NewGetElementPtr(glob.ContentType, glob, zero, zero)
	ptr.InBounds = true

	return ptr
}
