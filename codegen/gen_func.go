package codegen

import (
	"crane/ast"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// declareFunc computes the machine signature for a user function and
// declares it into the module and symbol table.  Bodies are not lowered
// here: declaring every signature first is what lets call sites resolve
// functions declared later in the source, including mutually recursive ones.
func (g *Generator) declareFunc(name string, fd *ast.FuncDecl) {
	if _, ok := g.symbols[name]; ok {
		g.errorIn(name, &DuplicateSymbolError{Name: name})
		return
	}

	params := make([]*ir.Param, 0, len(fd.Params))
	declOK := true
	for _, param := range fd.Params {
		llType, err := g.convType(param.Ty)
		if err != nil {
			g.errorIn(name, err)
			declOK = false
			continue
		}

		// Machine parameters are bound to the declared parameter names at
		// the same index.
		params = append(params, ir.NewParam(param.Name.Name, llType))
	}

	if !declOK {
		return
	}

	// `main` is special-cased to return the process exit code; every other
	// function returns no value.
	retType := types.Type(types.Void)
	if name == "main" {
		retType = types.I32
	}

	fn := g.mod.NewFunc(name, retType, params...)
	fn.Linkage = enum.LinkageExternal

	g.symbols[name] = fn
	g.declared[fd] = fn
}

// genFuncBody lowers the body of a previously declared user function and
// then verifies and optimizes it.  Functions whose declaration failed are
// skipped; their errors were already recorded.
func (g *Generator) genFuncBody(name string, fd *ast.FuncDecl) {
	fn, ok := g.declared[fd]
	if !ok {
		return
	}

	g.enclosingFunc = fn
	defer func() { g.enclosingFunc = nil }()

	// A body is a flat statement list: no control flow constructs exist in
	// this core, so a single entry block suffices.
	entry := fn.NewBlock("entry")

	hadErrors := len(g.errors)
	for _, stmt := range fd.Body {
		switch v := stmt.(type) {
		case *ast.ExprStmt:
			// Lower the expression and discard its result.
			if _, err := g.genExpr(entry, v.Expr); err != nil {
				g.errorIn(name, err)
			}
		case *ast.ItemStmt:
			g.errorIn(name, &UnsupportedError{Construct: "nested item declarations"})
		}
	}

	if name == "main" {
		entry.NewRet(constant.NewInt(types.I32, 0))
	} else {
		entry.NewRet(nil)
	}

	// Only verify and optimize bodies that lowered cleanly; a body with
	// recorded errors already fails the compilation.
	if len(g.errors) > hadErrors {
		return
	}

	if err := verifyFunc(fn); err != nil {
		g.errorIn(name, &VerifyError{FuncName: name, Inner: err})
		return
	}

	instCombine(fn)
}
