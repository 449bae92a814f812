// Package codegen converts the Crane typed declaration tree into an LLVM
// module.  It owns the module symbol table, synthesizes the runtime prelude,
// lowers each user function, and verifies and optimizes every function body
// it constructs.
package codegen

import (
	"crane/ast"

	"github.com/llir/llvm/ir"
)

// Generator is responsible for converting a typed declaration tree into an
// LLVM module.  One generator compiles exactly one module: its builder state
// is torn down with it after emission.
type Generator struct {
	// mod is the LLVM module being generated.
	mod *ir.Module

	// symbols maps callable names to their compiled functions.  It is
	// populated with the runtime prelude first so that call resolution always
	// finds the builtins, then with user function declarations.
	symbols map[string]*ir.Func

	// malloc is the libc allocator binding used by `int_to_string`.  It is
	// kept off the symbol table: user programs cannot call it directly.
	malloc *ir.Func

	// declared maps user function declarations to the functions pass 1
	// successfully declared for them.  Bodies are only lowered for
	// declarations present here.
	declared map[*ast.FuncDecl]*ir.Func

	// enclosingFunc is the function whose body is currently being lowered.
	// Variable references resolve against its parameters and nothing else.
	enclosingFunc *ir.Func

	// globalCounter is a counter used to name anonymous globals such as
	// interned string literals.
	globalCounter int

	// errors is the list of lowering errors collected so far.  Lowering
	// continues past individual failures so that all errors can be reported
	// in one compilation.
	errors []LoweringError
}

// NewGenerator creates a new generator for a module with the given name and
// synthesizes the runtime prelude into it.
func NewGenerator(modName string) *Generator {
	g := &Generator{
		mod:      ir.NewModule(),
		symbols:  make(map[string]*ir.Func),
		declared: make(map[*ast.FuncDecl]*ir.Func),
	}
	g.mod.SourceFilename = modName

	g.buildPrelude()

	return g
}

// Module returns the LLVM module being generated.
func (g *Generator) Module() *ir.Module {
	return g.mod
}

// Compile lowers the given typed declaration tree into the module.  It
// returns every lowering error encountered; an empty slice means the module
// is fully built and verified.
//
// Lowering is two-pass: all user function signatures are declared into the
// symbol table first, then all bodies are lowered.  Declaration order
// therefore never matters -- forward references and mutual recursion both
// resolve.
func (g *Generator) Compile(items []ast.Item) []LoweringError {
	// Pass 1: declare every user function signature.
	for _, item := range items {
		if fd, ok := item.Kind.(*ast.FuncDecl); ok {
			g.declareFunc(item.Name.Name, fd)
		}
	}

	// Pass 2: lower every function body.  Struct and union declarations are
	// recognized but not lowered.
	for _, item := range items {
		if fd, ok := item.Kind.(*ast.FuncDecl); ok {
			g.genFuncBody(item.Name.Name, fd)
		}
	}

	return g.errors
}

// errorIn records a lowering error in the named function.
func (g *Generator) errorIn(funcName string, err error) {
	g.errors = append(g.errors, LoweringError{FuncName: funcName, Err: err})
}
