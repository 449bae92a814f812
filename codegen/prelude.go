package codegen

import (
	"crane/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

// Names of the prelude symbols every Crane program may call without
// declaring them.
const (
	PutsName        = "puts"
	PrintfName      = "printf"
	SprintfName     = "sprintf"
	PrintName       = "print"
	PrintlnName     = "println"
	IntAddName      = "int_add"
	IntToStringName = "int_to_string"
)

// intToStringBufSize is the size of the buffer `int_to_string` allocates:
// enough for the 20 digits of the largest 64-bit value, a sign, and the
// terminator.
const intToStringBufSize = 22

// buildPrelude populates the module with the fixed set of builtins before
// any user function is lowered, so that call resolution below always finds
// them.  Builtins with bodies are verified and optimized immediately; a
// failure there is a backend bug, not a user error.
func (g *Generator) buildPrelude() {
	// External C runtime bindings: no bodies are generated for these.
	puts := g.mod.NewFunc(PutsName, types.I32, ir.NewParam("s", types.I8Ptr))
	g.symbols[PutsName] = puts

	printf := g.mod.NewFunc(PrintfName, types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true
	g.symbols[PrintfName] = printf

	sprintf := g.mod.NewFunc(SprintfName, types.I32,
		ir.NewParam("buf", types.I8Ptr),
		ir.NewParam("format", types.I8Ptr))
	sprintf.Sig.Variadic = true
	g.symbols[SprintfName] = sprintf

	g.malloc = g.mod.NewFunc("malloc", types.I8Ptr, ir.NewParam("size", types.I64))

	// Backend-native builtins lowered directly as instructions.
	g.buildPrint(printf)
	g.buildPrintln(puts)
	g.buildIntAdd()
	g.buildIntToString(sprintf)
}

// buildPrint synthesizes `print`: a positional-format printf call with no
// trailing newline.
func (g *Generator) buildPrint(printf *ir.Func) {
	fn := g.mod.NewFunc(PrintName, types.Void, ir.NewParam("s", types.I8Ptr))
	entry := fn.NewBlock("entry")

	format := g.internString(entry, "%1$s")
	entry.NewCall(printf, format, fn.Params[0])
	entry.NewRet(nil)

	g.finishBuiltin(fn)
	g.symbols[PrintName] = fn
}

// buildPrintln synthesizes `println`: its argument is forwarded to `puts`,
// which appends the newline.
func (g *Generator) buildPrintln(puts *ir.Func) {
	fn := g.mod.NewFunc(PrintlnName, types.Void, ir.NewParam("s", types.I8Ptr))
	entry := fn.NewBlock("entry")

	entry.NewCall(puts, fn.Params[0])
	entry.NewRet(nil)

	g.finishBuiltin(fn)
	g.symbols[PrintlnName] = fn
}

// buildIntAdd synthesizes `int_add`: a single add over its two parameters.
func (g *Generator) buildIntAdd() {
	fn := g.mod.NewFunc(IntAddName, types.I64,
		ir.NewParam("lhs", types.I64),
		ir.NewParam("rhs", types.I64))
	entry := fn.NewBlock("entry")

	sum := entry.NewAdd(fn.Params[0], fn.Params[1])
	entry.NewRet(sum)

	g.finishBuiltin(fn)
	g.symbols[IntAddName] = fn
}

// buildIntToString synthesizes `int_to_string`: a heap buffer filled by a
// positional-format sprintf call.  The buffer is never freed; compiled
// programs are short-lived one-shot executables, so the allocation is leaked
// for the process lifetime.
func (g *Generator) buildIntToString(sprintf *ir.Func) {
	fn := g.mod.NewFunc(IntToStringName, types.I8Ptr, ir.NewParam("value", types.I64))
	entry := fn.NewBlock("entry")

	buf := entry.NewCall(g.malloc, constant.NewInt(types.I64, intToStringBufSize))
	format := g.internString(entry, "%1$d")
	entry.NewCall(sprintf, buf, format, fn.Params[0])
	entry.NewRet(buf)

	g.finishBuiltin(fn)
	g.symbols[IntToStringName] = fn
}

// finishBuiltin verifies and optimizes a freshly synthesized builtin.
func (g *Generator) finishBuiltin(fn *ir.Func) {
	if err := verifyFunc(fn); err != nil {
		report.ReportICE("built-in `%s` failed verification: %s", fn.Name(), err)
	}

	instCombine(fn)
}
