package codegen

import (
	"strings"
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

func TestInstCombineFoldsConstantAdd(t *testing.T) {
	fn := ir.NewFunc("f", types.I64)
	entry := fn.NewBlock("entry")
	sum := entry.NewAdd(constant.NewInt(types.I64, 20), constant.NewInt(types.I64, 22))
	entry.NewRet(sum)

	instCombine(fn)

	if len(entry.Insts) != 0 {
		t.Errorf("expected the constant add to be folded away, %d instructions remain", len(entry.Insts))
	}
	if !strings.Contains(fn.LLString(), "ret i64 42") {
		t.Errorf("expected the folded constant to be returned:\n%s", fn.LLString())
	}
}

func TestInstCombineFoldsChainedAdds(t *testing.T) {
	fn := ir.NewFunc("f", types.I64)
	entry := fn.NewBlock("entry")
	a := entry.NewAdd(constant.NewInt(types.I64, 1), constant.NewInt(types.I64, 2))
	b := entry.NewAdd(a, constant.NewInt(types.I64, 3))
	entry.NewRet(b)

	instCombine(fn)

	if !strings.Contains(fn.LLString(), "ret i64 6") {
		t.Errorf("expected chained adds to fold to 6:\n%s", fn.LLString())
	}
}

func TestInstCombineKeepsNonConstantAdd(t *testing.T) {
	fn := ir.NewFunc("f", types.I64, ir.NewParam("x", types.I64))
	entry := fn.NewBlock("entry")
	sum := entry.NewAdd(fn.Params[0], constant.NewInt(types.I64, 1))
	entry.NewRet(sum)

	instCombine(fn)

	if len(entry.Insts) != 1 {
		t.Errorf("expected the add over a parameter to survive, got %d instructions", len(entry.Insts))
	}
}

func TestInstCombineRemovesDeadInstructions(t *testing.T) {
	fn := ir.NewFunc("f", types.Void, ir.NewParam("x", types.I64))
	entry := fn.NewBlock("entry")
	entry.NewAdd(fn.Params[0], fn.Params[0]) // result never used
	entry.NewRet(nil)

	instCombine(fn)

	if len(entry.Insts) != 0 {
		t.Errorf("expected the dead add to be removed, got %d instructions", len(entry.Insts))
	}
}

func TestInstCombineKeepsCalls(t *testing.T) {
	callee := ir.NewFunc("effectful", types.I64)

	fn := ir.NewFunc("f", types.Void)
	entry := fn.NewBlock("entry")
	entry.NewCall(callee) // result unused, but calls may have side effects
	entry.NewRet(nil)

	instCombine(fn)

	if len(entry.Insts) != 1 {
		t.Errorf("expected the unused call to survive, got %d instructions", len(entry.Insts))
	}
}

func TestInstCombineKeepsStores(t *testing.T) {
	fn := ir.NewFunc("f", types.Void, ir.NewParam("p", types.NewPointer(types.I64)))
	entry := fn.NewBlock("entry")
	entry.NewStore(constant.NewInt(types.I64, 1), fn.Params[0])
	entry.NewRet(nil)

	instCombine(fn)

	if len(entry.Insts) != 1 {
		t.Errorf("expected the store to survive dead code removal, got %d instructions", len(entry.Insts))
	}
}

func TestInstCombineWrapsOnOverflow(t *testing.T) {
	fn := ir.NewFunc("f", types.I64)
	entry := fn.NewBlock("entry")
	// -1 + 2 wraps around zero in two's complement.
	sum := entry.NewAdd(constant.NewInt(types.I64, -1), constant.NewInt(types.I64, 2))
	entry.NewRet(sum)

	instCombine(fn)

	if !strings.Contains(fn.LLString(), "ret i64 1") {
		t.Errorf("expected wrapping arithmetic:\n%s", fn.LLString())
	}
}
