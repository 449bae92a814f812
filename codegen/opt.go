package codegen

import (
	"math/big"

	"fortio.org/safecast"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"
)

// instCombine runs a small instruction-combining pass over a verified
// function: integer adds of two constants are folded into constants, and
// pure instructions left without uses are removed.
func instCombine(fn *ir.Func) {
	for _, block := range fn.Blocks {
		combineBlock(block)
	}
}

func combineBlock(block *ir.Block) {
	// Maps folded instructions to their replacement constants.
	replaced := make(map[value.Value]value.Value)

	var kept []ir.Instruction
	for _, inst := range block.Insts {
		rewriteOperands(inst, replaced)

		if add, ok := inst.(*ir.InstAdd); ok {
			if folded, ok := foldAdd(add); ok {
				replaced[add] = folded
				continue
			}
		}

		kept = append(kept, inst)
	}

	if ret, ok := block.Term.(*ir.TermRet); ok && ret.X != nil {
		ret.X = resolveValue(ret.X, replaced)
	}

	block.Insts = removeDeadInsts(kept, block.Term)
}

// foldAdd folds an integer add of two constants.  Arithmetic wraps modulo
// the operand width, matching the instruction it replaces.
func foldAdd(add *ir.InstAdd) (constant.Constant, bool) {
	x, okX := add.X.(*constant.Int)
	y, okY := add.Y.(*constant.Int)
	if !okX || !okY {
		return nil, false
	}

	sum := new(big.Int).Add(x.X, y.X)
	mod := new(big.Int).Lsh(big.NewInt(1), safecast.MustConvert[uint](x.Typ.BitSize))
	sum.Mod(sum, mod)

	return &constant.Int{Typ: x.Typ, X: sum}, true
}

// rewriteOperands redirects an instruction's operands through the
// replacement map.
func rewriteOperands(inst ir.Instruction, replaced map[value.Value]value.Value) {
	switch v := inst.(type) {
	case *ir.InstCall:
		for i, arg := range v.Args {
			v.Args[i] = resolveValue(arg, replaced)
		}
	case *ir.InstAdd:
		v.X = resolveValue(v.X, replaced)
		v.Y = resolveValue(v.Y, replaced)
	case *ir.InstGetElementPtr:
		v.Src = resolveValue(v.Src, replaced)
		for i, index := range v.Indices {
			v.Indices[i] = resolveValue(index, replaced)
		}
	}
}

func resolveValue(v value.Value, replaced map[value.Value]value.Value) value.Value {
	for {
		repl, ok := replaced[v]
		if !ok {
			return v
		}

		v = repl
	}
}

// removeDeadInsts removes pure instructions whose results are never used.
// Calls are always kept: they may have side effects.
func removeDeadInsts(insts []ir.Instruction, term ir.Terminator) []ir.Instruction {
	used := make(map[value.Value]struct{})
	if ret, ok := term.(*ir.TermRet); ok && ret.X != nil {
		used[ret.X] = struct{}{}
	}

	// Walk backwards so that a dead instruction's operands are not kept
	// alive by the dead instruction itself.
	var keptRev []ir.Instruction
	for i := len(insts) - 1; i >= 0; i-- {
		inst := insts[i]

		if v, ok := inst.(value.Value); ok && isPureInst(inst) {
			if _, live := used[v]; !live {
				continue
			}
		}

		for _, operand := range instOperands(inst) {
			used[operand] = struct{}{}
		}

		keptRev = append(keptRev, inst)
	}

	kept := make([]ir.Instruction, 0, len(keptRev))
	for i := len(keptRev) - 1; i >= 0; i-- {
		kept = append(kept, keptRev[i])
	}

	return kept
}

func isPureInst(inst ir.Instruction) bool {
	switch inst.(type) {
	case *ir.InstAdd, *ir.InstGetElementPtr:
		return true
	default:
		return false
	}
}
