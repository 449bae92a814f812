package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// verifyFunc structurally verifies a constructed function body before it is
// optimized or emitted: every block must be terminated, returns must agree
// with the function signature, calls must agree with their callee
// signatures, and every operand must be defined before use.
func verifyFunc(fn *ir.Func) error {
	if len(fn.Blocks) == 0 {
		return fmt.Errorf("function has no body")
	}

	for _, block := range fn.Blocks {
		if err := verifyBlock(fn, block); err != nil {
			return err
		}
	}

	return nil
}

func verifyBlock(fn *ir.Func, block *ir.Block) error {
	// Values defined at the top of the block: the function's parameters.
	defined := make(map[value.Value]struct{}, len(fn.Params))
	for _, param := range fn.Params {
		defined[param] = struct{}{}
	}

	for _, inst := range block.Insts {
		for _, operand := range instOperands(inst) {
			if err := verifyOperand(fn, defined, operand); err != nil {
				return err
			}
		}

		switch v := inst.(type) {
		case *ir.InstCall:
			if err := verifyCall(v); err != nil {
				return err
			}
		case *ir.InstAdd:
			if !v.X.Type().Equal(v.Y.Type()) {
				return fmt.Errorf("add operands have mismatched types: %s and %s", v.X.Type(), v.Y.Type())
			}

			if _, ok := v.X.Type().(*types.IntType); !ok {
				return fmt.Errorf("add operands must be integers, got %s", v.X.Type())
			}
		}

		// Instructions without a result (stores and the like) define nothing.
		if v, ok := inst.(value.Value); ok {
			defined[v] = struct{}{}
		}
	}

	return verifyTerm(fn, block, defined)
}

// verifyCall checks a call instruction against its callee's signature.
func verifyCall(call *ir.InstCall) error {
	callee, ok := call.Callee.(*ir.Func)
	if !ok {
		return fmt.Errorf("indirect call through %s", call.Callee)
	}

	sig := callee.Sig
	if sig.Variadic {
		if len(call.Args) < len(sig.Params) {
			return fmt.Errorf("call to `%s` passes %d arguments, expected at least %d",
				callee.Name(), len(call.Args), len(sig.Params))
		}
	} else if len(call.Args) != len(sig.Params) {
		return fmt.Errorf("call to `%s` passes %d arguments, expected %d",
			callee.Name(), len(call.Args), len(sig.Params))
	}

	for i, paramType := range sig.Params {
		if !call.Args[i].Type().Equal(paramType) {
			return fmt.Errorf("call to `%s` passes %s for parameter %d, expected %s",
				callee.Name(), call.Args[i].Type(), i, paramType)
		}
	}

	return nil
}

// verifyTerm checks that a block is terminated and that its terminator
// agrees with the enclosing function's return type.
func verifyTerm(fn *ir.Func, block *ir.Block, defined map[value.Value]struct{}) error {
	switch term := block.Term.(type) {
	case nil:
		return fmt.Errorf("block %q is missing a terminator", block.Name())
	case *ir.TermRet:
		retType := fn.Sig.RetType
		if term.X == nil {
			if !retType.Equal(types.Void) {
				return fmt.Errorf("void return from function returning %s", retType)
			}

			return nil
		}

		if err := verifyOperand(fn, defined, term.X); err != nil {
			return err
		}

		if !term.X.Type().Equal(retType) {
			return fmt.Errorf("return of %s from function returning %s", term.X.Type(), retType)
		}

		return nil
	default:
		// Only straight-line bodies are constructed in this core.
		return fmt.Errorf("unexpected terminator %T in block %q", term, block.Name())
	}
}

// verifyOperand checks that an operand is usable at its point of use: a
// constant, a global, or a value defined earlier in the enclosing function.
func verifyOperand(fn *ir.Func, defined map[value.Value]struct{}, operand value.Value) error {
	switch v := operand.(type) {
	case *ir.Param:
		if _, ok := defined[v]; !ok {
			return fmt.Errorf("operand %s is a parameter of another function", v.Ident())
		}
	case ir.Instruction:
		if _, ok := defined[operand]; !ok {
			return fmt.Errorf("operand %s used before definition", operand.String())
		}
	}

	return nil
}

// instOperands returns the value operands of the instruction kinds the
// backend emits.
func instOperands(inst ir.Instruction) []value.Value {
	switch v := inst.(type) {
	case *ir.InstCall:
		operands := make([]value.Value, 0, len(v.Args)+1)
		operands = append(operands, v.Args...)
		return append(operands, v.Callee)
	case *ir.InstAdd:
		return []value.Value{v.X, v.Y}
	case *ir.InstGetElementPtr:
		operands := make([]value.Value, 0, len(v.Indices)+1)
		operands = append(operands, v.Src)
		for _, index := range v.Indices {
			operands = append(operands, index)
		}
		return operands
	default:
		return nil
	}
}
