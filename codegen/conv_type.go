package codegen

import (
	"crane/typing"

	"github.com/llir/llvm/ir/types"
)

// convType maps a resolved Crane type to the machine value representation
// used for parameters and returns.  Only a fixed allow-list of prelude named
// types is currently mappable; anything else is a configuration fault of the
// front end and fails lowering.
func (g *Generator) convType(typ typing.Type) (types.Type, error) {
	switch v := typ.(type) {
	case typing.NamedType:
		switch {
		case typing.Equals(v, typing.StringType):
			return types.I8Ptr, nil
		case typing.Equals(v, typing.Uint64Type):
			return types.I64, nil
		default:
			return nil, &UnknownTypeError{Ty: v}
		}
	case *typing.FuncType:
		return nil, &UnsupportedError{Construct: "function-typed parameters"}
	default:
		return nil, &UnknownTypeError{Ty: typ}
	}
}
