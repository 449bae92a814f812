// Package typing defines the resolved type model consumed by the backend.
// Every parameter and expression reaching the backend carries one of these
// types: the backend performs no inference of its own.
package typing

import "strings"

// Type is the parent interface for all resolved Crane types.
type Type interface {
	// Repr returns a representative string of the type for purposes of error
	// reporting.
	Repr() string

	// equals is the internal, type-specific implementation of Equals.  It
	// should never be called directly except by Equals.
	equals(Type) bool
}

// Equals returns whether two types are structurally equal.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// NamedType represents a user-defined nominal type identified by its
// originating module path and name, eg. `std::prelude::Uint64`.
type NamedType struct {
	// The path of the module the type originates from.
	ModPath string

	// The name of the type within its module.
	Name string
}

func (nt NamedType) Repr() string {
	return nt.ModPath + "::" + nt.Name
}

func (nt NamedType) equals(other Type) bool {
	if ont, ok := other.(NamedType); ok {
		return nt.ModPath == ont.ModPath && nt.Name == ont.Name
	}

	return false
}

// -----------------------------------------------------------------------------

// FuncType represents a function type.
type FuncType struct {
	// The parameter types of the function in order.
	Params []Type

	// The return type of the function.  This is never nil: functions
	// returning no value carry the prelude unit type.
	Return Type
}

func (ft *FuncType) Repr() string {
	sb := strings.Builder{}

	sb.WriteString("fn(")
	for i, param := range ft.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(param.Repr())
	}
	sb.WriteString(") -> ")
	sb.WriteString(ft.Return.Repr())

	return sb.String()
}

func (ft *FuncType) equals(other Type) bool {
	oft, ok := other.(*FuncType)
	if !ok {
		return false
	}

	if len(ft.Params) != len(oft.Params) {
		return false
	}

	for i, param := range ft.Params {
		if !Equals(param, oft.Params[i]) {
			return false
		}
	}

	return Equals(ft.Return, oft.Return)
}

// -----------------------------------------------------------------------------

// PreludeModPath is the module path of the standard prelude: the only module
// whose named types the backend currently knows how to map.
const PreludeModPath = "std::prelude"

// Named types of the standard prelude the backend can map to machine types.
var (
	StringType = NamedType{ModPath: PreludeModPath, Name: "String"}
	Uint64Type = NamedType{ModPath: PreludeModPath, Name: "Uint64"}
	UnitType   = NamedType{ModPath: PreludeModPath, Name: "Unit"}
)
