package codegen

import (
	"fmt"

	"crane/typing"
)

// UnknownTypeError indicates a named type the backend cannot map to a
// machine type.  This is a configuration fault of the front end, not a user
// diagnostic: only the prelude `String` and `Uint64` types are mappable.
type UnknownTypeError struct {
	Ty typing.Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no machine representation for type `%s`", e.Ty.Repr())
}

// UnsupportedError indicates a source construct the backend does not lower
// yet.  Failing loudly here is deliberate: silently producing wrong code for
// an unhandled construct would be far worse.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s are not supported", e.Construct)
}

// UnresolvedParamError indicates a variable reference that does not name any
// parameter of the enclosing function.  The backend has no local variable
// bindings or outer scopes, so parameters are the only thing a variable can
// resolve to.
type UnresolvedParamError struct {
	Name string
}

func (e *UnresolvedParamError) Error() string {
	return fmt.Sprintf("`%s` does not name a parameter of the enclosing function", e.Name)
}

// UnresolvedCalleeError indicates a call to a name absent from the module
// symbol table.
type UnresolvedCalleeError struct {
	Name string
}

func (e *UnresolvedCalleeError) Error() string {
	return fmt.Sprintf("call to undefined function `%s`", e.Name)
}

// DuplicateSymbolError indicates a user function whose name collides with a
// prelude symbol or another user function.
type DuplicateSymbolError struct {
	Name string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate definition of function `%s`", e.Name)
}

// VerifyError indicates that a fully lowered function failed verification.
type VerifyError struct {
	FuncName string
	Inner    error
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("function `%s` failed verification: %s", e.FuncName, e.Inner)
}

func (e *VerifyError) Unwrap() error {
	return e.Inner
}

// -----------------------------------------------------------------------------

// LoweringError couples a lowering error with the name of the function it
// occurred in.  The name is empty for module-level errors.
type LoweringError struct {
	FuncName string
	Err      error
}

func (le LoweringError) Error() string {
	if le.FuncName == "" {
		return le.Err.Error()
	}

	return fmt.Sprintf("in `%s`: %s", le.FuncName, le.Err)
}

func (le LoweringError) Unwrap() error {
	return le.Err
}
