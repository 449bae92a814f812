package typing

import "testing"

func TestNamedTypeEquality(t *testing.T) {
	if !Equals(StringType, NamedType{ModPath: "std::prelude", Name: "String"}) {
		t.Error("structurally identical named types should be equal")
	}

	if Equals(StringType, Uint64Type) {
		t.Error("distinct named types should not be equal")
	}

	if Equals(StringType, NamedType{ModPath: "other", Name: "String"}) {
		t.Error("same name from a different module should not be equal")
	}
}

func TestFuncTypeEquality(t *testing.T) {
	a := &FuncType{Params: []Type{StringType, Uint64Type}, Return: UnitType}
	b := &FuncType{Params: []Type{StringType, Uint64Type}, Return: UnitType}
	c := &FuncType{Params: []Type{Uint64Type, StringType}, Return: UnitType}
	d := &FuncType{Params: []Type{StringType, Uint64Type}, Return: Uint64Type}

	if !Equals(a, b) {
		t.Error("structurally identical function types should be equal")
	}
	if Equals(a, c) {
		t.Error("parameter order should matter")
	}
	if Equals(a, d) {
		t.Error("return types should matter")
	}
	if Equals(a, StringType) {
		t.Error("a function type should not equal a named type")
	}
}

func TestRepr(t *testing.T) {
	if repr := Uint64Type.Repr(); repr != "std::prelude::Uint64" {
		t.Errorf("unexpected named type repr: %s", repr)
	}

	ft := &FuncType{Params: []Type{StringType}, Return: UnitType}
	if repr := ft.Repr(); repr != "fn(std::prelude::String) -> std::prelude::Unit" {
		t.Errorf("unexpected function type repr: %s", repr)
	}
}
