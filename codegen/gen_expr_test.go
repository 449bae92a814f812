package codegen

import (
	"errors"
	"strings"
	"testing"

	"crane/ast"
	"crane/typing"
)

func TestStringLiteralUnquoting(t *testing.T) {
	g := mustCompile(t,
		mkFunc("main", nil, exprStmt(mkCall("println", nil, mkStrLit(`"hi"`)))),
	)

	irText := g.Module().String()

	// The lexeme's quotes must be stripped: three bytes, `hi` plus the
	// terminator.
	if !strings.Contains(irText, `[3 x i8] c"hi\00"`) {
		t.Errorf("expected an unquoted, null-terminated string global:\n%s", irText)
	}
	if !strings.Contains(irText, "internal") {
		t.Errorf("expected the interned global to have internal linkage:\n%s", irText)
	}
}

func TestStringLiteralsAreNotDeduplicated(t *testing.T) {
	g := mustCompile(t,
		mkFunc("main", nil,
			exprStmt(mkCall("println", nil, mkStrLit(`"dup"`))),
			exprStmt(mkCall("println", nil, mkStrLit(`"dup"`))),
		),
	)

	// Each occurrence interns its own global.
	if n := strings.Count(g.Module().String(), `c"dup\00"`); n != 2 {
		t.Errorf("expected 2 interned globals, found %d", n)
	}
}

func TestMalformedStringLexeme(t *testing.T) {
	_, errs := compileItems(t,
		mkFunc("main", nil, exprStmt(mkCall("println", nil, mkStrLit("hi")))),
	)

	if len(errs) != 1 {
		t.Fatalf("expected an unquoted lexeme to fail lowering, got: %v", errs)
	}
}

func TestIntegerLiteral(t *testing.T) {
	g := mustCompile(t,
		mkFunc("main", nil, exprStmt(mkCall("int_add", nil, mkIntLit(1), mkIntLit(2)))),
	)

	if !strings.Contains(g.Module().String(), "call i64 @int_add(i64 1, i64 2)") {
		t.Errorf("expected immediate i64 constants as call arguments:\n%s", g.Module().String())
	}
}

func TestHighBitIntegerLiteral(t *testing.T) {
	// The full unsigned 64-bit domain is lowerable, including values whose
	// high bit is set.
	g := mustCompile(t,
		mkFunc("main", nil, exprStmt(mkCall("int_to_string", nil, mkIntLit(1<<63)))),
	)

	if !strings.Contains(g.Module().String(), "call i8* @int_to_string(i64 9223372036854775808)") {
		t.Errorf("expected the literal's bit pattern to be materialized:\n%s", g.Module().String())
	}
}

func TestMaxIntegerLiteral(t *testing.T) {
	g := mustCompile(t,
		mkFunc("main", nil, exprStmt(mkCall("int_to_string", nil, mkIntLit(^uint64(0))))),
	)

	if !strings.Contains(g.Module().String(), "i64 18446744073709551615") {
		t.Errorf("expected the maximum u64 literal to lower:\n%s", g.Module().String())
	}
}

func TestNonU64IntegerLiteralUnsupported(t *testing.T) {
	lit := &ast.Literal{
		ExprBase: ast.NewExprBase(typing.Uint64Type),
		Kind:     ast.LitInteger,
		Value:    1,
		IntKind:  ast.IntI32,
	}

	_, errs := compileItems(t,
		mkFunc("main", nil, exprStmt(mkCall("int_to_string", nil, lit))),
	)

	var unsupErr *UnsupportedError
	if len(errs) != 1 || !errors.As(errs[0].Err, &unsupErr) {
		t.Fatalf("expected non-u64 literals to be unsupported, got: %v", errs)
	}
}

func TestVariableResolvesToParameter(t *testing.T) {
	g := mustCompile(t,
		mkFunc("greet", []ast.FuncParam{mkParam("msg", typing.StringType)},
			exprStmt(mkCall("println", nil, mkVar("msg", typing.StringType))),
		),
	)

	if !strings.Contains(g.Module().String(), "call void @println(i8* %msg)") {
		t.Errorf("expected the parameter to be passed through by name:\n%s", g.Module().String())
	}
}

func TestUnresolvedVariable(t *testing.T) {
	_, errs := compileItems(t,
		mkFunc("main", nil, exprStmt(mkCall("println", nil, mkVar("nowhere", typing.StringType)))),
	)

	var paramErr *UnresolvedParamError
	if len(errs) != 1 || !errors.As(errs[0].Err, &paramErr) {
		t.Fatalf("expected an unresolved parameter error, got: %v", errs)
	}
	if paramErr.Name != "nowhere" {
		t.Errorf("expected the error to identify `nowhere`, got `%s`", paramErr.Name)
	}
}

func TestComputedCalleeUnsupported(t *testing.T) {
	call := &ast.Call{
		ExprBase: ast.NewExprBase(typing.UnitType),
		Callee:   mkCall("println", nil, mkStrLit(`"x"`)),
	}

	_, errs := compileItems(t, mkFunc("main", nil, exprStmt(call)))

	var unsupErr *UnsupportedError
	if len(errs) != 1 || !errors.As(errs[0].Err, &unsupErr) {
		t.Fatalf("expected computed callees to be unsupported, got: %v", errs)
	}
}

// -----------------------------------------------------------------------------

func TestHelloWorldScenario(t *testing.T) {
	// fn main() { println("hello"); }
	g := mustCompile(t,
		mkFunc("main", nil, exprStmt(mkCall("println", nil, mkStrLit(`"hello"`)))),
	)

	irText := g.Module().String()
	for _, want := range []string{
		`c"hello\00"`,
		"call void @println",
		"define i32 @main()",
		"ret i32 0",
	} {
		if !strings.Contains(irText, want) {
			t.Errorf("expected %q in the lowered module:\n%s", want, irText)
		}
	}
}

func TestArithmeticScenario(t *testing.T) {
	// fn main() { println(int_to_string(int_add(20, 22))); }
	sum := mkCall("int_add", nil, mkIntLit(20), mkIntLit(22))
	str := mkCall("int_to_string", nil, sum)
	g := mustCompile(t,
		mkFunc("main", nil, exprStmt(mkCall("println", nil, str))),
	)

	irText := g.Module().String()
	for _, want := range []string{
		"call i64 @int_add(i64 20, i64 22)",
		"call i8* @int_to_string(i64 %",
		"call void @println(i8* %",
	} {
		if !strings.Contains(irText, want) {
			t.Errorf("expected %q in the lowered module:\n%s", want, irText)
		}
	}
}
