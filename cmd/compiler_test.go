package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crane/ast"
	"crane/report"
	"crane/typing"
)

// stubProfile returns a profile whose toolchain commands succeed without
// producing real artifacts, redirected into a temporary output directory.
func stubProfile(t *testing.T) *BuildProfile {
	t.Helper()

	profile := defaultProfile()
	profile.OutputDir = t.TempDir()
	profile.Assembler = "true"
	profile.BitcodeAssembler = "true"
	profile.Linker = "true"

	return profile
}

// helloWorldItems builds the typed tree for a program printing one line.
func helloWorldItems() []ast.Item {
	lit := &ast.Literal{
		ExprBase: ast.NewExprBase(typing.StringType),
		Kind:     ast.LitString,
		Text:     `"hello"`,
	}
	call := &ast.Call{
		ExprBase: ast.NewExprBase(typing.UnitType),
		Callee:   &ast.Variable{ExprBase: ast.NewExprBase(nil), Name: "println"},
		Args:     []ast.Expr{lit},
	}

	return []ast.Item{{
		Name: ast.Ident{Name: "main"},
		Kind: &ast.FuncDecl{Body: []ast.Stmt{&ast.ExprStmt{Expr: call}}},
	}}
}

func TestCompilePipeline(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	profile := stubProfile(t)
	c := NewCompiler(".", profile)

	if !c.Compile(helloWorldItems()) {
		t.Fatal("expected the pipeline to succeed with a stubbed toolchain")
	}

	// The textual IR must be written even though the toolchain is stubbed.
	irText, err := os.ReadFile(filepath.Join(profile.OutputDir, profile.IRFile))
	if err != nil {
		t.Fatalf("failed to read emitted IR: %s", err)
	}
	if !strings.Contains(string(irText), "define i32 @main()") {
		t.Errorf("emitted IR missing the entry point:\n%s", irText)
	}
}

func TestModuleRecordsCompilationRoot(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	profile := stubProfile(t)
	c := NewCompiler("hello-root", profile)

	if !c.Compile(helloWorldItems()) {
		t.Fatal("expected the pipeline to succeed with a stubbed toolchain")
	}

	irText, err := os.ReadFile(filepath.Join(profile.OutputDir, profile.IRFile))
	if err != nil {
		t.Fatalf("failed to read emitted IR: %s", err)
	}
	if !strings.Contains(string(irText), `source_filename = "hello-root"`) {
		t.Errorf("emitted IR missing the compilation root:\n%s", irText)
	}
}

func TestCompileFailsOnLoweringError(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	items := append(helloWorldItems(), ast.Item{
		Name: ast.Ident{Name: "main"}, // duplicate of `main`
		Kind: &ast.FuncDecl{},
	})

	c := NewCompiler(".", stubProfile(t))

	if c.Compile(items) {
		t.Error("expected a lowering error to fail the pipeline")
	}
}

func TestCompileFailsOnLinkerExit(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	profile := stubProfile(t)
	profile.Linker = "false"
	c := NewCompiler(".", profile)

	if c.Compile(helloWorldItems()) {
		t.Error("expected a nonzero linker exit to fail the compilation")
	}
}

func TestCompileFailsOnMissingAssembler(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	profile := stubProfile(t)
	profile.Assembler = "definitely-not-a-real-command"
	c := NewCompiler(".", profile)

	if c.Compile(helloWorldItems()) {
		t.Error("expected a missing assembler to fail the compilation")
	}
}
