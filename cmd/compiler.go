// Package cmd is the top-level "driver" package for the Crane backend: it
// parses command-line arguments, manages compiler state, and runs the
// generation, emission, and linking phases.
package cmd

import (
	"crane/ast"
	"crane/codegen"
	"crane/report"
)

// Compiler represents the overall state and configuration of one
// compilation.
type Compiler struct {
	// The path to the root directory or file of compilation.
	rootPath string

	// The active build profile.
	profile *BuildProfile
}

// NewCompiler creates a new compiler for the given compilation root and
// build profile.
func NewCompiler(rootPath string, profile *BuildProfile) *Compiler {
	return &Compiler{rootPath: rootPath, profile: profile}
}

// Compile runs the full backend pipeline over a typed declaration tree:
// prelude synthesis and function lowering, artifact emission, and the final
// link.  It reports all errors it encounters and returns whether an
// executable was produced.
func (c *Compiler) Compile(items []ast.Item) bool {
	report.ReportBeginPhase("Generating")
	g := codegen.NewGenerator(c.rootPath)
	lowerErrs := g.Compile(items)
	for _, lerr := range lowerErrs {
		report.ReportError(lerr.FuncName, lerr.Err)
	}
	report.ReportEndPhase()

	if len(lowerErrs) > 0 {
		return false
	}

	report.ReportBeginPhase("Emitting")
	objPath, err := c.emitModule(g.Module())
	if err != nil {
		report.ReportError("", err)
		report.ReportEndPhase()
		return false
	}
	report.ReportEndPhase()

	report.ReportBeginPhase("Linking")
	if err := c.linkExecutable(objPath); err != nil {
		report.ReportError("", err)
		report.ReportEndPhase()
		return false
	}
	report.ReportEndPhase()

	return true
}
