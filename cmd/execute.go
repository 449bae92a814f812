package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"crane/ast"
	"crane/report"
)

// CraneVersion is the current version of the Crane compiler.
const CraneVersion = "0.1.0"

// FrontEndFunc produces the typed declaration tree for a compilation root.
// The tokenizer, parser, and type checker are external collaborators of
// this backend: the driver calls whatever front end has been registered.
type FrontEndFunc func(rootPath string) ([]ast.Item, error)

var frontEnd FrontEndFunc

// SetFrontEnd registers the front end used by the build command.
func SetFrontEnd(fe FrontEndFunc) {
	frontEnd = fe
}

// Execute is the main entry point for the `crane` CLI utility.  It returns
// the process exit code.
func Execute() int {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("crane", "crane is a tool for compiling Crane programs", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a Crane program", true)
	buildCmd.AddPrimaryArg("root-path", "the path to the program root", true)
	buildCmd.AddStringArg("out", "o", "the name of the output executable", false)

	cli.AddSubcommand("version", "print the Crane version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		return execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		fmt.Println("crane v" + CraneVersion)
	}

	return 0
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) int {
	switch loglevel {
	case "silent":
		report.InitReporter(report.LogLevelSilent)
	case "error":
		report.InitReporter(report.LogLevelError)
	case "warn":
		report.InitReporter(report.LogLevelWarn)
	default:
		report.InitReporter(report.LogLevelVerbose)
	}

	// get the primary argument: the root path
	rootPath, _ := result.PrimaryArg()

	if frontEnd == nil {
		report.ReportFatal("no front end registered: the Crane parser and type checker are external to this backend")
	}

	items, err := frontEnd(rootPath)
	if err != nil {
		report.ReportError("", err)
		return 1
	}

	profile := LoadProfile(rootPath)
	if outVal, ok := result.Arguments["out"]; ok {
		profile.ExeFile = outVal.(string)
	}

	report.ReportCompileHeader(CraneVersion, "host")

	c := NewCompiler(rootPath, profile)
	ok := c.Compile(items)

	report.ReportCompilationFinished(filepath.Join(profile.OutputDir, profile.ExeFile))

	if !ok || !report.ShouldProceed() {
		return 1
	}

	return 0
}
