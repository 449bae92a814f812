package report

import (
	"fmt"
	"os"
)

// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions simply fail silently if below their log level.

// ReportError reports a compilation error produced by the backend.  The
// context string names the enclosing construct (usually a function name); it
// may be empty for module-level errors.
func ReportError(context string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel >= LogLevelError {
		displayError(context, err)
	}
}

// ReportWarning reports a compilation warning.
func ReportWarning(context string, msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel >= LogLevelWarn {
		displayWarning(context, fmt.Sprintf(msg, args...))
	}
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that generally result from invalid configuration of some form:
// missing build profile values, can't find the requisite toolchain, etc.
func ReportFatal(msg string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		displayFatal(fmt.Sprintf(msg, args...))
		rep.m.Unlock()
	}

	os.Exit(1)
}

// ReportICE reports an internal compiler error.  These are errors that result
// from a bug or unexpected condition inside the compiler itself: they are not
// intended to ever happen and are always displayed regardless of log level.
func ReportICE(msg string, args ...interface{}) {
	rep.m.Lock()
	displayICE(fmt.Sprintf(msg, args...))
	rep.m.Unlock()

	os.Exit(-1)
}

// -----------------------------------------------------------------------------
// Below are the "aesthetic" reporting functions that only run if the log level
// is verbose.  These provide additional information about the compilation
// process so as to make the compiler more friendly.

// ReportCompileHeader reports the pre-compilation header: information about
// the compiler's current configuration (version, target, etc.).
func ReportCompileHeader(version, target string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(version, target)
	}
}

// ReportBeginPhase reports the beginning of a compilation phase.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// ReportEndPhase reports the end of the current compilation phase.
func ReportEndPhase() {
	if rep.logLevel == LogLevelVerbose {
		displayEndPhase(ShouldProceed())
	}
}

// ReportCompilationFinished reports the concluding message for compilation.
func ReportCompilationFinished(outputPath string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(ShouldProceed(), outputPath, rep.errorCount, rep.warningCount)
	}
}
