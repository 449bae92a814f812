package cmd

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/xyproto/env/v2"

	"crane/report"
)

// ProfileFileName is the name of the optional build profile file looked up
// next to the compilation root.
const ProfileFileName = "crane.toml"

// BuildProfile is the injected configuration of the emission pipeline: every
// artifact path and toolchain command the backend touches comes from here,
// never from embedded constants, so that tests and callers can redirect
// them.
type BuildProfile struct {
	// The directory all artifacts are written into.
	OutputDir string `toml:"output-dir"`

	// File names of the produced artifacts, relative to OutputDir.
	IRFile      string `toml:"ir-file"`      // Textual IR, diagnostic only.
	ObjectFile  string `toml:"object-file"`  // Native object code.
	BitcodeFile string `toml:"bitcode-file"` // Bitcode serialization.
	ExeFile     string `toml:"exe-file"`     // Final linked executable.

	// Toolchain commands.  Each is resolved through the PATH.
	Assembler        string `toml:"assembler"`         // Compiles textual IR to an object file.
	BitcodeAssembler string `toml:"bitcode-assembler"` // Assembles textual IR to bitcode.
	Linker           string `toml:"linker"`            // Links the object file into an executable.
}

// defaultProfile returns the profile used when no build file overrides it.
func defaultProfile() *BuildProfile {
	return &BuildProfile{
		OutputDir:        "build",
		IRFile:           "main.ll",
		ObjectFile:       "main.o",
		BitcodeFile:      "main.bc",
		ExeFile:          "main",
		Assembler:        "llc",
		BitcodeAssembler: "llvm-as",
		Linker:           "cc",
	}
}

// LoadProfile loads the build profile for the given compilation root: the
// defaults, overridden by a `crane.toml` next to the root if one exists,
// overridden by `CRANE_*` environment variables.
func LoadProfile(rootPath string) *BuildProfile {
	profile := defaultProfile()

	profilePath := filepath.Join(rootDir(rootPath), ProfileFileName)
	if buff, err := os.ReadFile(profilePath); err == nil {
		if err := toml.Unmarshal(buff, profile); err != nil {
			report.ReportFatal("error parsing build profile at `%s`: %s", profilePath, err)
		}
	} else if !os.IsNotExist(err) {
		report.ReportFatal("error reading build profile at `%s`: %s", profilePath, err)
	}

	profile.OutputDir = env.Str("CRANE_BUILD_DIR", profile.OutputDir)
	profile.Assembler = env.Str("CRANE_LLC", profile.Assembler)
	profile.BitcodeAssembler = env.Str("CRANE_LLVM_AS", profile.BitcodeAssembler)
	profile.Linker = env.Str("CRANE_CC", profile.Linker)

	return profile
}

// rootDir returns the directory a compilation root lives in: the root itself
// if it is a directory, its parent otherwise.
func rootDir(rootPath string) string {
	if finfo, err := os.Stat(rootPath); err == nil && finfo.IsDir() {
		return rootPath
	}

	return filepath.Dir(rootPath)
}
