package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/llir/llvm/ir"
)

// emitModule serializes the fully built module: the textual IR is written
// for diagnostics, the object file is produced by the configured assembler,
// and the bitcode is assembled into its own file.  It returns the path of
// the object file to link.
func (c *Compiler) emitModule(mod *ir.Module) (string, error) {
	if err := os.MkdirAll(c.profile.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	irPath := filepath.Join(c.profile.OutputDir, c.profile.IRFile)
	if err := writeOutputFile(irPath, mod.String()); err != nil {
		return "", err
	}

	objPath := filepath.Join(c.profile.OutputDir, c.profile.ObjectFile)
	if err := runTool(c.profile.Assembler, "-filetype", "obj", "-o", objPath, irPath); err != nil {
		return "", fmt.Errorf("failed to assemble object file: %w", err)
	}

	bcPath := filepath.Join(c.profile.OutputDir, c.profile.BitcodeFile)
	if err := runTool(c.profile.BitcodeAssembler, "-o", bcPath, irPath); err != nil {
		return "", fmt.Errorf("failed to assemble bitcode: %w", err)
	}

	return objPath, nil
}

// runTool runs an external toolchain command, surfacing its stderr as the
// error on failure.
func runTool(name string, args ...string) error {
	tool := exec.Command(name, args...)
	stderrBuff := bytes.Buffer{}
	tool.Stderr = &stderrBuff

	if err := tool.Run(); err != nil {
		if stderrBuff.Len() > 0 {
			return errors.New(stderrBuff.String())
		}

		return err
	}

	return nil
}

// writeOutputFile is used to quickly write an output file for the compiler.
func writeOutputFile(fpath, content string) error {
	file, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file `%s`: %w", fpath, err)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("failed to write output to file `%s`: %w", fpath, err)
	}

	return nil
}
