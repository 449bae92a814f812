package cmd

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// linkExecutable invokes the configured native linker driver on the object
// file to produce the final executable.  A nonzero exit from the linker
// fails the compilation.
func (c *Compiler) linkExecutable(objPath string) error {
	exePath := filepath.Join(c.profile.OutputDir, c.profile.ExeFile)

	link := exec.Command(c.profile.Linker, "-o", exePath, objPath)

	out, err := link.CombinedOutput()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Exit error => the linker ran but reported link errors.  Output
			// those to the user.
			return fmt.Errorf("link error:\n%s", string(out))
		}

		// Some other error: probably couldn't find the linker.
		return fmt.Errorf("failed to run linker: %w", err)
	}

	return nil
}
