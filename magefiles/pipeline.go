//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// runCLI invokes the built concept-engine binary with the given
// arguments, streaming its output.
func runCLI(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", binName, args, err)
	}
	return nil
}

// Extract builds concept maps from the corpus/ directory.
func Extract() error {
	mg.Deps(Build)
	return runCLI("extract")
}

// Generate synthesizes study questions from the maps/ directory.
func Generate() error {
	mg.Deps(Build)
	return runCLI("generate")
}

// Index ingests concept maps into the SQLite index.
func Index() error {
	mg.Deps(Build)
	return runCLI("graph", "store")
}
