// Package cmdexec wraps process execution behind an interface so callers
// that launch external programs can be tested with a mock.
package cmdexec

import (
	"fmt"
	"os/exec"
)

// Runner launches external programs.
type Runner interface {
	// Start launches a command without waiting for it to exit.
	Start(name string, args ...string) error

	// LookPath searches for an executable in PATH.
	LookPath(name string) (string, error)
}

// RealRunner executes commands on the actual system.
type RealRunner struct{}

// Start launches the command detached from the terminal's stdio and reaps
// it in the background.
func (r *RealRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// LookPath searches for the executable in PATH.
func (r *RealRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// DefaultRunner returns a runner that executes real system commands.
func DefaultRunner() Runner {
	return &RealRunner{}
}
