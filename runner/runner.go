package runner

import (
	"context"
	"errors"
	"os/exec"
)

// Output is what an external command left behind. Controllers treat every
// command as a black box producing exactly this.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner provides external command execution
type Runner interface {
	// Run executes name with args and waits for it. A command that started
	// and exited returns a non-nil Output and a nil error even when the
	// exit code is non-zero; the error is reserved for commands that could
	// not run at all.
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// IsNotFound reports whether err means the command is not installed.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
