package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/wifimon/wifimon/runner"

	log "github.com/sirupsen/logrus"
)

// Shell runs commands on the local system.
type Shell struct{}

// New .
func New() *Shell {
	return &Shell{}
}

// Run executes the command and captures both output streams. Trailing
// whitespace is stripped so callers can print the output directly.
func (s *Shell) Run(ctx context.Context, name string, args ...string) (*runner.Output, error) {
	log.Debugf("[shell] run: %s %s", name, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &runner.Output{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	return nil, err
}
