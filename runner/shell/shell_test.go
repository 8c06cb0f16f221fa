package shell

import (
	"context"
	"testing"

	"github.com/wifimon/wifimon/runner"

	"github.com/stretchr/testify/assert"
)

func TestRunCapturesOutput(t *testing.T) {
	out, err := New().Run(context.Background(), "sh", "-c", "echo hello; echo oops >&2")
	assert.NoError(t, err)
	assert.Equal(t, "hello", out.Stdout)
	assert.Equal(t, "oops", out.Stderr)
	assert.Equal(t, 0, out.ExitCode)
}

func TestRunNonZeroExit(t *testing.T) {
	// a command that ran and failed is not a runner error
	out, err := New().Run(context.Background(), "sh", "-c", "exit 3")
	assert.NoError(t, err)
	assert.Equal(t, 3, out.ExitCode)
}

func TestRunNotFound(t *testing.T) {
	_, err := New().Run(context.Background(), "definitely-not-a-command-xyz")
	assert.Error(t, err)
	assert.True(t, runner.IsNotFound(err))
}
