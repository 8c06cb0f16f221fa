package dryrun

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/wifimon/wifimon/runner"
)

// DryRun prints every command instead of executing it and reports success,
// so a full control sequence can be previewed end to end.
type DryRun struct {
	mu  sync.Mutex
	out io.Writer
}

// New .
func New(out io.Writer) *DryRun {
	return &DryRun{out: out}
}

// Run prints the command line and pretends it exited 0.
func (d *DryRun) Run(_ context.Context, name string, args ...string) (*runner.Output, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "would run: %s\n", commandLine(name, args))
	return &runner.Output{}, nil
}

func commandLine(name string, args []string) string {
	parts := []string{name}
	for _, arg := range args {
		if strings.ContainsAny(arg, " \t") {
			arg = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
