package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/wifimon/wifimon/runner"

	"github.com/stretchr/testify/mock"
)

// Sandbox a fake system that accepts every command.
type Sandbox struct {
	Runner
	sync.Mutex
	history [][]string
}

// FromTemplate returns a mock runner instance created from template. It
// records every command and answers all of them with a zero exit.
func FromTemplate() runner.Runner {
	s := &Sandbox{}
	s.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(
		func(_ context.Context, name string, args ...string) *runner.Output {
			s.Lock()
			defer s.Unlock()
			s.history = append(s.history, append([]string{name}, args...))
			fmt.Printf("[Sandbox] run: %s %s\n", name, strings.Join(args, " "))
			return &runner.Output{Stdout: "ok"}
		}, nil)
	return s
}

// History returns the commands seen so far, oldest first.
func (s *Sandbox) History() [][]string {
	s.Lock()
	defer s.Unlock()
	out := make([][]string, len(s.history))
	copy(out, s.history)
	return out
}
