package cmdexec

import (
	"context"
	"sync"
)

// RecordingRunner records every command instead of executing it.
// Tests use it to assert on the exact invocation sequence and to
// inject failures.
type RecordingRunner struct {
	mu       sync.Mutex
	Commands []Command

	// FailOn, when set, is consulted per command; a non-nil return is
	// surfaced as that command's failure
	FailOn func(cmd Command) error
}

// Run records the command and returns FailOn's verdict, if any
func (r *RecordingRunner) Run(_ context.Context, cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Commands = append(r.Commands, cmd)
	if r.FailOn != nil {
		return r.FailOn(cmd)
	}
	return nil
}

// CommandLines returns the recorded commands as argv slices
func (r *RecordingRunner) CommandLines() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([][]string, 0, len(r.Commands))
	for _, c := range r.Commands {
		lines = append(lines, append([]string{c.Name}, c.Args...))
	}
	return lines
}
