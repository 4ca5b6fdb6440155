package proc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Runner executes an external command synchronously and returns its stdout.
// Implementations must be safe for concurrent use.
type Runner interface {
	// Run executes the command and waits for completion. On a non-zero
	// exit the returned error includes the command's trimmed stderr.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner that executes real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command, returning stdout on success. Stderr is folded
// into the error so failures from tools like tar and systemctl carry their
// diagnostic output.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return "", err
	}

	return stdout.String(), nil
}

// Call records a single FakeRunner invocation.
type Call struct {
	Name string
	Args []string
}

// FakeRunner is a test double for Runner. Set RunFunc before use; every
// invocation is appended to Calls for verification.
type FakeRunner struct {
	// RunFunc is called when Run is invoked.
	RunFunc func(ctx context.Context, name string, args ...string) (string, error)

	mu    sync.Mutex
	calls []Call
}

// Run delegates to RunFunc and records the call.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: name, Args: args})
	f.mu.Unlock()

	if f.RunFunc == nil {
		panic("proc: FakeRunner.RunFunc not set")
	}
	return f.RunFunc(ctx, name, args...)
}

// Calls returns a copy of all recorded invocations.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Reset clears all recorded invocations.
func (f *FakeRunner) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// Compile-time interface compliance checks.
var (
	_ Runner = (*ExecRunner)(nil)
	_ Runner = (*FakeRunner)(nil)
)
