package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rvben/upd/internal/platform"
)

// InvocationError reports a failure to hand the process over to the
// native binary.
type InvocationError struct {
	Path string
	Err  error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Path, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// Invoker hands the process over to the native binary.
type Invoker interface {
	// Invoke runs the binary at path with args appended after it and
	// returns the resulting exit code. Under the replacement strategy
	// a successful call never returns.
	Invoke(path string, args []string) (int, error)
}

// newInvoker selects the invocation strategy for the platform.
func newInvoker(p platform.Platform) Invoker {
	if p.CanReplaceProcess() {
		return &execInvoker{exec: syscallExec}
	}
	return &spawnInvoker{}
}

// argv builds the full argument vector: the binary path followed by
// the forwarded arguments, in order and untouched.
func argv(path string, args []string) []string {
	v := make([]string, 0, len(args)+1)
	v = append(v, path)
	return append(v, args...)
}

// execInvoker replaces the current process image with the native
// binary. Streams and environment carry over as part of the exec;
// control returns only if the replacement itself fails.
type execInvoker struct {
	exec func(argv0 string, argv []string, envv []string) error
}

func (i *execInvoker) Invoke(path string, args []string) (int, error) {
	if err := i.exec(path, argv(path, args), os.Environ()); err != nil {
		return 0, &InvocationError{Path: path, Err: err}
	}
	// A real exec does not return on success; only a substituted exec
	// function reaches this point.
	return 0, nil
}

// spawnInvoker starts the native binary as a child process with
// inherited streams and environment, waits for it, and relays its
// exit code.
type spawnInvoker struct{}

func (i *spawnInvoker) Invoke(path string, args []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, &InvocationError{Path: path, Err: err}
}
