//go:build windows

package launcher

import "errors"

// syscallExec is unavailable on Windows; newInvoker picks the spawn
// strategy there instead.
func syscallExec(argv0 string, argv []string, envv []string) error {
	return errors.New("process replacement is not supported on this platform")
}
