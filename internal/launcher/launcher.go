// Package launcher locates the native upd binary and hands the current
// process over to it, forwarding arguments, streams, and environment
// untouched.
package launcher

import (
	"os"
	"path/filepath"

	"github.com/rvben/upd/internal/platform"
)

// Run resolves the native binary relative to the launcher's own
// location and invokes it with args forwarded verbatim. Under the
// spawn strategy the returned code is the child's exit code; under the
// replacement strategy Run only ever returns on failure.
func Run(args []string) (int, error) {
	root, err := DefaultRoot()
	if err != nil {
		return 0, err
	}
	return RunAt(root, args)
}

// RunAt is Run with an explicit project root.
func RunAt(root string, args []string) (int, error) {
	plat, err := platform.Current()
	if err != nil {
		return 0, err
	}

	binary, err := NewResolver(root, plat).Locate()
	if err != nil {
		return 0, err
	}

	return newInvoker(plat).Invoke(binary, args)
}

// DefaultRoot computes the project root: two directory levels above
// the directory containing the launcher executable, symlinks resolved.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}

	binDir := filepath.Dir(exe)
	return filepath.Dir(filepath.Dir(binDir)), nil
}
