package launcher

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rvben/upd/internal/platform"
)

// DefaultBinaryName is the name of the native binary this launcher
// fronts.
const DefaultBinaryName = "upd"

// BinaryNotFoundError reports that no native binary exists at its
// conventional location.
type BinaryNotFoundError struct {
	Name string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("Could not find the native %s binary. "+
		"Please ensure it was built with 'cargo build --release'.", e.Name)
}

// Resolver locates the native binary under a project root.
type Resolver struct {
	Root     string
	Name     string
	Platform platform.Platform
}

// NewResolver creates a Resolver for the default binary name.
func NewResolver(root string, plat platform.Platform) *Resolver {
	return &Resolver{
		Root:     root,
		Name:     DefaultBinaryName,
		Platform: plat,
	}
}

// Locate returns the path of the native binary. It probes the release
// directory for the bare name, then the platform-suffixed name, and
// accepts the first candidate that exists and is not a directory.
func (r *Resolver) Locate() (string, error) {
	for _, candidate := range r.candidates() {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", &BinaryNotFoundError{Name: r.Name}
}

func (r *Resolver) candidates() []string {
	releaseDir := filepath.Join(r.Root, "target", "release")

	paths := []string{filepath.Join(releaseDir, r.Name)}
	if suffix := r.Platform.ExeSuffix(); suffix != "" {
		paths = append(paths, filepath.Join(releaseDir, r.Name+suffix))
	}
	return paths
}
