package platform

import (
	"fmt"
	"runtime"
)

// Platform represents a supported OS/architecture combination
type Platform string

const (
	DarwinARM64  Platform = "darwin-arm64"
	DarwinAMD64  Platform = "darwin-amd64"
	LinuxAMD64   Platform = "linux-amd64"
	LinuxARM64   Platform = "linux-arm64"
	WindowsAMD64 Platform = "windows-amd64"
	WindowsARM64 Platform = "windows-arm64"
)

// AllPlatforms lists all supported platforms for cross-compilation
var AllPlatforms = []Platform{
	DarwinARM64,
	DarwinAMD64,
	LinuxAMD64,
	LinuxARM64,
	WindowsAMD64,
	WindowsARM64,
}

// Current detects the current platform
func Current() (Platform, error) {
	key := fmt.Sprintf("%s-%s", runtime.GOOS, runtime.GOARCH)

	switch key {
	case "darwin-arm64":
		return DarwinARM64, nil
	case "darwin-amd64":
		return DarwinAMD64, nil
	case "linux-amd64":
		return LinuxAMD64, nil
	case "linux-arm64":
		return LinuxARM64, nil
	case "windows-amd64":
		return WindowsAMD64, nil
	case "windows-arm64":
		return WindowsARM64, nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", key)
	}
}

// ExeSuffix returns the executable filename suffix for this platform
func (p Platform) ExeSuffix() string {
	if p.GOOS() == "windows" {
		return ".exe"
	}
	return ""
}

// BinaryName returns the appropriate binary name for this platform
func (p Platform) BinaryName(base string) string {
	return base + p.ExeSuffix()
}

// CanReplaceProcess reports whether this platform supports replacing
// the current process image via exec
func (p Platform) CanReplaceProcess() bool {
	return p.GOOS() != "windows"
}

// String returns the platform identifier
func (p Platform) String() string {
	return string(p)
}

// GOOS returns the Go OS value for this platform
func (p Platform) GOOS() string {
	switch p {
	case DarwinARM64, DarwinAMD64:
		return "darwin"
	case LinuxAMD64, LinuxARM64:
		return "linux"
	case WindowsAMD64, WindowsARM64:
		return "windows"
	default:
		return ""
	}
}

// GOARCH returns the Go architecture value for this platform
func (p Platform) GOARCH() string {
	switch p {
	case DarwinARM64, LinuxARM64, WindowsARM64:
		return "arm64"
	case DarwinAMD64, LinuxAMD64, WindowsAMD64:
		return "amd64"
	default:
		return ""
	}
}
