package types

import "runtime"

// Platform is the operating system family the controllers dispatch on.
// It is detected once at startup and passed explicitly, never read from
// ambient global state, so controllers stay testable by substitution.
type Platform string

// Platforms with command templates.
const (
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
)

// DetectPlatform maps the build target to a Platform. Unknown targets are
// passed through by name so error messages can say what was detected.
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformDarwin
	default:
		return Platform(runtime.GOOS)
	}
}

func (p Platform) String() string {
	return string(p)
}
