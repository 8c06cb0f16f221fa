package version

import (
	"fmt"
	"runtime"
)

// NAME is the binary name
const NAME = "wifimon"

var (
	// VERSION is set by ldflags at build time
	VERSION = "unknown"
	// REVISION is the git commit
	REVISION = "HEAD"
	// BUILTAT is the build time
	BUILTAT = "now"
)

// String formats the full version blob for --version.
func String() string {
	version := fmt.Sprintf("Version:        %s\n", VERSION)
	version += fmt.Sprintf("Git hash:       %s\n", REVISION)
	version += fmt.Sprintf("Built:          %s\n", BUILTAT)
	version += fmt.Sprintf("Golang version: %s\n", runtime.Version())
	version += fmt.Sprintf("OS/Arch:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return version
}
