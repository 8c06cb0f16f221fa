package common

import "errors"

// ErrPlatformQuery .
var (
	ErrPlatformQuery = errors.New("failed to query network interfaces")
	// ErrInterfaceNotFound means the named interface did not show up in the counter table
	ErrInterfaceNotFound = errors.New("interface not found")
	// ErrNoInterfaces .
	ErrNoInterfaces = errors.New("no interfaces found")
	// ErrInterfaceUnavailable means counters became unreadable while monitoring
	ErrInterfaceUnavailable = errors.New("interface unavailable")
	// ErrControlFailed carries the diagnostics of a failed external command
	ErrControlFailed = errors.New("control command failed")
	// ErrUnsupportedPlatform .
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrInterfaceRequired is a usage error, raised before any command runs
	ErrInterfaceRequired = errors.New("interface name required")
	// ErrInvalidRunnerType .
	ErrInvalidRunnerType = errors.New("unknown runner type")
)
