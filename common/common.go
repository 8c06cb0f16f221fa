package common

const (
	// ShellRunner runs external commands for real
	ShellRunner = "shell"
	// DryRunRunner prints external commands instead of running them
	DryRunRunner = "dry-run"
	// MocksRunner is only for testing
	MocksRunner = "mocks"

	// DateTimeFormat for the monitor header
	DateTimeFormat = "2006-01-02 15:04:05"

	// DefaultWindowsWifi is what Windows usually calls the wireless adapter
	DefaultWindowsWifi = "Wi-Fi"
	// DarwinNetworkSetup is not looked up via PATH, same as the stock install
	DarwinNetworkSetup = "/usr/sbin/networksetup"

	// WifiOn and WifiOff are the accepted wifi subcommand states
	WifiOn  = "on"
	WifiOff = "off"
	// ModeEnable and ModeDisable are the accepted monitor-mode actions
	ModeEnable  = "enable"
	ModeDisable = "disable"
)
