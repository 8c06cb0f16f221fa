package control

import (
	"context"
	"fmt"
	"strings"

	"github.com/wifimon/wifimon/common"
	"github.com/wifimon/wifimon/runner"
	"github.com/wifimon/wifimon/types"
)

// SetWifiPower turns the Wi-Fi radio on or off with the platform tool:
// nmcli on Linux with an ip link fallback, netsh on Windows, networksetup
// on macOS. iface is optional everywhere except macOS.
func (c *Controller) SetWifiPower(ctx context.Context, on bool, iface string) error {
	state := common.WifiOff
	if on {
		state = common.WifiOn
	}
	switch c.platform {
	case types.PlatformLinux:
		return c.linuxWifiPower(ctx, on, state, iface)
	case types.PlatformWindows:
		return c.windowsWifiPower(ctx, on, state, iface)
	case types.PlatformDarwin:
		return c.darwinWifiPower(ctx, state, iface)
	default:
		return fmt.Errorf("%w: %s", common.ErrUnsupportedPlatform, c.platform)
	}
}

func (c *Controller) linuxWifiPower(ctx context.Context, on bool, state, iface string) error {
	out, err := c.runner.Run(ctx, "nmcli", "radio", "wifi", state)
	switch {
	case err == nil && out.ExitCode == 0:
		c.confirm(out, "Wi-Fi "+state)
		return nil
	case err == nil:
		// nmcli is installed and rejected the request, do not second-guess it
		return controlError(out, "nmcli", "radio", "wifi", state)
	case !runner.IsNotFound(err):
		return fmt.Errorf("%w: nmcli radio wifi %s: %v", common.ErrControlFailed, state, err)
	}

	// no nmcli on this box, drive the link state directly
	if iface == "" {
		iface = c.fallbackInterface(ctx)
	}
	if iface == "" {
		return fmt.Errorf("%w: could not determine a wireless interface for the fallback", common.ErrInterfaceRequired)
	}
	link := "down"
	if on {
		link = "up"
	}
	args := c.sudoArgs("ip", "link", "set", iface, link)
	fmt.Fprintf(c.out, "nmcli not found, falling back to: %s\n", strings.Join(args, " "))
	out, err = c.run(ctx, args...)
	if err != nil {
		return err
	}
	c.confirm(out, fmt.Sprintf("Interface %s %s", iface, link))
	return nil
}

func (c *Controller) windowsWifiPower(ctx context.Context, on bool, state, iface string) error {
	if iface == "" {
		iface = common.DefaultWindowsWifi
	}
	admin := "admin=disable"
	if on {
		admin = "admin=enable"
	}
	out, err := c.run(ctx, "netsh", "interface", "set", "interface", iface, admin)
	if err != nil {
		return err
	}
	c.confirm(out, "Wi-Fi "+state)
	return nil
}

func (c *Controller) darwinWifiPower(ctx context.Context, state, iface string) error {
	if iface == "" {
		return fmt.Errorf("%w: networksetup needs the device name, e.g. --iface en0", common.ErrInterfaceRequired)
	}
	out, err := c.run(ctx, common.DarwinNetworkSetup, "-setairportpower", iface, state)
	if err != nil {
		return err
	}
	c.confirm(out, fmt.Sprintf("Wi-Fi %s on %s", state, iface))
	return nil
}
