package control

import (
	"context"
	"fmt"

	"github.com/wifimon/wifimon/common"
	"github.com/wifimon/wifimon/types"
)

// SetMonitorMode flips a wireless device between monitor and managed mode.
// Linux only. The sequence is link down, set type, link up; a failed step
// aborts right there and the device may be left down.
func (c *Controller) SetMonitorMode(ctx context.Context, enable bool, iface string) error {
	if c.platform != types.PlatformLinux {
		return fmt.Errorf("%w: monitor mode needs Linux, this is %s", common.ErrUnsupportedPlatform, c.platform)
	}
	if iface == "" {
		return fmt.Errorf("%w: monitor mode needs a wireless device", common.ErrInterfaceRequired)
	}

	mode := "managed"
	if enable {
		mode = "monitor"
	}
	steps := [][]string{
		c.sudoArgs("ip", "link", "set", iface, "down"),
		c.sudoArgs("iw", "dev", iface, "set", "type", mode),
		c.sudoArgs("ip", "link", "set", iface, "up"),
	}
	for i, step := range steps {
		if _, err := c.run(ctx, step...); err != nil {
			return fmt.Errorf("step %d/%d failed: %w", i+1, len(steps), err)
		}
	}

	if enable {
		fmt.Fprintf(c.out, "Monitor mode requested on %s. Verify with: iw dev %s info\n", iface, iface)
	} else {
		fmt.Fprintf(c.out, "Managed mode restored on %s.\n", iface)
	}
	return nil
}
