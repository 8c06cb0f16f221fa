package control

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/wifimon/wifimon/common"
	"github.com/wifimon/wifimon/runner"
	"github.com/wifimon/wifimon/stats"
	"github.com/wifimon/wifimon/types"

	log "github.com/sirupsen/logrus"
)

// Controller changes OS network state by shelling out to the platform
// tools. It never talks to the system directly, everything goes through
// the runner.
type Controller struct {
	platform types.Platform
	runner   runner.Runner
	source   stats.Source
	out      io.Writer
	sudo     bool
}

// New .
func New(config *types.Config, platform types.Platform, r runner.Runner, source stats.Source, out io.Writer) *Controller {
	return &Controller{
		platform: platform,
		runner:   r,
		source:   source,
		out:      out,
		sudo:     config.UseSudo(),
	}
}

// run executes one command and folds a non-zero exit into ErrControlFailed
// with the command's own diagnostics attached.
func (c *Controller) run(ctx context.Context, args ...string) (*runner.Output, error) {
	out, err := c.runner.Run(ctx, args[0], args[1:]...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrControlFailed, strings.Join(args, " "), err)
	}
	if out.ExitCode != 0 {
		return out, controlError(out, args...)
	}
	return out, nil
}

// confirm prints the command's own output when it said something, the
// fallback message when it was silent.
func (c *Controller) confirm(out *runner.Output, fallback string) {
	msg := out.Stdout
	if msg == "" {
		msg = fallback
	}
	fmt.Fprintln(c.out, msg)
}

func (c *Controller) sudoArgs(args ...string) []string {
	if !c.sudo {
		return args
	}
	return append([]string{"sudo"}, args...)
}

// fallbackInterface picks the first wireless-looking device. This never
// falls back to arbitrary interfaces: no wireless-looking name means no
// fallback, taking a wired link down is not an option.
func (c *Controller) fallbackInterface(ctx context.Context) string {
	names, err := c.source.List(ctx)
	if err != nil {
		log.Debugf("[control] list interfaces failed: %v", err)
		return ""
	}
	if wireless := stats.DetectWireless(names); len(wireless) > 0 {
		return wireless[0]
	}
	return ""
}

func controlError(out *runner.Output, args ...string) error {
	reason := out.Stderr
	if reason == "" {
		reason = out.Stdout
	}
	if reason == "" {
		reason = fmt.Sprintf("exit status %d", out.ExitCode)
	}
	return fmt.Errorf("%w: %s: %s", common.ErrControlFailed, strings.Join(args, " "), reason)
}
