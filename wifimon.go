package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/wifimon/wifimon/common"
	"github.com/wifimon/wifimon/control"
	"github.com/wifimon/wifimon/monitor"
	"github.com/wifimon/wifimon/runner"
	"github.com/wifimon/wifimon/runner/dryrun"
	"github.com/wifimon/wifimon/runner/mocks"
	"github.com/wifimon/wifimon/runner/shell"
	"github.com/wifimon/wifimon/stats"
	"github.com/wifimon/wifimon/types"

	"github.com/jinzhu/configor"
	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
)

// platform is detected once and handed to whoever needs it.
var platform = types.DetectPlatform()

func setupLogLevel(l string) error {
	level, err := log.ParseLevel(l)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func initConfig(c *cli.Context) (*types.Config, error) {
	config := &types.Config{}

	files := []string{}
	if path := c.String("config"); path != "" {
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		} else if c.IsSet("config") {
			// an explicitly named file must exist, the default path may not
			return nil, fmt.Errorf("load config failed: %v", err)
		}
	}
	if err := configor.New(&configor.Config{ENVPrefix: "WIFIMON"}).Load(config, files...); err != nil {
		return nil, fmt.Errorf("load config failed: %v", err)
	}

	config.Prepare(c)
	config.Print()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func newRunner(config *types.Config) (runner.Runner, error) {
	kind := config.Runner
	if config.DryRun {
		kind = common.DryRunRunner
	}
	switch kind {
	case common.ShellRunner:
		return shell.New(), nil
	case common.DryRunRunner:
		return dryrun.New(os.Stdout), nil
	case common.MocksRunner:
		return mocks.FromTemplate(), nil
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidRunnerType, kind)
	}
}

// defaultInterface picks the monitor target when --iface is not given:
// the first wireless-looking name, or failing that the first name at all.
func defaultInterface(ctx context.Context, source stats.Source) (string, error) {
	names, err := source.List(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", common.ErrNoInterfaces
	}
	if wireless := stats.DetectWireless(names); len(wireless) > 0 {
		return wireless[0], nil
	}
	return names[0], nil
}

// exitCode maps an error onto the shell convention: 2 for usage mistakes
// the user can fix by retyping, 1 for everything else.
func exitCode(err error) int {
	switch {
	case errors.Is(err, common.ErrInterfaceUnavailable):
		return 1
	case errors.Is(err, common.ErrInterfaceRequired), errors.Is(err, common.ErrInterfaceNotFound):
		return 2
	default:
		return 1
	}
}

func runIfaces(c *cli.Context) error {
	if err := setupLogLevel(c.String("log-level")); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	names, err := stats.New().List(c.Context)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runMonitor(c *cli.Context) error {
	if err := setupLogLevel(c.String("log-level")); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	config, err := initConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	source := stats.New()
	iface := config.Interface
	if iface == "" {
		if iface, err = defaultInterface(ctx, source); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		log.Debugf("[monitor] no interface given, picked %s", iface)
	}

	if err := monitor.New(config, source, os.Stdout, iface).Run(ctx); err != nil {
		return cli.Exit(err.Error(), exitCode(err))
	}
	return nil
}

func runWifi(c *cli.Context) error {
	if err := setupLogLevel(c.String("log-level")); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	state := strings.ToLower(c.Args().First())
	if c.NArg() != 1 || (state != common.WifiOn && state != common.WifiOff) {
		return cli.Exit("state must be 'on' or 'off'", 2)
	}
	config, err := initConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	r, err := newRunner(config)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	ctrl := control.New(config, platform, r, stats.New(), os.Stdout)
	if err := ctrl.SetWifiPower(ctx, state == common.WifiOn, config.Interface); err != nil {
		return cli.Exit(err.Error(), exitCode(err))
	}
	return nil
}

func runMonitorMode(c *cli.Context) error {
	if err := setupLogLevel(c.String("log-level")); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	action := strings.ToLower(c.Args().First())
	if c.NArg() != 1 || (action != common.ModeEnable && action != common.ModeDisable) {
		return cli.Exit("action must be 'enable' or 'disable'", 2)
	}
	config, err := initConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	r, err := newRunner(config)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	ctrl := control.New(config, platform, r, stats.New(), os.Stdout)
	if err := ctrl.SetMonitorMode(ctx, action == common.ModeEnable, config.Interface); err != nil {
		return cli.Exit(err.Error(), exitCode(err))
	}
	return nil
}
