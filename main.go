package main

import (
	"fmt"
	"os"

	"github.com/wifimon/wifimon/version"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Print(version.String())
	}

	app := &cli.App{
		Name:    version.NAME,
		Usage:   "Wi-Fi data usage monitor and Wi-Fi control",
		Version: version.VERSION,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "/etc/wifimon/wifimon.yaml",
				Usage:   "config file path for wifimon, in yaml",
				EnvVars: []string{"WIFIMON_CONFIG_PATH"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "INFO",
				Usage:   "set log level",
				EnvVars: []string{"WIFIMON_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "hostname",
				Value:   "",
				Usage:   "change hostname",
				EnvVars: []string{"WIFIMON_HOSTNAME"},
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Value: false,
				Usage: "print control commands instead of running them",
			},
			&cli.BoolFlag{
				Name:    "sudo",
				Value:   true,
				Usage:   "prefix privileged commands with sudo, use --sudo=false when already root",
				EnvVars: []string{"WIFIMON_SUDO"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "ifaces",
				Usage:  "List network interfaces",
				Action: runIfaces,
			},
			{
				Name:   "monitor",
				Usage:  "Monitor interface usage",
				Action: runMonitor,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "iface",
						Usage: "interface name (e.g., wlo1, wlan0, en0, Wi-Fi)",
					},
					&cli.Float64Flag{
						Name:  "interval",
						Usage: "refresh interval seconds",
					},
					&cli.IntFlag{
						Name:  "count",
						Usage: "stop after this many rows, 0 runs until Ctrl+C",
					},
					&cli.StringFlag{
						Name:    "statsd",
						Usage:   "push gauges to this statsd address",
						EnvVars: []string{"WIFIMON_STATSD"},
					},
					&cli.StringFlag{
						Name:  "alert",
						Usage: "warn when a rate exceeds this, e.g. 10MB",
					},
				},
			},
			{
				Name:      "wifi",
				Usage:     "Turn Wi-Fi on/off",
				ArgsUsage: "on|off",
				Action:    runWifi,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "iface",
						Usage: "interface hint (macOS/Windows name or Linux device)",
					},
				},
			},
			{
				Name:      "monitor-mode",
				Usage:     "Linux only: set/unset monitor mode",
				ArgsUsage: "enable|disable",
				Action:    runMonitorMode,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "iface",
						Usage: "wireless interface (e.g., wlan0, wlp3s0)",
					},
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Errorf("Error running wifimon: %v", err)
		os.Exit(1)
	}
}
