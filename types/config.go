package types

import (
	"fmt"
	"os"
	"time"

	units "github.com/docker/go-units"
	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	yaml "gopkg.in/yaml.v2"
)

// Config contain all configs
type Config struct {
	Interface string  `yaml:"interface"`
	Interval  float64 `yaml:"interval" default:"1"`
	NoSudo    bool    `yaml:"no_sudo"`
	Statsd    string  `yaml:"statsd"`
	AlertRate string  `yaml:"alert_rate"`
	Runner    string  `yaml:"runner" default:"shell"`

	HostName   string `yaml:"-"`
	DryRun     bool   `yaml:"-"`
	Count      int    `yaml:"-"`
	AlertBytes int64  `yaml:"-"`
}

// Prepare 从cli覆写并做准备
func (config *Config) Prepare(c *cli.Context) {
	if c.String("hostname") != "" {
		config.HostName = c.String("hostname")
	} else {
		hostname, err := os.Hostname()
		if err != nil {
			log.Fatal(err)
		}
		config.HostName = hostname
	}

	if c.Bool("dry-run") {
		config.DryRun = true
	}
	if c.IsSet("sudo") {
		config.NoSudo = !c.Bool("sudo")
	}

	// subcommand flags override the file, flags absent on a command read as zero
	if c.String("iface") != "" {
		config.Interface = c.String("iface")
	}
	if c.IsSet("interval") {
		config.Interval = c.Float64("interval")
	}
	if c.String("statsd") != "" {
		config.Statsd = c.String("statsd")
	}
	if c.String("alert") != "" {
		config.AlertRate = c.String("alert")
	}
	if c.IsSet("count") {
		config.Count = c.Int("count")
	}
}

// Duration is the sampling interval as a time.Duration.
func (config *Config) Duration() time.Duration {
	return time.Duration(config.Interval * float64(time.Second))
}

// UseSudo reports whether privileged commands get a sudo prefix. The yaml
// key is inverted so the zero value keeps the safe default.
func (config *Config) UseSudo() bool {
	return !config.NoSudo
}

// Validate checks the effective config and resolves the alert threshold.
func (config *Config) Validate() error {
	if config.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", config.Interval)
	}
	if config.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", config.Count)
	}
	if config.AlertRate != "" {
		n, err := units.RAMInBytes(config.AlertRate)
		if err != nil {
			return fmt.Errorf("invalid alert rate %q: %w", config.AlertRate, err)
		}
		config.AlertBytes = n
	}
	return nil
}

// Print dumps the effective config for debugging.
func (config *Config) Print() {
	out, err := yaml.Marshal(config)
	if err != nil {
		log.Errorf("[config] marshal failed %v", err)
		return
	}
	log.Debugf("[config] effective config\n%s", out)
}
