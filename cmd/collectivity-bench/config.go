package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrInvalidConfig    errorkit.Error = "ErrInvalidConfig"
	ErrUnknownContainer errorkit.Error = "ErrUnknownContainer"
	ErrConfigFile       errorkit.Error = "ErrConfigFile"
)

// Config is resolved from the environment first, then the optional YAML file,
// and finally from the flags that were explicitly set.
type Config struct {
	N           int      `env:"COLLECTIVITY_BENCH_N" default:"1000000" yaml:"n"`
	Containers  []string `env:"COLLECTIVITY_BENCH_CONTAINERS" separator:"," default:"array,slice,deque,treemap,map,sync,list" yaml:"containers"`
	MetricsFile string   `env:"COLLECTIVITY_BENCH_METRICS_FILE" yaml:"metrics_file"`
	LogFile     string   `env:"COLLECTIVITY_BENCH_LOG_FILE" yaml:"log_file"`
	NoColor     bool     `yaml:"no_color"`
	Quiet       bool     `yaml:"quiet"`
}

func LoadConfig(args []string, stderr io.Writer) (Config, error) {
	var (
		flags      Config
		configPath string
	)
	fs := pflag.NewFlagSet("collectivity-bench", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: collectivity-bench [flags]")
		_, _ = fmt.Fprintln(stderr, "Inserts i -> i for every i in [0, n) into each container through the Insert and Len capabilities.")
		_, _ = fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	fs.IntVarP(&flags.N, "n", "n", 0, "number of inserted items")
	fs.StringSliceVarP(&flags.Containers, "containers", "c", nil, "comma separated containers: "+strings.Join(ContainerNames(), ","))
	fs.StringVar(&configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&flags.MetricsFile, "metrics-file", "", "write Prometheus text format metrics to this file")
	fs.StringVar(&flags.LogFile, "log-file", "", "write logs to this size rotated file instead of stderr")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "disable the progress bar")

	if err := fs.Parse(args); err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err)
	}

	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err)
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, ErrConfigFile.Wrap(err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, ErrConfigFile.Wrap(err)
		}
	}

	if fs.Changed("n") {
		c.N = flags.N
	}
	if fs.Changed("containers") {
		c.Containers = flags.Containers
	}
	if fs.Changed("metrics-file") {
		c.MetricsFile = flags.MetricsFile
	}
	if fs.Changed("log-file") {
		c.LogFile = flags.LogFile
	}
	if fs.Changed("no-color") {
		c.NoColor = flags.NoColor
	}
	if fs.Changed("quiet") {
		c.Quiet = flags.Quiet
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.N <= 0 {
		return ErrInvalidConfig.F("n must be positive, got %d", c.N)
	}
	if len(c.Containers) == 0 {
		return ErrInvalidConfig.F("no container selected")
	}
	for _, name := range c.Containers {
		if !slices.Contains(ContainerNames(), name) {
			return ErrUnknownContainer.F("%q, expected one of %s", name, strings.Join(ContainerNames(), ","))
		}
	}
	return nil
}
