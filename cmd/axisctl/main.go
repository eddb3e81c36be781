// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command axisctl inspects axis configurations: it prints ticks, maps values
// to pixels, replays zoom and pan gestures and renders previews.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	axis "github.com/kofi-q/axis-go"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

// env holds defaults read from AXISCTL_* environment variables. Flags
// override them.
type env struct {
	// LogLevel is the logrus level name.
	// Env: AXISCTL_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is text or json.
	// Env: AXISCTL_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// PixelLength overrides the configured axis length when positive.
	// Env: AXISCTL_PIXEL_LENGTH
	PixelLength float64 `envconfig:"PIXEL_LENGTH"`

	// MinSpacing overrides the configured tick spacing when positive.
	// Env: AXISCTL_MIN_SPACING
	MinSpacing float64 `envconfig:"MIN_SPACING"`
}

func loadEnv() (env, error) {
	var e env
	if err := envconfig.Process("AXISCTL", &e); err != nil {
		return env{}, err
	}
	return e, nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand.
type options struct {
	env

	configPath string
	start, end string

	// clock is handed to the axis controller. Nil selects time.Now.
	clock func() time.Time
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "axisctl",
		Short:         "Inspect chart axis ranges and ticks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return fmt.Errorf("unable to read environment: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				e.LogLevel = opts.LogLevel
			}
			if flags.Changed("log-format") {
				e.LogFormat = opts.LogFormat
			}
			if flags.Changed("pixels") {
				e.PixelLength = opts.PixelLength
			}
			if flags.Changed("min-spacing") {
				e.MinSpacing = opts.MinSpacing
			}
			opts.env = e
			return setupLogger(opts.LogLevel, opts.LogFormat)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "axis config file (.toml, .yaml)")
	f.StringVar(&opts.start, "start", "", "override the range start")
	f.StringVar(&opts.end, "end", "", "override the range end")
	f.Float64Var(&opts.PixelLength, "pixels", 0, "override the axis length in pixels")
	f.Float64Var(&opts.MinSpacing, "min-spacing", 0, "override the minimum major tick spacing in pixels")
	f.StringVar(&opts.LogLevel, "log-level", "info", "log level")
	f.StringVar(&opts.LogFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(ticksCmd(opts))
	cmd.AddCommand(mapCmd(opts))
	cmd.AddCommand(zoomCmd(opts))
	cmd.AddCommand(previewCmd(opts))
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func setupLogger(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	axis.SetLogger(l)
	return nil
}

// loadAxis builds the axis named by the shared flags.
func (o *options) loadAxis() (*axis.Axis, *axis.Config, error) {
	cfg := axis.DefaultConfig()
	if o.configPath != "" {
		c, err := axis.LoadConfig(o.configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = *c
	}
	if o.PixelLength > 0 {
		cfg.PixelLength = o.PixelLength
	}
	if o.MinSpacing > 0 {
		cfg.MinSpacing = o.MinSpacing
	}

	domain, err := axis.ParseDomain(cfg.Domain)
	if err != nil {
		return nil, nil, err
	}
	if err := o.override(&cfg, domain); err != nil {
		return nil, nil, err
	}

	p, err := cfg.Params()
	if err != nil {
		return nil, nil, err
	}
	p.Clock = o.clock
	a, err := axis.NewAxis(p)
	if err != nil {
		return nil, nil, err
	}
	axis.Logger().WithFields(logrus.Fields{
		"axis":   cfg.Name,
		"domain": domain.String(),
		"range":  a.Range().String(),
	}).Debug("axis loaded")
	return a, &cfg, nil
}

func (o *options) override(cfg *axis.Config, domain axis.Domain) error {
	for _, b := range []struct {
		flag string
		num  *float64
		t    *time.Time
	}{
		{o.start, &cfg.Start, &cfg.From},
		{o.end, &cfg.End, &cfg.To},
	} {
		if b.flag == "" {
			continue
		}
		v, err := parseValue(domain, b.flag, cfg.Categories)
		if err != nil {
			return err
		}
		*b.num = v.Coord()
		if domain == axis.DomainInstant {
			*b.t = v.Time()
		}
	}
	return nil
}

// parseValue reads a domain value from the command line. Instants are
// RFC 3339 timestamps or Unix seconds; categories are names or indices.
func parseValue(domain axis.Domain, s string, categories []string) (axis.Value, error) {
	switch domain {
	case axis.DomainInstant:
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return axis.Instant(t), nil
		}
		sec, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return axis.Value{}, fmt.Errorf("invalid instant %q", s)
		}
		return axis.Instant(time.Unix(0, int64(sec*1e9))), nil
	case axis.DomainCategory:
		for i, c := range categories {
			if c == s {
				return axis.Category(i), nil
			}
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return axis.Value{}, fmt.Errorf("unknown category %q", s)
		}
		return axis.Category(i), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return axis.Value{}, fmt.Errorf("invalid number %q", s)
	}
	return axis.Number(v), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "axisctl version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}
