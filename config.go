// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Config is the file form of AxisParams. It is read from TOML or YAML.
type Config struct {
	Name   string `toml:"name" yaml:"name"`
	Domain string `toml:"domain" yaml:"domain"`

	// Start and End bound number and category axes.
	Start float64 `toml:"start" yaml:"start"`
	End   float64 `toml:"end" yaml:"end"`

	// From and To bound instant axes.
	From time.Time `toml:"from" yaml:"from"`
	To   time.Time `toml:"to" yaml:"to"`

	Categories []string `toml:"categories" yaml:"categories"`
	Hidden     []int    `toml:"hidden" yaml:"hidden"`

	LogBase     float64 `toml:"log_base" yaml:"log_base"`
	Reversed    bool    `toml:"reversed" yaml:"reversed"`
	PixelLength float64 `toml:"pixel_length" yaml:"pixel_length"`
	MinSpacing  float64 `toml:"min_spacing" yaml:"min_spacing"`

	Labels    LabelsConfig    `toml:"labels" yaml:"labels"`
	Limits    LimitsConfig    `toml:"limits" yaml:"limits"`
	Skips     []SkipConfig    `toml:"skips" yaml:"skips"`
	Ticks     TicksConfig     `toml:"ticks" yaml:"ticks"`
	Animation AnimationConfig `toml:"animation" yaml:"animation"`
}

// LabelsConfig is the file form of Metrics. Font names a TrueType or
// OpenType file; without one labels are measured with a fixed 7x13 face.
type LabelsConfig struct {
	Font     string  `toml:"font" yaml:"font"`
	Size     float64 `toml:"size" yaml:"size"`
	Padding  float64 `toml:"padding" yaml:"padding"`
	Vertical bool    `toml:"vertical" yaml:"vertical"`
}

// LimitsConfig is the file form of Limits. Bounds holds either nothing or
// the two hard bounds.
type LimitsConfig struct {
	MinSpan        float64   `toml:"min_span" yaml:"min_span"`
	MaxSpan        float64   `toml:"max_span" yaml:"max_span"`
	Bounds         []float64 `toml:"bounds" yaml:"bounds"`
	AllowZeroWidth bool      `toml:"allow_zero_width" yaml:"allow_zero_width"`
}

// SkipConfig is the file form of Skip.
type SkipConfig struct {
	Start float64 `toml:"start" yaml:"start"`
	End   float64 `toml:"end" yaml:"end"`
}

// TicksConfig is the file form of Policy. Units are only used on instant
// axes.
type TicksConfig struct {
	Major          float64 `toml:"major" yaml:"major"`
	MajorUnit      string  `toml:"major_unit" yaml:"major_unit"`
	Minor          float64 `toml:"minor" yaml:"minor"`
	MinorUnit      string  `toml:"minor_unit" yaml:"minor_unit"`
	MinorDivisions int     `toml:"minor_divisions" yaml:"minor_divisions"`
	MaxTicks       int     `toml:"max_ticks" yaml:"max_ticks"`
}

// AnimationConfig configures range animations. Durations use
// time.ParseDuration syntax.
type AnimationConfig struct {
	Duration       string  `toml:"duration" yaml:"duration"`
	BounceDuration string  `toml:"bounce_duration" yaml:"bounce_duration"`
	Curve          string  `toml:"curve" yaml:"curve"`
	Elastic        float64 `toml:"elastic" yaml:"elastic"`
}

// DefaultConfig returns the configuration of a numeric axis over [0, 100].
func DefaultConfig() Config {
	return Config{
		Name:        "x",
		Domain:      DomainNumber.String(),
		End:         100,
		PixelLength: 500,
		Animation: AnimationConfig{
			Duration: DefaultDuration.String(),
			Curve:    "ease-in-out",
		},
	}
}

// Format names a configuration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
}

// LoadConfig reads the configuration file at path. The format follows the
// file extension.
func LoadConfig(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	cfg, err := ParseConfig(b, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes b. Fields missing from b keep their DefaultConfig
// values.
func ParseConfig(b []byte, format Format) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(b, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(b, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s config: %w", format, err)
	}
	return &cfg, nil
}

// Marshal encodes c in the given format.
func (c *Config) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(c)
	case FormatYAML:
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("unsupported config format %q", format)
}

// Save writes c to path in the format implied by its extension.
func (c *Config) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	b, err := c.Marshal(format)
	if err != nil {
		return fmt.Errorf("unable to encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}
	return nil
}

// Params converts c into AxisParams.
func (c *Config) Params() (AxisParams, error) {
	domain, err := ParseDomain(c.Domain)
	if err != nil {
		return AxisParams{}, err
	}

	p := AxisParams{
		Name:        c.Name,
		Domain:      domain,
		Range:       Range{c.Start, c.End},
		LogBase:     c.LogBase,
		Reversed:    c.Reversed,
		PixelLength: c.PixelLength,
		MinSpacing:  c.MinSpacing,
		Categories:  c.Categories,
		Hidden:      c.Hidden,
		MaxTicks:    c.Ticks.MaxTicks,
		Elastic:     c.Animation.Elastic,
		Metrics: Metrics{
			Padding:  c.Labels.Padding,
			Vertical: c.Labels.Vertical,
		},
		Limits: Limits{
			MinSpan:        c.Limits.MinSpan,
			MaxSpan:        c.Limits.MaxSpan,
			AllowZeroWidth: c.Limits.AllowZeroWidth,
		},
	}

	if domain == DomainInstant {
		if p.Range, err = InstantRange(c.From, c.To); err != nil {
			return AxisParams{}, err
		}
	}

	if c.Labels.Font != "" {
		if p.Metrics.Face, err = LoadFace(c.Labels.Font, c.Labels.Size); err != nil {
			return AxisParams{}, fmt.Errorf("labels.font: %w", err)
		}
	}

	switch len(c.Limits.Bounds) {
	case 0:
	case 2:
		p.Limits.HardBounds = &Range{c.Limits.Bounds[0], c.Limits.Bounds[1]}
	default:
		return AxisParams{}, fmt.Errorf("limits.bounds needs 2 values, got %d", len(c.Limits.Bounds))
	}

	for _, s := range c.Skips {
		p.Skips = append(p.Skips, Skip(s))
	}

	if p.Policy, err = c.Ticks.policy(); err != nil {
		return AxisParams{}, err
	}

	if p.Duration, err = parseDuration(c.Animation.Duration); err != nil {
		return AxisParams{}, fmt.Errorf("animation.duration: %w", err)
	}
	if p.BounceDuration, err = parseDuration(c.Animation.BounceDuration); err != nil {
		return AxisParams{}, fmt.Errorf("animation.bounce_duration: %w", err)
	}
	if p.Curve, err = ParseCurve(c.Animation.Curve); err != nil {
		return AxisParams{}, fmt.Errorf("animation.curve: %w", err)
	}
	return p, nil
}

// Build returns the axis described by c.
func (c *Config) Build() (*Axis, error) {
	p, err := c.Params()
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", c.Name, err)
	}
	return NewAxis(p)
}

func (t TicksConfig) policy() (Policy, error) {
	major, err := ParseUnit(t.MajorUnit)
	if err != nil {
		return Policy{}, fmt.Errorf("ticks.major_unit: %w", err)
	}
	minor, err := ParseUnit(t.MinorUnit)
	if err != nil {
		return Policy{}, fmt.Errorf("ticks.minor_unit: %w", err)
	}
	p := Policy{
		Major:          Frequency{Step: t.Major, Unit: major},
		Minor:          Frequency{Step: t.Minor, Unit: minor},
		MinorDivisions: t.MinorDivisions,
	}
	if err := p.Major.Validate(); err != nil {
		return Policy{}, fmt.Errorf("ticks.major: %w", err)
	}
	if err := p.Minor.Validate(); err != nil {
		return Policy{}, fmt.Errorf("ticks.minor: %w", err)
	}
	return p, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
