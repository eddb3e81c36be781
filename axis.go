// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"time"
)

// DefaultMinSpacing is the spacing between major ticks used to produce a
// first set of labels before they are measured.
const DefaultMinSpacing = 40

// AxisParams configures an Axis.
type AxisParams struct {
	Name   string
	Domain Domain
	Range  Range
	Limits Limits
	Skips  []Skip

	// LogBase makes the axis logarithmic when greater than 1.
	LogBase  float64
	Reversed bool

	PixelLength float64

	// MinSpacing is the smallest pixel distance between major ticks. Zero
	// derives it from the labels using Metrics.
	MinSpacing float64
	Metrics    Metrics

	Policy     Policy
	Categories []string
	Hidden     []int
	MaxTicks   int

	Duration       time.Duration
	BounceDuration time.Duration
	Curve          Curve
	Elastic        float64
	Clock          func() time.Time
}

// Axis ties together the range controller, skips and tick generator of a
// single chart axis, and hands the view layer ticks and mappers for the
// current range.
type Axis struct {
	*Controller

	skips      *DiscontinuitySet
	gen        Generator
	metrics    Metrics
	length     float64
	minSpacing float64
	reversed   bool
}

// NewAxis returns an axis configured by params.
func NewAxis(params AxisParams) (*Axis, error) {
	skips, err := NewDiscontinuitySet(params.Skips...)
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", params.Name, err)
	}
	base := 0.0
	if params.LogBase > 1 {
		base = params.LogBase
	}

	ctrl, err := NewController(ControllerParams{
		Name:           params.Name,
		Range:          params.Range,
		Limits:         params.Limits,
		Skips:          skips,
		LogBase:        base,
		Duration:       params.Duration,
		BounceDuration: params.BounceDuration,
		Curve:          params.Curve,
		Elastic:        params.Elastic,
		Clock:          params.Clock,
	})
	if err != nil {
		return nil, err
	}

	a := &Axis{
		Controller: ctrl,
		skips:      skips,
		gen: Generator{
			Domain:     params.Domain,
			LogBase:    base,
			Policy:     params.Policy,
			Categories: params.Categories,
			MaxTicks:   params.MaxTicks,
		},
		metrics:    params.Metrics,
		length:     params.PixelLength,
		minSpacing: params.MinSpacing,
		reversed:   params.Reversed,
	}
	for _, i := range params.Hidden {
		a.gen.HideCategory(i)
	}
	return a, nil
}

// Domain returns the kind of values on the axis.
func (a *Axis) Domain() Domain {
	return a.gen.Domain
}

// Generator returns the tick generator so hooks can be installed.
func (a *Axis) Generator() *Generator {
	return &a.gen
}

// PixelLength returns the drawable length of the axis.
func (a *Axis) PixelLength() float64 {
	return a.length
}

// SetPixelLength records a new drawable length, e.g. after a resize.
func (a *Axis) SetPixelLength(l float64) {
	a.length = l
}

// SetMinSpacing fixes the minimum distance between major ticks. Zero
// returns to measuring labels.
func (a *Axis) SetMinSpacing(px float64) {
	a.minSpacing = max(px, 0)
}

// AddSkip inserts a skip. See DiscontinuitySet.AddSkip.
func (a *Axis) AddSkip(s Skip) error {
	return a.skips.AddSkip(s)
}

// RemoveSkip removes a skip. See DiscontinuitySet.RemoveSkip.
func (a *Axis) RemoveSkip(s Skip) {
	a.skips.RemoveSkip(s)
}

// Skips returns the axis skips in ascending order.
func (a *Axis) Skips() []Skip {
	return a.skips.Skips()
}

// Mapper returns a mapper for the current range and pixel length.
func (a *Axis) Mapper() (*Mapper, error) {
	opts := []MapperOption{Reversed(a.reversed)}
	if a.gen.LogBase > 1 {
		opts = append(opts, Logarithmic(a.gen.LogBase))
	}
	return NewMapper(a.Range(), a.skips, a.length, opts...)
}

// MinSpacing returns the spacing used for the current range: the
// configured value, or the spacing the current labels need.
func (a *Axis) MinSpacing() float64 {
	if a.minSpacing > 0 {
		return a.minSpacing
	}
	_, spacing := a.measuredTicks()
	return spacing
}

// Ticks returns the ticks of the current range.
func (a *Axis) Ticks() []Tick {
	if a.minSpacing > 0 {
		return a.gen.Generate(a.Range(), a.skips, a.length, a.minSpacing)
	}
	ticks, _ := a.measuredTicks()
	return ticks
}

// measuredTicks widens the spacing until the generated labels fit. Wider
// spacing yields coarser steps whose labels may themselves be wider, so a
// few passes are allowed.
func (a *Axis) measuredTicks() ([]Tick, float64) {
	spacing := float64(DefaultMinSpacing)
	ticks := a.gen.Generate(a.Range(), a.skips, a.length, spacing)
	for pass := 0; pass < 3; pass++ {
		need := a.metrics.MinSpacing(ticks)
		if need <= spacing {
			break
		}
		spacing = need
		ticks = a.gen.Generate(a.Range(), a.skips, a.length, spacing)
	}
	return ticks, spacing
}
