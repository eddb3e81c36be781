// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package plotaxis draws axis ranges, skips and ticks with gonum/plot.
package plotaxis

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	axis "github.com/kofi-q/axis-go"
)

// Ticker implements plot.Ticker with an axis tick generator.
type Ticker struct {
	Generator *axis.Generator
	Skips     *axis.DiscontinuitySet

	// PixelLength is the nominal length of the plot axis. gonum/plot does
	// not pass it to tickers, so it must be estimated by the caller.
	PixelLength float64
	MinSpacing  float64
}

// Ticks implements plot.Ticker. Disabled ticks are left out; minor ticks
// have no label, which gonum/plot draws as a short mark.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	if t.Generator == nil {
		return nil
	}
	r, err := axis.NewRange(min, max)
	if err != nil {
		return nil
	}
	length := t.PixelLength
	if length <= 0 {
		length = 500
	}

	var ticks []plot.Tick
	for _, tk := range t.Generator.Generate(r, t.Skips, length, t.MinSpacing) {
		if !tk.Enabled {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: tk.Value, Label: tk.Label})
	}
	return ticks
}

// Normalizer implements plot.Normalizer by mapping values the way an axis
// mapper does: skips collapse and logarithmic axes are scaled. It keeps the
// mapper of the last range it was asked about.
type Normalizer struct {
	Skips    *axis.DiscontinuitySet
	LogBase  float64
	Reversed bool

	last *axis.Mapper
}

// Normalize implements plot.Normalizer.
func (n *Normalizer) Normalize(min, max, x float64) float64 {
	if min == max {
		return 0.5
	}
	m := n.mapper(min, max)
	if m == nil {
		return 0.5
	}
	return m.DomainToPixel(x)
}

func (n *Normalizer) mapper(min, max float64) *axis.Mapper {
	if n.last != nil && n.last.Range() == (axis.Range{Start: min, End: max}) {
		return n.last
	}
	opts := []axis.MapperOption{axis.Reversed(n.Reversed)}
	if n.LogBase > 1 {
		opts = append(opts, axis.Logarithmic(n.LogBase))
	}
	m, err := axis.NewMapper(axis.Range{Start: min, End: max}, n.Skips, 1, opts...)
	if err != nil {
		return nil
	}
	n.last = m
	return m
}

// Configure sets the range, scale and tick marker of dst from a. It fails
// if the axis skips or range cannot be mapped.
func Configure(dst *plot.Axis, a *axis.Axis) error {
	skips, err := axis.NewDiscontinuitySet(a.Skips()...)
	if err != nil {
		return fmt.Errorf("axis %q: %w", a.Name(), err)
	}
	m, err := a.Mapper()
	if err != nil {
		return fmt.Errorf("axis %q: %w", a.Name(), err)
	}

	r := a.Range()
	dst.Min, dst.Max = r.Start, r.End
	dst.Scale = &Normalizer{
		Skips:    skips,
		LogBase:  m.LogBase(),
		Reversed: m.IsReversed(),
	}
	dst.Tick.Marker = Ticker{
		Generator:   a.Generator(),
		Skips:       skips,
		PixelLength: a.PixelLength(),
		MinSpacing:  a.MinSpacing(),
	}
	return nil
}

// SkipColor shades skipped intervals in previews.
var SkipColor = color.NRGBA{R: 200, G: 200, B: 200, A: 128}

// Preview returns a plot showing a as its X axis. Each skip is marked with
// a shaded band and each enabled tick with a vertical line.
func Preview(a *axis.Axis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = a.Name()
	p.X.Label.Text = a.Domain().String()
	if err := Configure(&p.X, a); err != nil {
		return nil, err
	}
	p.Y.Min, p.Y.Max = 0, 1
	p.HideY()

	r := a.Range()
	for _, s := range a.Skips() {
		lo, hi := max(s.Start, r.Start), min(s.End, r.End)
		if lo >= hi {
			continue
		}
		band, err := plotter.NewPolygon(plotter.XYs{
			{X: lo, Y: 0}, {X: hi, Y: 0}, {X: hi, Y: 1}, {X: lo, Y: 1},
		})
		if err != nil {
			return nil, err
		}
		band.Color = SkipColor
		band.LineStyle.Width = 0
		p.Add(band)
	}

	for _, t := range a.Ticks() {
		if !t.Enabled {
			continue
		}
		height := 0.5
		if t.Major {
			height = 1
		}
		line, err := plotter.NewLine(plotter.XYs{{X: t.Value, Y: 0}, {X: t.Value, Y: height}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(0.5)
		p.Add(line)
	}
	return p, nil
}

// Save renders a preview of a to path. The image format follows the file
// extension (.png, .svg, .pdf ...).
func Save(a *axis.Axis, width, height vg.Length, path string) error {
	p, err := Preview(a)
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}
