// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"slices"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// DefaultMaxTicks bounds the number of ticks a single generation pass
// produces. Inputs that would exceed it yield no ticks at all.
const DefaultMaxTicks = 10000

// Tick is a position along an axis. Ticks carry no identity across
// generation passes; callers that track ticks between frames key them on
// Value.
type Tick struct {
	// Value is the domain coordinate of the tick.
	Value float64

	// Major is set for labelled ticks. Minor ticks have an empty Label.
	Major bool

	// Label is the text displayed next to a major tick.
	Label string

	// Enabled reports whether the tick should be drawn. Generated ticks are
	// enabled; an AlterFunc may disable them.
	Enabled bool
}

// Policy selects how tick frequencies are chosen. The zero Policy is fully
// automatic.
type Policy struct {
	// Major is the distance between major ticks. When zero, the generator
	// picks a nice step from the domain's ladder.
	Major Frequency `toml:"major" yaml:"major"`

	// Minor is the distance between minor ticks. When zero, MinorDivisions
	// applies.
	Minor Frequency `toml:"minor" yaml:"minor"`

	// MinorDivisions is the number of equal parts a major interval is cut
	// into by minor ticks. Zero picks a default for automatic policies and
	// draws no minor ticks for explicit ones. Negative disables minor ticks.
	MinorDivisions int `toml:"minor_divisions" yaml:"minor_divisions"`
}

// Automatic reports whether major ticks are chosen automatically.
func (p Policy) Automatic() bool {
	return p.Major.IsZero()
}

// FrequencyFunc overrides the generator's Policy for one pass. It returns
// false to keep the configured policy.
type FrequencyFunc func(visible Range) (Policy, bool)

// AlterFunc adjusts a tick before it is returned, typically to rewrite its
// label or disable it.
type AlterFunc func(t *Tick)

// LabelFunc formats the label of the major tick at v.
type LabelFunc func(v float64) string

// Generator produces tick sequences for an axis. Generation is a pure
// function of the generator's configuration and the arguments of Generate:
// the same inputs always produce the same sequence.
type Generator struct {
	// Domain selects the step ladder and label format.
	Domain Domain

	// LogBase makes the generator logarithmic when greater than 1.
	LogBase float64

	// Policy is the tick frequency policy.
	Policy Policy

	// Frequency, if set, is consulted before each pass.
	Frequency FrequencyFunc

	// Alter, if set, is applied to every tick.
	Alter AlterFunc

	// Format, if set, replaces the default label of major ticks.
	Format LabelFunc

	// Categories names category indices. Indices without a name are
	// labelled with their number.
	Categories []string

	// Hidden holds category indices that get no tick.
	Hidden bitset.BitSet

	// MaxTicks overrides DefaultMaxTicks when positive.
	MaxTicks int
}

// HideCategory stops generating a tick for the category at index i.
func (g *Generator) HideCategory(i int) {
	if i >= 0 {
		g.Hidden.Set(uint(i))
	}
}

// ShowCategory undoes HideCategory.
func (g *Generator) ShowCategory(i int) {
	if i >= 0 {
		g.Hidden.Clear(uint(i))
	}
}

func (g *Generator) maxTicks() int {
	if g.MaxTicks > 0 {
		return g.MaxTicks
	}
	return DefaultMaxTicks
}

// Generate returns the ticks for visible on an axis pixelLength pixels long,
// in ascending order with major and minor ticks interleaved. Automatic
// policies keep adjacent major ticks at least minSpacing pixels apart.
// Ticks strictly inside a skip are dropped, and a skip's two boundaries,
// which share a pixel, carry at most one tick.
//
// An empty range or a non-positive pixel length yields no ticks.
func (g *Generator) Generate(
	visible Range,
	skips *DiscontinuitySet,
	pixelLength, minSpacing float64,
) []Tick {
	if visible.Validate() != nil || visible.IsEmpty() || pixelLength <= 0 {
		return nil
	}
	if minSpacing <= 0 || !finite(minSpacing) {
		minSpacing = 1
	}

	policy := g.Policy
	if g.Frequency != nil {
		if p, ok := g.Frequency(visible); ok {
			policy = p
		}
	}

	pass := tickPass{
		g:          g,
		visible:    visible,
		skips:      skips,
		length:     pixelLength,
		minSpacing: minSpacing,
		policy:     policy,
		eps:        visible.Span() * 1e-9,
	}

	var ticks []Tick
	switch {
	case g.Domain == DomainCategory:
		ticks = pass.categories()
	case g.LogBase > 1:
		ticks = pass.logarithmic()
	case g.Domain == DomainInstant:
		ticks = pass.instants()
	default:
		ticks = pass.numbers()
	}
	if len(ticks) == 0 {
		return nil
	}

	ticks = slices.DeleteFunc(ticks, func(t Tick) bool {
		_, in := skips.Find(t.Value)
		return in
	})
	slices.SortStableFunc(ticks, func(a, b Tick) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		case a.Major && !b.Major:
			return -1
		case b.Major && !a.Major:
			return 1
		}
		return 0
	})
	ticks = slices.CompactFunc(ticks, func(a, b Tick) bool {
		return a.Value == b.Value
	})
	ticks = pass.mergeSkipEdges(ticks)

	if policy.Automatic() && g.Domain != DomainCategory && g.LogBase <= 1 {
		pass.spread(ticks)
	}

	for i := range ticks {
		t := &ticks[i]
		t.Enabled = true
		if !t.Major {
			t.Label = ""
		} else if g.Format != nil {
			t.Label = g.Format(t.Value)
		}
		if g.Alter != nil {
			g.Alter(t)
		}
	}
	return ticks
}

// tickPass holds the inputs of a single Generate call.
type tickPass struct {
	g          *Generator
	visible    Range
	skips      *DiscontinuitySet
	length     float64
	minSpacing float64
	policy     Policy
	eps        float64
}

// compressedSpan is the visible span once skips are collapsed.
func (p *tickPass) compressedSpan() float64 {
	return p.visible.Span() - p.skips.TotalSkippedSpan(p.visible)
}

// minStep returns the smallest domain distance that keeps two labels apart:
// the label footprint plus an equal gap.
func (p *tickPass) minStep() float64 {
	return p.compressedSpan() * 2 * p.minSpacing / p.length
}

func (p *tickPass) in(v float64) bool {
	return v >= p.visible.Start-p.eps && v <= p.visible.End+p.eps
}

func (p *tickPass) tooMany(step float64) bool {
	return step <= 0 || p.visible.Span()/step > float64(p.g.maxTicks())
}

func (p *tickPass) numbers() []Tick {
	if p.policy.Automatic() {
		need := p.minStep()
		if need <= 0 {
			return nil
		}
		step := niceNum(need, false)
		return p.aligned(step, p.minorStep(step), func(v float64) string {
			return formatNumber(v, step)
		})
	}

	step := math.Abs(p.policy.Major.Step)
	if p.tooMany(step) {
		return nil
	}
	return p.fromStart(step, func(v float64) string {
		return formatNumber(v, step)
	})
}

// minorStep returns the automatic minor distance for major step, or 0 when
// minor ticks are disabled.
func (p *tickPass) minorStep(step float64) float64 {
	if !p.policy.Minor.IsZero() {
		return math.Abs(p.policy.Minor.Step)
	}
	div := p.policy.MinorDivisions
	if div == 0 {
		div = defaultMinorDivisions(step)
	}
	if div < 2 {
		return 0
	}
	return step / float64(div)
}

// aligned returns majors on whole multiples of step and minors on whole
// multiples of minor. Alignment to multiples keeps ticks in place while the
// range pans.
func (p *tickPass) aligned(step, minor float64, label LabelFunc) []Tick {
	if p.tooMany(step) {
		return nil
	}
	var ticks []Tick
	kFirst := math.Ceil(p.visible.Start/step - 1e-9)
	kLast := math.Floor(p.visible.End/step + 1e-9)
	for k := kFirst; k <= kLast; k++ {
		v := snap(k*step, step)
		ticks = append(ticks, Tick{Value: v, Major: true, Label: label(v)})
	}

	if minor <= 0 || p.tooMany(minor) {
		return ticks
	}
	jFirst := math.Ceil(p.visible.Start/minor - 1e-9)
	jLast := math.Floor(p.visible.End/minor + 1e-9)
	for j := jFirst; j <= jLast; j++ {
		v := snap(j*minor, minor)
		if onGrid(v, step) {
			continue
		}
		ticks = append(ticks, Tick{Value: v})
	}
	return ticks
}

// fromStart returns majors at visible.Start + k*step, the explicit frequency
// layout.
func (p *tickPass) fromStart(step float64, label LabelFunc) []Tick {
	var ticks []Tick
	start := p.visible.Start
	for k := 0; ; k++ {
		v := snap(start+float64(k)*step, step)
		if !p.in(v) {
			break
		}
		ticks = append(ticks, Tick{Value: v, Major: true, Label: label(v)})
	}

	if minor := math.Abs(p.policy.Minor.Step); minor > 0 {
		if p.tooMany(minor) {
			return ticks
		}
		for k := 1; ; k++ {
			v := snap(start+float64(k)*minor, minor)
			if !p.in(v) {
				break
			}
			if onGrid(v-start, step) {
				continue
			}
			ticks = append(ticks, Tick{Value: v})
		}
		return ticks
	}

	if div := p.policy.MinorDivisions; div > 1 && !p.tooMany(step/float64(div)) {
		majors := len(ticks)
		for i := 0; i < majors; i++ {
			base := ticks[i].Value
			for j := 1; j < div; j++ {
				v := snap(base+float64(j)*step/float64(div), step/float64(div))
				if !p.in(v) {
					break
				}
				ticks = append(ticks, Tick{Value: v})
			}
		}
	}
	return ticks
}

func onGrid(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-6
}

func (p *tickPass) instants() []Tick {
	if p.policy.Automatic() {
		need := p.minStep()
		if need <= 0 {
			return nil
		}
		if need < 1 {
			step := niceNum(need, false)
			return p.aligned(step, p.minorStep(step), func(v float64) string {
				return coordTime(v).Format("15:04:05.000")
			})
		}
		rung := calendarStep(need)
		minor := rung.minor
		switch {
		case !p.policy.Minor.IsZero():
			minor = p.policy.Minor
		case p.policy.MinorDivisions < 0:
			minor = Frequency{}
		}
		return p.calendar(rung.major, minor, true)
	}

	major := p.policy.Major
	if major.Validate() != nil || p.policy.Minor.Validate() != nil {
		return nil
	}
	if p.tooMany(major.Seconds()) {
		return nil
	}
	ticks := p.calendar(major, p.policy.Minor, false)
	if div := p.policy.MinorDivisions; p.policy.Minor.IsZero() && div > 1 {
		majors := len(ticks)
		for i := 0; i < majors; i++ {
			next := major.add(coordTime(ticks[i].Value), 1)
			width := Instant(next).Coord() - ticks[i].Value
			for j := 1; j < div; j++ {
				v := ticks[i].Value + width*float64(j)/float64(div)
				if !p.in(v) {
					break
				}
				ticks = append(ticks, Tick{Value: v})
			}
		}
	}
	return ticks
}

// calendar steps through time with calendar arithmetic. When aligned is set
// the majors start on a whole multiple of the frequency, otherwise at the
// range start.
func (p *tickPass) calendar(major, minor Frequency, aligned bool) []Tick {
	start := coordTime(p.visible.Start)
	origin := start
	if aligned {
		origin = major.align(start)
	}

	layout := major.layout()
	var ticks []Tick
	majors := make(map[int64]bool)
	for n := 0; n <= p.g.maxTicks(); n++ {
		t := major.add(origin, n)
		v := Instant(t).Coord()
		if v > p.visible.End+p.eps {
			break
		}
		if !p.in(v) {
			continue
		}
		majors[t.UnixNano()] = true
		ticks = append(ticks, Tick{Value: v, Major: true, Label: t.Format(layout)})
	}

	if minor.IsZero() || minor.Validate() != nil || p.tooMany(minor.Seconds()) {
		return ticks
	}
	origin = start
	if aligned {
		origin = minor.align(start)
	}
	for n := 0; n <= p.g.maxTicks(); n++ {
		t := minor.add(origin, n)
		v := Instant(t).Coord()
		if v > p.visible.End+p.eps {
			break
		}
		if !p.in(v) || majors[t.UnixNano()] {
			continue
		}
		ticks = append(ticks, Tick{Value: v})
	}
	return ticks
}

func (p *tickPass) logarithmic() []Tick {
	base := p.g.LogBase
	if p.visible.Start <= 0 {
		return nil
	}
	lo := logBase(p.visible.Start, base)
	hi := logBase(p.visible.End, base)

	kFirst := int(math.Ceil(lo - 1e-9))
	kLast := int(math.Floor(hi + 1e-9))
	if kLast-kFirst > p.g.maxTicks() {
		return nil
	}

	// n is the number of decades between majors. Strides beyond the
	// visible decades all yield the same single major, so n is capped there.
	stride := 1.0
	if p.policy.Automatic() {
		decadePx := p.length / (hi - lo)
		if decadePx < 2*p.minSpacing {
			stride = niceNum(2*p.minSpacing/decadePx, false)
		}
	} else if s := math.Round(math.Abs(p.policy.Major.Step)); s > 1 {
		stride = s
	}
	n := int(math.Min(stride, float64(max(kLast-kFirst+1, 1))))

	var ticks []Tick
	for k := kFirst; k <= kLast; k++ {
		v := power(base, k)
		if floorMod(k, n) == 0 {
			ticks = append(ticks, Tick{Value: v, Major: true, Label: strconv.FormatFloat(v, 'g', -1, 64)})
		} else if p.policy.MinorDivisions >= 0 {
			ticks = append(ticks, Tick{Value: v})
		}
	}

	if n > 1 || p.policy.MinorDivisions < 0 || base != math.Trunc(base) {
		return ticks
	}
	for k := kFirst - 1; k <= kLast; k++ {
		decade := power(base, k)
		for m := 2; float64(m) < base; m++ {
			v := float64(m) * decade
			if p.in(v) {
				ticks = append(ticks, Tick{Value: v})
			}
		}
	}
	return ticks
}

func power(base float64, k int) float64 {
	if base == 10 {
		return math.Pow10(k)
	}
	return math.Pow(base, float64(k))
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func (p *tickPass) categories() []Tick {
	first := int(math.Ceil(p.visible.Start))
	last := int(math.Floor(p.visible.End))
	if last-first >= p.g.maxTicks() {
		return nil
	}
	var ticks []Tick
	for i := first; i <= last; i++ {
		if i >= 0 && p.g.Hidden.Test(uint(i)) {
			continue
		}
		label := strconv.Itoa(i)
		if i >= 0 && i < len(p.g.Categories) {
			label = p.g.Categories[i]
		}
		ticks = append(ticks, Tick{Value: float64(i), Major: true, Label: label})
	}
	return ticks
}

// mergeSkipEdges keeps one tick per collapsed skip. A skip's start and end
// share a pixel, so when both carry a tick the end tick is dropped unless it
// is major and the start tick is not.
func (p *tickPass) mergeSkipEdges(ticks []Tick) []Tick {
	if p.skips.Len() == 0 {
		return ticks
	}
	var drop []int
	for _, s := range p.skips.Skips() {
		i, j := p.tickAt(ticks, s.Start), p.tickAt(ticks, s.End)
		if i < 0 || j < 0 || i == j {
			continue
		}
		if ticks[j].Major && !ticks[i].Major {
			drop = append(drop, i)
		} else {
			drop = append(drop, j)
		}
	}
	if len(drop) == 0 {
		return ticks
	}
	out := ticks[:0]
	for i, t := range ticks {
		if !slices.Contains(drop, i) {
			out = append(out, t)
		}
	}
	return out
}

// tickAt returns the index of the tick at v, or -1. ticks must be sorted.
func (p *tickPass) tickAt(ticks []Tick, v float64) int {
	i, _ := slices.BinarySearchFunc(ticks, v-p.eps, func(t Tick, target float64) int {
		switch {
		case t.Value < target:
			return -1
		case t.Value > target:
			return 1
		}
		return 0
	})
	if i < len(ticks) && math.Abs(ticks[i].Value-v) <= p.eps {
		return i
	}
	return -1
}

// spread demotes major ticks that a skip has pulled closer than minSpacing
// pixels to the previous major. Without skips automatic steps are already
// far enough apart and nothing changes.
func (p *tickPass) spread(ticks []Tick) {
	if p.skips.Len() == 0 {
		return
	}
	scale := p.length / p.compressedSpan()
	last := math.Inf(-1)
	for i := range ticks {
		if !ticks[i].Major {
			continue
		}
		px := (p.skips.ToCompressedOffset(ticks[i].Value, p.visible) - p.visible.Start) * scale
		if px-last < p.minSpacing {
			ticks[i].Major = false
			continue
		}
		last = px
	}
}
