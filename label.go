// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

// Adapted from Nice Numbers for Graph Labels by Paul Heckbert from "Graphics
// Gems", Academic Press, 1990

import (
	"math"
	"strconv"
)

// niceNum returns a "nice" number from the 1, 2, 5 x 10^n ladder
// approximately equal to val. The number is rounded if round is true.
// Otherwise it is the smallest ladder value not below val.
func niceNum(val float64, round bool) float64 {
	var nf float64

	exp := math.Floor(math.Log10(val))
	f := val / math.Pow(10, exp)
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3.0:
			nf = 2
		case f < 7.0:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2.0:
			nf = 2
		case f <= 5.0:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}

// mantissa returns the leading digit (1, 2 or 5) of a ladder value.
func mantissa(step float64) int {
	f := step / math.Pow(10, math.Floor(math.Log10(step)))
	return int(math.Round(f))
}

// defaultMinorDivisions returns the number of parts a major interval of the
// given ladder step is divided into.
func defaultMinorDivisions(step float64) int {
	if mantissa(step) == 2 {
		return 4
	}
	return 5
}

// TickmarkPrecision returns an appropriate number of decimal places for
// labels of ticks div apart.
func TickmarkPrecision(div float64) int {
	if div <= 0 || !finite(div) {
		return 0
	}
	return int(math.Max(-math.Floor(math.Log10(div)), 0))
}

// Nice widens r outward to whole multiples of a nice step chosen so that
// roughly count intervals cover it. It returns r unchanged if r is empty or
// count is not positive.
func Nice(r Range, count int) Range {
	if r.IsEmpty() || count <= 0 {
		return r
	}
	spread := niceNum(r.Span(), false)
	d := niceNum(spread/float64(count), true)
	return Range{
		math.Floor(r.Start/d) * d,
		math.Ceil(r.End/d) * d,
	}
}

// snap removes the floating point noise k*step accumulates, so that 3*0.1
// yields 0.3.
func snap(v, step float64) float64 {
	scale := math.Pow(10, float64(TickmarkPrecision(step)+3))
	if s := math.Round(v * scale); finite(s) && math.Abs(s) < 1<<53 {
		return s / scale
	}
	return v
}

// formatNumber renders v with the precision implied by step.
func formatNumber(v, step float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e15 || (abs < 1e-6 && step < 1e-6) {
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strconv.FormatFloat(v, 'f', TickmarkPrecision(step), 64)
}
