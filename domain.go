// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"time"
)

// Domain is the unit system of an axis.
type Domain uint8

const (
	// DomainNumber is a continuous numeric domain.
	DomainNumber Domain = iota
	// DomainInstant is a date/time domain measured in Unix seconds.
	DomainInstant
	// DomainCategory is a discrete domain of category indices.
	DomainCategory
)

func (d Domain) String() string {
	switch d {
	case DomainNumber:
		return "number"
	case DomainInstant:
		return "instant"
	case DomainCategory:
		return "category"
	}
	return fmt.Sprintf("Domain(%d)", uint8(d))
}

// ParseDomain returns the Domain named by s, as produced by Domain.String.
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "", "number":
		return DomainNumber, nil
	case "instant", "time", "datetime":
		return DomainInstant, nil
	case "category":
		return DomainCategory, nil
	}
	return 0, fmt.Errorf("unknown axis domain %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Domain) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Domain) UnmarshalText(b []byte) (err error) {
	*d, err = ParseDomain(string(b))
	return
}

// Value is a domain value tagged with the domain it belongs to. All
// components work on the float64 coordinate returned by Coord.
type Value struct {
	domain Domain
	coord  float64
}

// Number returns a numeric domain value.
func Number(v float64) Value {
	return Value{DomainNumber, v}
}

// Instant returns a date/time domain value. Sub-second precision is kept.
func Instant(t time.Time) Value {
	return Value{DomainInstant, float64(t.UnixNano()) / 1e9}
}

// Category returns the value of the category at index i.
func Category(i int) Value {
	return Value{DomainCategory, float64(i)}
}

// Domain returns the domain v belongs to.
func (v Value) Domain() Domain {
	return v.domain
}

// Coord returns the axis coordinate of v.
func (v Value) Coord() float64 {
	return v.coord
}

// Time returns v as a time in UTC. It is only meaningful for DomainInstant.
func (v Value) Time() time.Time {
	return coordTime(v.coord)
}

// Index returns v as a category index. It is only meaningful for
// DomainCategory.
func (v Value) Index() int {
	return int(math.Round(v.coord))
}

func (v Value) String() string {
	switch v.domain {
	case DomainInstant:
		return v.Time().Format(time.RFC3339)
	case DomainCategory:
		return fmt.Sprintf("#%d", v.Index())
	}
	return fmt.Sprintf("%g", v.coord)
}

// InstantRange returns the range spanning the instants from and to.
func InstantRange(from, to time.Time) (Range, error) {
	return NewRange(Instant(from).Coord(), Instant(to).Coord())
}

// CategoryRange returns the range covering the category indices first to
// last inclusive.
func CategoryRange(first, last int) (Range, error) {
	return NewRange(float64(first), float64(last))
}

func coordTime(c float64) time.Time {
	sec, frac := math.Modf(c)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
}
