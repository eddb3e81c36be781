// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"time"
)

// Unit is a calendar unit used by date/time tick frequencies.
type Unit uint8

const (
	// UnitNone marks a plain numeric step.
	UnitNone Unit = iota
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

var unitNames = [...]string{"", "second", "minute", "hour", "day", "week", "month", "year"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// ParseUnit returns the unit named s. Plural names are accepted.
func ParseUnit(s string) (Unit, error) {
	for i, name := range unitNames {
		if s == name || (name != "" && s == name+"s") {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown calendar unit %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(b []byte) (err error) {
	*u, err = ParseUnit(string(b))
	return
}

// nominal returns the approximate length of the unit in seconds. It is used
// to compare frequencies, never to step through time.
func (u Unit) nominal() float64 {
	switch u {
	case UnitSecond:
		return 1
	case UnitMinute:
		return 60
	case UnitHour:
		return 3600
	case UnitDay:
		return 86400
	case UnitWeek:
		return 7 * 86400
	case UnitMonth:
		return 2629746
	case UnitYear:
		return 31556952
	}
	return 1
}

// Frequency is the distance between two ticks. For numeric axes only Step
// is used. For date/time axes Step counts Units; a zero Unit means Step is
// in seconds.
type Frequency struct {
	Step float64 `toml:"step" yaml:"step"`
	Unit Unit    `toml:"unit,omitempty" yaml:"unit,omitempty"`
}

// IsZero reports whether f is unset.
func (f Frequency) IsZero() bool {
	return f.Step == 0
}

// Validate reports whether f can be stepped. Calendar units only take
// whole, positive step counts.
func (f Frequency) Validate() error {
	if f.Unit == UnitNone || f.Step == 0 {
		return nil
	}
	if f.Step < 1 || f.Step != math.Trunc(f.Step) {
		return fmt.Errorf("frequency %s: step must be a whole number of %ss", f, f.Unit)
	}
	return nil
}

// Seconds returns the nominal length of f in seconds.
func (f Frequency) Seconds() float64 {
	if f.Unit == UnitNone {
		return f.Step
	}
	return f.Step * f.Unit.nominal()
}

func (f Frequency) String() string {
	if f.Unit == UnitNone {
		return fmt.Sprintf("%g", f.Step)
	}
	return fmt.Sprintf("%g %s", f.Step, f.Unit)
}

// add advances t by n steps of f using calendar arithmetic, so that adding
// a month to January 31st lands on March 3rd rather than drifting by a fixed
// number of seconds.
func (f Frequency) add(t time.Time, n int) time.Time {
	count := int(f.Step) * n
	switch f.Unit {
	case UnitNone:
		return t.Add(time.Duration(f.Step * float64(n) * float64(time.Second)))
	case UnitSecond:
		return t.Add(time.Duration(count) * time.Second)
	case UnitMinute:
		return t.Add(time.Duration(count) * time.Minute)
	case UnitHour:
		return t.Add(time.Duration(count) * time.Hour)
	case UnitDay:
		return t.AddDate(0, 0, count)
	case UnitWeek:
		return t.AddDate(0, 0, 7*count)
	case UnitMonth:
		return t.AddDate(0, count, 0)
	case UnitYear:
		return t.AddDate(count, 0, 0)
	}
	return t
}

// align returns the latest time not after t that lies on a whole multiple
// of f. Weeks start on Monday.
func (f Frequency) align(t time.Time) time.Time {
	t = t.UTC()
	n := int(f.Step)
	if n < 1 {
		n = 1
	}
	switch f.Unit {
	case UnitNone, UnitSecond, UnitMinute, UnitHour:
		step := f.Seconds()
		sec := math.Floor(float64(t.Unix())/step) * step
		return time.Unix(int64(sec), 0).UTC()
	case UnitDay:
		day := floorDiv(int(t.Unix()/86400), n) * n
		return time.Unix(int64(day)*86400, 0).UTC()
	case UnitWeek:
		// 1970-01-05 was a Monday.
		const monday = 4 * 86400
		week := floorDiv(int((t.Unix()-monday)/(7*86400)), n) * n
		return time.Unix(monday+int64(week)*7*86400, 0).UTC()
	case UnitMonth:
		m := floorDiv(t.Year()*12+int(t.Month())-1, n) * n
		return time.Date(m/12, time.Month(m%12+1), 1, 0, 0, 0, 0, time.UTC)
	case UnitYear:
		y := floorDiv(t.Year(), n) * n
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// layout returns a time layout suited to labels ticks f apart.
func (f Frequency) layout() string {
	switch f.Unit {
	case UnitYear:
		return "2006"
	case UnitMonth:
		return "Jan 2006"
	case UnitWeek, UnitDay:
		return "Jan 2"
	case UnitHour, UnitMinute:
		return "15:04"
	}
	if f.Seconds() >= 86400 {
		return "Jan 2"
	}
	return "15:04:05"
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// calendarRung is one entry of the date/time ladder: the major frequency and
// the minor frequency drawn between its majors.
type calendarRung struct {
	major, minor Frequency
}

var calendarLadder = []calendarRung{
	{Frequency{1, UnitSecond}, Frequency{}},
	{Frequency{2, UnitSecond}, Frequency{1, UnitSecond}},
	{Frequency{5, UnitSecond}, Frequency{1, UnitSecond}},
	{Frequency{10, UnitSecond}, Frequency{5, UnitSecond}},
	{Frequency{15, UnitSecond}, Frequency{5, UnitSecond}},
	{Frequency{30, UnitSecond}, Frequency{10, UnitSecond}},
	{Frequency{1, UnitMinute}, Frequency{15, UnitSecond}},
	{Frequency{2, UnitMinute}, Frequency{30, UnitSecond}},
	{Frequency{5, UnitMinute}, Frequency{1, UnitMinute}},
	{Frequency{10, UnitMinute}, Frequency{5, UnitMinute}},
	{Frequency{15, UnitMinute}, Frequency{5, UnitMinute}},
	{Frequency{30, UnitMinute}, Frequency{10, UnitMinute}},
	{Frequency{1, UnitHour}, Frequency{15, UnitMinute}},
	{Frequency{2, UnitHour}, Frequency{30, UnitMinute}},
	{Frequency{3, UnitHour}, Frequency{1, UnitHour}},
	{Frequency{6, UnitHour}, Frequency{1, UnitHour}},
	{Frequency{12, UnitHour}, Frequency{3, UnitHour}},
	{Frequency{1, UnitDay}, Frequency{6, UnitHour}},
	{Frequency{2, UnitDay}, Frequency{1, UnitDay}},
	{Frequency{1, UnitWeek}, Frequency{1, UnitDay}},
	{Frequency{1, UnitMonth}, Frequency{1, UnitWeek}},
	{Frequency{3, UnitMonth}, Frequency{1, UnitMonth}},
	{Frequency{6, UnitMonth}, Frequency{1, UnitMonth}},
	{Frequency{1, UnitYear}, Frequency{3, UnitMonth}},
}

// calendarStep returns the smallest rung whose major frequency is at least
// minSeconds long. Past the end of the ladder it counts years on the nice
// number ladder.
func calendarStep(minSeconds float64) calendarRung {
	for _, rung := range calendarLadder {
		if rung.major.Seconds() >= minSeconds {
			return rung
		}
	}
	years := niceNum(minSeconds/UnitYear.nominal(), false)
	minor := Frequency{years / float64(defaultMinorDivisions(years)), UnitYear}
	if minor.Step < 1 || minor.Step != math.Trunc(minor.Step) {
		minor = Frequency{1, UnitYear}
	}
	return calendarRung{Frequency{years, UnitYear}, minor}
}
