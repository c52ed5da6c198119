// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package epoch

import (
	"strconv"
	"time"
)

// Epoch is an immutable fixed-point timestamp: a signed Unix epoch
// second plus an optional [SubSecond] component. The zero value is
// second 0 with no sub-second component.
//
// The seconds field is never normalized or reinterpreted: negative
// values are preserved exactly, and the sub-second magnitude is
// always an unsigned quantity unaffected by the sign of the seconds.
//
// Mutators return a new value, so an Epoch can be shared freely
// across goroutines.
type Epoch struct {
	seconds int64
	sub     SubSecond
}

// New returns an Epoch with the given seconds value and no
// sub-second component.
func New(seconds int64) Epoch {
	return Epoch{seconds: seconds}
}

// FromTime captures an instant at the stated precision. The
// sub-second component is truncated, not rounded. UnitNone discards
// the fractional second entirely.
func FromTime(t time.Time, unit Unit) Epoch {
	e := Epoch{seconds: t.Unix()}
	switch unit {
	case UnitMilli:
		e.sub = Milli(uint16(t.Nanosecond() / 1_000_000))
	case UnitMicro:
		e.sub = Micro(uint32(t.Nanosecond() / 1_000))
	case UnitNano:
		e.sub = Nano(uint64(t.Nanosecond()))
	}
	return e
}

// WithSeconds returns a copy with the seconds value replaced.
func (e Epoch) WithSeconds(seconds int64) Epoch {
	e.seconds = seconds
	return e
}

// WithMillis returns a copy whose sub-second component is the given
// millisecond value, replacing any previously set component. Panics
// if value > 999.
func (e Epoch) WithMillis(value uint16) Epoch {
	e.sub = Milli(value)
	return e
}

// WithMicros returns a copy whose sub-second component is the given
// microsecond value, replacing any previously set component. Panics
// if value > 999999.
func (e Epoch) WithMicros(value uint32) Epoch {
	e.sub = Micro(value)
	return e
}

// WithNanos returns a copy whose sub-second component is the given
// nanosecond value, replacing any previously set component. Panics
// if value > 999999999.
func (e Epoch) WithNanos(value uint64) Epoch {
	e.sub = Nano(value)
	return e
}

// Seconds returns the epoch seconds value.
func (e Epoch) Seconds() int64 {
	return e.seconds
}

// SubSecond returns the sub-second component ([None] when absent).
func (e Epoch) SubSecond() SubSecond {
	return e.sub
}

// Time converts the Epoch to a time.Time in UTC.
func (e Epoch) Time() time.Time {
	return time.Unix(e.seconds, e.sub.Nanoseconds()).UTC()
}

// FormatWithDelimiter renders the Epoch as text. Without a
// sub-second component the result is the decimal seconds alone; with
// one, the seconds, the delimiter, and the zero-padded magnitude at
// the unit's exact width (3, 6, or 9 digits). A negative seconds
// value keeps its leading minus on the integer only.
func (e Epoch) FormatWithDelimiter(delimiter rune) string {
	seconds := strconv.FormatInt(e.seconds, 10)
	if e.sub.IsNone() {
		return seconds
	}
	return seconds + string(delimiter) + e.sub.String()
}

// Format renders the Epoch with the conventional '.' delimiter.
func (e Epoch) Format() string {
	return e.FormatWithDelimiter('.')
}

// String implements fmt.Stringer, identical to Format.
func (e Epoch) String() string {
	return e.Format()
}
