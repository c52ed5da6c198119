// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package epoch

import "fmt"

// Unit identifies the precision of a sub-second component.
type Unit uint8

const (
	// UnitNone means no sub-second component is present.
	UnitNone Unit = iota

	// UnitMilli is millisecond precision (3 rendered digits).
	UnitMilli

	// UnitMicro is microsecond precision (6 rendered digits).
	UnitMicro

	// UnitNano is nanosecond precision (9 rendered digits).
	UnitNano
)

// String returns the human-readable name of a unit.
func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitMilli:
		return "milli"
	case UnitMicro:
		return "micro"
	case UnitNano:
		return "nano"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(u))
	}
}

// Width returns the rendered digit count for the unit: 0 for
// UnitNone, otherwise 3, 6, or 9.
func (u Unit) Width() int {
	switch u {
	case UnitMilli:
		return 3
	case UnitMicro:
		return 6
	case UnitNano:
		return 9
	default:
		return 0
	}
}

// maxValue is the exclusive upper bound for a unit's magnitude.
func (u Unit) maxValue() uint64 {
	switch u {
	case UnitMilli:
		return 1_000
	case UnitMicro:
		return 1_000_000
	case UnitNano:
		return 1_000_000_000
	default:
		return 0
	}
}

// SubSecond is the fractional-second part of a timestamp: a precision
// unit plus an unsigned magnitude strictly below the unit's bound.
// The zero value is the absent component (UnitNone).
//
// A SubSecond carries exactly one precision. Constructing a Milli,
// Micro, or Nano value with a magnitude at or above the unit's bound
// is a caller bug and panics.
type SubSecond struct {
	unit  Unit
	value uint64
}

// None returns the absent sub-second component.
func None() SubSecond {
	return SubSecond{}
}

// Milli returns a millisecond component. Panics if value > 999.
func Milli(value uint16) SubSecond {
	return makeSubSecond(UnitMilli, uint64(value))
}

// Micro returns a microsecond component. Panics if value > 999999.
func Micro(value uint32) SubSecond {
	return makeSubSecond(UnitMicro, uint64(value))
}

// Nano returns a nanosecond component. Panics if value > 999999999.
func Nano(value uint64) SubSecond {
	return makeSubSecond(UnitNano, value)
}

func makeSubSecond(unit Unit, value uint64) SubSecond {
	if value >= unit.maxValue() {
		panic(fmt.Sprintf("epoch: %s value %d out of range [0, %d]",
			unit, value, unit.maxValue()-1))
	}
	return SubSecond{unit: unit, value: value}
}

// Unit returns the component's precision.
func (s SubSecond) Unit() Unit {
	return s.unit
}

// Value returns the component's magnitude. Zero for UnitNone.
func (s SubSecond) Value() uint64 {
	return s.value
}

// IsNone reports whether no sub-second component is present.
func (s SubSecond) IsNone() bool {
	return s.unit == UnitNone
}

// Nanoseconds returns the component scaled to nanoseconds. Zero for
// UnitNone.
func (s SubSecond) Nanoseconds() int64 {
	switch s.unit {
	case UnitMilli:
		return int64(s.value) * 1_000_000
	case UnitMicro:
		return int64(s.value) * 1_000
	case UnitNano:
		return int64(s.value)
	default:
		return 0
	}
}

// String returns the zero-padded magnitude at the unit's exact width
// (3, 6, or 9 digits), or the empty string for UnitNone. The
// magnitude is an unsigned quantity and never carries a sign.
func (s SubSecond) String() string {
	if s.unit == UnitNone {
		return ""
	}
	return fmt.Sprintf("%0*d", s.unit.Width(), s.value)
}
