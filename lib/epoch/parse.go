// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package epoch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidSubSecond reports a sub-second literal whose length
	// matches none of the three accepted digit widths (3, 6, 9).
	ErrInvalidSubSecond = errors.New("invalid sub-second literal")

	// ErrInvalidEpoch reports a numeric field that failed integer
	// parsing (non-digit content, sign, overflow).
	ErrInvalidEpoch = errors.New("invalid epoch number")
)

// ParseSubSecond parses a sub-second literal. It accepts exactly
// strings of length 3, 6, or 9 composed entirely of decimal digits,
// producing a Milli, Micro, or Nano component respectively. Any
// other length yields an error wrapping [ErrInvalidSubSecond]; any
// non-digit content yields an error wrapping [ErrInvalidEpoch] with
// the underlying parse failure.
func ParseSubSecond(s string) (SubSecond, error) {
	var unit Unit
	var bitSize int
	switch len(s) {
	case 3:
		unit, bitSize = UnitMilli, 16
	case 6:
		unit, bitSize = UnitMicro, 32
	case 9:
		unit, bitSize = UnitNano, 64
	default:
		return SubSecond{}, fmt.Errorf("%w: %q is not 3, 6, or 9 digits",
			ErrInvalidSubSecond, s)
	}

	value, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return SubSecond{}, fmt.Errorf("%w: %w", ErrInvalidEpoch, err)
	}

	// A width-limited all-digit string is always below the unit's
	// bound (999, 999999, 999999999), so this never panics.
	return makeSubSecond(unit, value), nil
}

// Parse parses a formatted Epoch using the conventional '.'
// delimiter. See [ParseWithDelimiter].
func Parse(s string) (Epoch, error) {
	return ParseWithDelimiter(s, '.')
}

// ParseWithDelimiter parses text produced by
// [Epoch.FormatWithDelimiter]: a signed decimal seconds value,
// optionally followed by the delimiter and a sub-second literal.
// The split is on the first occurrence of the delimiter, so
// delimiters that can appear in the rendered integer itself ('-' or
// a decimal digit) do not round-trip.
func ParseWithDelimiter(s string, delimiter rune) (Epoch, error) {
	secondsText, subText, hasSub := strings.Cut(s, string(delimiter))

	seconds, err := strconv.ParseInt(secondsText, 10, 64)
	if err != nil {
		return Epoch{}, fmt.Errorf("%w: %w", ErrInvalidEpoch, err)
	}

	if !hasSub {
		return Epoch{seconds: seconds}, nil
	}
	sub, err := ParseSubSecond(subText)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{seconds: seconds, sub: sub}, nil
}
