// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/epochive/epochive/lib/epoch"
)

// runStamp formats a fixed-point epoch timestamp. With a positional
// seconds argument the timestamp is built from it; without one, the
// current second is used. The sub-second flag value applies either
// way. Negative seconds must follow a "--" terminator so they are
// not read as flags.
func runStamp(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("stamp", pflag.ContinueOnError)
	millis := flags.Uint16("millis", 0, "millisecond component (0-999)")
	micros := flags.Uint32("micros", 0, "microsecond component (0-999999)")
	nanos := flags.Uint64("nanos", 0, "nanosecond component (0-999999999)")
	delimiter := flags.StringP("delimiter", "d", ".", "delimiter between seconds and sub-second")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usagef("stamp: %w", err)
	}

	unit, err := subSecondUnit(flags)
	if err != nil {
		return err
	}
	delim, err := delimiterRune(*delimiter)
	if err != nil {
		return err
	}

	var stamp epoch.Epoch
	switch positional := flags.Args(); len(positional) {
	case 0:
		stamp = epoch.New(time.Now().Unix())
	case 1:
		seconds, err := strconv.ParseInt(positional[0], 10, 64)
		if err != nil {
			return usagef("stamp: invalid seconds %q: %v", positional[0], err)
		}
		stamp = epoch.New(seconds)
	default:
		return usagef("stamp takes at most one positional seconds argument, got %q", positional[1])
	}

	switch unit {
	case epoch.UnitMilli:
		stamp = stamp.WithMillis(*millis)
	case epoch.UnitMicro:
		stamp = stamp.WithMicros(*micros)
	case epoch.UnitNano:
		stamp = stamp.WithNanos(*nanos)
	}

	logger.Debug("formatted stamp", "seconds", stamp.Seconds(), "unit", stamp.SubSecond().Unit())

	_, err = fmt.Fprintln(stdout, stamp.FormatWithDelimiter(delim))
	return err
}

// subSecondUnit maps the mutually exclusive sub-second flags to a
// precision unit. The flag values themselves are range-checked here
// so a bad command line surfaces as a usage error instead of
// tripping the library's contract panic.
func subSecondUnit(flags *pflag.FlagSet) (epoch.Unit, error) {
	set := 0
	unit := epoch.UnitNone
	for _, name := range []string{"millis", "micros", "nanos"} {
		if flags.Changed(name) {
			set++
			switch name {
			case "millis":
				unit = epoch.UnitMilli
			case "micros":
				unit = epoch.UnitMicro
			case "nanos":
				unit = epoch.UnitNano
			}
		}
	}
	if set > 1 {
		return epoch.UnitNone, usagef("at most one of --millis, --micros, --nanos may be set")
	}

	if unit != epoch.UnitNone {
		value, err := subSecondValue(flags, unit)
		if err != nil {
			return epoch.UnitNone, err
		}
		if bound := maxForUnit(unit); value > bound {
			return epoch.UnitNone, usagef("--%ss value %d out of range [0, %d]", unit, value, bound)
		}
	}
	return unit, nil
}

func subSecondValue(flags *pflag.FlagSet, unit epoch.Unit) (uint64, error) {
	switch unit {
	case epoch.UnitMilli:
		value, err := flags.GetUint16("millis")
		return uint64(value), err
	case epoch.UnitMicro:
		value, err := flags.GetUint32("micros")
		return uint64(value), err
	default:
		return flags.GetUint64("nanos")
	}
}

func maxForUnit(unit epoch.Unit) uint64 {
	switch unit {
	case epoch.UnitMilli:
		return 999
	case epoch.UnitMicro:
		return 999999
	default:
		return 999999999
	}
}

// delimiterRune validates that the flag value is a single rune.
func delimiterRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, usagef("delimiter must be a single character, got %q", s)
	}
	delim, _ := utf8.DecodeRuneInString(s)
	return delim, nil
}

// runParse parses a formatted epoch timestamp and reports its
// components.
func runParse(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("parse", pflag.ContinueOnError)
	delimiter := flags.StringP("delimiter", "d", ".", "delimiter between seconds and sub-second")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usagef("parse: %w", err)
	}

	if flags.NArg() != 1 {
		return usagef("parse takes exactly one formatted timestamp argument")
	}
	delim, err := delimiterRune(*delimiter)
	if err != nil {
		return err
	}

	stamp, err := epoch.ParseWithDelimiter(flags.Arg(0), delim)
	if err != nil {
		return err
	}

	logger.Debug("parsed stamp", "input", flags.Arg(0))

	fmt.Fprintf(stdout, "seconds: %d\n", stamp.Seconds())
	sub := stamp.SubSecond()
	if sub.IsNone() {
		fmt.Fprintln(stdout, "subsecond: none")
	} else {
		fmt.Fprintf(stdout, "subsecond: %s (%s)\n", sub, sub.Unit())
	}
	fmt.Fprintf(stdout, "utc: %s\n", stamp.Time().Format(time.RFC3339Nano))
	return nil
}
