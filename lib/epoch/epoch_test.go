// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package epoch

import (
	"math"
	"testing"
	"time"
)

// testSeconds covers zero, small positive/negative values, and both
// int64 extremes.
var testSeconds = []int64{
	0, 1, -1, 123, -123,
	math.MaxInt64, math.MinInt64,
	math.MaxInt64 / 1000, math.MinInt64 / 1000,
}

func TestNew(t *testing.T) {
	for _, seconds := range testSeconds {
		e := New(seconds)
		if e.Seconds() != seconds {
			t.Errorf("New(%d).Seconds() = %d", seconds, e.Seconds())
		}
		if !e.SubSecond().IsNone() {
			t.Errorf("New(%d) has sub-second component %v", seconds, e.SubSecond())
		}
	}
}

func TestWithSeconds(t *testing.T) {
	e := New(1337).WithMillis(123).WithSeconds(42)
	if e.Seconds() != 42 {
		t.Errorf("Seconds() = %d, want 42", e.Seconds())
	}
	// Replacing the seconds must not disturb the sub-second component.
	if e.SubSecond() != Milli(123) {
		t.Errorf("SubSecond() = %v, want Milli(123)", e.SubSecond())
	}
}

func TestWithSubSecondBuilders(t *testing.T) {
	tests := []struct {
		name  string
		build func(Epoch) Epoch
		want  SubSecond
	}{
		{"millis", func(e Epoch) Epoch { return e.WithMillis(999) }, Milli(999)},
		{"micros", func(e Epoch) Epoch { return e.WithMicros(999999) }, Micro(999999)},
		{"nanos", func(e Epoch) Epoch { return e.WithNanos(999999999) }, Nano(999999999)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, seconds := range testSeconds {
				e := test.build(New(seconds))
				if e.Seconds() != seconds {
					t.Errorf("builder disturbed seconds: got %d, want %d", e.Seconds(), seconds)
				}
				if e.SubSecond() != test.want {
					t.Errorf("SubSecond() = %v, want %v", e.SubSecond(), test.want)
				}
			}
		})
	}
}

func TestBuildersReplacePreviousPrecision(t *testing.T) {
	// A value carries at most one precision: each builder replaces
	// whatever was set before.
	e := New(7).WithNanos(999999999).WithMillis(5)
	if e.SubSecond() != Milli(5) {
		t.Errorf("SubSecond() = %v, want Milli(5)", e.SubSecond())
	}

	e = e.WithMicros(42)
	if e.SubSecond() != Micro(42) {
		t.Errorf("SubSecond() = %v, want Micro(42)", e.SubSecond())
	}
}

func TestImmutability(t *testing.T) {
	original := New(100).WithMillis(1)
	derived := original.WithSeconds(200).WithMicros(2)

	if original.Seconds() != 100 || original.SubSecond() != Milli(1) {
		t.Errorf("original mutated: %v", original)
	}
	if derived.Seconds() != 200 || derived.SubSecond() != Micro(2) {
		t.Errorf("derived wrong: %v", derived)
	}
}

func TestBuilderRangePanics(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{"millis", func() { New(0).WithMillis(1000) }},
		{"micros", func() { New(0).WithMicros(1000000) }},
		{"nanos", func() { New(0).WithNanos(1000000000) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("out-of-range %s builder should panic", test.name)
				}
			}()
			test.build()
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		epoch Epoch
		want  string
	}{
		{New(0), "0"},
		{New(1), "1"},
		{New(-1), "-1"},
		{New(1).WithMillis(123), "1.123"},
		{New(1).WithMillis(0), "1.000"},
		{New(0).WithMillis(999), "0.999"},
		{New(-1).WithMillis(123), "-1.123"},
		{New(-1).WithMicros(123123), "-1.123123"},
		{New(1337).WithMicros(42), "1337.000042"},
		{New(1).WithNanos(5), "1.000000005"},
		{New(math.MaxInt64), "9223372036854775807"},
		{New(math.MaxInt64).WithMillis(999), "9223372036854775807.999"},
		{New(math.MinInt64).WithNanos(999999999), "-9223372036854775808.999999999"},
	}
	for _, test := range tests {
		if got := test.epoch.Format(); got != test.want {
			t.Errorf("Format() = %q, want %q", got, test.want)
		}
		// String is defined as identical to Format.
		if got := test.epoch.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestFormatWithDelimiter(t *testing.T) {
	tests := []struct {
		epoch     Epoch
		delimiter rune
		want      string
	}{
		{New(1337).WithMillis(123), ':', "1337:123"},
		{New(-1).WithMillis(999), ':', "-1:999"},
		{New(0).WithMicros(0), '_', "0_000000"},
		{New(5), ':', "5"},
	}
	for _, test := range tests {
		if got := test.epoch.FormatWithDelimiter(test.delimiter); got != test.want {
			t.Errorf("FormatWithDelimiter(%q) = %q, want %q", test.delimiter, got, test.want)
		}
	}
}

func TestFromTime(t *testing.T) {
	instant := time.Date(2026, 8, 29, 12, 30, 45, 123456789, time.UTC)

	tests := []struct {
		unit Unit
		want SubSecond
	}{
		{UnitNone, None()},
		{UnitMilli, Milli(123)},
		{UnitMicro, Micro(123456)},
		{UnitNano, Nano(123456789)},
	}
	for _, test := range tests {
		e := FromTime(instant, test.unit)
		if e.Seconds() != instant.Unix() {
			t.Errorf("%s: Seconds() = %d, want %d", test.unit, e.Seconds(), instant.Unix())
		}
		if e.SubSecond() != test.want {
			t.Errorf("%s: SubSecond() = %v, want %v", test.unit, e.SubSecond(), test.want)
		}
	}
}

func TestTimeRoundtrip(t *testing.T) {
	instant := time.Date(1969, 12, 31, 23, 59, 59, 500000000, time.UTC)
	e := FromTime(instant, UnitNano)
	if got := e.Time(); !got.Equal(instant) {
		t.Errorf("Time() = %v, want %v", got, instant)
	}
}
