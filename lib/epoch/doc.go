// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

// Package epoch provides a fixed-point timestamp value type.
//
// An [Epoch] is a Unix epoch second (signed, so instants before 1970
// are representable) plus an optional sub-second component at one of
// three fixed precisions: millisecond, microsecond, or nanosecond.
// The precision set is closed on purpose: formatting and parsing are
// total functions over exactly three digit widths (3, 6, 9), which
// eliminates the "what if width=5" class of bugs that a free-form
// digits+width pair invites.
//
// Epoch values are immutable. Every mutator returns a new value:
//
//	stamp := epoch.New(1337).WithMillis(123)
//	fmt.Println(stamp) // "1337.123"
//
// Builder arguments outside a variant's valid range (for example
// WithMillis(1000)) are caller bugs, not runtime data, and panic
// immediately rather than returning an error. Text parsing of
// external input, by contrast, returns errors wrapping
// [ErrInvalidSubSecond] or [ErrInvalidEpoch].
package epoch
