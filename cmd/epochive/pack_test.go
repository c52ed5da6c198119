// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/epochive/epochive/lib/codec"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPackUnpackRoundtrip(t *testing.T) {
	input := `{"seconds":1337,"source":"sensor/a","readings":[20.5,20.25]}`

	var packed bytes.Buffer
	if err := packJSON([]byte(input), &packed, codec.Default(), testLogger()); err != nil {
		t.Fatalf("packJSON: %v", err)
	}
	if packed.Len() == 0 {
		t.Fatal("packJSON produced no output")
	}

	var unpacked bytes.Buffer
	if err := unpackJSON(packed.Bytes(), &unpacked, true, testLogger()); err != nil {
		t.Fatalf("unpackJSON: %v", err)
	}

	var original, roundtripped any
	if err := json.Unmarshal([]byte(input), &original); err != nil {
		t.Fatalf("unmarshal input: %v", err)
	}
	if err := json.Unmarshal(unpacked.Bytes(), &roundtripped); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if !jsonEqual(original, roundtripped) {
		t.Errorf("roundtrip mismatch: %v != %v", original, roundtripped)
	}
}

// jsonEqual compares two JSON-decoded values structurally.
func jsonEqual(a, b any) bool {
	aText, errA := json.Marshal(a)
	bText, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(aText, bText)
}

func TestPackRejectsEmptyInput(t *testing.T) {
	err := packJSON(nil, io.Discard, codec.Default(), testLogger())
	if err == nil {
		t.Fatal("packJSON of empty input should fail")
	}
	var usage *usageError
	if !errors.As(err, &usage) {
		t.Errorf("error = %v, want usage error", err)
	}
}

func TestPackRejectsOutOfRangeNumber(t *testing.T) {
	// 1e999 is valid per the JSON grammar but fits neither int64 nor
	// float64; it must surface as an error, not a panic.
	inputs := []string{
		`{"n":1e999}`,
		`[1, 2, 1e999]`,
		`{"outer":{"inner":[1e999]}}`,
	}
	for _, input := range inputs {
		err := packJSON([]byte(input), io.Discard, codec.Default(), testLogger())
		if err == nil {
			t.Errorf("packJSON(%q) should fail", input)
		}
	}
}

func TestPackRejectsMalformedJSON(t *testing.T) {
	err := packJSON([]byte(`{"unterminated`), io.Discard, codec.Default(), testLogger())
	if err == nil {
		t.Fatal("packJSON of malformed JSON should fail")
	}
}

func TestUnpackRejectsCorruptInput(t *testing.T) {
	err := unpackJSON(bytes.Repeat([]byte{0xFF}, 14), io.Discard, true, testLogger())
	if !errors.Is(err, codec.ErrIO) {
		t.Errorf("error = %v, want codec.ErrIO", err)
	}
}

func TestDiagPacked(t *testing.T) {
	var packed bytes.Buffer
	if err := packJSON([]byte(`{"count":42}`), &packed, codec.Default(), testLogger()); err != nil {
		t.Fatalf("packJSON: %v", err)
	}

	var notation bytes.Buffer
	if err := diagPacked(packed.Bytes(), &notation, testLogger()); err != nil {
		t.Fatalf("diagPacked: %v", err)
	}
	if !strings.Contains(notation.String(), `"count"`) {
		t.Errorf("diagnostic output %q missing map key", notation.String())
	}
}

func TestRunPackLevelOutOfRange(t *testing.T) {
	err := runPack([]string{"--level", "23"}, strings.NewReader("{}"), io.Discard, testLogger())
	if err == nil {
		t.Fatal("runPack with level 23 should fail")
	}
	var usage *usageError
	if !errors.As(err, &usage) {
		t.Errorf("error = %v, want usage error", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if code := run([]string{"no-such-command"}); code != 2 {
		t.Errorf("run = %d, want 2", code)
	}
}
