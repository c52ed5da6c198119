// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/epochive/epochive/lib/codec"
)

// runDiag decompresses packed bytes and prints the CBOR diagnostic
// notation (RFC 8949 §8) of the payload. Unlike JSON output,
// diagnostic notation preserves CBOR type information: integer vs
// float, byte strings vs text strings, and tagged values.
func runDiag(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("diag", pflag.ContinueOnError)
	flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usagef("diag: %w", err)
	}

	data, remainingArgs, err := readInput(flags.Args(), stdin)
	if err != nil {
		return err
	}
	if len(remainingArgs) > 0 {
		return usagef("diag takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
	}

	return diagPacked(data, stdout, logger)
}

// diagPacked decompresses data and writes diagnostic notation to w,
// one line per CBOR data item.
func diagPacked(data []byte, w io.Writer, logger *slog.Logger) error {
	if len(data) == 0 {
		return usagef("empty input: expected packed data")
	}

	payload, err := codec.Default().Decompress(data)
	if err != nil {
		return err
	}

	logger.Debug("decompressed payload",
		"packed_bytes", len(data),
		"payload_bytes", len(payload))

	// Process as a sequence: diagnose each item and print it on its
	// own line. For a single item this produces one line; for CBOR
	// sequences (RFC 8742) it produces one line per item.
	remaining := payload
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(payload) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}

	return nil
}
