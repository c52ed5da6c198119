// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/epochive/epochive/lib/codec"
)

// runUnpack decompresses packed bytes, decodes the CBOR payload, and
// writes it as JSON to stdout.
func runUnpack(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("unpack", pflag.ContinueOnError)
	compact := flags.BoolP("compact", "c", false, "compact output (no indentation)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usagef("unpack: %w", err)
	}

	data, remainingArgs, err := readInput(flags.Args(), stdin)
	if err != nil {
		return err
	}
	if len(remainingArgs) > 0 {
		return usagef("unpack takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
	}

	return unpackJSON(data, stdout, *compact, logger)
}

// unpackJSON decodes packed bytes and writes the payload as JSON to w.
func unpackJSON(data []byte, w io.Writer, compact bool, logger *slog.Logger) error {
	if len(data) == 0 {
		return usagef("empty input: expected packed data")
	}

	c := codec.Default()

	var value any
	if err := c.Decode(data, &value); err != nil {
		return err
	}

	logger.Debug("unpacked payload", "packed_bytes", len(data))

	encoder := json.NewEncoder(w)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
