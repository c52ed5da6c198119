// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/epochive/epochive/lib/codec"
)

// runPack reads JSON, serializes it to deterministic CBOR, compresses
// the result, and writes the packed bytes to stdout.
func runPack(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("pack", pflag.ContinueOnError)
	level := flags.IntP("level", "l", codec.DefaultLevel,
		fmt.Sprintf("compression effort level (%d-%d)", codec.MinLevel, codec.MaxLevel))
	flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usagef("pack: %w", err)
	}

	if *level < codec.MinLevel || *level > codec.MaxLevel {
		return usagef("pack: level %d out of range [%d, %d]", *level, codec.MinLevel, codec.MaxLevel)
	}

	data, remainingArgs, err := readInput(flags.Args(), stdin)
	if err != nil {
		return err
	}
	if len(remainingArgs) > 0 {
		return usagef("pack takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
	}

	return packJSON(data, stdout, codec.New(*level), logger)
}

// packJSON encodes JSON data through the codec pipeline and writes
// the packed bytes to w.
func packJSON(data []byte, w io.Writer, c *codec.Codec, logger *slog.Logger) error {
	if len(data) == 0 {
		return usagef("empty input: expected JSON data")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	value, err := convertNumbers(value)
	if err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	packed, err := c.Encode(value)
	if err != nil {
		return err
	}

	logger.Debug("packed payload",
		"level", c.Level(),
		"input_bytes", len(data),
		"packed_bytes", len(packed))

	_, err = w.Write(packed)
	return err
}

// convertNumbers recursively walks a JSON-decoded value and converts
// json.Number to int64 or float64. Without this, json.Decoder with
// UseNumber() leaves numbers as strings that the CBOR encoder would
// encode as text instead of numeric types.
//
// The JSON grammar places no bound on numbers, so a literal like
// 1e999 parses but fits in neither int64 nor float64
// (strconv.ErrRange). That is bad input data, not a caller bug, and
// returns an error.
func convertNumbers(v any) (any, error) {
	switch value := v.(type) {
	case json.Number:
		if integer, err := value.Int64(); err == nil {
			return integer, nil
		}
		float, err := value.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s does not fit int64 or float64: %w", value.String(), err)
		}
		return float, nil

	case map[string]any:
		for key, entry := range value {
			converted, err := convertNumbers(entry)
			if err != nil {
				return nil, err
			}
			value[key] = converted
		}
		return value, nil

	case []any:
		for i, entry := range value {
			converted, err := convertNumbers(entry)
			if err != nil {
				return nil, err
			}
			value[i] = converted
		}
		return value, nil

	default:
		return v, nil
	}
}
