// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Compression level domain. The bounds are the zstd effort range: 0
// is minimal effort, 22 is maximum effort (slowest, smallest).
const (
	MinLevel = 0
	MaxLevel = 22

	// DefaultLevel is the level used by [Default]. Level 1 is the
	// best size/speed tradeoff we measured: around 85% reduction on
	// typical payloads while staying faster than the higher levels
	// in both directions.
	DefaultLevel = 1
)

var (
	// ErrIO wraps an underlying byte-stream failure from the
	// compression or decompression stage, including corrupt input
	// (bad frame magic, truncation, checksum mismatch).
	ErrIO = errors.New("stream failure")

	// ErrSerialize wraps a CBOR encoding failure: the value cannot
	// be represented in the format.
	ErrSerialize = errors.New("serialize failure")

	// ErrDeserialize wraps a CBOR decoding failure: truncated,
	// malformed, or type-mismatched input.
	ErrDeserialize = errors.New("deserialize failure")
)

// decoder is shared by all Codecs: zstd frames are self-describing,
// so decompression needs no level. Safe for concurrent DecodeAll use.
var decoder *zstd.Decoder

func init() {
	var err error
	decoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

// Codec is a serialize-then-compress pipeline with a fixed effort
// level. It holds no per-call state: one Codec can serve any number
// of independent encode and decode operations, concurrently or
// sequentially, with no ordering constraint between them.
type Codec struct {
	level   int
	encoder *zstd.Encoder
}

// New returns a Codec with the given compression effort level.
// Panics if level is outside [MinLevel, MaxLevel]: an out-of-domain
// level is a caller bug, not runtime data.
func New(level int) *Codec {
	if level < MinLevel || level > MaxLevel {
		panic(fmt.Sprintf("codec: compression level %d out of range [%d, %d]",
			level, MinLevel, MaxLevel))
	}

	// The encoder is built once per Codec and reused across calls;
	// zstd.Encoder is safe for concurrent EncodeAll use.
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
	)
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}

	return &Codec{level: level, encoder: encoder}
}

// Default returns a Codec at [DefaultLevel].
func Default() *Codec {
	return New(DefaultLevel)
}

// Level returns the configured compression effort level.
func (c *Codec) Level() int {
	return c.level
}

// Compress applies zstd at the configured level. The output is a
// self-framed zstd stream, so [Codec.Decompress] needs no level
// parameter. Compression of valid byte input never fails for
// structural reasons; the error return exists for the stream
// plumbing contract and wraps [ErrIO] when it fires.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	return c.encoder.EncodeAll(data, nil), nil
}

// Decompress reverses [Codec.Compress]. Input that is not a valid
// zstd stream (bad magic, truncated frame, checksum mismatch)
// returns an error wrapping [ErrIO], never a panic.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("codec: %w: %w", ErrIO, err)
	}
	return decompressed, nil
}

// Encode serializes v and compresses the result. A failure in either
// stage propagates with its original kind intact.
func (c *Codec) Encode(v any) ([]byte, error) {
	serialized, err := c.Serialize(v)
	if err != nil {
		return nil, err
	}
	return c.Compress(serialized)
}

// Decode decompresses data and deserializes the result into v, which
// must be a non-nil pointer to the expected target type. A failure
// in either stage propagates with its original kind intact.
func (c *Codec) Decode(data []byte, v any) error {
	decompressed, err := c.Decompress(data)
	if err != nil {
		return err
	}
	return c.Deserialize(decompressed, v)
}
