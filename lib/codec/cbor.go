// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes, which also makes the compressor's input
// reproducible.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
// Unknown fields are silently ignored for forward compatibility.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// When the decoder's target is any (e.g. map[string]any
		// values), it must pick a concrete Go map type. The CBOR
		// default is map[interface{}]interface{} (CBOR allows
		// non-string keys), but that type is incompatible with
		// encoding/json and most Go code that expects
		// map[string]any. Struct field decoding is unaffected.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Serialize encodes v to deterministic CBOR. A value the format
// cannot represent (channels, functions, unsupported map keys)
// returns an error wrapping [ErrSerialize].
func (c *Codec) Serialize(v any) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: %w: %w", ErrSerialize, err)
	}
	return data, nil
}

// Deserialize decodes CBOR data into v, which must be a non-nil
// pointer to the expected target type. Truncated, malformed, or
// type-mismatched input returns an error wrapping [ErrDeserialize].
func (c *Codec) Deserialize(data []byte, v any) error {
	if err := decMode.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: %w: %w", ErrDeserialize, err)
	}
	return nil
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for
// the entire contents of data. The input is raw CBOR, not a
// compressed envelope; use [Codec.Decompress] first on Encode
// output.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// DiagnoseFirst returns the CBOR diagnostic notation for the first
// data item in data, along with the remaining unconsumed bytes. Use
// this to process CBOR sequences one item at a time.
func DiagnoseFirst(data []byte) (string, []byte, error) {
	return cbor.DiagnoseFirst(data)
}
