// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

// Command epochive packs, unpacks, and inspects epochive payloads
// from the command line, and formats and parses fixed-point epoch
// timestamps.
//
//	echo '{"seconds":1337,"readings":[20.5,20.6]}' | epochive pack > payload.bin
//	epochive unpack payload.bin
//	epochive diag payload.bin
//	epochive stamp --millis 123 1337
//	epochive parse 1337.123
//
// All subcommands accept an optional trailing file path; without one,
// input is read from stdin. Diagnostics go to stderr. Exit codes: 0
// on success, 1 on operation failure, 2 on usage errors.
package main
