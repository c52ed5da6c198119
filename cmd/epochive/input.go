// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
)

// readInput resolves input data from either a file (the last element
// of args, if it names a regular file on disk) or the command's
// stdin stream.
//
// Returns the input bytes and the args with any consumed file path
// removed. The caller is responsible for rejecting whatever
// positional arguments remain.
func readInput(args []string, stdin io.Reader) ([]byte, []string, error) {
	var data []byte
	remainingArgs := args

	if length := len(args); length > 0 {
		candidate := args[length-1]
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			data, err = os.ReadFile(candidate)
			if err != nil {
				return nil, nil, fmt.Errorf("read %s: %w", candidate, err)
			}
			remainingArgs = args[:length-1]
		}
	}

	if data == nil {
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	return data, remainingArgs, nil
}
