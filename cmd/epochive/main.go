// Copyright 2026 The Epochive Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/epochive/epochive/lib/version"
)

// command is one epochive subcommand. run receives the arguments
// after the subcommand name and the process streams, so tests can
// drive commands with in-memory buffers.
type command struct {
	name    string
	summary string
	run     func(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error
}

func commands() []command {
	return []command{
		{"pack", "Read JSON on stdin, write packed (CBOR+zstd) bytes to stdout", runPack},
		{"unpack", "Read packed bytes, write pretty-printed JSON to stdout", runUnpack},
		{"diag", "Read packed bytes, write CBOR diagnostic notation to stdout", runDiag},
		{"stamp", "Format an epoch timestamp", runStamp},
		{"parse", "Parse a formatted epoch timestamp and report its components", runParse},
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "--version", "version":
		fmt.Println(versionLine(args[1:]))
		return 0
	case "--help", "-h", "help":
		printUsage(os.Stdout)
		return 0
	}

	for _, cmd := range commands() {
		if cmd.name != args[0] {
			continue
		}
		logger := newLogger(args[1:])
		if err := cmd.run(args[1:], os.Stdin, os.Stdout, logger); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			var usage *usageError
			if errors.As(err, &usage) {
				return 2
			}
			return 1
		}
		return 0
	}

	fmt.Fprintf(os.Stderr, "error: unknown command %q\n", args[0])
	printUsage(os.Stderr)
	return 2
}

// versionLine renders the --version output. With --full the line
// expands to include Go version and platform.
func versionLine(args []string) string {
	for _, argument := range args {
		if argument == "--full" {
			return "epochive " + version.Full()
		}
	}
	return "epochive " + version.Info()
}

// newLogger builds the command logger. Debug level is enabled by
// --verbose/-v anywhere on the command line; the flag is also
// registered by each command's flag set so it shows in help.
func newLogger(args []string) *slog.Logger {
	level := slog.LevelWarn
	for _, argument := range args {
		if argument == "--verbose" || argument == "-v" {
			level = slog.LevelDebug
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: epochive <command> [flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands() {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run \"epochive <command> --help\" for command flags.")
}

// usageError marks a failure caused by how the command was invoked
// (bad flags, wrong arguments) rather than by the operation itself.
// main exits 2 for usage errors and 1 for everything else.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
