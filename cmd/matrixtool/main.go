// SPDX-License-Identifier: MIT

// matrixtool loads a matrix document, applies a sequence of structural
// operations and reports the resulting size, capacity and offsets.
//
// Usage:
//
//	matrixtool info <file>
//	matrixtool apply [flags] <file>
//
// Files ending in .cbor are read and written as CBOR; anything else as YAML.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "info":
		return infoCmd(rest, stdout)
	case "apply":
		return applyCmd(rest, stdout, stderr)
	case "help", "--help", "-h":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func infoCmd(args []string, stdout io.Writer) error {
	flagSet := pflag.NewFlagSet("info", pflag.ContinueOnError)
	var printValues bool
	flagSet.BoolVarP(&printValues, "print", "p", false, "print the values as well")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return errors.New("info: expected exactly one file")
	}

	m, err := load(flagSet.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, describe(m))
	if printValues {
		fmt.Fprint(stdout, m)
	}

	return nil
}

func applyCmd(args []string, stdout, stderr io.Writer) error {
	var (
		ops     []string
		out     string
		verbose bool
	)
	flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
	flagSet.StringArrayVarP(&ops, "op", "o", nil, "operation to apply, repeatable (see help)")
	flagSet.StringVar(&out, "out", "", "write the result to this file")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log every step")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return errors.New("apply: expected exactly one file")
	}

	logLevel := slog.LevelWarn
	if verbose || os.Getenv("MATRIXTOOL_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	steps, err := parseSteps(ops)
	if err != nil {
		return err
	}
	m, err := load(flagSet.Arg(0))
	if err != nil {
		return err
	}
	logger.Debug("loaded", "file", flagSet.Arg(0), "state", describe(m))

	for _, s := range steps {
		if err = s.apply(m); err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
		logger.Debug("applied", "op", s.String(), "state", describe(m))
	}
	fmt.Fprintln(stdout, describe(m))

	if out != "" {
		if err = save(out, m); err != nil {
			return err
		}
		logger.Info("written", "file", out)
	}

	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `matrixtool: inspect and reshape matrix documents.

Usage:
  matrixtool info [-p] <file>
  matrixtool apply [-v] [--out FILE] -o OP [-o OP ...] <file>

Operations:
  insert-row:POS[=FILL]     insert-col:POS[=FILL]
  erase-row:POS             erase-col:POS
  resize:ROWSxCOLS[=FILL]   reserve:ROWSxCOLS
  transpose                 shrink
  cat-row:FILE              cat-col:FILE
  split-row:POS             split-col:POS   (keeps the head)
`)
}
