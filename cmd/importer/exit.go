package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	exitRuntime       = 1
	exitUsage         = 2
	exitFileNotFound  = 3
	exitSchemaMissing = 4
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func exitCode(err error) int {
	var exit *exitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.code
	case errors.Is(err, usecase.ErrSchemaMissing):
		return exitSchemaMissing
	case errors.Is(err, usecase.ErrInvalidInput):
		return exitUsage
	default:
		return exitRuntime
	}
}

// requireFile fails with exitFileNotFound before any database work starts.
func requireFile(path string) error {
	if path == "" {
		return usageError(errors.New("an input file is required (--file or positional argument)"))
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &exitError{code: exitFileNotFound, err: fmt.Errorf("input file %s not found", path)}
	}
	if err != nil {
		return fmt.Errorf("stat input file: %w", err)
	}
	if info.IsDir() {
		return usageError(fmt.Errorf("input %s is a directory", path))
	}
	return nil
}

// inputPath takes --file when set, otherwise the single positional argument.
func inputPath(flagValue string, args []string) (string, error) {
	switch {
	case flagValue != "" && len(args) > 0:
		return "", usageError(errors.New("pass the input file either with --file or as an argument, not both"))
	case flagValue != "":
		return flagValue, nil
	case len(args) == 1:
		return args[0], nil
	case len(args) > 1:
		return "", usageError(fmt.Errorf("expected one input file, got %d", len(args)))
	default:
		return "", nil
	}
}
