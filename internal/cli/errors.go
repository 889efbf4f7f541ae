// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for the fcomp command line.
//
// Every failure is returned as an error and mapped to an exit code and a
// message in one place (exitCodeFor, errorMessage).

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/fcomp/internal/diff"
	"github.com/jeranaias/fcomp/internal/source"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates the files were compared (identical or not)
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitTooDifferent indicates the distance bound or edit budget ran out
	ExitTooDifferent = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitNotFoundError indicates an input could not be opened
	ExitNotFoundError = 7
	// ExitTooLargeError indicates an input has too many lines
	ExitTooLargeError = 8
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ValidationError represents a validation failure for user input.
type ValidationError struct {
	Field   string // Field that failed validation
	Value   string // Value that was provided
	Reason  string // Why validation failed
	Example string // Example of valid value (optional)
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// errMissingFiles is returned when fewer or more than two inputs are named.
var errMissingFiles = errors.New("fcomp requires two file names")

// ConfigError wraps a failure to load or save the configuration.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// exitCodeFor maps an error returned while running a comparison to the
// process exit code.
func exitCodeFor(err error) int {
	var (
		validationErr *ValidationError
		configErr     *ConfigError
		openErr       *source.OpenError
		tooLargeErr   *source.TooLargeError
		distanceErr   diff.DistanceError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errMissingFiles), errors.As(err, &validationErr):
		return ExitUsageError
	case errors.As(err, &configErr):
		return ExitConfigError
	case errors.As(err, &openErr):
		return ExitNotFoundError
	case errors.As(err, &tooLargeErr):
		return ExitTooLargeError
	case errors.As(err, &distanceErr):
		return ExitTooDifferent
	default:
		return ExitGeneralError
	}
}

// errorMessage returns the line printed to stderr for err.
func errorMessage(err error) string {
	var (
		openErr     *source.OpenError
		tooLargeErr *source.TooLargeError
		distanceErr diff.DistanceError
	)

	switch {
	case errors.Is(err, errMissingFiles):
		return "fcomp requires two file names."
	case errors.As(err, &openErr):
		return fmt.Sprintf("Cannot open file %s.", openErr.Name)
	case errors.As(err, &tooLargeErr):
		return "File is too large for fcomp."
	case errors.As(err, &distanceErr):
		return fmt.Sprintf("The files differ in at least %d lines.", distanceErr.MinDistance())
	default:
		return "fcomp: " + err.Error()
	}
}
