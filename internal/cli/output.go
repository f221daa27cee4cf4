// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aclements/go-chaos/orthopoly"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Numerical failure (degenerate quadrature, etc.)
	ExitCommandError = 2 // Command error (bad parameters, unreadable scenario, etc.)
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric          = "E000"
	ErrCodeInvalidParameter = "E001"
	ErrCodeInvalidDegree    = "E002"
	ErrCodeDegreeOutOfRange = "E003"
	ErrCodeDegenerate       = "E004"
	ErrCodeScenario         = "E005"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "E001", "E002", etc.
	Message string `json:"message"` // human-readable message
}

// JSON reports whether f writes JSON.
func (f *OutputFormatter) JSON() bool {
	return f.Format == "json"
}

// Success outputs a successful result as JSON. Text output is written
// by each command.
func (f *OutputFormatter) Success(data interface{}) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(CLIResponse{Status: "ok", Data: data})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.JSON() {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
		})
	}
	_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return err
}

// Fail reports err and returns the ExitError the command should
// return. Errors from bad input exit with ExitCommandError; numerical
// failures exit with ExitFailure.
func (f *OutputFormatter) Fail(err error) error {
	code, exit := classify(err)
	_ = f.Error(code, err.Error())
	return WrapExitError(exit, code, err)
}

func classify(err error) (code string, exit int) {
	var se *scenarioError
	switch {
	case errors.Is(err, orthopoly.ErrInvalidParameter):
		return ErrCodeInvalidParameter, ExitCommandError
	case errors.Is(err, orthopoly.ErrInvalidDegree):
		return ErrCodeInvalidDegree, ExitCommandError
	case errors.Is(err, orthopoly.ErrDegreeOutOfRange):
		return ErrCodeDegreeOutOfRange, ExitCommandError
	case errors.Is(err, orthopoly.ErrDegenerateQuadrature):
		return ErrCodeDegenerate, ExitFailure
	case errors.As(err, &se):
		return ErrCodeScenario, ExitCommandError
	}
	return ErrCodeGeneric, ExitFailure
}
