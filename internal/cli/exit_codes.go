package cli

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/claudelint/internal/report"
)

// Exit codes for the claudelint CLI (re-exported from report)
const (
	// ExitSuccess indicates a clean validation
	ExitSuccess = report.ExitSuccess

	// ExitFailure indicates diagnostics were produced or a fatal condition occurred
	ExitFailure = report.ExitFailure
)

// exitError carries an exit code whose output has already been written.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitFailure
}
