package cli

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitNoMatch = 1
	ExitConfig  = 2
)

// ErrNoMatch is returned by check when the message is not accepted.
var ErrNoMatch = errors.New("message does not match")

// exitError carries the exit code for an error returned from a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// configError marks err as a configuration problem (exit code 2).
func configError(err error) error {
	return &exitError{code: ExitConfig, err: err}
}

// failed marks a run whose checks did not pass (exit code 1).
func failed(format string, args ...any) error {
	return &exitError{code: ExitNoMatch, err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by a command to a process exit code.
// Unclassified errors, such as bad flags, are configuration errors.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitConfig
}
