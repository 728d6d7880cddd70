package terminal

import "github.com/pkg/errors"

// ErrClosed is returned by operations on a session after Close.
var ErrClosed = errors.New("terminal session closed")

// InitError reports that the terminal could not be put into raw mode.
// It is fatal: nothing may run against a session that failed to start.
type InitError struct {
	cause error
}

func (e *InitError) Error() string { return "cannot enter raw mode: " + e.cause.Error() }

func (e *InitError) Cause() error { return e.cause }

func (e *InitError) Unwrap() error { return e.cause }

// ReadError reports an I/O failure while waiting for a key.
type ReadError struct {
	cause error
}

func (e *ReadError) Error() string { return "read key: " + e.cause.Error() }

func (e *ReadError) Cause() error { return e.cause }

func (e *ReadError) Unwrap() error { return e.cause }
