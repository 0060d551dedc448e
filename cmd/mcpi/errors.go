package main

import (
	"errors"
	"fmt"

	"github.com/d2verb/mcpi/internal/connection"
)

// Exit codes for CLI commands.
const (
	exitSuccess       = 0
	exitError         = 1
	exitConnectFailed = 2
	exitRequestFailed = 3
	exitTransport     = 4
	exitInvalidConfig = 5
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errConnectFailed(addr string) *ExitError {
	return &ExitError{
		Code:    exitConnectFailed,
		Message: fmt.Sprintf("Cannot reach the game at %s.\nIs it running with the remote API enabled?", addr),
	}
}

func errRequestFailed(request string) *ExitError {
	return &ExitError{
		Code:    exitRequestFailed,
		Message: fmt.Sprintf("The game rejected '%s'.", request),
	}
}

func errTimeout(op connection.Op) *ExitError {
	return &ExitError{
		Code:    exitTransport,
		Message: fmt.Sprintf("Timed out during %s; the connection was dropped.", op),
	}
}

func errConnectionLost(err error) *ExitError {
	return &ExitError{
		Code:    exitTransport,
		Message: fmt.Sprintf("Connection lost: %v", err),
	}
}

func errInvalidConfig(path string, err error) *ExitError {
	return &ExitError{
		Code:    exitInvalidConfig,
		Message: fmt.Sprintf("Invalid configuration (%s):\n%v", path, err),
	}
}

// mapError converts connection errors into exit errors that name the kind
// of failure. Other errors are returned unchanged.
func mapError(err error) error {
	var (
		exitErr *ExitError
		ce      *connection.ConnectError
		re      *connection.RequestError
		te      *connection.TransportError
	)
	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.As(err, &ce):
		return errConnectFailed(ce.Addr)
	case errors.As(err, &re):
		return errRequestFailed(re.Request)
	case errors.As(err, &te):
		if te.Timeout() {
			return errTimeout(te.Op)
		}
		return errConnectionLost(te.Err)
	}
	return err
}
