package connection

import (
	"errors"
	"fmt"
	"net"
	"os"
)

var (
	// ErrClosed is returned by operations on a Connection after Close.
	ErrClosed = errors.New("connection closed")
	// ErrFailed wraps the stored error returned by every operation after the
	// connection has failed.
	ErrFailed = errors.New("connection failed")
)

// ConnectError indicates the initial connect was refused or timed out.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the connect attempt timed out.
func (e *ConnectError) Timeout() bool {
	return isTimeout(e.Err)
}

// IsConnectError reports whether err indicates a failed connect.
func IsConnectError(err error) bool {
	var ce *ConnectError
	return errors.As(err, &ce)
}

// Op names the stage of an exchange that hit an I/O error.
type Op string

const (
	OpDrain Op = "drain"
	OpWrite Op = "write"
	OpRead  Op = "read"
)

// TransportError indicates a read or write failed mid-session. It is fatal
// to the Connection.
type TransportError struct {
	Op  Op
	Err error
}

func (e *TransportError) Error() string {
	if e.Timeout() {
		return fmt.Sprintf("%s timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline expiry.
func (e *TransportError) Timeout() bool {
	return isTimeout(e.Err)
}

// IsTransportError reports whether err indicates a mid-session I/O failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsTimeout reports whether err is a connect or transport timeout.
func IsTimeout(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Timeout()
	}
	var ce *ConnectError
	if errors.As(err, &ce) {
		return ce.Timeout()
	}
	return false
}

// RequestError indicates the game answered a request with the failure
// sentinel. The connection remains usable.
type RequestError struct {
	Request string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s failed", e.Request)
}

// IsRequestFailed reports whether err is a remote rejection.
func IsRequestFailed(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
