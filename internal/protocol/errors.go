package protocol

import (
	"errors"
	"fmt"
)

// DecodeError indicates a record parser rejected one element of a list reply.
type DecodeError struct {
	Index  int
	Record string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode record %d %q: %v", e.Index, e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err came from a rejected list record.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// FieldCountError indicates a record had the wrong number of fields.
type FieldCountError struct {
	Want int
	Got  int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("expected %d fields, got %d", e.Want, e.Got)
}

// ExpectFields returns a *FieldCountError unless fields has exactly n entries.
func ExpectFields(fields []string, n int) error {
	if len(fields) != n {
		return &FieldCountError{Want: n, Got: len(fields)}
	}
	return nil
}
