package protocol

import (
	"strconv"
	"strings"

	"github.com/d2verb/mcpi/internal/vec3"
)

// ParseFunc converts one reply field into a value.
type ParseFunc[T any] func(string) (T, error)

// RecordParser builds a value from the positional fields of one list element.
type RecordParser[T any] func(fields []string) (T, error)

// ListOptions controls how an object-list payload is split.
type ListOptions struct {
	// Sep separates list elements. Defaults to ListSeparator.
	Sep string
	// MaxSplits bounds how many times each element is split on
	// FieldSeparator; the last field keeps any remaining commas.
	// Zero means no bound.
	MaxSplits int
}

// ParseInt parses a base-10 integer field.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseFloat parses a floating point field.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseString returns the field unchanged.
func ParseString(s string) (string, error) {
	return s, nil
}

// ParseScalar parses raw with parse. ok is false when raw is malformed; the
// returned value is then the zero value and must not be used.
func ParseScalar[T any](raw string, parse ParseFunc[T]) (v T, ok bool) {
	v, err := parse(raw)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// ParseBool reports whether raw is exactly "true".
func ParseBool(raw string) bool {
	return raw == "true"
}

// ParseVec3 parses a "x,y,z" payload. Either all three components parse or
// ok is false; partial vectors are never returned.
func ParseVec3[T vec3.Number](raw string, parse ParseFunc[T]) (v vec3.Vec3[T], ok bool) {
	fields := strings.Split(raw, FieldSeparator)
	if len(fields) != 3 {
		return vec3.Vec3[T]{}, false
	}
	var c [3]T
	for i, f := range fields {
		n, err := parse(f)
		if err != nil {
			return vec3.Vec3[T]{}, false
		}
		c[i] = n
	}
	return vec3.Of(c[0], c[1], c[2]), true
}

// SplitList splits raw on sep (ListSeparator when empty). An empty payload is
// an empty list, never a list holding one empty string.
func SplitList(raw, sep string) []string {
	if sep == "" {
		sep = ListSeparator
	}
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, sep)
}

// ParseObjectList splits raw into elements, splits each element into fields
// and hands the fields to parse, keeping the payload order.
func ParseObjectList[T any](raw string, opts ListOptions, parse RecordParser[T]) ([]T, error) {
	elems := SplitList(raw, opts.Sep)
	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		v, err := parse(splitFields(elem, opts.MaxSplits))
		if err != nil {
			return nil, &DecodeError{Index: i, Record: elem, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

func splitFields(elem string, maxSplits int) []string {
	if maxSplits <= 0 {
		return strings.Split(elem, FieldSeparator)
	}
	return strings.SplitN(elem, FieldSeparator, maxSplits+1)
}
