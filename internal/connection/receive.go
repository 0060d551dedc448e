package connection

import (
	"github.com/d2verb/mcpi/internal/protocol"
	"github.com/d2verb/mcpi/internal/vec3"
)

// SendReceiveBool sends a request and reports whether the reply is "true".
func (c *Connection) SendReceiveBool(command string, args ...any) (bool, error) {
	raw, err := c.SendReceive(command, args...)
	if err != nil {
		return false, err
	}
	return protocol.ParseBool(raw), nil
}

// SendReceiveList sends a request and splits the reply on sep, or on
// protocol.ListSeparator when sep is empty.
func (c *Connection) SendReceiveList(command, sep string, args ...any) ([]string, error) {
	raw, err := c.SendReceive(command, args...)
	if err != nil {
		return nil, err
	}
	return protocol.SplitList(raw, sep), nil
}

// ReceiveScalar sends a request and parses the reply as a single value.
// ok is false when the reply could not be parsed.
func ReceiveScalar[T any](c *Connection, parse protocol.ParseFunc[T], command string, args ...any) (v T, ok bool, err error) {
	raw, err := c.SendReceive(command, args...)
	if err != nil {
		return v, false, err
	}
	v, ok = protocol.ParseScalar(raw, parse)
	return v, ok, nil
}

// ReceiveVec3 sends a request and parses an "x,y,z" reply. ok is false
// unless all three components parse.
func ReceiveVec3[T vec3.Number](c *Connection, parse protocol.ParseFunc[T], command string, args ...any) (v vec3.Vec3[T], ok bool, err error) {
	raw, err := c.SendReceive(command, args...)
	if err != nil {
		return v, false, err
	}
	v, ok = protocol.ParseVec3(raw, parse)
	return v, ok, nil
}

// ReceiveObjectList sends a request and builds one value per list element
// with parse.
func ReceiveObjectList[T any](c *Connection, opts protocol.ListOptions, parse protocol.RecordParser[T], command string, args ...any) ([]T, error) {
	raw, err := c.SendReceive(command, args...)
	if err != nil {
		return nil, err
	}
	return protocol.ParseObjectList(raw, opts, parse)
}
