package protocol

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
)

// Encode builds the request frame for command with the flattened args.
//
// Absent values (nil, nil pointers) are written as empty fields, so
// Encode("cmd", 1, nil, "x") is "cmd(1,,x)\n".
func Encode(command string, args ...any) []byte {
	var buf bytes.Buffer
	buf.WriteString(command)
	buf.WriteByte('(')
	first := true
	for v := range Flatten(args...) {
		if !first {
			buf.WriteString(FieldSeparator)
		}
		first = false
		buf.WriteString(FormatValue(v))
	}
	buf.WriteString(")\n")
	return buf.Bytes()
}

// FormatValue renders a single flattened argument in its wire form.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(t).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(t).Uint(), 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		if isNilPointer(v) {
			return ""
		}
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return FormatValue(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
