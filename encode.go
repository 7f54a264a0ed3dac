package padded

import (
	"encoding"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

var (
	valueType         = reflect.TypeOf((*Value)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Of returns a Value for v.
//
// v must already be a Value, implement encoding.TextMarshaler or be based
// on one of the following builtin types: string, bool, int, int64, int32,
// int16, int8, uint, uint64, uint32, uint16, uint8, float64 or float32.
// Pointers to those types and interfaces holding them are accepted as well.
//
// Floats become a Float, everything else a String. nil pointers and
// interfaces become an empty String.
func Of(v interface{}) (Value, error) {
	if v == nil {
		return String(""), nil
	}
	return newValueEncoder(reflect.TypeOf(v))(reflect.ValueOf(v))
}

// An InvalidTypeError describes a Go value that cannot be padded.
type InvalidTypeError struct {
	Type reflect.Type
}

func (e *InvalidTypeError) Error() string {
	return "padded: cannot pad value of type " + e.Type.String()
}

type valueEncoder func(v reflect.Value) (Value, error)

func newValueEncoder(t reflect.Type) valueEncoder {
	if t == nil {
		return nilEncoder
	}
	if t.Implements(valueType) {
		return nilSafe(t, valueImplEncoder)
	}
	if t.Implements(textMarshalerType) {
		return nilSafe(t, textMarshalerEncoder)
	}

	switch t.Kind() {
	case reflect.Ptr, reflect.Interface:
		return ptrInterfaceEncoder
	case reflect.String:
		return stringEncoder
	case reflect.Bool:
		return boolEncoder
	case reflect.Int, reflect.Int64, reflect.Int32, reflect.Int16, reflect.Int8:
		return intEncoder
	case reflect.Uint, reflect.Uint64, reflect.Uint32, reflect.Uint16, reflect.Uint8:
		return uintEncoder
	case reflect.Float64, reflect.Float32:
		return floatEncoder
	}
	return unknownTypeEncoder(t)
}

// nilSafe guards encoders that call methods on v against nil pointers.
func nilSafe(t reflect.Type, enc valueEncoder) valueEncoder {
	if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface {
		return enc
	}
	return func(v reflect.Value) (Value, error) {
		if v.IsNil() {
			return nilEncoder(v)
		}
		return enc(v)
	}
}

func valueImplEncoder(v reflect.Value) (Value, error) {
	return v.Interface().(Value), nil
}

func textMarshalerEncoder(v reflect.Value) (Value, error) {
	text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return nil, errors.Wrapf(err, "padded: cannot marshal %s", v.Type())
	}
	return String(text), nil
}

func ptrInterfaceEncoder(v reflect.Value) (Value, error) {
	if v.IsNil() {
		return nilEncoder(v)
	}
	return newValueEncoder(v.Elem().Type())(v.Elem())
}

func stringEncoder(v reflect.Value) (Value, error) {
	return String(v.String()), nil
}

func boolEncoder(v reflect.Value) (Value, error) {
	return String(strconv.FormatBool(v.Bool())), nil
}

func intEncoder(v reflect.Value) (Value, error) {
	return String(strconv.FormatInt(v.Int(), 10)), nil
}

func uintEncoder(v reflect.Value) (Value, error) {
	return String(strconv.FormatUint(v.Uint(), 10)), nil
}

func floatEncoder(v reflect.Value) (Value, error) {
	return Float(v.Float()), nil
}

func nilEncoder(v reflect.Value) (Value, error) {
	return String(""), nil
}

func unknownTypeEncoder(t reflect.Type) valueEncoder {
	return func(value reflect.Value) (Value, error) {
		return nil, &InvalidTypeError{Type: t}
	}
}
