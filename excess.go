package padded

import (
	"io"
	"reflect"
	"strconv"
)

// Excess describes a value that is wider than the width it was asked to
// fill. It is passed by value to an ExcessHandler.
type Excess struct {
	Value      Value
	ValueWidth int
	TotalWidth int
	Pad        io.WriterTo
}

// An ExcessHandler decides what to write when a value does not fit.
type ExcessHandler interface {
	HandleExcess(e Excess, w io.Writer) error
}

// The ExcessHandlerFunc type is an adapter to allow the use of ordinary
// functions as excess handlers.
type ExcessHandlerFunc func(e Excess, w io.Writer) error

// HandleExcess calls f(e, w).
func (f ExcessHandlerFunc) HandleExcess(e Excess, w io.Writer) error {
	return f(e, w)
}

var (
	// ForbidExcess fails with an *ExcessError and writes nothing.
	ForbidExcess = ExcessHandlerFunc(forbidExcess)

	// IgnoreExcess writes the value unpadded, letting the output exceed the
	// total width.
	IgnoreExcess = ExcessHandlerFunc(ignoreExcess)

	// TruncateExcess writes the first TotalWidth columns of the value. The
	// value must implement Truncater, otherwise an
	// *UnsupportedTruncationError is returned and nothing is written.
	TruncateExcess = ExcessHandlerFunc(truncateExcess)

	// FitExcess lets a Fitter rewrite itself into TotalWidth columns and
	// falls back to TruncateExcess for other values.
	FitExcess = ExcessHandlerFunc(fitExcess)
)

func forbidExcess(e Excess, _ io.Writer) error {
	return &ExcessError{ValueWidth: e.ValueWidth, TotalWidth: e.TotalWidth}
}

func ignoreExcess(e Excess, w io.Writer) error {
	_, err := e.Value.WriteTo(w)
	return err
}

func truncateExcess(e Excess, w io.Writer) error {
	t, ok := e.Value.(Truncater)
	if !ok {
		return &UnsupportedTruncationError{Type: reflect.TypeOf(e.Value)}
	}
	return t.WriteTruncated(w, e.TotalWidth)
}

func fitExcess(e Excess, w io.Writer) error {
	if f, ok := e.Value.(Fitter); ok {
		return f.WriteFitted(w, e.TotalWidth)
	}
	return truncateExcess(e, w)
}

// TruncateWithTail returns an ExcessHandler that truncates the value so that
// the value followed by tail fills the total width, then writes tail.
// If tail alone is wider than the total width it is dropped and the value is
// truncated like TruncateExcess. A nil tail behaves like TruncateExcess.
func TruncateWithTail(tail Value) ExcessHandlerFunc {
	if tail == nil {
		return TruncateExcess
	}
	return func(e Excess, w io.Writer) error {
		t, ok := e.Value.(Truncater)
		if !ok {
			return &UnsupportedTruncationError{Type: reflect.TypeOf(e.Value)}
		}
		tw := tail.Width()
		if tw > e.TotalWidth {
			return t.WriteTruncated(w, e.TotalWidth)
		}
		if err := t.WriteTruncated(w, e.TotalWidth-tw); err != nil {
			return err
		}
		_, err := tail.WriteTo(w)
		return err
	}
}

// An ExcessError describes a value that does not fit in the requested width.
type ExcessError struct {
	ValueWidth int
	TotalWidth int
}

func (e *ExcessError) Error() string {
	return "padded: value width " + strconv.Itoa(e.ValueWidth) +
		" exceeds total width " + strconv.Itoa(e.TotalWidth)
}

// An UnsupportedTruncationError describes a value that was asked to be
// truncated but does not implement Truncater.
type UnsupportedTruncationError struct {
	Type reflect.Type
}

func (e *UnsupportedTruncationError) Error() string {
	if e.Type == nil {
		return "padded: cannot truncate nil value"
	}
	return "padded: cannot truncate value of type " + e.Type.String()
}
