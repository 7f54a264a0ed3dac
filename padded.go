// Package padded pads a single value to a fixed display width.
//
// An Item describes one padding operation: the value, the pad unit, the
// total width, where the fill goes and what to do when the value is already
// wider than the total width. Rendering writes directly to an io.Writer.
package padded

import "io"

// Widther is implemented by anything with a display width.
type Widther interface {
	Width() int
}

// Value is the interface implemented by an object that can be padded.
//
// Width reports the display width of the value in columns. WriteTo writes
// the value to w exactly as it would be displayed.
type Value interface {
	Widther
	io.WriterTo
}

// Truncater is the interface implemented by values that can write a
// shortened form of themselves.
//
// WriteTruncated should write the longest prefix of the value whose
// display width does not exceed width.
type Truncater interface {
	WriteTruncated(w io.Writer, width int) error
}

// Fitter is the interface implemented by values that can rewrite
// themselves into a narrower form, such as a number with fewer decimals.
//
// Unlike WriteTruncated, the output of WriteFitted need not be a prefix of
// the value's display form. It must not be wider than width.
type Fitter interface {
	WriteFitted(w io.Writer, width int) error
}

// Direction determines where the fill is placed relative to the value.
type Direction int

const (
	// After places the fill after the value (left aligned text).
	After Direction = iota
	// Before places the fill before the value (right aligned text).
	Before
)

func (d Direction) String() string {
	switch d {
	case After:
		return "after"
	case Before:
		return "before"
	default:
		return "invalid"
	}
}
