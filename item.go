package padded

import (
	"io"
	"strings"
)

var defaultPad = Rune(' ')

// Item pads a single value.
//
// If the width of Value does not exceed TotalWidth, the Pad unit is written
// TotalWidth-Value.Width() times, before or after the value depending on
// Direction. Otherwise HandleExcess decides what, if anything, is written.
//
// The output only measures exactly TotalWidth when Pad has a width of 1.
// A wider pad unit is still repeated once per missing column, so the output
// measures Value.Width() + fill*padWidth.
type Item struct {
	// Value to be padded. It must not be nil.
	Value Value
	// Pad is the unit repeated to fill the gap. Nil means a single space.
	Pad io.WriterTo
	// TotalWidth is the width to fulfill. Negative widths are treated as 0.
	TotalWidth int
	// Direction is where to place the fill. Any value other than Before
	// behaves like After.
	Direction Direction
	// HandleExcess is called when Value is wider than TotalWidth. Nil means
	// ForbidExcess.
	HandleExcess ExcessHandler
}

// Render writes the padded value to w.
//
// Errors returned by w are returned unchanged. On the excess path the result
// of HandleExcess is returned as is.
func (it Item) Render(w io.Writer) error {
	total := it.TotalWidth
	if total < 0 {
		total = 0
	}

	valueWidth := it.Value.Width()
	if valueWidth > total {
		return it.excessHandler().HandleExcess(Excess{
			Value:      it.Value,
			ValueWidth: valueWidth,
			TotalWidth: total,
			Pad:        it.pad(),
		}, w)
	}

	fill := Repeat(it.pad(), total-valueWidth)
	if it.Direction == Before {
		return writeAll(w, fill, it.Value)
	}
	return writeAll(w, it.Value, fill)
}

// WriteTo implements io.WriterTo.
func (it Item) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := it.Render(cw)
	return cw.n, err
}

// Sprint returns the rendered form of it.
func Sprint(it Item) (string, error) {
	var sb strings.Builder
	if err := it.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (it Item) pad() io.WriterTo {
	if it.Pad == nil {
		return defaultPad
	}
	return it.Pad
}

func (it Item) excessHandler() ExcessHandler {
	if it.HandleExcess == nil {
		return ForbidExcess
	}
	return it.HandleExcess
}

// padWidth returns the width of a pad unit. Units that do not report a
// width are assumed to be one column wide.
func padWidth(pad io.WriterTo) int {
	if wd, ok := pad.(Widther); ok {
		return wd.Width()
	}
	return 1
}

func writeAll(w io.Writer, parts ...io.WriterTo) error {
	for _, p := range parts {
		if _, err := p.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
