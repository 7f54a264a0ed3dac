package padded

import (
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Float is a number rendered with two decimals. Truncation cuts its display
// form like any other text; FitExcess instead rounds it to fewer decimals.
type Float float64

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', 2, 64)
}

// Width implements Widther.
func (f Float) Width() int {
	return len(f.String())
}

// WriteTo implements io.WriterTo.
func (f Float) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

// FixedWidth formats f using as many decimals as fit in width. It fails
// with an *ExcessError when the integer part alone is wider than width.
func (f Float) FixedWidth(width int) (string, error) {
	whole := strconv.FormatFloat(float64(f), 'f', 0, 64)
	if len(whole) > width {
		return "", &ExcessError{ValueWidth: len(whole), TotalWidth: width}
	}

	// one column goes to the decimal point
	p := width - len(whole) - 1
	if p <= 0 {
		return whole, nil
	}
	return strconv.FormatFloat(float64(f), 'f', p, 64), nil
}

// WriteTruncated implements Truncater.
func (f Float) WriteTruncated(w io.Writer, width int) error {
	_, err := io.WriteString(w, runewidth.Truncate(f.String(), width, ""))
	return err
}

// WriteFitted implements Fitter.
func (f Float) WriteFitted(w io.Writer, width int) error {
	s, err := f.FixedWidth(width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
