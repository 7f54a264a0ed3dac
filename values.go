package padded

import (
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// String is plain text measured in terminal cells. East Asian wide
// characters count as two columns.
type String string

// Width implements Widther.
func (s String) Width() int {
	return runewidth.StringWidth(string(s))
}

// WriteTo implements io.WriterTo.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(s))
	return int64(n), err
}

// WriteTruncated implements Truncater. A wide character that would straddle
// the limit is dropped, so the result may be one column narrower than width.
func (s String) WriteTruncated(w io.Writer, width int) error {
	_, err := io.WriteString(w, runewidth.Truncate(string(s), width, ""))
	return err
}

// Rune is a single character, typically used as a pad unit.
type Rune rune

// Width implements Widther.
func (r Rune) Width() int {
	return runewidth.RuneWidth(rune(r))
}

// WriteTo implements io.WriterTo.
func (r Rune) WriteTo(w io.Writer) (int64, error) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(r))
	n, err := w.Write(buf[:n])
	return int64(n), err
}

// Styled is text that may contain ANSI escape sequences. Escape sequences
// take no columns and survive truncation.
type Styled string

// Width implements Widther.
func (s Styled) Width() int {
	return ansi.StringWidth(string(s))
}

// WriteTo implements io.WriterTo.
func (s Styled) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(s))
	return int64(n), err
}

// WriteTruncated implements Truncater.
func (s Styled) WriteTruncated(w io.Writer, width int) error {
	_, err := io.WriteString(w, ansi.Truncate(string(s), width, ""))
	return err
}
