package padded

import (
	"io"

	"github.com/pkg/errors"
)

var (
	nilFloat64 *float64
	nilInt     *int
	nilString  *string
)

func float64p(v float64) *float64 { return &v }
func intp(v int) *int             { return &v }
func stringp(v string) *string    { return &v }
func uintp(v uint) *uint          { return &v }
func boolp(v bool) *bool          { return &v }

// EncodableString is a string that implements the encoding TextMarshaler interface.
// This is useful for testing.
type EncodableString struct {
	S   string
	Err error
}

// MarshalText implements encoding.TextMarshaler.
func (s EncodableString) MarshalText() ([]byte, error) {
	return []byte(s.S), s.Err
}

// opaque is a Value that cannot be truncated.
type opaque string

func (o opaque) Width() int { return len(o) }

func (o opaque) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(o))
	return int64(n), err
}

var errSink = errors.New("sink failure")

// failWriter accepts limit bytes and then fails.
type failWriter struct {
	limit   int
	written []byte
}

func (f *failWriter) Write(p []byte) (int, error) {
	if len(f.written)+len(p) > f.limit {
		return 0, errSink
	}
	f.written = append(f.written, p...)
	return len(p), nil
}
