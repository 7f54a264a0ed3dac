package padded

import (
	"bytes"
	"io"
	"testing"
)

func TestValue_Width(t *testing.T) {
	for _, tt := range []struct {
		name  string
		v     Widther
		width int
	}{
		{"empty string", String(""), 0},
		{"ascii string", String("foo"), 3},
		{"wide string", String("日本語"), 6},
		{"mixed string", String("a日b"), 4},
		{"rune", Rune('-'), 1},
		{"wide rune", Rune('日'), 2},
		{"styled plain", Styled("foo"), 3},
		{"styled escapes", Styled("\x1b[1;31mfoo\x1b[0m"), 3},
		{"float", Float(4.2), 4},
		{"negative float", Float(-12.345), 6},
		{"fill", Repeat(Rune('-'), 4), 4},
		{"wide fill", Repeat(Rune('日'), 3), 6},
		{"empty fill", Repeat(Rune('-'), -2), 0},
		{"fill of unmeasured unit", Repeat(opaqueUnit("ab"), 2), 2},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if have := tt.v.Width(); have != tt.width {
				t.Errorf("Width() expected %d, have %d", tt.width, have)
			}
		})
	}
}

func TestValue_WriteTo(t *testing.T) {
	for _, tt := range []struct {
		name string
		v    Value
		o    string
	}{
		{"string", String("foo"), "foo"},
		{"rune", Rune('☃'), "☃"},
		{"styled", Styled("\x1b[1mfoo\x1b[0m"), "\x1b[1mfoo\x1b[0m"},
		{"float", Float(123.4567), "123.46"},
		{"fill", Repeat(Rune('☃'), 3), "☃☃☃"},
		{"empty fill", Repeat(Rune('☃'), 0), ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			buff := bytes.NewBuffer(nil)
			n, err := tt.v.WriteTo(buff)
			if err != nil {
				t.Fatalf("WriteTo() unexpected error %v", err)
			}
			if buff.String() != tt.o {
				t.Errorf("WriteTo() expected %q, have %q", tt.o, buff.String())
			}
			if n != int64(len(tt.o)) {
				t.Errorf("WriteTo() expected %d bytes, have %d", len(tt.o), n)
			}
		})
	}
}

func TestFill_WriteTo_Error(t *testing.T) {
	w := &failWriter{limit: 2}
	n, err := Repeat(Rune('-'), 5).WriteTo(w)
	if err != errSink {
		t.Errorf("WriteTo() expected %v, have %v", errSink, err)
	}
	if n != 2 {
		t.Errorf("WriteTo() expected 2 bytes, have %d", n)
	}
}

// opaqueUnit is a pad unit that does not report a width.
type opaqueUnit string

func (o opaqueUnit) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(o))
	return int64(n), err
}
