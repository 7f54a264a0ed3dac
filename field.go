package padded

import (
	"io"
	"strings"
)

// Pad returns v padded according to format. See Of for the accepted types
// of v and ParseFormat for the format syntax.
func Pad(v interface{}, format string) (string, error) {
	var sb strings.Builder
	if err := Fpad(&sb, v, format); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Fpad writes v padded according to format to w.
func Fpad(w io.Writer, v interface{}, format string) error {
	f, err := cachedFormat(format)
	if err != nil {
		return err
	}
	value, err := Of(v)
	if err != nil {
		return err
	}
	return f.Item(value).Render(w)
}
