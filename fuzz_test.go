//go:build go1.18
// +build go1.18

package padded_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pkg/errors"
	padded "github.com/wallaceicy06/go-padded"
)

func FuzzRender(f *testing.F) {
	f.Add("foo", 10, true)
	f.Add("føø", 3, false)
	f.Add("日本語", 5, true)
	f.Add("", 0, false)
	f.Add("tab\there", 2, true)

	f.Fuzz(func(t *testing.T, s string, total int, before bool) {
		if !utf8.ValidString(s) || total < 0 || total > 1<<12 {
			t.Skip()
		}

		d := padded.After
		if before {
			d = padded.Before
		}
		v := padded.String(s)

		var sb strings.Builder
		err := padded.Item{
			Value:        v,
			Pad:          padded.Rune('.'),
			TotalWidth:   total,
			Direction:    d,
			HandleExcess: padded.ForbidExcess,
		}.Render(&sb)

		if v.Width() > total {
			var excessErr *padded.ExcessError
			if !errors.As(err, &excessErr) {
				t.Fatalf("expected *ExcessError, have %v", err)
			}
			if sb.Len() != 0 {
				t.Fatalf("expected no output on excess, have %q", sb.String())
			}
			return
		}

		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		fill := strings.Repeat(".", total-v.Width())
		want := s + fill
		if before {
			want = fill + s
		}
		if sb.String() != want {
			t.Fatalf("expected %q, have %q", want, sb.String())
		}
	})
}
