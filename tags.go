package padded

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ParseFormat parses a field format string of the form
//
//	width[,alignment[,pad[,excess]]]
//
// alignment is left, right or default (left). pad is a single character;
// "_" stands for a space since spaces are easy to lose in a format string.
// excess is forbid, ignore, truncate or fit. Empty optional parts keep their
// defaults, so "8,,0" zero-pads on the right of the value.
func ParseFormat(s string) (Format, error) {
	f := defaultFormat

	parts := strings.Split(s, ",")
	if len(parts) > 4 {
		return Format{}, errors.Errorf("padded: format %q has too many parts", s)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return Format{}, errors.Wrapf(err, "padded: format %q has invalid width", s)
	}
	if width < 0 {
		return Format{}, errors.Errorf("padded: format %q has negative width", s)
	}
	f.Width = width

	if len(parts) > 1 && parts[1] != "" {
		a := alignment(parts[1])
		if !a.Valid() {
			return Format{}, errors.Errorf("padded: format %q has invalid alignment %q", s, parts[1])
		}
		f.Direction = a.direction()
	}

	if len(parts) > 2 && parts[2] != "" {
		pad, ok := parsePadChar(parts[2])
		if !ok {
			return Format{}, errors.Errorf("padded: format %q has invalid pad %q", s, parts[2])
		}
		f.Pad = pad
	}

	if len(parts) > 3 && parts[3] != "" {
		p := ExcessPolicy(parts[3])
		if !p.Valid() {
			return Format{}, errors.Errorf("padded: format %q has invalid excess policy %q", s, parts[3])
		}
		f.Excess = p
	}

	return f, nil
}

func parsePadChar(s string) (rune, bool) {
	if s == "_" {
		return ' ', true
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}
	return r, true
}

var formatCache sync.Map // map[string]Format

// cachedFormat is like ParseFormat but cached to prevent duplicate work.
// Invalid formats are not cached.
func cachedFormat(s string) (Format, error) {
	if f, ok := formatCache.Load(s); ok {
		return f.(Format), nil
	}
	f, err := ParseFormat(s)
	if err != nil {
		return Format{}, err
	}
	formatCache.Store(s, f)
	return f, nil
}
