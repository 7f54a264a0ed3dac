package padded

const (
	defaultAlignment alignment = "default"
	right            alignment = "right"
	left             alignment = "left"
)

const (
	defaultPadChar = ' '
)

// ExcessPolicy names one of the builtin excess handlers.
type ExcessPolicy string

const (
	// Forbid selects ForbidExcess.
	Forbid ExcessPolicy = "forbid"
	// Ignore selects IgnoreExcess.
	Ignore ExcessPolicy = "ignore"
	// Truncate selects TruncateExcess.
	Truncate ExcessPolicy = "truncate"
	// Fit selects FitExcess.
	Fit ExcessPolicy = "fit"
)

// Handler returns the builtin handler for p. Unknown policies forbid excess.
func (p ExcessPolicy) Handler() ExcessHandler {
	switch p {
	case Ignore:
		return IgnoreExcess
	case Truncate:
		return TruncateExcess
	case Fit:
		return FitExcess
	default:
		return ForbidExcess
	}
}

// Valid reports whether p names a builtin handler.
func (p ExcessPolicy) Valid() bool {
	switch p {
	case Forbid, Ignore, Truncate, Fit:
		return true
	default:
		return false
	}
}

var defaultFormat = Format{
	Direction: After,
	Pad:       defaultPadChar,
	Excess:    Forbid,
}

// Format is the parsed form of a field format string. See ParseFormat.
type Format struct {
	Width     int
	Direction Direction
	Pad       rune
	Excess    ExcessPolicy
}

// Item returns the Item padding v according to f.
func (f Format) Item(v Value) Item {
	return Item{
		Value:        v,
		Pad:          Rune(f.Pad),
		TotalWidth:   f.Width,
		Direction:    f.Direction,
		HandleExcess: f.Excess.Handler(),
	}
}

type alignment string

func (a alignment) Valid() bool {
	switch a {
	case defaultAlignment, right, left:
		return true
	default:
		return false
	}
}

func (a alignment) direction() Direction {
	if a == right {
		return Before
	}
	return After
}
