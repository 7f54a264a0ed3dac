package padded

import "io"

// Fill is a lazy repetition of a pad unit. Nothing is materialized; the unit
// is written Count times every time WriteTo is called.
type Fill struct {
	Unit  io.WriterTo
	Count int
}

// Repeat returns a Fill writing unit count times. A count below zero is
// treated as zero.
func Repeat(unit io.WriterTo, count int) Fill {
	if count < 0 {
		count = 0
	}
	return Fill{Unit: unit, Count: count}
}

// Width returns the display width of the whole fill.
func (f Fill) Width() int {
	if f.Count == 0 {
		return 0
	}
	return f.Count * padWidth(f.Unit)
}

// WriteTo implements io.WriterTo.
func (f Fill) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := 0; i < f.Count; i++ {
		n, err := f.Unit.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
