package wave

import "github.com/cbegin/lofisynth/internal/tables"

// TriangleRamp is the persistent state of the triangle generator.
type TriangleRamp struct {
	amp uint8
}

func NewTriangleRamp(initial uint8) *TriangleRamp {
	if initial > tables.MaxSample {
		initial = tables.MaxSample
	}
	return &TriangleRamp{amp: initial}
}

// Next steps the ramp for frame c. While bit 5 of c is set the ramp falls;
// a falling step that finds it at 0 bounces up instead. It holds at 31.
func (t *TriangleRamp) Next(c uint16) uint8 {
	if c&0x20 != 0 && t.amp > 0 {
		t.amp--
	} else if t.amp < tables.MaxSample {
		t.amp++
	}
	return t.amp
}

// Level returns the current amplitude without stepping.
func (t *TriangleRamp) Level() uint8 { return t.amp }
