// Package analog maps the board's output pins onto the voltage its
// resistor ladder produces. Filtering after the ladder is done with
// effects.Effectors.
package analog

import "github.com/cbegin/lofisynth/internal/encoder"

// Level maps a 5-bit ladder value onto [-1,1].
func Level(v uint8) float32 {
	return float32(v&0x1F)/15.5 - 1
}

// MixQuad returns the 5-bit level of the four quad channels summed on one
// ladder. Saw and pulse only reach the pins as their top bit, so each
// contributes half scale or nothing.
func MixQuad(q encoder.Quad) uint8 {
	sum := uint16(q.Sine) + uint16(q.Triangle) + uint16(q.Saw)*31/16 + uint16(q.Pulse)*31/16
	return uint8(sum / 4)
}
