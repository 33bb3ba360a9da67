package avr

import "github.com/cbegin/lofisynth/internal/hal"

// ADMUX bit groups.
const (
	admuxRefMask = 0xC0 // REFS1:0, zero selects AREF
	admuxMuxMask = 0x0F
)

// admux is the ADMUX value for ch: AREF reference, right-adjusted result.
// The reference bits stay clear; AREF is driven by the board.
func admux(ch hal.Channel) uint8 {
	return uint8(ch) & admuxMuxMask
}
