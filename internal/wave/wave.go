// Package wave generates 5-bit amplitude samples from the frame counters.
//
// Every generator is integer-only and keeps its result in [0,31] by
// masking or clamping before returning; table lookups reduce their index
// first.
package wave

import "github.com/cbegin/lofisynth/internal/tables"

// Variant is a waveform selected by the waveform dial.
type Variant uint8

const (
	Sine Variant = iota
	Triangle
	Pulse
	Saw
	SuperSaw
	ClippedSaw
	ClippedSuperSaw
	Noise
	NumVariants
)

var variantNames = [NumVariants]string{
	Sine:            "sine",
	Triangle:        "triangle",
	Pulse:           "pulse",
	Saw:             "saw",
	SuperSaw:        "supersaw",
	ClippedSaw:      "clipped-saw",
	ClippedSuperSaw: "clipped-supersaw",
	Noise:           "noise",
}

func (v Variant) String() string {
	if v < NumVariants {
		return variantNames[v]
	}
	return "unknown"
}

// VariantFor maps a 10-bit waveform dial onto eight equal bands.
func VariantFor(waveformDial uint16) Variant {
	return Variant((waveformDial & 0x3FF) >> 7)
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(name string) (Variant, bool) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), true
		}
	}
	return 0, false
}

// DialFor returns a waveform dial value in the middle of v's band.
func DialFor(v Variant) uint16 {
	return uint16(v%NumVariants)<<7 | 0x40
}

// FrameCount holds the main frame counter and the detuned counter used by
// the super variants. Both wrap at 16 bits.
type FrameCount struct {
	Count   uint16
	Detuned uint16
}

// Advance moves to the next frame. Detuned skips one step in every 128,
// so it runs at 127/128 of Count's rate.
func (f *FrameCount) Advance() {
	f.Count++
	if f.Count&0x7F != 0 {
		f.Detuned++
	}
}

// Phase returns the acquisition phase byte of the frame.
func (f FrameCount) Phase() uint8 {
	return uint8(f.Count)
}

// SineAt looks up the sine table at c modulo its length.
func SineAt(c uint16) uint8 {
	return tables.Sine(c)
}

// SawAt ramps 0..31 over 64 frames, two frames per step.
func SawAt(c uint16) uint8 {
	return uint8(c>>1) & tables.MaxSample
}

// ClippedSawAt is a trapezoid over 64 frames: 16 frames low, a 32 frame
// rise, 16 frames high.
func ClippedSawAt(c uint16) uint8 {
	d := uint8(c & 63)
	switch {
	case d < 16:
		return 0
	case d < 48:
		return d - 16
	default:
		return tables.MaxSample
	}
}

// PulseThreshold converts the effect dial into the number of high frames
// per waveform cycle, 1..32.
func PulseThreshold(effectDial uint16) uint8 {
	return 32 - uint8((effectDial&0x3FF)>>5)
}

// PulseAt is high for the first threshold frames of each cycle.
func PulseAt(c uint16, effectDial uint16) uint8 {
	if uint8(c%tables.SineLen) < PulseThreshold(effectDial) {
		return tables.MaxSample
	}
	return 0
}

// SuperSawAt mixes the saw at both counters.
func SuperSawAt(f FrameCount) uint8 {
	return mix(SawAt(f.Count), SawAt(f.Detuned))
}

// ClippedSuperSawAt mixes the clipped saw at both counters.
func ClippedSuperSawAt(f FrameCount) uint8 {
	return mix(ClippedSawAt(f.Count), ClippedSawAt(f.Detuned))
}

func mix(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b)) >> 1)
}
