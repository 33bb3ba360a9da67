package wave

import (
	"github.com/cbegin/lofisynth/internal/dials"
	"github.com/cbegin/lofisynth/internal/tables"
	"github.com/cbegin/lofisynth/internal/xorshift"
)

// Synth owns the stateful generators (triangle ramp and noise source) and
// dispatches on the waveform dial.
type Synth struct {
	triangle *TriangleRamp
	noise    *xorshift.Source
}

func NewSynth(seed uint32, triangleStart uint8) *Synth {
	return &Synth{
		triangle: NewTriangleRamp(triangleStart),
		noise:    xorshift.New(seed),
	}
}

// Next produces the frame's sample for the variant the waveform dial
// selects. The variant is recomputed on every call.
func (s *Synth) Next(f FrameCount, d dials.Dials) uint8 {
	return s.Sample(VariantFor(d.Waveform), f, d.Effect)
}

// Sample produces one frame of variant v.
func (s *Synth) Sample(v Variant, f FrameCount, effectDial uint16) uint8 {
	switch v {
	case Sine:
		return SineAt(f.Count)
	case Triangle:
		return s.triangle.Next(f.Count)
	case Pulse:
		return PulseAt(f.Count, effectDial)
	case Saw:
		return SawAt(f.Count)
	case SuperSaw:
		return SuperSawAt(f)
	case ClippedSaw:
		return ClippedSawAt(f.Count)
	case ClippedSuperSaw:
		return ClippedSuperSawAt(f)
	case Noise:
		return s.NextNoise()
	default:
		return 0
	}
}

// NextNoise draws the low byte of the next random word, masked to 5 bits.
func (s *Synth) NextNoise() uint8 {
	return uint8(s.noise.Next()) & tables.MaxSample
}

// Channels computes the four parallel channels used by the quad output
// layout. The triangle ramp advances once per call.
func (s *Synth) Channels(f FrameCount, effectDial uint16) (sine, triangle, saw, pulse uint8) {
	return SineAt(f.Count), s.triangle.Next(f.Count), SawAt(f.Count), PulseAt(f.Count, effectDial)
}

// Triangle exposes the ramp state.
func (s *Synth) Triangle() *TriangleRamp { return s.triangle }
