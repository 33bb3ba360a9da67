// Package encoder packs amplitude channels onto the output ports.
//
// The bit-to-pin map is fixed by the board wiring (R-2R ladders and
// flag LEDs) and must not change:
//
//	mono:  PORTD[2:6] = sample[0:4]
//	quad:  PORTB[0:3] = triangle[1:4]   PORTB[4] = sine[0]
//	       PORTD[2:5] = sine[1:4]       PORTD[6] = saw[4]   PORTD[7] = pulse[4]
//	       PORTC[0]   = triangle[0]
//
// PORTD[0:1] carry the UART and are never driven here.
package encoder

import "github.com/cbegin/lofisynth/internal/hal"

// Pin masks per port.
const (
	MonoMaskD uint8 = 0x1F << 2

	QuadMaskB uint8 = 0x1F
	QuadMaskC uint8 = 0x01
	QuadMaskD uint8 = 0xFC
)

// Quad is one frame of the four parallel channels.
type Quad struct {
	Sine     uint8
	Triangle uint8
	Saw      uint8
	Pulse    uint8
}

// Words is the value of each output port.
type Words struct {
	B, C, D uint8
}

// PackMono places a single 5-bit sample.
func PackMono(sample uint8) uint8 {
	return (sample & 0x1F) << 2
}

// UnpackMono recovers the sample from a PORTD word.
func UnpackMono(d uint8) uint8 {
	return (d >> 2) & 0x1F
}

// PackQuad places the four channels. Saw and pulse only drive their top
// bit.
func PackQuad(q Quad) Words {
	sine := q.Sine & 0x1F
	tri := q.Triangle & 0x1F
	return Words{
		B: tri>>1 | (sine&0x01)<<4,
		C: tri & 0x01,
		D: (sine>>1)<<2 | ((q.Saw>>4)&0x01)<<6 | ((q.Pulse>>4)&0x01)<<7,
	}
}

// UnpackQuad recovers what the wiring carries. Saw and pulse come back as
// 0 or 16.
func UnpackQuad(w Words) Quad {
	return Quad{
		Sine:     ((w.D>>2)&0x0F)<<1 | (w.B>>4)&0x01,
		Triangle: (w.B&0x0F)<<1 | w.C&0x01,
		Saw:      ((w.D >> 6) & 0x01) << 4,
		Pulse:    ((w.D >> 7) & 0x01) << 4,
	}
}

// Layout selects mono or quad packing.
type Layout uint8

const (
	LayoutMono Layout = iota
	LayoutQuad
)

// Encoder writes packed frames through a DigitalOutput.
type Encoder struct {
	out    hal.DigitalOutput
	layout Layout
}

func New(out hal.DigitalOutput, layout Layout) *Encoder {
	return &Encoder{out: out, layout: layout}
}

// Configure sets the pins the layout drives as outputs.
func (e *Encoder) Configure() {
	switch e.layout {
	case LayoutQuad:
		e.out.Configure(hal.PortB, QuadMaskB)
		e.out.Configure(hal.PortC, QuadMaskC)
		e.out.Configure(hal.PortD, QuadMaskD)
	default:
		e.out.Configure(hal.PortD, MonoMaskD)
	}
}

// WriteMono outputs one sample on the mono layout.
func (e *Encoder) WriteMono(sample uint8) {
	e.out.WriteWord(hal.PortD, PackMono(sample))
}

// WriteQuad outputs the four channels on the quad layout.
func (e *Encoder) WriteQuad(q Quad) {
	w := PackQuad(q)
	e.out.WriteWord(hal.PortB, w.B)
	e.out.WriteWord(hal.PortC, w.C)
	e.out.WriteWord(hal.PortD, w.D)
}

func (e *Encoder) Layout() Layout { return e.layout }
