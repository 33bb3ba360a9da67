// Package dials time-slices ADC conversions for the three control dials
// across a 256-frame window so the audio loop never blocks on the
// converter.
//
// The multiplexer has cross-talk: the first conversion after a channel
// switch still reflects the previous channel, so every switch is followed
// by one discarded conversion.
package dials

import "github.com/cbegin/lofisynth/internal/hal"

// Max is the largest 10-bit dial reading.
const Max = 0x3FF

// Dials holds the latched control values.
type Dials struct {
	Waveform  uint16
	Effect    uint16
	Frequency uint16
}

// Channels maps each dial to its ADC input.
type Channels struct {
	Waveform  hal.Channel
	Effect    hal.Channel
	Frequency hal.Channel
}

// DefaultChannels wires the dials to ADC5, ADC6 and ADC7.
func DefaultChannels() Channels {
	return Channels{Waveform: 5, Effect: 6, Frequency: 7}
}

// Phase is one micro-step of the acquisition cycle. Its value is the low
// byte of the frame count that triggers it.
type Phase uint8

const (
	PhaseSelectWaveform  Phase = 0x00
	PhaseSettleWaveform  Phase = 0x20
	PhaseLatchWaveform   Phase = 0x40
	PhaseSelectEffect    Phase = 0x60
	PhaseSettleEffect    Phase = 0x80
	PhaseLatchEffect     Phase = 0xA0 // also selects the frequency channel
	PhaseSettleFrequency Phase = 0xC0
	PhaseLatchFrequency  Phase = 0xE0
)

// CycleFrames is the number of frames for a full refresh of all dials.
const CycleFrames = 256

// Acquisition is the dial acquisition state machine.
type Acquisition struct {
	adc      hal.ADC
	channels Channels
	dials    Dials
	missed   uint32
}

func New(adc hal.ADC, channels Channels) *Acquisition {
	return &Acquisition{adc: adc, channels: channels}
}

// Boot does a full blocking read of every dial. It runs once before the
// audio loop starts.
func (a *Acquisition) Boot() Dials {
	a.dials.Waveform = hal.ReadBlocking(a.adc, a.channels.Waveform)
	a.dials.Effect = hal.ReadBlocking(a.adc, a.channels.Effect)
	a.dials.Frequency = hal.ReadBlocking(a.adc, a.channels.Frequency)
	return a.dials
}

// Dials returns the latched values.
func (a *Acquisition) Dials() Dials { return a.dials }

// Missed counts latch phases that found the converter still busy and kept
// the stale value.
func (a *Acquisition) Missed() uint32 { return a.missed }

// PhaseOf reports whether count triggers a phase, and which.
func PhaseOf(count uint16) (Phase, bool) {
	b := uint8(count)
	if b&0x1F != 0 {
		return 0, false
	}
	return Phase(b), true
}

// Step runs the micro-step for frame count, if any. It never waits.
func (a *Acquisition) Step(count uint16) {
	p, ok := PhaseOf(count)
	if !ok {
		return
	}
	steps[p>>5](a)
}

var steps = [8]func(*Acquisition){
	(*Acquisition).selectWaveform,
	(*Acquisition).settle,
	(*Acquisition).latchWaveform,
	(*Acquisition).selectEffect,
	(*Acquisition).settle,
	(*Acquisition).latchEffect,
	(*Acquisition).settle,
	(*Acquisition).latchFrequency,
}

func (a *Acquisition) start(ch hal.Channel) {
	a.adc.SelectChannel(ch)
	a.adc.StartConversion()
}

// settle throws away the contaminated first conversion after a switch and
// starts a clean one on the same channel.
func (a *Acquisition) settle() {
	if a.adc.IsConversionDone() {
		_ = a.adc.ReadResult()
	}
	a.adc.StartConversion()
}

func (a *Acquisition) latch(dst *uint16) {
	if !a.adc.IsConversionDone() {
		a.missed++
		return
	}
	*dst = a.adc.ReadResult() & Max
}

func (a *Acquisition) selectWaveform() { a.start(a.channels.Waveform) }
func (a *Acquisition) latchWaveform()  { a.latch(&a.dials.Waveform) }
func (a *Acquisition) selectEffect()   { a.start(a.channels.Effect) }

func (a *Acquisition) latchEffect() {
	a.latch(&a.dials.Effect)
	a.start(a.channels.Frequency)
}

func (a *Acquisition) latchFrequency() { a.latch(&a.dials.Frequency) }
