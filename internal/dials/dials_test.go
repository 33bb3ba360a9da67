package dials

import (
	"testing"

	"github.com/cbegin/lofisynth/internal/hal"
)

// scriptADC converts instantly. The first conversion after a channel switch
// returns the previously selected channel's value.
type scriptADC struct {
	values   map[hal.Channel]uint16
	selected hal.Channel
	previous hal.Channel
	fresh    bool // no conversion since the last switch
	busy     bool

	result uint16
	source hal.Channel
	done   bool

	selects int
	starts  int
	reads   []hal.Channel // channel each returned result came from
}

func newScriptADC(values map[hal.Channel]uint16) *scriptADC {
	return &scriptADC{values: values}
}

func (s *scriptADC) Init() {}

func (s *scriptADC) SelectChannel(ch hal.Channel) {
	s.selects++
	s.previous = s.selected
	s.selected = ch
	s.fresh = true
}

func (s *scriptADC) StartConversion() {
	s.starts++
	s.source = s.selected
	if s.fresh {
		s.source = s.previous
		s.fresh = false
	}
	s.result = s.values[s.source]
	s.done = !s.busy
}

func (s *scriptADC) IsConversionDone() bool { return s.done }

func (s *scriptADC) ReadResult() uint16 {
	s.reads = append(s.reads, s.source)
	return s.result
}

func TestBootDiscardsSettlingConversion(t *testing.T) {
	ch := DefaultChannels()
	adc := newScriptADC(map[hal.Channel]uint16{
		ch.Waveform:  100,
		ch.Effect:    200,
		ch.Frequency: 300,
	})
	a := New(adc, ch)
	got := a.Boot()
	want := Dials{Waveform: 100, Effect: 200, Frequency: 300}
	if got != want {
		t.Fatalf("boot dials = %+v, want %+v", got, want)
	}
	if adc.selects != 3 || len(adc.reads) != 6 {
		t.Fatalf("boot selects=%d reads=%d, want 3 and 6", adc.selects, len(adc.reads))
	}
}

func TestFullCycleLatchesAllDials(t *testing.T) {
	ch := DefaultChannels()
	adc := newScriptADC(map[hal.Channel]uint16{
		ch.Waveform:  1,
		ch.Effect:    2,
		ch.Frequency: 3,
	})
	a := New(adc, ch)
	a.Boot()

	adc.values[ch.Waveform] = 640
	adc.values[ch.Effect] = 512
	adc.values[ch.Frequency] = 1023
	adc.selects, adc.starts, adc.reads = 0, 0, nil

	for c := uint16(0); c < CycleFrames; c++ {
		a.Step(c)
	}

	want := Dials{Waveform: 640, Effect: 512, Frequency: 1023}
	if got := a.Dials(); got != want {
		t.Fatalf("dials = %+v, want %+v", got, want)
	}
	if adc.selects != 3 {
		t.Fatalf("channel switches = %d, want 3", adc.selects)
	}
	if adc.starts != 6 {
		t.Fatalf("conversions started = %d, want 6", adc.starts)
	}
	// Discards carry the previous channel, latches carry their own.
	wantReads := []hal.Channel{ch.Frequency, ch.Waveform, ch.Waveform, ch.Effect, ch.Effect, ch.Frequency}
	if len(adc.reads) != len(wantReads) {
		t.Fatalf("reads = %v, want %v", adc.reads, wantReads)
	}
	for i := range wantReads {
		if adc.reads[i] != wantReads[i] {
			t.Fatalf("read %d came from channel %d, want %d", i, adc.reads[i], wantReads[i])
		}
	}
	if a.Missed() != 0 {
		t.Fatalf("missed = %d, want 0", a.Missed())
	}
}

func TestLatchOrderWithinCycle(t *testing.T) {
	ch := DefaultChannels()
	adc := newScriptADC(map[hal.Channel]uint16{ch.Waveform: 10, ch.Effect: 20, ch.Frequency: 30})
	a := New(adc, ch)
	a.Boot()
	adc.values[ch.Waveform] = 11
	adc.values[ch.Effect] = 21
	adc.values[ch.Frequency] = 31

	cases := []struct {
		upTo uint16
		want Dials
	}{
		{0x3F, Dials{10, 20, 30}},
		{0x40, Dials{11, 20, 30}},
		{0x9F, Dials{11, 20, 30}},
		{0xA0, Dials{11, 21, 30}},
		{0xDF, Dials{11, 21, 30}},
		{0xE0, Dials{11, 21, 31}},
	}
	c := uint16(0)
	for _, tc := range cases {
		for ; c <= tc.upTo; c++ {
			a.Step(c)
		}
		if got := a.Dials(); got != tc.want {
			t.Fatalf("after frame %#x dials = %+v, want %+v", tc.upTo, got, tc.want)
		}
	}
}

func TestStepUsesLowByteOnly(t *testing.T) {
	ch := DefaultChannels()
	adc := newScriptADC(map[hal.Channel]uint16{ch.Waveform: 7, ch.Effect: 8, ch.Frequency: 9})
	a := New(adc, ch)
	for c := uint16(0x1200); c < 0x1300; c++ {
		a.Step(c)
	}
	if got := a.Dials(); got != (Dials{7, 8, 9}) {
		t.Fatalf("dials = %+v", got)
	}
}

func TestBusyConverterKeepsStaleValue(t *testing.T) {
	ch := DefaultChannels()
	adc := newScriptADC(map[hal.Channel]uint16{ch.Waveform: 5, ch.Effect: 6, ch.Frequency: 7})
	a := New(adc, ch)
	a.Boot()
	adc.values[ch.Waveform] = 900
	adc.busy = true
	for c := uint16(0); c <= 0x40; c++ {
		a.Step(c)
	}
	if a.Dials().Waveform != 5 {
		t.Fatalf("waveform = %d, want stale 5", a.Dials().Waveform)
	}
	if a.Missed() != 1 {
		t.Fatalf("missed = %d, want 1", a.Missed())
	}
}

func TestPhaseOf(t *testing.T) {
	for c := 0; c < 512; c++ {
		p, ok := PhaseOf(uint16(c))
		wantOK := c%32 == 0
		if ok != wantOK {
			t.Fatalf("count %#x: ok=%v want %v", c, ok, wantOK)
		}
		if ok && uint8(p) != uint8(c) {
			t.Fatalf("count %#x: phase %#x", c, p)
		}
	}
}
