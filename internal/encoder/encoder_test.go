package encoder

import (
	"testing"

	"github.com/cbegin/lofisynth/internal/hal"
)

type portLog struct {
	masks  [hal.NumPorts]uint8
	words  [hal.NumPorts]uint8
	writes []hal.Port
}

func (p *portLog) Configure(port hal.Port, mask uint8) { p.masks[port] |= mask }

func (p *portLog) WriteWord(port hal.Port, value uint8) {
	p.words[port] = value
	p.writes = append(p.writes, port)
}

func TestPackMonoPins(t *testing.T) {
	cases := []struct {
		sample uint8
		d      uint8
	}{
		{0, 0x00},
		{1, 0x04},
		{0x10, 0x40},
		{31, 0x7C},
		{0xFF, 0x7C},
	}
	for _, tc := range cases {
		if got := PackMono(tc.sample); got != tc.d {
			t.Errorf("PackMono(%d) = %#02x, want %#02x", tc.sample, got, tc.d)
		}
		if got := PackMono(tc.sample); got&^MonoMaskD != 0 {
			t.Errorf("PackMono(%d) drives pins outside the mask", tc.sample)
		}
	}
	for s := uint8(0); s < 32; s++ {
		if UnpackMono(PackMono(s)) != s {
			t.Fatalf("mono round trip failed for %d", s)
		}
	}
}

func TestPackQuadPinMap(t *testing.T) {
	cases := []struct {
		name string
		q    Quad
		w    Words
	}{
		{"silence", Quad{}, Words{}},
		{"sine bit0", Quad{Sine: 0x01}, Words{B: 0x10}},
		{"sine top", Quad{Sine: 0x1E}, Words{D: 0x3C}},
		{"triangle bit0", Quad{Triangle: 0x01}, Words{C: 0x01}},
		{"triangle top", Quad{Triangle: 0x1E}, Words{B: 0x0F}},
		{"saw flag", Quad{Saw: 0x10}, Words{D: 0x40}},
		{"saw low bits ignored", Quad{Saw: 0x0F}, Words{}},
		{"pulse flag", Quad{Pulse: 31}, Words{D: 0x80}},
		{"all high", Quad{31, 31, 31, 31}, Words{B: 0x1F, C: 0x01, D: 0xFC}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PackQuad(tc.q); got != tc.w {
				t.Fatalf("PackQuad(%+v) = %+v, want %+v", tc.q, got, tc.w)
			}
		})
	}
}

func TestPackQuadStaysInMasks(t *testing.T) {
	for i := 0; i < 1<<10; i++ {
		q := Quad{Sine: uint8(i), Triangle: uint8(i >> 2), Saw: uint8(i >> 3), Pulse: uint8(i >> 5)}
		w := PackQuad(q)
		if w.B&^QuadMaskB != 0 || w.C&^QuadMaskC != 0 || w.D&^QuadMaskD != 0 {
			t.Fatalf("%+v packs outside masks: %+v", q, w)
		}
	}
}

func TestUnpackQuadRecoversWiredBits(t *testing.T) {
	for s := uint8(0); s < 32; s++ {
		for tr := uint8(0); tr < 32; tr++ {
			q := Quad{Sine: s, Triangle: tr, Saw: 31, Pulse: 0}
			got := UnpackQuad(PackQuad(q))
			want := Quad{Sine: s, Triangle: tr, Saw: 16, Pulse: 0}
			if got != want {
				t.Fatalf("unpack(pack(%+v)) = %+v, want %+v", q, got, want)
			}
		}
	}
}

func TestEncoderWritesThroughOutput(t *testing.T) {
	out := &portLog{}
	e := New(out, LayoutQuad)
	e.Configure()
	if out.masks[hal.PortB] != QuadMaskB || out.masks[hal.PortC] != QuadMaskC || out.masks[hal.PortD] != QuadMaskD {
		t.Fatalf("quad masks = %v", out.masks)
	}
	e.WriteQuad(Quad{Sine: 31, Triangle: 0, Saw: 0, Pulse: 31})
	if out.words[hal.PortB] != 0x10 || out.words[hal.PortC] != 0 || out.words[hal.PortD] != 0xBC {
		t.Fatalf("words = %v", out.words)
	}
	if len(out.writes) != 3 {
		t.Fatalf("writes = %v, want one per port", out.writes)
	}

	mono := &portLog{}
	m := New(mono, LayoutMono)
	m.Configure()
	m.WriteMono(17)
	if mono.masks[hal.PortD] != MonoMaskD || mono.words[hal.PortD] != 17<<2 {
		t.Fatalf("mono mask=%#x word=%#x", mono.masks[hal.PortD], mono.words[hal.PortD])
	}
}
