package effects

import (
	"math"
	"testing"
)

func TestChainRunsInOrder(t *testing.T) {
	c := NewChain(NewGain(4), NewGain(0.5))
	// Clamping after the first stage shows the order.
	if l, r := c.Process(0.5, -0.5); l != 0.5 || r != -0.5 {
		t.Fatalf("chain = %f %f, want 0.5 -0.5", l, r)
	}
	c.Add(NewGain(0.5))
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}
	if l, _ := c.Process(0.5, 0); l != 0.25 {
		t.Fatalf("after Add = %f, want 0.25", l)
	}
}

func TestLowPassDisabled(t *testing.T) {
	for _, cutoff := range []float64{0, -1, 24000, 30000} {
		f := NewLowPass(48000, cutoff)
		if l, r := f.Process(0.7, -0.3); l != 0.7 || r != -0.3 {
			t.Fatalf("cutoff %v: got %f %f, want passthrough", cutoff, l, r)
		}
	}
}

func TestLowPassSmoothsStep(t *testing.T) {
	f := NewLowPass(48000, 2000)
	first, _ := f.Process(1, 1)
	if first <= 0 || first >= 1 {
		t.Fatalf("first output = %f, want between 0 and 1", first)
	}
	var last float32
	for i := 0; i < 2000; i++ {
		last, _ = f.Process(1, 1)
	}
	if math.Abs(float64(last)-1) > 0.01 {
		t.Fatalf("settled at %f, want ~1", last)
	}
	f.Reset()
	if l, _ := f.Process(0, 0); l != 0 {
		t.Fatalf("reset kept state: %f", l)
	}
}

func TestDCBlockRemovesOffset(t *testing.T) {
	d := NewDCBlock()
	var l, r float32
	for i := 0; i < 20000; i++ {
		l, r = d.Process(1, -1)
	}
	if math.Abs(float64(l)) > 0.01 || math.Abs(float64(r)) > 0.01 {
		t.Fatalf("dc blocker left %f %f", l, r)
	}
	d.Reset()
	if d.prevOutL != 0 || d.prevInR != 0 {
		t.Fatal("reset kept filter state")
	}
}

func TestGainLimits(t *testing.T) {
	g := NewGain(0.8)
	cases := []struct{ in, want float32 }{
		{1, 0.8},
		{-1, -0.8},
		{0, 0},
	}
	for _, tc := range cases {
		if got, _ := g.Process(tc.in, 0); math.Abs(float64(got-tc.want)) > 1e-6 {
			t.Errorf("gain(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
	if l, r := NewGain(3).Process(1, -1); l != 1 || r != -1 {
		t.Fatalf("limit = %f %f, want 1 -1", l, r)
	}
}
