package effects

import "math"

// LowPass is the one-pole RC reconstruction filter after the resistor
// ladder.
type LowPass struct {
	alpha float32
	l, r  float32
}

// NewLowPass returns a filter at cutoffHz. A cutoff <= 0 or at or above
// Nyquist passes audio through unchanged.
func NewLowPass(sampleRate int, cutoffHz float64) *LowPass {
	f := &LowPass{}
	if cutoffHz > 0 && cutoffHz < float64(sampleRate)/2 {
		rc := 1.0 / (2.0 * math.Pi * cutoffHz)
		dt := 1.0 / float64(sampleRate)
		f.alpha = float32(dt / (rc + dt))
	}
	return f
}

func (f *LowPass) Process(l, r float32) (float32, float32) {
	if f.alpha == 0 {
		return l, r
	}
	f.l += f.alpha * (l - f.l)
	f.r += f.alpha * (r - f.r)
	return f.l, f.r
}

func (f *LowPass) Reset() {
	f.l = 0
	f.r = 0
}

// DCBlock is the output coupling capacitor: a first-order high-pass that
// removes the ladder's offset.
type DCBlock struct {
	prevInL, prevOutL float64
	prevInR, prevOutR float64
}

func NewDCBlock() *DCBlock { return &DCBlock{} }

func (d *DCBlock) Process(l, r float32) (float32, float32) {
	const pole = 0.995
	yl := float64(l) - d.prevInL + pole*d.prevOutL
	d.prevInL, d.prevOutL = float64(l), yl
	yr := float64(r) - d.prevInR + pole*d.prevOutR
	d.prevInR, d.prevOutR = float64(r), yr
	return float32(yl), float32(yr)
}

func (d *DCBlock) Reset() {
	*d = DCBlock{}
}

// Gain scales and hard-limits to [-1,1].
type Gain struct {
	amount float32
}

func NewGain(amount float32) *Gain { return &Gain{amount: amount} }

func (g *Gain) Process(l, r float32) (float32, float32) {
	return clamp(l*g.amount), clamp(r*g.amount)
}

func (g *Gain) Reset() {}

func clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
