// Package engine is the firmware main loop: it paces frames off the
// timer, synthesizes and crushes a sample, writes it out and advances the
// dial acquisition by one micro-step.
package engine

import (
	"strconv"

	"github.com/cbegin/lofisynth/internal/dials"
	"github.com/cbegin/lofisynth/internal/effects"
	"github.com/cbegin/lofisynth/internal/encoder"
	"github.com/cbegin/lofisynth/internal/hal"
	"github.com/cbegin/lofisynth/internal/tables"
	"github.com/cbegin/lofisynth/internal/wave"
	"github.com/cbegin/lofisynth/internal/xorshift"
)

// Mode selects the output configuration.
type Mode uint8

const (
	// ModeMono outputs the dial-selected waveform, bit-crushed, on one
	// channel.
	ModeMono Mode = iota
	// ModeQuad outputs sine, triangle, saw and pulse at once.
	ModeQuad
)

func (m Mode) String() string {
	if m == ModeQuad {
		return "quad"
	}
	return "mono"
}

// ParseMode accepts "mono" or "quad".
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "mono":
		return ModeMono, true
	case "quad":
		return ModeQuad, true
	}
	return 0, false
}

// Hardware bundles the peripherals the engine drives.
type Hardware struct {
	Timer  hal.Timer
	ADC    hal.ADC
	Output hal.DigitalOutput
	// Serial is optional.
	Serial hal.LineWriter
}

type Option func(*config)

type config struct {
	mode          Mode
	channels      dials.Channels
	seed          uint32
	triangleStart uint8
}

func defaultConfig() config {
	return config{
		mode:     ModeMono,
		channels: dials.DefaultChannels(),
		seed:     xorshift.DefaultSeed,
	}
}

func WithMode(mode Mode) Option {
	return func(cfg *config) {
		cfg.mode = mode
	}
}

func WithChannels(ch dials.Channels) Option {
	return func(cfg *config) {
		cfg.channels = ch
	}
}

// WithSeed sets the noise seed. Zero selects the default seed.
func WithSeed(seed uint32) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

func WithTriangleStart(level uint8) Option {
	return func(cfg *config) {
		cfg.triangleStart = level
	}
}

// Engine owns all loop state. It is driven from a single goroutine.
type Engine struct {
	hw        Hardware
	mode      Mode
	scheduler *Scheduler
	acq       *dials.Acquisition
	synth     *wave.Synth
	enc       *encoder.Encoder
	frame     wave.FrameCount
	last      uint8
}

func New(hw Hardware, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	layout := encoder.LayoutMono
	if cfg.mode == ModeQuad {
		layout = encoder.LayoutQuad
	}
	return &Engine{
		hw:        hw,
		mode:      cfg.mode,
		scheduler: NewScheduler(hw.Timer),
		acq:       dials.New(hw.ADC, cfg.channels),
		synth:     wave.NewSynth(cfg.seed, cfg.triangleStart),
		enc:       encoder.New(hw.Output, layout),
	}
}

// Boot initializes the peripherals, reads every dial with blocking
// conversions and programs the first period.
func (e *Engine) Boot() {
	e.hw.Timer.Init()
	e.hw.ADC.Init()
	e.enc.Configure()
	d := e.acq.Boot()
	e.scheduler.SetNextPeriod(tables.Period(d.Frequency))
	if e.hw.Serial != nil {
		e.hw.Serial.WriteLine("lofisynth ready")
		e.hw.Serial.WriteLine(FormatDials(d))
	}
}

// Step runs one frame.
func (e *Engine) Step() {
	e.scheduler.WaitForTick()
	d := e.acq.Dials()
	e.scheduler.SetNextPeriod(tables.Period(d.Frequency))

	switch e.mode {
	case ModeQuad:
		sine, tri, saw, pulse := e.synth.Channels(e.frame, d.Effect)
		level := effects.LevelFor(d.Effect)
		q := encoder.Quad{
			Sine:     level.Apply(sine),
			Triangle: level.Apply(tri),
			Saw:      level.Apply(saw),
			Pulse:    pulse,
		}
		e.enc.WriteQuad(q)
		e.last = q.Sine
	default:
		s := effects.Quantize(e.synth.Next(e.frame, d), d.Effect)
		e.enc.WriteMono(s)
		e.last = s
	}

	e.acq.Step(e.frame.Count)
	e.frame.Advance()
}

// Run loops forever.
func (e *Engine) Run() {
	e.Boot()
	for {
		e.Step()
	}
}

// Dials returns the latched dial values.
func (e *Engine) Dials() dials.Dials { return e.acq.Dials() }

// Frame returns the frame counters.
func (e *Engine) Frame() wave.FrameCount { return e.frame }

// Period returns the period programmed for the next countdown.
func (e *Engine) Period() uint16 { return e.scheduler.Period() }

// LastSample returns the mono sample (or the sine channel in quad mode)
// written by the previous Step.
func (e *Engine) LastSample() uint8 { return e.last }

// Mode reports the output configuration.
func (e *Engine) Mode() Mode { return e.mode }

// MissedLatches counts dial latches skipped because the converter was busy.
func (e *Engine) MissedLatches() uint32 { return e.acq.Missed() }

// FormatDials renders the dials as the serial report line, e.g.
// "w=512 e=0 f=1023".
func FormatDials(d dials.Dials) string {
	b := make([]byte, 0, 24)
	b = append(b, "w="...)
	b = strconv.AppendUint(b, uint64(d.Waveform), 10)
	b = append(b, " e="...)
	b = strconv.AppendUint(b, uint64(d.Effect), 10)
	b = append(b, " f="...)
	b = strconv.AppendUint(b, uint64(d.Frequency), 10)
	return string(b)
}
