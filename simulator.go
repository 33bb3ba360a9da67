package lofisynth

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/cbegin/lofisynth/internal/analog"
	"github.com/cbegin/lofisynth/internal/dials"
	"github.com/cbegin/lofisynth/internal/effects"
	"github.com/cbegin/lofisynth/internal/encoder"
	"github.com/cbegin/lofisynth/internal/engine"
	"github.com/cbegin/lofisynth/internal/hal"
	"github.com/cbegin/lofisynth/internal/hal/sim"
	"github.com/cbegin/lofisynth/internal/wave"
)

// Dials are the three control values, 0..1023 each.
type Dials = dials.Dials

// Mode is the board's output configuration.
type Mode = engine.Mode

const (
	ModeMono = engine.ModeMono
	ModeQuad = engine.ModeQuad
)

// MaxDial is the full-scale dial reading.
const MaxDial = dials.Max

// Dial names one of the three controls.
type Dial int

const (
	DialWaveform Dial = iota
	DialEffect
	DialFrequency
)

func (d Dial) String() string {
	switch d {
	case DialWaveform:
		return "waveform"
	case DialEffect:
		return "effect"
	case DialFrequency:
		return "frequency"
	default:
		return "unknown"
	}
}

// outputGain is the line driver's gain after the coupling capacitor.
const outputGain = 0.8

type Option func(*config)

type config struct {
	mode      Mode
	seed      uint32
	channels  dials.Channels
	frameCost uint64
	cutoffHz  float64
	dcBlock   bool
	logger    *slog.Logger
	sampleTap func([]float32)
}

func defaultConfig() config {
	return config{
		mode:     ModeMono,
		channels: dials.DefaultChannels(),
		cutoffHz: 8000,
		dcBlock:  true,
	}
}

func WithMode(mode Mode) Option {
	return func(cfg *config) {
		cfg.mode = mode
	}
}

// WithSeed sets the noise generator seed. Zero selects the default.
func WithSeed(seed uint32) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithFrameCost charges ticks of CPU work to every frame. Costs above the
// pitch period make the simulated board overrun.
func WithFrameCost(ticks uint64) Option {
	return func(cfg *config) {
		cfg.frameCost = ticks
	}
}

// WithOutputFilter configures the analog output path. cutoffHz <= 0
// disables the reconstruction low-pass; dcBlock models the coupling
// capacitor.
func WithOutputFilter(cutoffHz float64, dcBlock bool) Option {
	return func(cfg *config) {
		cfg.cutoffHz = cutoffHz
		cfg.dcBlock = dcBlock
	}
}

// WithLogger routes the board's serial output and simulator events.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithSampleTap installs a callback invoked with each rendered stereo
// buffer. It runs on the audio thread; keep it brief.
func WithSampleTap(tap func([]float32)) Option {
	return func(cfg *config) {
		cfg.sampleTap = tap
	}
}

// Status is a snapshot of the simulated board.
type Status struct {
	Dials    Dials
	Variant  wave.Variant
	Frame    uint16
	Period   uint16
	Overruns uint64
	Missed   uint32
}

// Simulator runs the firmware loop on a virtual board and resamples its
// port output to a host sample rate.
type Simulator struct {
	mu             sync.Mutex
	sampleRate     int
	board          *sim.Board
	engine         *engine.Engine
	output         *effects.Chain
	channels       dials.Channels
	ticksPerSample float64
	due            float64
	level          uint8
	sampleTap      func([]float32)
	logger         *slog.Logger
}

// NewSimulator boots a board with the dials set to d.
func NewSimulator(sampleRate int, d Dials, opts ...Option) (*Simulator, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	board := sim.NewBoard(func(line string) {
		logger.Info("board: serial", "line", line)
	})
	board.Timer.SetFrameCost(cfg.frameCost)
	board.ADC.SetValue(cfg.channels.Waveform, min(d.Waveform, MaxDial))
	board.ADC.SetValue(cfg.channels.Effect, min(d.Effect, MaxDial))
	board.ADC.SetValue(cfg.channels.Frequency, min(d.Frequency, MaxDial))

	eng := engine.New(engine.Hardware{
		Timer:  board.Timer,
		ADC:    board.ADC,
		Output: board.Ports,
		Serial: board.Serial,
	}, engine.WithMode(cfg.mode), engine.WithChannels(cfg.channels), engine.WithSeed(cfg.seed))
	eng.Boot()

	s := &Simulator{
		sampleRate:     sampleRate,
		board:          board,
		engine:         eng,
		output:         outputChain(sampleRate, cfg),
		channels:       cfg.channels,
		ticksPerSample: float64(sim.CPUHz) / float64(sampleRate),
		due:            float64(board.Clock.Now()),
		sampleTap:      cfg.sampleTap,
		logger:         logger,
	}
	logger.Debug("simulator: booted",
		"sample_rate", sampleRate,
		"mode", cfg.mode,
		"period", eng.Period(),
		"variant", wave.VariantFor(eng.Dials().Waveform).String())
	return s, nil
}

// outputChain models the board's output path after the ladder: the RC
// reconstruction filter, the coupling capacitor, then the line driver.
func outputChain(sampleRate int, cfg config) *effects.Chain {
	c := effects.NewChain()
	if cfg.cutoffHz > 0 {
		c.Add(effects.NewLowPass(sampleRate, cfg.cutoffHz))
	}
	if cfg.dcBlock {
		c.Add(effects.NewDCBlock())
	}
	c.Add(effects.NewGain(outputGain))
	return c
}

// Process renders interleaved stereo frames into dst. The DAC level is
// held between board frames.
func (s *Simulator) Process(dst []float32) {
	s.mu.Lock()
	for i := 0; i+1 < len(dst); i += 2 {
		s.due += s.ticksPerSample
		for float64(s.board.Clock.Now()) < s.due {
			s.engine.Step()
			s.level = s.dacLevel()
		}
		v := analog.Level(s.level)
		dst[i], dst[i+1] = s.output.Process(v, v)
	}
	s.mu.Unlock()
	if s.sampleTap != nil {
		s.sampleTap(dst)
	}
}

// dacLevel reads the ports the way the board's resistor network mixes
// them.
func (s *Simulator) dacLevel() uint8 {
	p := s.board.Ports
	if s.engine.Mode() != ModeQuad {
		return encoder.UnpackMono(p.Word(hal.PortD))
	}
	q := encoder.UnpackQuad(encoder.Words{B: p.Word(hal.PortB), C: p.Word(hal.PortC), D: p.Word(hal.PortD)})
	return analog.MixQuad(q)
}

// Frames renders n board frames without resampling and returns the 5-bit
// levels the board output.
func (s *Simulator) Frames(n int) []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uint8, n)
	for i := range out {
		s.engine.Step()
		s.level = s.dacLevel()
		out[i] = s.level
	}
	s.due = float64(s.board.Clock.Now())
	return out
}

// SetDial moves a physical dial. Values above MaxDial read as full scale.
// The board notices at its next acquisition of that dial.
func (s *Simulator) SetDial(d Dial, value uint16) {
	value = min(value, MaxDial)
	switch d {
	case DialWaveform:
		s.board.ADC.SetValue(s.channels.Waveform, value)
	case DialEffect:
		s.board.ADC.SetValue(s.channels.Effect, value)
	case DialFrequency:
		s.board.ADC.SetValue(s.channels.Frequency, value)
	}
}

// Dial returns the physical position of d, which may be ahead of what the
// board has latched.
func (s *Simulator) Dial(d Dial) uint16 {
	switch d {
	case DialWaveform:
		return s.board.ADC.Value(s.channels.Waveform)
	case DialEffect:
		return s.board.ADC.Value(s.channels.Effect)
	case DialFrequency:
		return s.board.ADC.Value(s.channels.Frequency)
	}
	return 0
}

func (s *Simulator) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.engine.Dials()
	return Status{
		Dials:    d,
		Variant:  wave.VariantFor(d.Waveform),
		Frame:    s.engine.Frame().Count,
		Period:   s.engine.Period(),
		Overruns: s.board.Timer.Overruns(),
		Missed:   s.engine.MissedLatches(),
	}
}

// SerialLines returns everything the board printed.
func (s *Simulator) SerialLines() []string {
	return s.board.Serial.Lines()
}

func (s *Simulator) SampleRate() int { return s.sampleRate }
