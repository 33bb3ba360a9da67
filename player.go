package lofisynth

import (
	"sync"

	intaudio "github.com/cbegin/lofisynth/internal/audio"
)

// Player runs a simulated board live on the host sound card.
type Player struct {
	mu    sync.Mutex
	sim   *Simulator
	audio *intaudio.Player
}

func NewPlayer(sampleRate int, d Dials, opts ...Option) (*Player, error) {
	s, err := NewSimulator(sampleRate, d, opts...)
	if err != nil {
		return nil, err
	}
	return &Player{sim: s}, nil
}

// Play starts or resumes output.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio == nil {
		backend, err := intaudio.NewPlayer(p.sim.SampleRate(), p.sim)
		if err != nil {
			return err
		}
		p.audio = backend
	}
	p.audio.Play()
	return nil
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Pause()
	}
}

func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio == nil {
		return nil
	}
	err := p.audio.Stop()
	p.audio = nil
	return err
}

// IsPlaying reports whether audio is flowing.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.audio != nil && p.audio.IsPlaying()
}

// SetDial moves a dial; takes effect within one acquisition cycle.
func (p *Player) SetDial(d Dial, value uint16) {
	p.sim.SetDial(d, value)
}

// Dial returns the physical dial position.
func (p *Player) Dial(d Dial) uint16 { return p.sim.Dial(d) }

// Status returns what the board currently has latched.
func (p *Player) Status() Status { return p.sim.Status() }

// SerialLines returns the board's debug output.
func (p *Player) SerialLines() []string { return p.sim.SerialLines() }
