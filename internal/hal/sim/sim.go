// Package sim models the board's peripherals against a virtual CPU clock
// so the firmware loop can run on a host. Busy-waits advance the clock
// instead of burning real time.
package sim

import (
	"sync"
	"sync/atomic"

	"github.com/cbegin/lofisynth/internal/hal"
)

const (
	// CPUHz is the clock the timer counts.
	CPUHz = 16_000_000
	// DefaultPeriod matches the reset value the timer is initialized
	// with (100 kHz).
	DefaultPeriod = 160
	// DefaultConversionTicks is one 13-cycle conversion at a 125 kHz ADC
	// clock.
	DefaultConversionTicks = 13 * 128
	// DefaultPollTicks is the cost of one status poll.
	DefaultPollTicks = 4
)

// Clock counts CPU ticks.
type Clock struct {
	now uint64
}

func (c *Clock) Now() uint64          { return c.now }
func (c *Clock) Advance(ticks uint64) { c.now += ticks }

func (c *Clock) advanceTo(t uint64) {
	if t > c.now {
		c.now = t
	}
}

// Timer is a CTC compare-match timer.
type Timer struct {
	clock     *Clock
	period    uint16
	nextMatch uint64
	frameCost uint64
	matches   uint64
	overruns  uint64
}

func NewTimer(clock *Clock) *Timer {
	return &Timer{clock: clock, period: DefaultPeriod}
}

// SetFrameCost sets how many ticks of work each frame costs. The cost is
// charged when the loop comes back to wait.
func (t *Timer) SetFrameCost(ticks uint64) { t.frameCost = ticks }

func (t *Timer) Init() {
	t.period = DefaultPeriod
	t.nextMatch = t.clock.Now() + uint64(t.period)
}

func (t *Timer) SetPeriod(ticks uint16) {
	if ticks == 0 {
		ticks = 1
	}
	t.period = ticks
}

func (t *Timer) WaitForTickAndClear() {
	t.clock.Advance(t.frameCost)
	match := t.nextMatch
	if t.clock.Now() >= match && t.matches > 0 {
		t.overruns++
	}
	t.clock.advanceTo(match)
	t.matches++
	// The counter keeps running through matches nobody waited for; the
	// flag just stays set.
	t.nextMatch = match + uint64(t.period)
	for t.nextMatch <= t.clock.Now() {
		t.nextMatch += uint64(t.period)
	}
}

// Period returns the programmed period.
func (t *Timer) Period() uint16 { return t.period }

// Matches counts handled compare matches.
func (t *Timer) Matches() uint64 { return t.matches }

// Overruns counts waits that found the flag already set.
func (t *Timer) Overruns() uint64 { return t.overruns }

// ADC is a multiplexed converter. Dial values may be set from any
// goroutine; everything else belongs to the loop goroutine.
type ADC struct {
	clock  *Clock
	values [16]atomic.Uint32

	conversionTicks uint64
	pollTicks       uint64

	selected hal.Channel
	previous hal.Channel
	fresh    bool
	busy     bool
	doneAt   uint64
	result   uint16

	conversions uint64
	switches    uint64
}

func NewADC(clock *Clock) *ADC {
	return &ADC{
		clock:           clock,
		conversionTicks: DefaultConversionTicks,
		pollTicks:       DefaultPollTicks,
	}
}

// SetTiming overrides conversion and poll costs.
func (a *ADC) SetTiming(conversionTicks, pollTicks uint64) {
	a.conversionTicks = conversionTicks
	a.pollTicks = pollTicks
}

// SetValue sets the voltage on ch as a 10-bit reading.
func (a *ADC) SetValue(ch hal.Channel, v uint16) {
	a.values[ch&0x0F].Store(uint32(v & 0x3FF))
}

func (a *ADC) Value(ch hal.Channel) uint16 {
	return uint16(a.values[ch&0x0F].Load())
}

func (a *ADC) Init() {}

func (a *ADC) SelectChannel(ch hal.Channel) {
	a.previous = a.selected
	a.selected = ch & 0x0F
	a.fresh = true
	a.switches++
}

// StartConversion samples the input. The first conversion after a switch
// still sees the previous channel. Starting while busy is ignored.
func (a *ADC) StartConversion() {
	if a.busy && a.clock.Now() < a.doneAt {
		return
	}
	src := a.selected
	if a.fresh {
		src = a.previous
		a.fresh = false
	}
	a.result = a.Value(src)
	a.busy = true
	a.doneAt = a.clock.Now() + a.conversionTicks
	a.conversions++
}

func (a *ADC) IsConversionDone() bool {
	a.clock.Advance(a.pollTicks)
	if a.busy && a.clock.Now() >= a.doneAt {
		a.busy = false
	}
	return !a.busy
}

func (a *ADC) ReadResult() uint16 { return a.result }

// Conversions counts started conversions.
func (a *ADC) Conversions() uint64 { return a.conversions }

// Switches counts channel selections.
func (a *ADC) Switches() uint64 { return a.switches }

// Ports records the output ports and reports writes to a hook.
type Ports struct {
	clock   *Clock
	masks   [hal.NumPorts]uint8
	words   [hal.NumPorts]uint8
	onWrite func(port hal.Port, value uint8, tick uint64)
}

func NewPorts(clock *Clock) *Ports {
	return &Ports{clock: clock}
}

// OnWrite installs a hook called after every write.
func (p *Ports) OnWrite(fn func(port hal.Port, value uint8, tick uint64)) {
	p.onWrite = fn
}

func (p *Ports) Configure(port hal.Port, mask uint8) {
	p.masks[port] |= mask
}

// WriteWord latches value on the configured pins only.
func (p *Ports) WriteWord(port hal.Port, value uint8) {
	v := value & p.masks[port]
	p.words[port] = v
	if p.onWrite != nil {
		p.onWrite(port, v, p.clock.Now())
	}
}

func (p *Ports) Word(port hal.Port) uint8 { return p.words[port] }

// Serial collects debug lines.
type Serial struct {
	mu    sync.Mutex
	lines []string
	sink  func(string)
}

// NewSerial returns a collector that also forwards to sink, if non-nil.
func NewSerial(sink func(string)) *Serial {
	return &Serial{sink: sink}
}

func (s *Serial) WriteLine(text string) {
	s.mu.Lock()
	s.lines = append(s.lines, text)
	s.mu.Unlock()
	if s.sink != nil {
		s.sink(text)
	}
}

func (s *Serial) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// Board bundles a clock with one of each peripheral.
type Board struct {
	Clock  *Clock
	Timer  *Timer
	ADC    *ADC
	Ports  *Ports
	Serial *Serial
}

func NewBoard(serialSink func(string)) *Board {
	c := &Clock{}
	return &Board{
		Clock:  c,
		Timer:  NewTimer(c),
		ADC:    NewADC(c),
		Ports:  NewPorts(c),
		Serial: NewSerial(serialSink),
	}
}
