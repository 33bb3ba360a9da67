package sim

import (
	"testing"

	"github.com/cbegin/lofisynth/internal/hal"
)

func TestTimerPeriodAppliesToNextCountdown(t *testing.T) {
	c := &Clock{}
	tm := NewTimer(c)
	tm.Init()

	tm.WaitForTickAndClear()
	if c.Now() != DefaultPeriod {
		t.Fatalf("first match at %d, want %d", c.Now(), DefaultPeriod)
	}
	tm.SetPeriod(1000)
	// Countdown already running keeps the old length.
	tm.WaitForTickAndClear()
	if c.Now() != 2*DefaultPeriod {
		t.Fatalf("second match at %d, want %d", c.Now(), 2*DefaultPeriod)
	}
	tm.WaitForTickAndClear()
	if c.Now() != 2*DefaultPeriod+1000 {
		t.Fatalf("third match at %d, want %d", c.Now(), 2*DefaultPeriod+1000)
	}
	if tm.Overruns() != 0 {
		t.Fatalf("overruns = %d, want 0", tm.Overruns())
	}
}

func TestTimerOverrunReturnsImmediately(t *testing.T) {
	c := &Clock{}
	tm := NewTimer(c)
	tm.Init()
	tm.SetPeriod(100)
	tm.WaitForTickAndClear() // match at 160, next at 260
	tm.SetFrameCost(150)
	tm.WaitForTickAndClear() // work ends at 310, flag already set
	if c.Now() != 310 {
		t.Fatalf("overrun wait returned at %d, want 310", c.Now())
	}
	if tm.Overruns() != 1 {
		t.Fatalf("overruns = %d, want 1", tm.Overruns())
	}
	tm.SetFrameCost(0)
	tm.WaitForTickAndClear()
	if c.Now() != 360 {
		t.Fatalf("next match at %d, want 360", c.Now())
	}
}

func TestADCCrossTalkAndTiming(t *testing.T) {
	c := &Clock{}
	a := NewADC(c)
	a.SetValue(6, 111)
	a.SetValue(7, 222)

	a.SelectChannel(6)
	a.SelectChannel(7)
	a.StartConversion()
	if a.IsConversionDone() {
		t.Fatal("conversion done before its time")
	}
	hal.WaitConversion(a)
	if got := a.ReadResult(); got != 111 {
		t.Fatalf("first conversion after switch = %d, want cross-talk 111", got)
	}
	start := c.Now()
	a.StartConversion()
	hal.WaitConversion(a)
	if got := a.ReadResult(); got != 222 {
		t.Fatalf("settled conversion = %d, want 222", got)
	}
	if c.Now()-start < DefaultConversionTicks {
		t.Fatalf("conversion took %d ticks, want at least %d", c.Now()-start, DefaultConversionTicks)
	}
}

func TestReadBlockingDiscardsFirst(t *testing.T) {
	b := NewBoard(nil)
	b.ADC.SetValue(5, 700)
	b.ADC.SetValue(0, 3)
	if got := hal.ReadBlocking(b.ADC, 5); got != 700 {
		t.Fatalf("ReadBlocking = %d, want 700", got)
	}
	if b.ADC.Conversions() != 2 || b.ADC.Switches() != 1 {
		t.Fatalf("conversions=%d switches=%d", b.ADC.Conversions(), b.ADC.Switches())
	}
}

func TestPortsMaskAndHook(t *testing.T) {
	b := NewBoard(nil)
	var got []uint8
	b.Ports.OnWrite(func(port hal.Port, value uint8, tick uint64) {
		if port == hal.PortD {
			got = append(got, value)
		}
	})
	b.Ports.WriteWord(hal.PortD, 0xFF)
	b.Ports.Configure(hal.PortD, 0x7C)
	b.Ports.WriteWord(hal.PortD, 0xFF)
	if len(got) != 2 || got[0] != 0 || got[1] != 0x7C {
		t.Fatalf("writes = %#v", got)
	}
	if b.Ports.Word(hal.PortD) != 0x7C {
		t.Fatalf("word = %#x", b.Ports.Word(hal.PortD))
	}
}

func TestSerialForwards(t *testing.T) {
	var fwd []string
	s := NewSerial(func(line string) { fwd = append(fwd, line) })
	s.WriteLine("a")
	s.WriteLine("b")
	if len(s.Lines()) != 2 || len(fwd) != 2 || fwd[1] != "b" {
		t.Fatalf("lines=%v forwarded=%v", s.Lines(), fwd)
	}
}
