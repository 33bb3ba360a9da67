// Package hal declares the narrow hardware interfaces the synth core is
// written against. Implementations live in subpackages: sim for the host
// simulator and avr for the ATmega328 target.
//
// Every blocking call here is a busy-spin on a status flag. Nothing yields.
package hal

// Channel selects an analog input on the ADC multiplexer.
type Channel uint8

// Port identifies an 8-bit digital output port.
type Port uint8

const (
	PortB Port = iota
	PortC
	PortD
	NumPorts
)

func (p Port) String() string {
	switch p {
	case PortB:
		return "PORTB"
	case PortC:
		return "PORTC"
	case PortD:
		return "PORTD"
	default:
		return "PORT?"
	}
}

// Timer is a compare-match (CTC) timer.
type Timer interface {
	Init()
	// SetPeriod programs the ticks until the next match. The running
	// countdown is not affected; the new period applies from the next one.
	SetPeriod(ticks uint16)
	// WaitForTickAndClear spins until the match flag is set, then clears
	// it. If the flag is already set it returns immediately.
	WaitForTickAndClear()
}

// ADC is a multiplexed successive-approximation converter.
type ADC interface {
	Init()
	SelectChannel(ch Channel)
	StartConversion()
	IsConversionDone() bool
	// ReadResult returns the last 10-bit conversion. Callers only read
	// after IsConversionDone reports true.
	ReadResult() uint16
}

// DigitalOutput drives the output ports.
type DigitalOutput interface {
	// Configure sets the bits in mask as outputs on port.
	Configure(port Port, mask uint8)
	WriteWord(port Port, value uint8)
}

// LineWriter is the serial debug sink.
type LineWriter interface {
	WriteLine(text string)
}

// WaitConversion spins until the running conversion completes.
func WaitConversion(adc ADC) {
	for !adc.IsConversionDone() {
	}
}

// ReadBlocking selects ch, throws away the first conversion (it still
// carries the previous channel's charge) and returns the second one.
func ReadBlocking(adc ADC, ch Channel) uint16 {
	adc.SelectChannel(ch)
	adc.StartConversion()
	WaitConversion(adc)
	_ = adc.ReadResult()
	adc.StartConversion()
	WaitConversion(adc)
	return adc.ReadResult() & 0x3FF
}
