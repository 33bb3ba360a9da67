//go:build tinygo && avr

// Package avr implements the hal interfaces on ATmega328 registers.
package avr

import (
	"device/avr"
	"machine"

	"github.com/cbegin/lofisynth/internal/hal"
)

// Timer is timer1 in CTC mode with no prescaler.
type Timer struct{}

func (Timer) Init() {
	avr.TCCR1A.Set(0)
	avr.TCCR1B.Set(avr.TCCR1B_WGM12 | avr.TCCR1B_CS10)
	avr.TIFR1.Set(avr.TIFR1_OCF1A)
}

// SetPeriod writes OCR1A. The high byte goes first so the 16-bit latch
// picks up both halves together.
func (Timer) SetPeriod(ticks uint16) {
	avr.OCR1AH.Set(uint8(ticks >> 8))
	avr.OCR1AL.Set(uint8(ticks))
}

func (Timer) WaitForTickAndClear() {
	for !avr.TIFR1.HasBits(avr.TIFR1_OCF1A) {
	}
	// Writing a one clears the flag.
	avr.TIFR1.Set(avr.TIFR1_OCF1A)
}

// ADC is the on-chip converter referenced to the external AREF pin,
// clocked at CPU/128.
type ADC struct{}

func (ADC) Init() {
	avr.PRR.ClearBits(avr.PRR_PRADC)
	avr.ADMUX.Set(admux(0))
	avr.ADCSRA.Set(avr.ADCSRA_ADEN | avr.ADCSRA_ADPS2 | avr.ADCSRA_ADPS1 | avr.ADCSRA_ADPS0)
}

// SelectChannel writes the whole of ADMUX in one store. Clearing the mux
// bits first and then or-ing the channel in blends ADC0 into the reading.
func (ADC) SelectChannel(ch hal.Channel) {
	avr.ADMUX.Set(admux(ch))
}

func (ADC) StartConversion() {
	avr.ADCSRA.SetBits(avr.ADCSRA_ADSC)
}

func (ADC) IsConversionDone() bool {
	return !avr.ADCSRA.HasBits(avr.ADCSRA_ADSC)
}

// ReadResult reads ADCL before ADCH; the low read locks the pair.
func (ADC) ReadResult() uint16 {
	lo := uint16(avr.ADCL.Get())
	hi := uint16(avr.ADCH.Get())
	return (hi<<8 | lo) & 0x3FF
}

// Ports drives PORTB, PORTC and PORTD.
type Ports struct{}

func (Ports) Configure(port hal.Port, mask uint8) {
	switch port {
	case hal.PortB:
		avr.DDRB.SetBits(mask)
	case hal.PortC:
		avr.DDRC.SetBits(mask)
	case hal.PortD:
		avr.DDRD.SetBits(mask)
	}
}

func (Ports) WriteWord(port hal.Port, value uint8) {
	switch port {
	case hal.PortB:
		avr.PORTB.Set(value)
	case hal.PortC:
		avr.PORTC.Set(value)
	case hal.PortD:
		avr.PORTD.Set(value)
	}
}

// Serial writes debug lines to the USART.
type Serial struct {
	uart *machine.UART
}

func NewSerial(baud uint32) *Serial {
	s := &Serial{uart: machine.UART0}
	s.uart.Configure(machine.UARTConfig{BaudRate: baud})
	return s
}

func (s *Serial) WriteLine(text string) {
	s.uart.Write([]byte(text))
	s.uart.Write([]byte("\r\n"))
}
