//go:build tinygo && avr

// Command firmware is the ATmega328 build of the synth loop.
//
//	tinygo flash -target=arduino ./cmd/firmware
package main

import (
	"github.com/cbegin/lofisynth/internal/engine"
	"github.com/cbegin/lofisynth/internal/hal/avr"
)

const baud = 9600

func main() {
	e := engine.New(engine.Hardware{
		Timer:  avr.Timer{},
		ADC:    avr.ADC{},
		Output: avr.Ports{},
		Serial: avr.NewSerial(baud),
	})
	e.Run()
}
