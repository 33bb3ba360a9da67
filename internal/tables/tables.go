// Package tables holds the read-only lookup data consumed by the synth
// core. The data itself is produced by cmd/gentables.
package tables

//go:generate go run ../../cmd/gentables -o tables_gen.go

const (
	// PeriodCount is the number of pitch steps; the frequency dial is
	// halved to index it.
	PeriodCount = 512
	// SineLen is the number of samples in one sine period. It is also the
	// frame length of one waveform cycle for the pulse generator.
	SineLen = 64
	// Levels is the number of distinct 5-bit amplitudes.
	Levels = 32
	// MaxSample is the largest 5-bit amplitude.
	MaxSample = Levels - 1
)

// Period returns the timer ticks for a 10-bit frequency dial value.
func Period(frequency uint16) uint16 {
	return PeriodTable[(frequency>>1)&(PeriodCount-1)]
}

// Sine returns the sine sample for frame count c.
func Sine(c uint16) uint8 {
	return SineTable[c%SineLen]
}
