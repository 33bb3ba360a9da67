package effects

import "github.com/cbegin/lofisynth/internal/tables"

// Level is the crush depth, 0 (off) to 3 (four amplitude levels).
type Level uint8

const (
	LevelOff Level = iota
	Level16
	Level8
	Level4
)

// LevelFor maps the 10-bit effect dial onto four equal bands.
func LevelFor(effectDial uint16) Level {
	return Level((effectDial & 0x3FF) >> 8)
}

// Steps returns the number of distinct amplitudes the level keeps.
func (l Level) Steps() int {
	switch l {
	case Level16:
		return 16
	case Level8:
		return 8
	case Level4:
		return 4
	default:
		return tables.Levels
	}
}

// Apply quantizes a 5-bit sample at this level.
func (l Level) Apply(sample uint8) uint8 {
	s := sample & tables.MaxSample
	switch l {
	case Level16:
		return tables.Quantize16[s]
	case Level8:
		return tables.Quantize8[s]
	case Level4:
		return tables.Quantize4[s]
	default:
		return s
	}
}

// Quantize crushes sample according to the effect dial.
func Quantize(sample uint8, effectDial uint16) uint8 {
	return LevelFor(effectDial).Apply(sample)
}
