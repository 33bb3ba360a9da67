package lofisynth

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// RenderSamples boots a board with dials d and renders seconds of
// interleaved stereo at sampleRate.
func RenderSamples(d Dials, sampleRate int, seconds float64, opts ...Option) ([]float32, error) {
	if seconds < 0 {
		return nil, errors.New("seconds must not be negative")
	}
	s, err := NewSimulator(sampleRate, d, opts...)
	if err != nil {
		return nil, err
	}
	frames := int(float64(sampleRate) * seconds)
	out := make([]float32, frames*2)
	s.Process(out)
	return out, nil
}

// WriteWAV encodes interleaved float samples as 16-bit PCM.
func WriteWAV(w io.WriteSeeker, samples []float32, sampleRate int, channels int) error {
	if channels <= 0 {
		return errors.New("channels must be positive")
	}
	data := make([]int, len(samples))
	for i, s := range samples {
		v := math.Round(float64(s) * math.MaxInt16)
		if v > math.MaxInt16 {
			v = math.MaxInt16
		}
		if v < math.MinInt16 {
			v = math.MinInt16
		}
		data[i] = int(v)
	}
	enc := wav.NewEncoder(w, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
