package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/cbegin/lofisynth"
	"github.com/cbegin/lofisynth/internal/engine"
	"github.com/cbegin/lofisynth/internal/wave"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "host sample rate")
		modeName   = flag.String("mode", "mono", "output configuration: mono|quad")
		waveform   = flag.String("waveform", "sine", "waveform name (sine|triangle|pulse|saw|supersaw|clipped-saw|clipped-supersaw|noise) or raw dial 0..1023")
		effect     = flag.Int("effect", 0, "effect dial 0..1023 (bit-crush depth, pulse width)")
		frequency  = flag.Int("frequency", 512, "frequency dial 0..1023")
		seconds    = flag.Float64("seconds", 0, "stop after this long (0 = until interrupted; required with -out)")
		outPath    = flag.String("out", "", "render to this WAV file instead of playing")
		seed       = flag.Uint("seed", 0, "noise seed (0 = default)")
		frameCost  = flag.Uint64("frame-cost", 0, "simulated CPU ticks of work per frame")
		cutoff     = flag.Float64("cutoff", 8000, "output low-pass cutoff in Hz (0 = off)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	mode, ok := engine.ParseMode(strings.ToLower(*modeName))
	if !ok {
		fatal("invalid -mode", fmt.Errorf("%q (expected mono|quad)", *modeName))
	}
	wd, err := parseWaveform(*waveform)
	if err != nil {
		fatal("invalid -waveform", err)
	}
	d := lofisynth.Dials{
		Waveform:  wd,
		Effect:    clampDial(*effect),
		Frequency: clampDial(*frequency),
	}
	opts := []lofisynth.Option{
		lofisynth.WithMode(mode),
		lofisynth.WithSeed(uint32(*seed)),
		lofisynth.WithFrameCost(*frameCost),
		lofisynth.WithOutputFilter(*cutoff, true),
		lofisynth.WithLogger(logger),
	}

	if *outPath != "" {
		if *seconds <= 0 {
			fatal("-out needs -seconds", fmt.Errorf("got %v", *seconds))
		}
		if err := render(*outPath, d, *sampleRate, *seconds, opts); err != nil {
			fatal("render failed", err)
		}
		logger.Info("wrote wav", "path", *outPath, "seconds", *seconds, "variant", wave.VariantFor(d.Waveform).String())
		return
	}

	pl, err := lofisynth.NewPlayer(*sampleRate, d, opts...)
	if err != nil {
		fatal("player init failed", err)
	}
	if err := pl.Play(); err != nil {
		fatal("play failed", err)
	}
	st := pl.Status()
	logger.Info("playing", "variant", st.Variant.String(), "period", st.Period, "mode", mode.String())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	var timeout <-chan time.Time
	if *seconds > 0 {
		timeout = time.After(time.Duration(*seconds * float64(time.Second)))
	}
	select {
	case <-stop:
	case <-timeout:
	}
	st = pl.Status()
	logger.Info("stopping", "frames", st.Frame, "overruns", st.Overruns)
	if err := pl.Stop(); err != nil {
		fatal("stop failed", err)
	}
}

func render(path string, d lofisynth.Dials, sampleRate int, seconds float64, opts []lofisynth.Option) error {
	samples, err := lofisynth.RenderSamples(d, sampleRate, seconds, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := lofisynth.WriteWAV(f, samples, sampleRate, 2); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseWaveform(s string) (uint16, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if v, ok := wave.ParseVariant(s); ok {
		return wave.DialFor(v), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a waveform name nor a dial value", s)
	}
	return clampDial(n), nil
}

func clampDial(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > lofisynth.MaxDial {
		return lofisynth.MaxDial
	}
	return uint16(v)
}

func fatal(msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
