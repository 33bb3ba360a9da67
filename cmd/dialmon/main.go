// Command dialmon reads the board's serial debug output and logs it,
// decoding dial report lines.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.bug.st/serial"

	"github.com/cbegin/lofisynth/internal/dials"
	"github.com/cbegin/lofisynth/internal/effects"
	"github.com/cbegin/lofisynth/internal/tables"
	"github.com/cbegin/lofisynth/internal/wave"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func main() {
	var (
		device = flag.String("port", "/dev/ttyACM0", "serial device")
		baud   = flag.Int("baud", 9600, "baud rate")
		list   = flag.Bool("list", false, "list serial ports and exit")
	)
	flag.Parse()

	if *list {
		ports, err := serial.GetPortsList()
		if err != nil {
			fatal("serial: list failed", err)
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	port, err := serial.Open(*device, &serial.Mode{BaudRate: *baud})
	if err != nil {
		fatal("serial: failed to open port", err, "device", *device, "baud", *baud)
	}
	logger.Info("serial: port opened", "device", *device, "baud", *baud)

	err = monitor(port)
	port.Close()
	if err != nil {
		fatal("serial: read error", err)
	}
}

// monitor logs every line read from r until EOF or a read error.
func monitor(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		d, ok := parseDials(line)
		if !ok {
			logger.Info("board", "line", line)
			continue
		}
		logger.Info("dials",
			"waveform", d.Waveform,
			"variant", wave.VariantFor(d.Waveform).String(),
			"effect", d.Effect,
			"crush_levels", effects.LevelFor(d.Effect).Steps(),
			"frequency", d.Frequency,
			"period", tables.Period(d.Frequency))
	}
	return sc.Err()
}

// parseDials decodes "w=<n> e=<n> f=<n>".
func parseDials(line string) (dials.Dials, bool) {
	var d dials.Dials
	n, err := fmt.Sscanf(line, "w=%d e=%d f=%d", &d.Waveform, &d.Effect, &d.Frequency)
	if err != nil || n != 3 {
		return dials.Dials{}, false
	}
	if d.Waveform > dials.Max || d.Effect > dials.Max || d.Frequency > dials.Max {
		return dials.Dials{}, false
	}
	return d, true
}

func fatal(msg string, err error, args ...any) {
	logger.Error(msg, append([]any{"err", err}, args...)...)
	os.Exit(1)
}
