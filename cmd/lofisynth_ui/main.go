package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cbegin/lofisynth"
	"github.com/cbegin/lofisynth/internal/effects"
)

const (
	windowW      = 720
	windowH      = 480
	uiSampleRate = 48000

	textScale = 2
	lineH     = 14 * textScale

	scopeLen = 2048
)

var (
	bgColor         = color.RGBA{192, 192, 192, 255}
	panelColor      = color.RGBA{192, 192, 192, 255}
	borderColor     = color.RGBA{128, 128, 128, 255}
	bevelLight      = color.RGBA{255, 255, 255, 255}
	bevelDarker     = color.RGBA{64, 64, 64, 255}
	sliderFillColor = color.RGBA{0, 0, 128, 255}
	focusColor      = color.RGBA{255, 255, 0, 255}
	waveColor       = color.RGBA{80, 200, 255, 220}
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// scope keeps the most recent mono samples for drawing.
type scope struct {
	mu   sync.Mutex
	ring [scopeLen]float32
	pos  int
}

// Tap runs on the audio thread.
func (s *scope) Tap(samples []float32) {
	s.mu.Lock()
	for i := 0; i+1 < len(samples); i += 2 {
		s.ring[s.pos] = samples[i]
		s.pos = (s.pos + 1) % scopeLen
	}
	s.mu.Unlock()
}

func (s *scope) Snapshot() []float32 {
	out := make([]float32, scopeLen)
	s.mu.Lock()
	for i := range out {
		out[i] = s.ring[(s.pos+i)%scopeLen]
	}
	s.mu.Unlock()
	return out
}

type game struct {
	player *lofisynth.Player
	scope  *scope
	focus  lofisynth.Dial
	drag   int // dial index being dragged, -1 when none
	status string
}

var dialOrder = []lofisynth.Dial{lofisynth.DialWaveform, lofisynth.DialEffect, lofisynth.DialFrequency}

func newGame() (*game, error) {
	sc := &scope{}
	pl, err := lofisynth.NewPlayer(uiSampleRate, lofisynth.Dials{Frequency: 512},
		lofisynth.WithSampleTap(sc.Tap), lofisynth.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := pl.Play(); err != nil {
		return nil, err
	}
	return &game{player: pl, scope: sc, drag: -1, status: "Ready"}, nil
}

func (g *game) Update() error {
	g.handleKeys()
	g.handleMouse()
	return nil
}

func (g *game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.focus = lofisynth.DialWaveform
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.focus = lofisynth.DialEffect
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.focus = lofisynth.DialFrequency
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.player.IsPlaying() {
			g.player.Pause()
			g.status = "Paused"
		} else if err := g.player.Play(); err != nil {
			g.status = "ERROR - " + err.Error()
		} else {
			g.status = "Playing"
		}
	}
	step := 0
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		step = 4
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		step = -4
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step *= 8
	}
	if step != 0 {
		v := int(g.player.Dial(g.focus)) + step
		g.player.SetDial(g.focus, uint16(clamp(v, 0, lofisynth.MaxDial)))
	}
}

func (g *game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for i := range dialOrder {
			if pointInRect(mx, my, sliderRect(i)) {
				g.drag = i
				g.focus = dialOrder[i]
			}
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drag = -1
	}
	if g.drag >= 0 {
		r := sliderRect(g.drag)
		v := (mx - r.Min.X) * (lofisynth.MaxDial + 1) / r.Dx()
		g.player.SetDial(dialOrder[g.drag], uint16(clamp(v, 0, lofisynth.MaxDial)))
	}
}

func sliderRect(i int) image.Rectangle {
	y := 24 + i*56
	return image.Rect(220, y+8, windowW-24, y+32)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	st := g.player.Status()
	for i, d := range dialOrder {
		g.drawSlider(screen, i, d)
	}
	scopeRect := image.Rect(24, 200, windowW-24, windowH-64)
	ebitenutil.DrawRect(screen, float64(scopeRect.Min.X), float64(scopeRect.Min.Y), float64(scopeRect.Dx()), float64(scopeRect.Dy()), color.RGBA{0, 0, 0, 255})
	drawSunkenBorder(screen, scopeRect)
	drawScope(screen, scopeRect, g.scope.Snapshot())

	info := fmt.Sprintf("%s  crush:%d  period:%d  frame:%d  overruns:%d",
		st.Variant, effects.LevelFor(st.Dials.Effect).Steps(), st.Period, st.Frame, st.Overruns)
	drawText(screen, info, 24, windowH-56)
	drawText(screen, "Status: "+g.status, 24, windowH-28)
}

func (g *game) drawSlider(screen *ebiten.Image, i int, d lofisynth.Dial) {
	r := sliderRect(i)
	label := fmt.Sprintf("%d %s %4d", i+1, d, g.player.Dial(d))
	drawText(screen, label, 24, r.Min.Y-2)
	ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), panelColor)
	drawSunkenBorder(screen, r)
	fillW := int(g.player.Dial(d)) * (r.Dx() - 2) / lofisynth.MaxDial
	if fillW > 0 {
		ebitenutil.DrawRect(screen, float64(r.Min.X+1), float64(r.Min.Y+1), float64(fillW), float64(r.Dy()-2), sliderFillColor)
	}
	if d == g.focus {
		ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Max.Y+2), float64(r.Dx()), 2, focusColor)
	}
}

func drawScope(dst *ebiten.Image, rect image.Rectangle, samples []float32) {
	w := rect.Dx()
	midY := rect.Min.Y + rect.Dy()/2
	gain := float64(rect.Dy()/2 - 4)
	prevY := midY - int(float64(samples[0])*gain)
	for px := 1; px < w; px++ {
		si := px * len(samples) / w
		y := midY - int(float64(samples[si])*gain)
		ebitenutil.DrawLine(dst, float64(rect.Min.X+px-1), float64(prevY), float64(rect.Min.X+px), float64(y), waveColor)
		prevY = y
	}
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	return windowW, windowH
}

// drawSunkenBorder draws a sunken 3D bevel.
func drawSunkenBorder(screen *ebiten.Image, rect image.Rectangle) {
	x := float64(rect.Min.X)
	y := float64(rect.Min.Y)
	w := float64(rect.Dx())
	h := float64(rect.Dy())
	ebitenutil.DrawRect(screen, x, y, w-1, 1, borderColor)
	ebitenutil.DrawRect(screen, x, y+1, 1, h-2, borderColor)
	ebitenutil.DrawRect(screen, x, y+h-1, w, 1, bevelLight)
	ebitenutil.DrawRect(screen, x+w-1, y, 1, h, bevelLight)
	ebitenutil.DrawRect(screen, x+1, y+1, w-3, 1, bevelDarker)
}

var textCache = map[string]*ebiten.Image{}

func drawText(screen *ebiten.Image, msg string, x, y int) {
	img := textCache[msg]
	if img == nil {
		img = ebiten.NewImage(max(1, len(msg)*7), lineH/textScale)
		ebitenutil.DebugPrintAt(img, msg, 0, 0)
		if len(textCache) > 512 {
			textCache = map[string]*ebiten.Image{}
		}
		textCache[msg] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(0, 0, 0, 1)
	screen.DrawImage(img, op)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func main() {
	g, err := newGame()
	if err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer g.player.Stop()

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("lofisynth")
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
