package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/mirage/internal/config"
	"github.com/iburimskiy/mirage/internal/motion"
	"github.com/iburimskiy/mirage/internal/prng"
	"github.com/iburimskiy/mirage/internal/ring"
)

var motionOrder = []string{config.MotionCursor, config.MotionKeys, config.MotionAudio}

// Game hosts the ring stack in an ebiten window.
type Game struct {
	settings *config.Settings
	rnd      *prng.Source

	canvas *canvas
	stack  *ring.Stack
	base   *ebiten.Image

	themes   []config.Theme
	themeIdx int

	track    *soundtrack
	keys     *motion.Keys
	sources  map[string]motion.Source
	motion   string
	smoother *motion.Smoother
	pitch    float64

	time    float64
	paused  bool
	lastErr error
}

// New builds the game from settings. Problems with optional assets (theme
// file, base image, soundtrack) are logged and shown in the status line; the
// effect still starts with defaults.
func New(settings *config.Settings) *Game {
	g := &Game{
		settings: settings,
		rnd:      prng.New(settings.Seed),
		canvas:   newCanvas(config.WindowWidth, config.WindowHeight),
		track:    &soundtrack{},
		base:     defaultBaseImage(),
	}
	log.Printf("seed %d", g.rnd.Seed())

	g.themes = append(append([]config.Theme(nil), config.BuiltinThemes...), rainbowTheme(12))
	if settings.ThemeFile != "" {
		themes, err := config.LoadThemes(settings.ThemeFile)
		if err != nil {
			g.fail(err)
		} else {
			g.themes = append(g.themes, themes...)
			log.Printf("loaded %d themes from %s", len(themes), settings.ThemeFile)
		}
	}
	g.themeIdx = g.findTheme(settings.Theme)

	if settings.Image != "" {
		if img, err := loadBaseImage(settings.Image); err != nil {
			g.fail(err)
		} else {
			g.base = img
		}
	}

	g.keys = &motion.Keys{
		Up:   func() bool { return ebiten.IsKeyPressed(ebiten.KeyArrowUp) },
		Down: func() bool { return ebiten.IsKeyPressed(ebiten.KeyArrowDown) },
	}
	g.sources = map[string]motion.Source{
		config.MotionCursor: &motion.Cursor{Position: ebiten.CursorPosition, Height: config.WindowHeight},
		config.MotionKeys:   g.keys,
		config.MotionAudio:  &motion.Level{Source: g.track},
	}
	g.setMotion(settings.Motion)

	if settings.Audio != "" {
		if err := g.track.load(settings.Audio); err != nil {
			g.fail(err)
		}
	}

	g.rebuild()
	return g
}

func (g *Game) findTheme(name string) int {
	for i, t := range g.themes {
		if t.Name == name {
			return i
		}
	}
	if name != config.DefaultThemeName {
		g.fail(fmt.Errorf("unknown theme %q", name))
	}
	return 0
}

func (g *Game) fail(err error) {
	log.Printf("error: %v", err)
	g.lastErr = err
}

func (g *Game) setMotion(name string) {
	if _, ok := g.sources[name]; !ok {
		name = config.MotionCursor
	}
	g.motion = name
	g.smoother = motion.NewSmoother(g.sources[name])
}

// rebuild replaces the whole stack with fresh rings.
func (g *Game) rebuild() {
	if g.stack != nil {
		g.stack.Release()
	}
	palette := paletteOf(g.themes[g.themeIdx])
	g.stack = ring.NewStack(g.settings.Rings, g.canvas, g.base, palette, g.rnd)
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.cycleMotion()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.cycleTheme()
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.pickBaseImage()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.pickSoundtrack()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.track.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.canvas.debug = !g.canvas.debug
	}

	g.time += 1.0 / 60.0
	g.keys.Tick()
	g.track.tick()

	if g.paused {
		return nil
	}
	g.pitch = g.smoother.Pitch()
	g.stack.UpdateFromMotion(g.pitch)
	if n := g.stack.CheckAndRefreshRing(); n > 0 && g.canvas.debug {
		log.Printf("recycled %d rings", n)
	}
	return nil
}

func (g *Game) cycleMotion() {
	for i, name := range motionOrder {
		if name == g.motion {
			g.setMotion(motionOrder[(i+1)%len(motionOrder)])
			return
		}
	}
	g.setMotion(config.MotionCursor)
}

func (g *Game) cycleTheme() {
	g.themeIdx = (g.themeIdx + 1) % len(g.themes)
	g.stack.UpdateTheme(paletteOf(g.themes[g.themeIdx]))
}

func (g *Game) pickBaseImage() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Ring Image"),
		zenity.FileFilters{{Name: "Images", Patterns: imagePatterns}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.fail(err)
		}
		return
	}
	img, err := loadBaseImage(filename)
	if err != nil {
		g.fail(err)
		return
	}
	g.base = img
	g.stack.UpdateBaseImage(img)
	g.lastErr = nil
	log.Printf("base image %s", filename)
}

func (g *Game) pickSoundtrack() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.fail(err)
		}
		return
	}
	if err := g.track.load(filename); err != nil {
		g.fail(err)
		return
	}
	g.lastErr = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.canvas.draw(screen)

	status := fmt.Sprintf("motion: %s  pitch: %+.2f  rings: %d  sprites: %d  theme: %s",
		g.motion, g.pitch, g.stack.Len(), g.canvas.attached(), g.themes[g.themeIdx].Name)
	if g.track.playing() {
		pos, total := g.track.progress()
		status += fmt.Sprintf("  track: %s / %s", formatDuration(pos), formatDuration(total))
	}
	if g.paused {
		status += "  [paused]"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen,
		"M motion  T theme  I image  O audio  P play/pause  R reset  D debug  Space freeze  Esc/Q quit",
		12, config.WindowHeight-20)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y += 2 {
		ratio := float64(y) / float64(config.WindowHeight)
		r := uint8(10 + 10*math.Sin(g.time*0.5+ratio*math.Pi))
		gv := uint8(10 + 8*math.Cos(g.time*0.3+ratio*math.Pi))
		b := uint8(20 + 15*math.Sin(g.time*0.7+ratio*math.Pi+g.pitch))
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 2, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close releases the rings and stops playback.
func (g *Game) Close() {
	g.stack.Release()
	g.track.stop()
}
