// Package window runs the emulator in a desktop window.
package window

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chip8emu/internal/audio"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/host/frame"
	"github.com/retroenv/chip8emu/internal/keymap"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// keyCodes maps the characters of the keyboard layouts to ebiten keys.
var keyCodes = map[rune]ebiten.Key{
	'0': ebiten.KeyDigit0, '1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2, '3': ebiten.KeyDigit3,
	'4': ebiten.KeyDigit4, '5': ebiten.KeyDigit5, '6': ebiten.KeyDigit6, '7': ebiten.KeyDigit7,
	'8': ebiten.KeyDigit8, '9': ebiten.KeyDigit9,
	'a': ebiten.KeyA, 'b': ebiten.KeyB, 'c': ebiten.KeyC, 'd': ebiten.KeyD,
	'e': ebiten.KeyE, 'f': ebiten.KeyF, 'q': ebiten.KeyQ, 'r': ebiten.KeyR,
	's': ebiten.KeyS, 'v': ebiten.KeyV, 'w': ebiten.KeyW, 'x': ebiten.KeyX,
	'z': ebiten.KeyZ,
}

// numpadKeys are accepted in addition to the digit keys of the hex layout.
var numpadKeys = map[ebiten.Key]byte{
	ebiten.KeyNumpad0: 0x0, ebiten.KeyNumpad1: 0x1, ebiten.KeyNumpad2: 0x2,
	ebiten.KeyNumpad3: 0x3, ebiten.KeyNumpad4: 0x4, ebiten.KeyNumpad5: 0x5,
	ebiten.KeyNumpad6: 0x6, ebiten.KeyNumpad7: 0x7, ebiten.KeyNumpad8: 0x8,
	ebiten.KeyNumpad9: 0x9,
}

// Config contains the window settings.
type Config struct {
	Title string
	Scale int
}

// Game implements ebiten.Game for a running machine.
type Game struct {
	ctx    context.Context
	logger *log.Logger
	runner *runner.Runner
	audio  audio.Output
	keys   map[ebiten.Key]byte
	scale  int

	offscreen *ebiten.Image
	pixels    []byte
	paused    bool
}

// New returns a game that drives the runner with the keys of the layout.
// The game terminates once the context is cancelled.
func New(ctx context.Context, logger *log.Logger, r *runner.Runner, out audio.Output, layout *keymap.Layout, scale int) *Game {
	return &Game{
		ctx:    ctx,
		logger: logger,
		runner: r,
		audio:  out,
		keys:   keyBindings(layout),
		scale:  max(scale, 1),
		pixels: make([]byte, frame.PixelBytes),
	}
}

// Run opens the window and runs the game until the context is cancelled,
// the window is closed, Escape is pressed or the machine halts.
func Run(ctx context.Context, logger *log.Logger, r *runner.Runner, out audio.Output, layout *keymap.Layout, cfg Config) error {
	g := New(ctx, logger, r, out, layout, cfg.Scale)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(chip8.ScreenWidth*g.scale, chip8.ScreenHeight*g.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(chip8.TimerFrequency)

	defer out.SetActive(false)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// keyBindings returns the ebiten keys for all keys of the layout.
func keyBindings(layout *keymap.Layout) map[ebiten.Key]byte {
	bindings := make(map[ebiten.Key]byte, 2*chip8.KeyCount)
	for _, r := range layout.Runes() {
		code, ok := keyCodes[r]
		if !ok {
			continue
		}
		key, _ := layout.Key(r)
		bindings[code] = key
	}

	if layout.Name() == options.KeysHex {
		for code, key := range numpadKeys {
			bindings[code] = key
		}
	}
	return bindings
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		g.audio.SetActive(false)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			g.logger.Info("Paused")
		} else {
			g.logger.Info("Resumed")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.saveScreenshot()
	}

	if g.paused {
		g.audio.SetActive(false)
		return nil
	}

	if err := g.runner.Frame(runner.FrameInterval, g.pollKeys()); err != nil {
		return err
	}
	g.audio.SetActive(g.runner.Machine().IsSoundActive())
	return nil
}

// pollKeys returns the keypad state of the pressed keyboard keys.
func (g *Game) pollKeys() chip8.Keypad {
	var keys chip8.Keypad
	for code, key := range g.keys {
		if ebiten.IsKeyPressed(code) {
			keys[key] = true
		}
	}
	return keys
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.offscreen == nil {
		g.offscreen = ebiten.NewImage(chip8.ScreenWidth, chip8.ScreenHeight)
	}

	fb := g.runner.Machine().Framebuffer()
	frame.RGBA(&fb, g.pixels)
	g.offscreen.WritePixels(g.pixels)

	bounds := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx())/chip8.ScreenWidth, float64(bounds.Dy())/chip8.ScreenHeight)
	screen.DrawImage(g.offscreen, op)

	if g.paused {
		ebitenutil.DebugPrint(screen, "PAUSED")
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return chip8.ScreenWidth * g.scale, chip8.ScreenHeight * g.scale
}

// saveScreenshot writes the current frame as PNG file into the working directory.
func (g *Game) saveScreenshot() {
	fb := g.runner.Machine().Framebuffer()
	name := fmt.Sprintf("chip8-%s.png", time.Now().Format("20060102-150405"))

	if err := frame.SavePNG(name, frame.Image(&fb, g.scale)); err != nil {
		g.logger.Error("Saving screenshot failed", log.Err(err))
		return
	}
	g.logger.Info("Screenshot saved", log.String("file", name))
}
