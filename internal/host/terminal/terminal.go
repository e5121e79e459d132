// Package terminal runs the emulator inside a text terminal.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/retroenv/chip8emu/internal/audio"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/host/frame"
	"github.com/retroenv/chip8emu/internal/keymap"
	"github.com/retroenv/chip8emu/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// HoldFrames is the number of frames a key stays pressed after its
// character was received. Terminals report no key releases, auto repeat
// of a held key refreshes the hold time.
const HoldFrames = 8

// ANSI control sequences.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

const (
	keyQuit  = 'q'
	keyCtrlC = 0x03
)

// ErrNotTerminal is returned when the standard input is not a terminal.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// Terminal renders frames as text and converts typed characters to key presses.
type Terminal struct {
	layout *keymap.Layout
	out    *bufio.Writer

	input    chan byte
	closed   atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
	held     [chip8.KeyCount]int // remaining frames per key
}

// New returns a terminal host writing to out.
func New(layout *keymap.Layout, out io.Writer) *Terminal {
	return &Terminal{
		layout: layout,
		out:    bufio.NewWriter(out),
		input:  make(chan byte, 64),
		done:   make(chan struct{}),
	}
}

// Run switches the terminal to raw mode and runs the machine until the
// context is cancelled, q or Ctrl+C is typed or the machine halts.
func Run(ctx context.Context, logger *log.Logger, r *runner.Runner, out audio.Output, layout *keymap.Layout) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil &&
		(width < chip8.ScreenWidth || height < chip8.ScreenHeight/2) {
		logger.Warn("Terminal is smaller than the display",
			log.Int("columns", width), log.Int("rows", height))
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	t := New(layout, os.Stdout)
	go t.readInput(os.Stdin)
	defer t.stop()

	t.writeControl(hideCursor + clearScreen)
	defer t.writeControl(showCursor + "\r\n")

	return r.Run(ctx, t, t, out)
}

// readInput forwards all bytes read from r until it fails or the terminal
// is stopped. A read that is blocked while stopping returns with the next
// received byte, which is discarded.
func (t *Terminal) readInput(r io.Reader) {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case t.input <- b:
			case <-t.done:
				return
			}
		}
		if err != nil {
			t.closed.Store(true)
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
	}
}

// stop ends the forwarding of input bytes.
func (t *Terminal) stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

// Poll implements runner.Input. It processes all characters received since
// the last call and reports quit for q, Ctrl+C or a closed input.
func (t *Terminal) Poll() (chip8.Keypad, bool) {
	if t.drainInput() {
		return chip8.Keypad{}, true
	}
	if t.closed.Load() && len(t.input) == 0 {
		return chip8.Keypad{}, true
	}

	var keys chip8.Keypad
	for key, frames := range t.held {
		if frames > 0 {
			keys[key] = true
			t.held[key]--
		}
	}
	return keys, false
}

// drainInput refreshes the hold time of all typed keys and returns whether
// a quit character was typed.
func (t *Terminal) drainInput() bool {
	for {
		select {
		case b := <-t.input:
			if b == keyQuit || b == keyCtrlC {
				return true
			}
			if key, ok := t.layout.Key(rune(b)); ok {
				t.held[key] = HoldFrames
			}
		default:
			return false
		}
	}
}

// Render implements runner.Display.
func (t *Terminal) Render(fb chip8.Framebuffer) {
	_, _ = t.out.WriteString(cursorHome)
	_, _ = t.out.WriteString(frame.Text(&fb))
	_ = t.out.Flush()
}

func (t *Terminal) writeControl(sequence string) {
	_, _ = t.out.WriteString(sequence)
	_ = t.out.Flush()
}
