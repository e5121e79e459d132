// Package runner drives the interpreter core in 60 Hz frames and connects it
// to the display, input and audio of a host.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// FrameInterval is the duration of a frame, matching the timer frequency.
const FrameInterval = chip8.TimerTick

// Display renders a frame of the machine.
type Display interface {
	Render(fb chip8.Framebuffer)
}

// Input returns the current keypad state and whether the user requested to quit.
type Input interface {
	Poll() (chip8.Keypad, bool)
}

// Audio switches the tone output on and off.
type Audio interface {
	SetActive(active bool)
}

// Runner executes a fixed number of instructions per frame.
type Runner struct {
	logger         *log.Logger
	machine        *chip8.Machine
	cyclesPerFrame int

	warned map[uint16]struct{} // addresses of reported unknown opcodes
}

// New returns a new runner for the machine.
func New(logger *log.Logger, machine *chip8.Machine, cyclesPerFrame int) *Runner {
	return &Runner{
		logger:         logger,
		machine:        machine,
		cyclesPerFrame: max(cyclesPerFrame, 1),
		warned:         map[uint16]struct{}{},
	}
}

// Machine returns the driven machine.
func (r *Runner) Machine() *chip8.Machine {
	return r.machine
}

// Frame executes the instructions of one frame. The first step receives the
// whole elapsed time so that the timers decay once per frame. Unknown opcodes
// are reported once per address and skipped, fatal errors end the frame.
func (r *Runner) Frame(elapsed time.Duration, keys chip8.Keypad) error {
	for cycle := range r.cyclesPerFrame {
		stepElapsed := elapsed
		if cycle > 0 {
			stepElapsed = 0
		}

		err := r.machine.Step(stepElapsed, keys)
		if err == nil {
			continue
		}
		if chip8.IsFatal(err) {
			return fmt.Errorf("executing frame: %w", err)
		}
		r.reportUnknownOpcode(err)
	}
	return nil
}

func (r *Runner) reportUnknownOpcode(err error) {
	var opErr *chip8.OpcodeError
	if !errors.As(err, &opErr) {
		r.logger.Warn("Step failed", log.Err(err))
		return
	}

	if _, ok := r.warned[opErr.Address]; ok {
		return
	}
	r.warned[opErr.Address] = struct{}{}

	r.logger.Warn("Skipping unknown opcode",
		log.Hex("address", opErr.Address),
		log.Hex("opcode", opErr.Instruction.Word))
}

// Run drives the machine at the frame rate until the context is cancelled,
// the input requests to quit or a fatal error occurs. It is used by hosts
// that do not provide their own frame loop.
func (r *Runner) Run(ctx context.Context, display Display, input Input, audio Audio) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	defer audio.SetActive(false)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("running machine: %w", ctx.Err())

		case now := <-ticker.C:
			keys, quit := input.Poll()
			if quit {
				return nil
			}

			elapsed := now.Sub(last)
			last = now

			if err := r.Frame(elapsed, keys); err != nil {
				return err
			}
			display.Render(r.machine.Framebuffer())
			audio.SetActive(r.machine.IsSoundActive())
		}
	}
}
