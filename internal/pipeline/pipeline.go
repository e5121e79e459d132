// Package pipeline orchestrates loading a ROM and running it in a host.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8emu/internal/app"
	"github.com/retroenv/chip8emu/internal/audio"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/host/terminal"
	"github.com/retroenv/chip8emu/internal/host/window"
	"github.com/retroenv/chip8emu/internal/keymap"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Session contains everything a host needs to run a loaded ROM.
type Session struct {
	Logger *log.Logger
	Runner *runner.Runner
	Audio  audio.Output
	Layout *keymap.Layout
	Title  string
	Scale  int
}

// HostFunc runs a session until the user quits or the machine halts.
type HostFunc func(ctx context.Context, session Session) error

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	loader   *loader.Loader
	hosts    map[string]HostFunc
	newAudio func() (audio.Output, error)
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
		hosts: map[string]HostFunc{
			options.HostWindow:   runWindow,
			options.HostTerminal: runTerminal,
		},
		newAudio: func() (audio.Output, error) {
			return audio.NewBeeper()
		},
	}
}

// Execute loads the ROM of the options and runs it in the selected host.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts)
}

// ExecuteWithROM runs an already loaded ROM in the selected host.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom loader.ROM, opts options.Program) error {
	host, ok := p.hosts[opts.Host]
	if !ok {
		return fmt.Errorf("unsupported host '%s'", opts.Host)
	}

	layout, err := keymap.New(opts.Keys)
	if err != nil {
		return fmt.Errorf("creating keyboard layout: %w", err)
	}

	machine := chip8.New(p.logger, options.NewMachine(opts))
	if err := machine.LoadProgram(rom.Data); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	app.PrintInfo(p.logger, opts, rom)

	out := p.openAudio(opts.Mute)
	defer func() {
		if err := out.Close(); err != nil {
			p.logger.Error("Closing audio output failed", log.Err(err))
		}
	}()

	session := Session{
		Logger: p.logger,
		Runner: runner.New(p.logger, machine, opts.CyclesPerFrame),
		Audio:  out,
		Layout: layout,
		Title:  fmt.Sprintf("%s - %s", app.Name, rom.Name),
		Scale:  opts.Scale,
	}

	if err := host(ctx, session); err != nil {
		return fmt.Errorf("running %s host: %w", opts.Host, err)
	}
	return nil
}

// openAudio returns the tone output, falling back to silence if audio is
// disabled or the audio device can not be opened.
func (p *Pipeline) openAudio(mute bool) audio.Output {
	if mute {
		return audio.Silent{}
	}

	out, err := p.newAudio()
	if err != nil {
		p.logger.Warn("Audio output disabled", log.Err(err))
		return audio.Silent{}
	}
	return out
}

func runWindow(ctx context.Context, s Session) error {
	cfg := window.Config{
		Title: s.Title,
		Scale: s.Scale,
	}
	return window.Run(ctx, s.Logger, s.Runner, s.Audio, s.Layout, cfg)
}

func runTerminal(ctx context.Context, s Session) error {
	return terminal.Run(ctx, s.Logger, s.Runner, s.Audio, s.Layout)
}
