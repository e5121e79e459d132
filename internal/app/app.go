// Package app provides the main application helpers for the emulator.
package app

import (
	"strings"

	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Name of the program as shown in the banner and the window title.
const Name = "chip8emu"

// PrintBanner prints the program name and build information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(Name, log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints the information about the loaded ROM and the machine setup.
func PrintInfo(logger *log.Logger, opts options.Program, rom loader.ROM) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", rom.Name),
		log.Int("size", len(rom.Data)),
		log.String("host", opts.Host),
		log.String("keys", opts.Keys),
		log.Int("cycles_per_frame", opts.CyclesPerFrame),
	)
	if opts.Mute {
		logger.Debug("Audio output disabled")
	}
}
