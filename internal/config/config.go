// Package config handles application configuration and setup
package config

import (
	"runtime"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the program options. Instruction
// tracing is logged at debug level and enables it.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug, opts.Trace:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// SelectHost returns the host to run in. The window host falls back to the
// terminal host on Unix systems without a display server, as long as a ROM
// file was given, since the file dialog needs a display as well.
func SelectHost(opts options.Program, getenv func(string) string) string {
	if opts.Host != options.HostWindow || opts.Input == "" {
		return opts.Host
	}
	if !hasDisplay(runtime.GOOS, getenv) {
		return options.HostTerminal
	}
	return opts.Host
}

func hasDisplay(goos string, getenv func(string) string) bool {
	switch goos {
	case "windows", "darwin", "ios", "android", "js":
		return true
	default:
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	}
}
