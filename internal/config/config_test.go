package config

import (
	"runtime"
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
	}{
		{name: "default"},
		{name: "debug", flags: options.Flags{Debug: true}},
		{name: "trace", flags: options.Flags{Trace: true}},
		{name: "quiet", flags: options.Flags{Quiet: true}},
		{name: "debug wins over quiet", flags: options.Flags{Debug: true, Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := CreateLogger(options.Program{Flags: tt.flags})
			assert.NotNil(t, logger)
		})
	}
}

func TestSelectHost(t *testing.T) {
	noDisplay := func(string) string { return "" }

	expected := options.HostWindow
	if !hasDisplay(runtime.GOOS, noDisplay) {
		expected = options.HostTerminal
	}

	opts := options.NewProgram()
	opts.Input = "game.ch8"
	assert.Equal(t, expected, SelectHost(opts, noDisplay))

	opts.Host = options.HostTerminal
	assert.Equal(t, options.HostTerminal, SelectHost(opts, noDisplay))

	opts = options.NewProgram()
	assert.Equal(t, options.HostWindow, SelectHost(opts, noDisplay))
}

func TestHasDisplay(t *testing.T) {
	x11 := func(key string) string {
		if key == "DISPLAY" {
			return ":0"
		}
		return ""
	}
	wayland := func(key string) string {
		if key == "WAYLAND_DISPLAY" {
			return "wayland-0"
		}
		return ""
	}
	none := func(string) string { return "" }

	assert.True(t, hasDisplay("linux", x11))
	assert.True(t, hasDisplay("freebsd", wayland))
	assert.False(t, hasDisplay("linux", none))
	assert.True(t, hasDisplay("windows", none))
	assert.True(t, hasDisplay("darwin", none))
}
