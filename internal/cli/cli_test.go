package cli

import (
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "-cpf", "15", "pong.ch8"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "pong.ch8", opts.Input)
	assert.Equal(t, 15, opts.CyclesPerFrame)
	assert.Equal(t, options.HostWindow, opts.Host)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "defaults",
			args: []string{"game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8", Host: options.HostWindow, Keys: options.KeysHex},
				Flags:      options.Flags{CyclesPerFrame: options.DefaultCyclesPerFrame, Scale: options.DefaultScale},
			},
		},
		{
			name: "input flag",
			args: []string{"-i", "game.zip", "-host", "Terminal", "-keys", "cosmac"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.zip", Host: options.HostTerminal, Keys: options.KeysCosmac},
				Flags:      options.Flags{CyclesPerFrame: options.DefaultCyclesPerFrame, Scale: options.DefaultScale},
			},
		},
		{
			name: "trace implies debug",
			args: []string{"-trace", "-seed", "42", "-scale", "4", "-mute", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8", Host: options.HostWindow, Keys: options.KeysHex},
				Flags: options.Flags{
					CyclesPerFrame: options.DefaultCyclesPerFrame,
					Scale:          4,
					Seed:           42,
					Mute:           true,
					Trace:          true,
					Debug:          true,
				},
			},
		},
		{
			name: "window host without rom",
			args: []string{"-q"},
			want: options.Program{
				Parameters: options.Parameters{Host: options.HostWindow, Keys: options.KeysHex},
				Flags:      options.Flags{CyclesPerFrame: options.DefaultCyclesPerFrame, Scale: options.DefaultScale, Quiet: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs("prog", tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{name: "terminal without rom", args: []string{"-host", "terminal"}, usage: true},
		{name: "flag after file", args: []string{"game.ch8", "-debug"}, usage: true},
		{name: "two files", args: []string{"a.ch8", "b.ch8"}, usage: true},
		{name: "unknown flag", args: []string{"-unknown", "game.ch8"}, usage: true},
		{name: "unknown host", args: []string{"-host", "tv", "game.ch8"}},
		{name: "unknown layout", args: []string{"-keys", "azerty", "game.ch8"}},
		{name: "zero cycles", args: []string{"-cpf", "0", "game.ch8"}},
		{name: "negative scale", args: []string{"-scale", "-1", "game.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs("prog", tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestReadOptionFlags(t *testing.T) {
	flags := flag.NewFlagSet("prog", flag.ContinueOnError)
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)

	defaults := map[string]string{
		"i":     "",
		"host":  options.HostWindow,
		"keys":  options.KeysHex,
		"cpf":   "10",
		"scale": "10",
		"seed":  "0",
		"mute":  "false",
		"trace": "false",
		"debug": "false",
		"q":     "false",
	}

	count := 0
	flags.VisitAll(func(f *flag.Flag) {
		count++
		expected, ok := defaults[f.Name]
		assert.True(t, ok, "unexpected flag %s", f.Name)
		assert.Equal(t, expected, f.DefValue)
		assert.True(t, f.Usage != "", "flag %s has no usage text", f.Name)
	})
	assert.Equal(t, len(defaults), count)
}
