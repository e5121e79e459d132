// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses the command line flags of the process.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

// parseArgs parses the given arguments and returns the program options.
// A missing ROM file is only accepted for the window host, which offers a
// file dialog instead.
func parseArgs(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)

	if err := flags.Parse(arguments); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}
	if len(args) > 0 && opts.Input == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" && opts.Host != options.HostWindow {
		return opts, &UsageError{flags: flags, msg: "no ROM file given"}
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{flags: flags, msg: "only one ROM file can be run"}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Normalize()

	validHosts := []string{options.HostWindow, options.HostTerminal}
	if !slices.Contains(validHosts, opts.Host) {
		return fmt.Errorf("unsupported host: %s. Valid options: %s",
			opts.Host, strings.Join(validHosts, ", "))
	}

	validKeys := []string{options.KeysHex, options.KeysCosmac}
	if !slices.Contains(validKeys, opts.Keys) {
		return fmt.Errorf("unsupported keyboard layout: %s. Valid options: %s",
			opts.Keys, strings.Join(validKeys, ", "))
	}

	if opts.CyclesPerFrame < 1 {
		return fmt.Errorf("instructions per frame must be positive, got %d", opts.CyclesPerFrame)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("window scale must be positive, got %d", opts.Scale)
	}

	if opts.Trace {
		opts.Debug = true
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file, raw or inside a zip/7z/gzip/rar archive")
	flags.StringVar(&opts.Host, "host", opts.Host, "host to run the emulator in (window/terminal)")
	flags.StringVar(&opts.Keys, "keys", opts.Keys, "keyboard layout (hex/cosmac)")
	flags.IntVar(&opts.CyclesPerFrame, "cpf", opts.CyclesPerFrame, "instructions executed per 60 Hz frame")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window pixel scale")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random generator seed, 0 seeds from the clock")
	flags.BoolVar(&opts.Mute, "mute", false, "disable audio output")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
