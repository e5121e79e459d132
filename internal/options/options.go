// Package options contains the program options.
package options

import "strings"

// Supported host shells.
const (
	HostWindow   = "window"
	HostTerminal = "terminal"
)

// Supported keyboard layouts.
const (
	KeysHex    = "hex"
	KeysCosmac = "cosmac"
)

// Default option values.
const (
	DefaultCyclesPerFrame = 10
	DefaultScale          = 10
)

// Parameters contains file path and host selection options.
type Parameters struct {
	Input string // ROM file, raw or inside an archive
	Host  string
	Keys  string // keyboard layout
}

// Flags contains behavior options.
type Flags struct {
	CyclesPerFrame int
	Scale          int
	Seed           uint64
	Mute           bool
	Trace          bool
	Debug          bool
	Quiet          bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// Machine defines options to control the interpreter core.
type Machine struct {
	Seed  uint64 // random generator seed, 0 seeds from the clock
	Trace bool   // log every executed instruction at debug level
}

// NewProgram returns program options with default values.
func NewProgram() Program {
	return Program{
		Parameters: Parameters{
			Host: HostWindow,
			Keys: KeysHex,
		},
		Flags: Flags{
			CyclesPerFrame: DefaultCyclesPerFrame,
			Scale:          DefaultScale,
		},
	}
}

// NewMachine returns the interpreter options derived from the program options.
func NewMachine(opts Program) Machine {
	return Machine{
		Seed:  opts.Seed,
		Trace: opts.Trace,
	}
}

// Normalize lower cases the string options.
func (p *Program) Normalize() {
	p.Host = strings.ToLower(strings.TrimSpace(p.Host))
	p.Keys = strings.ToLower(strings.TrimSpace(p.Keys))
}
