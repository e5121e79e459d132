package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewProgram(t *testing.T) {
	opts := NewProgram()

	assert.Equal(t, HostWindow, opts.Host)
	assert.Equal(t, KeysHex, opts.Keys)
	assert.Equal(t, DefaultCyclesPerFrame, opts.CyclesPerFrame)
	assert.Equal(t, DefaultScale, opts.Scale)
	assert.Equal(t, uint64(0), opts.Seed)
}

func TestNewMachine(t *testing.T) {
	opts := NewProgram()
	opts.Seed = 42
	opts.Trace = true

	machine := NewMachine(opts)
	assert.Equal(t, uint64(42), machine.Seed)
	assert.True(t, machine.Trace)
}

func TestProgram_Normalize(t *testing.T) {
	opts := Program{
		Parameters: Parameters{Host: " Terminal ", Keys: "COSMAC"},
	}
	opts.Normalize()

	assert.Equal(t, HostTerminal, opts.Host)
	assert.Equal(t, KeysCosmac, opts.Keys)
}
