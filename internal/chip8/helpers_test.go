package chip8

import (
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestMachine returns a machine with a fixed seed and the given
// instruction words loaded at ProgramStart.
func newTestMachine(t *testing.T, program ...uint16) *Machine {
	t.Helper()

	m := New(log.NewTestLogger(t), options.Machine{Seed: 1})
	assert.NoError(t, m.LoadProgram(assemble(program...)))
	return m
}

// assemble converts instruction words to a big endian program image.
func assemble(program ...uint16) []byte {
	rom := make([]byte, 0, len(program)*2)
	for _, word := range program {
		rom = append(rom, byte(word>>8), byte(word))
	}
	return rom
}

// stepN executes n instructions without elapsed time and fails on errors.
func stepN(t *testing.T, m *Machine, n int) {
	t.Helper()

	for range n {
		assert.NoError(t, m.Step(0, m.Keys()))
	}
}

// writeWord stores a big endian instruction word at address.
func writeWord(m *Machine, address, word uint16) {
	m.memory[address&AddressMask] = byte(word >> 8)
	m.memory[(address+1)&AddressMask] = byte(word)
}
