package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrROMTooLarge is returned when a program does not fit into the program space.
	ErrROMTooLarge = errors.New("rom too large")

	// ErrUnknownOpcode is reported for instruction words that do not match any opcode.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrStackOverflow is returned when a call exceeds the maximum stack depth.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrPCOutOfBounds is returned when the program counter leaves the memory.
	ErrPCOutOfBounds = errors.New("program counter out of bounds")

	// ErrHalted is returned by Step after a fatal error until the machine is reset.
	ErrHalted = errors.New("machine halted")

	// ErrInvalidKey is returned for key indexes outside of 0-F.
	ErrInvalidKey = errors.New("invalid key")
)

// OpcodeError describes an instruction word that could not be executed.
type OpcodeError struct {
	Address     uint16
	Instruction Instruction
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%04X at address $%03X", e.Instruction.Word, e.Address)
}

// Unwrap allows errors.Is to match ErrUnknownOpcode.
func (e *OpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// IsFatal reports whether err requires the host to stop stepping the machine.
// A nil error and unknown opcodes are not fatal.
func IsFatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrHalted),
		errors.Is(err, ErrStackOverflow),
		errors.Is(err, ErrStackUnderflow),
		errors.Is(err, ErrPCOutOfBounds):
		return true
	default:
		return false
	}
}
