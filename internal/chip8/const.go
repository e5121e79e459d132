package chip8

import "time"

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// AddressMask limits memory accesses to the 12-bit address space.
	AddressMask = MemorySize - 1

	// ProgramStart is the address that programs are loaded at and execution starts from.
	ProgramStart = 0x200

	// MaxProgramSize is the maximum size of a program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontAddress is the address of the first hex digit glyph.
	FontAddress = 0x000

	// FontGlyphSize is the size of a single hex digit glyph in bytes.
	FontGlyphSize = 5
)

// Register and stack constants.
const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF which is used as carry, borrow and collision flag.
	FlagRegister = 0xF

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// KeyCount is the number of keys on the hex keypad.
	KeyCount = 16
)

// Display constants.
const (
	// ScreenWidth is the width of the framebuffer in pixels.
	ScreenWidth = 64

	// ScreenHeight is the height of the framebuffer in pixels.
	ScreenHeight = 32

	// SpriteWidth is the width of a sprite row in pixels.
	SpriteWidth = 8
)

// Timer constants.
const (
	// TimerFrequency is the rate in Hz at which the delay and sound timers count down.
	TimerFrequency = 60

	// TimerTick is the duration of a single timer decrement.
	TimerTick = time.Second / TimerFrequency

	// instructionSize is the size of an instruction word in bytes.
	instructionSize = 2
)
