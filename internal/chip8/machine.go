package chip8

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// noKey marks that no key press was observed.
const noKey = -1

// Machine is the CHIP-8 interpreter state. It is not safe for concurrent use,
// the host may only access it between calls to Step.
type Machine struct {
	logger *log.Logger
	opts   options.Machine
	seed   uint64
	rng    *rand.Rand

	memory [MemorySize]byte
	v      [RegisterCount]byte
	i      uint16
	pc     uint16
	stack  [StackDepth]uint16
	sp     int

	delayTimer byte
	soundTimer byte
	timerPhase int64 // elapsed nanoseconds times TimerFrequency not yet converted to ticks

	display   Framebuffer
	keys      Keypad
	lastPress int

	waiting      bool
	waitRegister uint8

	halted error
}

// State is a read-only snapshot of the machine registers.
type State struct {
	V          [RegisterCount]byte
	I          uint16
	PC         uint16
	SP         int
	Stack      []uint16
	DelayTimer byte
	SoundTimer byte
	Waiting    bool
}

// New returns a new machine in its initial state.
// A zero seed in the options seeds the random generator from the clock.
func New(logger *log.Logger, opts options.Machine) *Machine {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	m := &Machine{
		logger: logger,
		opts:   opts,
		seed:   seed,
	}
	m.Reset()
	return m
}

// Reset zeroes memory and registers, loads the font, clears the display and
// the keypad and points the program counter to ProgramStart. The random
// generator is reseeded so that a reset machine replays identically.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	copy(m.memory[FontAddress:], fontSet[:])

	m.v = [RegisterCount]byte{}
	m.i = 0
	m.pc = ProgramStart
	m.stack = [StackDepth]uint16{}
	m.sp = 0

	m.delayTimer = 0
	m.soundTimer = 0
	m.timerPhase = 0

	m.display.clear()
	m.keys = Keypad{}
	m.lastPress = noKey

	m.waiting = false
	m.waitRegister = 0
	m.halted = nil

	m.rng = rand.New(rand.NewPCG(m.seed, m.seed^0x9E3779B97F4A7C15))
}

// LoadProgram copies a program image into memory starting at ProgramStart.
// Programs larger than MaxProgramSize are rejected without modifying memory.
func (m *Machine) LoadProgram(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the program space of %d bytes",
			ErrROMTooLarge, len(rom), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], rom)
	return nil
}

// Framebuffer returns a copy of the display.
func (m *Machine) Framebuffer() Framebuffer {
	return m.display
}

// IsSoundActive returns whether the sound timer is running and the host
// should emit a tone.
func (m *Machine) IsSoundActive() bool {
	return m.soundTimer > 0
}

// Registers returns a snapshot of the register state.
func (m *Machine) Registers() State {
	stack := make([]uint16, m.sp)
	copy(stack, m.stack[:m.sp])

	return State{
		V:          m.v,
		I:          m.i,
		PC:         m.pc,
		SP:         m.sp,
		Stack:      stack,
		DelayTimer: m.delayTimer,
		SoundTimer: m.soundTimer,
		Waiting:    m.waiting,
	}
}

// ReadMemory returns the byte at the given address, masked to 12 bits.
func (m *Machine) ReadMemory(address uint16) byte {
	return m.memory[address&AddressMask]
}

// Halted returns the fatal error that stopped the machine or nil.
func (m *Machine) Halted() error {
	return m.halted
}

// Step applies the keypad snapshot, decays the timers by the elapsed time and
// executes one instruction. While the machine waits for a key press no
// instruction is executed; the wait is resolved by the first observed press.
func (m *Machine) Step(elapsed time.Duration, keys Keypad) error {
	if m.halted != nil {
		return fmt.Errorf("%w: %w", ErrHalted, m.halted)
	}

	m.applyKeys(keys)
	m.decayTimers(elapsed)

	if m.waiting {
		m.resolveKeyWait()
		return nil
	}

	address := m.pc
	ins, err := m.fetch()
	if err != nil {
		return m.halt(err)
	}

	if m.opts.Trace {
		m.logger.Debug("Executing",
			log.Hex("address", address),
			log.Hex("opcode", ins.Word),
			log.String("instruction", ins.String()))
	}

	if err := m.execute(address, ins); err != nil {
		if IsFatal(err) {
			return m.halt(err)
		}
		return err
	}
	return nil
}

// fetch reads the big endian instruction word at PC and advances PC past it.
func (m *Machine) fetch() (Instruction, error) {
	if int(m.pc)+instructionSize > MemorySize {
		return Instruction{}, fmt.Errorf("%w: $%04X", ErrPCOutOfBounds, m.pc)
	}
	word := uint16(m.memory[m.pc])<<8 | uint16(m.memory[m.pc+1])
	m.pc += instructionSize
	return Decode(word), nil
}

// halt stops the machine after a fatal error.
func (m *Machine) halt(err error) error {
	m.halted = err
	m.logger.Debug("Machine halted", log.Err(err), log.Hex("pc", m.pc))
	return err
}

// decayTimers converts the elapsed time to 60 Hz ticks, keeping the fraction
// of a tick for the next call, and counts both timers down clamped at zero.
func (m *Machine) decayTimers(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}

	// whole seconds are converted separately so the product can not overflow
	ticks := int64(elapsed/time.Second) * TimerFrequency
	m.timerPhase += int64(elapsed%time.Second) * TimerFrequency
	ticks += m.timerPhase / int64(time.Second)
	m.timerPhase %= int64(time.Second)

	m.delayTimer = decrementClamped(m.delayTimer, ticks)
	m.soundTimer = decrementClamped(m.soundTimer, ticks)
}

func decrementClamped(value byte, ticks int64) byte {
	if ticks >= int64(value) {
		return 0
	}
	return value - byte(ticks)
}

// waitForKey enters the awaiting-key state for register x. Key presses that
// happened before the wait started are discarded.
func (m *Machine) waitForKey(x uint8) {
	m.waiting = true
	m.waitRegister = x
	m.lastPress = noKey
}

// resolveKeyWait completes a pending key wait if a key press was observed.
func (m *Machine) resolveKeyWait() {
	if m.lastPress == noKey {
		return
	}
	m.v[m.waitRegister] = byte(m.lastPress)
	m.waiting = false
	m.lastPress = noKey
}
