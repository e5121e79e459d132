// Package chip8 implements the CHIP-8 interpreter core.
//
// # Machine Overview
//
// The CHIP-8 virtual machine is a small register based 8-bit computer:
//   - 4KB of memory, programs are loaded at ProgramStart (0x200)
//   - 16 general purpose 8-bit registers V0-VF, VF doubles as flag register
//   - a 16-bit index register I and a 16-bit program counter
//   - a call stack of StackDepth return addresses
//   - delay and sound timers counting down at 60 Hz
//   - a monochrome 64x32 framebuffer and a 16 key hex keypad
//
// # Memory Layout
//
//	0x000-0x04F: hex digit font, 16 glyphs of 5 bytes
//	0x050-0x1FF: reserved interpreter area
//	0x200-0xFFF: program space (3584 bytes)
//
// # Execution Model
//
// The machine owns no clock and no goroutines. The host calls Step once per
// tick with the elapsed wall time and a snapshot of the keypad. Each call
// decays the timers and executes exactly one instruction. The key wait
// instruction (Fx0A) does not block: it puts the machine into an awaiting-key
// state that is resolved by a later Step that observes a key press.
//
// # Errors
//
// Step reports abnormal conditions as errors:
//   - ErrUnknownOpcode (wrapped in *OpcodeError) is not fatal, execution
//     continues after the bad instruction word
//   - ErrStackOverflow, ErrStackUnderflow and ErrPCOutOfBounds are fatal,
//     the machine halts and every following Step returns ErrHalted
//
// Use IsFatal to decide whether the host has to stop stepping.
//
// # Usage Example
//
//	m := chip8.New(logger, options.Machine{Seed: 1})
//	if err := m.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if err := m.Step(time.Second/60, keys); chip8.IsFatal(err) {
//			return err
//		}
//		render(m.Framebuffer())
//	}
package chip8
