package chip8

import "fmt"

// execute runs a decoded instruction. PC already points to the following
// instruction, address is the location the instruction was fetched from.
func (m *Machine) execute(address uint16, ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCLS:
		m.display.clear()

	case OpRET:
		if m.sp == 0 {
			return fmt.Errorf("%w: return at address $%03X", ErrStackUnderflow, address)
		}
		m.sp--
		m.pc = m.stack[m.sp]

	case OpJP:
		m.pc = ins.NNN

	case OpCALL:
		if m.sp == StackDepth {
			return fmt.Errorf("%w: call at address $%03X", ErrStackOverflow, address)
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = ins.NNN

	case OpSEImm:
		m.skipIf(m.v[x] == ins.NN)

	case OpSNEImm:
		m.skipIf(m.v[x] != ins.NN)

	case OpSEReg:
		m.skipIf(m.v[x] == m.v[y])

	case OpSNEReg:
		m.skipIf(m.v[x] != m.v[y])

	case OpLDImm:
		m.v[x] = ins.NN

	case OpADDImm:
		m.v[x] += ins.NN

	case OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSHR, OpSUBN, OpSHL:
		m.executeALU(ins)

	case OpLDI:
		m.i = ins.NNN

	case OpJPV0:
		m.pc = ins.NNN + uint16(m.v[0])

	case OpRND:
		m.v[x] = byte(m.rng.Uint32()) & ins.NN

	case OpDRW:
		m.draw(x, y, ins.N)

	case OpSKP:
		m.skipIf(m.keys.Pressed(m.v[x]))

	case OpSKNP:
		m.skipIf(!m.keys.Pressed(m.v[x]))

	case OpLDVxDT:
		m.v[x] = m.delayTimer

	case OpLDVxK:
		m.waitForKey(x)

	case OpLDDTVx:
		m.delayTimer = m.v[x]

	case OpLDSTVx:
		m.soundTimer = m.v[x]

	case OpADDI:
		m.i += uint16(m.v[x])

	case OpLDF:
		m.i = glyphAddress(m.v[x])

	case OpLDB:
		value := m.v[x]
		m.writeMemory(m.i, value/100)
		m.writeMemory(m.i+1, (value/10)%10)
		m.writeMemory(m.i+2, value%10)

	case OpLDIVx:
		for reg := uint16(0); reg <= uint16(x); reg++ {
			m.writeMemory(m.i+reg, m.v[reg])
		}

	case OpLDVxI:
		for reg := uint16(0); reg <= uint16(x); reg++ {
			m.v[reg] = m.ReadMemory(m.i + reg)
		}

	default: // OpUnknown
		return &OpcodeError{Address: address, Instruction: ins}
	}

	return nil
}

// executeALU runs the register to register operations of the 8xyN family.
// The result is computed from the operand values before any register is
// written, VF is written last so that it holds the flag even if x is F.
func (m *Machine) executeALU(ins Instruction) {
	vx, vy := m.v[ins.X], m.v[ins.Y]

	switch ins.Op {
	case OpLDReg:
		m.v[ins.X] = vy

	case OpOR:
		m.v[ins.X] = vx | vy

	case OpAND:
		m.v[ins.X] = vx & vy

	case OpXOR:
		m.v[ins.X] = vx ^ vy

	case OpADDReg:
		sum := uint16(vx) + uint16(vy)
		m.v[ins.X] = byte(sum)
		m.v[FlagRegister] = boolToFlag(sum > 0xFF)

	case OpSUB:
		m.v[ins.X] = vx - vy
		m.v[FlagRegister] = boolToFlag(vx > vy)

	case OpSHR:
		m.v[ins.X] = vx >> 1
		m.v[FlagRegister] = vx & 0x01

	case OpSUBN:
		m.v[ins.X] = vy - vx
		m.v[FlagRegister] = boolToFlag(vy >= vx)

	case OpSHL:
		m.v[ins.X] = vx << 1
		m.v[FlagRegister] = vx >> 7
	}
}

// draw XORs an n byte sprite from memory at I onto the display at Vx, Vy and
// sets VF to the collision flag.
func (m *Machine) draw(x, y, n uint8) {
	rows := make([]byte, n)
	for row := range rows {
		rows[row] = m.ReadMemory(m.i + uint16(row))
	}

	collision := m.display.drawSprite(m.v[x], m.v[y], rows)
	m.v[FlagRegister] = boolToFlag(collision)
}

// skipIf skips the next instruction if the condition is true.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += instructionSize
	}
}

// writeMemory stores a byte at the given address, masked to 12 bits.
func (m *Machine) writeMemory(address uint16, value byte) {
	m.memory[address&AddressMask] = value
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
