package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies the behavior of a decoded instruction word.
type Op uint8

// All operations of the CHIP-8 instruction set.
const (
	OpUnknown  Op = iota
	OpCLS         // 00E0
	OpRET         // 00EE
	OpJP          // 1nnn
	OpCALL        // 2nnn
	OpSEImm       // 3xnn
	OpSNEImm      // 4xnn
	OpSEReg       // 5xy0
	OpLDImm       // 6xnn
	OpADDImm      // 7xnn
	OpLDReg       // 8xy0
	OpOR          // 8xy1
	OpAND         // 8xy2
	OpXOR         // 8xy3
	OpADDReg      // 8xy4
	OpSUB         // 8xy5
	OpSHR         // 8xy6
	OpSUBN        // 8xy7
	OpSHL         // 8xyE
	OpSNEReg      // 9xy0
	OpLDI         // Annn
	OpJPV0        // Bnnn
	OpRND         // Cxnn
	OpDRW         // Dxyn
	OpSKP         // Ex9E
	OpSKNP        // ExA1
	OpLDVxDT      // Fx07
	OpLDVxK       // Fx0A
	OpLDDTVx      // Fx15
	OpLDSTVx      // Fx18
	OpADDI        // Fx1E
	OpLDF         // Fx29
	OpLDB         // Fx33
	OpLDIVx       // Fx55
	OpLDVxI       // Fx65
)

// Instruction is a decoded 16-bit instruction word.
type Instruction struct {
	Word uint16 // raw big endian instruction word
	Op   Op     // resolved operation

	Family uint8  // high nibble
	X      uint8  // first register index
	Y      uint8  // second register index
	N      uint8  // low nibble
	NN     uint8  // low byte immediate
	NNN    uint16 // 12-bit address
}

// Decode splits an instruction word into its fields and resolves the operation.
// Decoding is pure, the same word always results in the same instruction.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word:   word,
		Family: uint8(word >> 12),
		X:      uint8(word>>8) & 0x0F,
		Y:      uint8(word>>4) & 0x0F,
		N:      uint8(word) & 0x0F,
		NN:     uint8(word),
		NNN:    word & 0x0FFF,
	}
	ins.Op = resolveOp(ins)
	return ins
}

// resolveOp maps the opcode family and its discriminator to an operation.
func resolveOp(ins Instruction) Op {
	switch ins.Family {
	case 0x0:
		switch ins.Word {
		case 0x00E0:
			return OpCLS
		case 0x00EE:
			return OpRET
		}
	case 0x1:
		return OpJP
	case 0x2:
		return OpCALL
	case 0x3:
		return OpSEImm
	case 0x4:
		return OpSNEImm
	case 0x5:
		if ins.N == 0x0 {
			return OpSEReg
		}
	case 0x6:
		return OpLDImm
	case 0x7:
		return OpADDImm
	case 0x8:
		return resolveALUOp(ins.N)
	case 0x9:
		if ins.N == 0x0 {
			return OpSNEReg
		}
	case 0xA:
		return OpLDI
	case 0xB:
		return OpJPV0
	case 0xC:
		return OpRND
	case 0xD:
		return OpDRW
	case 0xE:
		switch ins.NN {
		case 0x9E:
			return OpSKP
		case 0xA1:
			return OpSKNP
		}
	case 0xF:
		return resolveMiscOp(ins.NN)
	}
	return OpUnknown
}

var aluOps = map[uint8]Op{
	0x0: OpLDReg,
	0x1: OpOR,
	0x2: OpAND,
	0x3: OpXOR,
	0x4: OpADDReg,
	0x5: OpSUB,
	0x6: OpSHR,
	0x7: OpSUBN,
	0xE: OpSHL,
}

func resolveALUOp(n uint8) Op {
	if op, ok := aluOps[n]; ok {
		return op
	}
	return OpUnknown
}

var miscOps = map[uint8]Op{
	0x07: OpLDVxDT,
	0x0A: OpLDVxK,
	0x15: OpLDDTVx,
	0x18: OpLDSTVx,
	0x1E: OpADDI,
	0x29: OpLDF,
	0x33: OpLDB,
	0x55: OpLDIVx,
	0x65: OpLDVxI,
}

func resolveMiscOp(nn uint8) Op {
	if op, ok := miscOps[nn]; ok {
		return op
	}
	return OpUnknown
}

// Name returns the assembler mnemonic of the instruction as defined by the
// retrogolib CHIP-8 opcode table, or an empty string for unknown words.
func (i Instruction) Name() string {
	if i.Op == OpUnknown {
		return ""
	}
	for _, op := range chip8cpu.Opcodes[int(i.Family)] {
		if op.Info.Mask&i.Word == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}

// String returns the instruction in assembler notation, for example "drw V1, V2, $5".
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return fmt.Sprintf(".word $%04X", i.Word)
	}
	if params := i.operands(); params != "" {
		return name + " " + params
	}
	return name
}

// operands formats the parameters of the instruction.
func (i Instruction) operands() string {
	switch i.Op {
	case OpJP, OpCALL:
		return fmt.Sprintf("$%03X", i.NNN)
	case OpJPV0:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case OpLDI:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case OpSEImm, OpSNEImm, OpLDImm, OpADDImm, OpRND:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	case OpSEReg, OpSNEReg, OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSUBN:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case OpSHR, OpSHL, OpSKP, OpSKNP:
		return fmt.Sprintf("V%X", i.X)
	case OpDRW:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case OpLDVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case OpLDVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case OpLDDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case OpLDSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case OpADDI:
		return fmt.Sprintf("I, V%X", i.X)
	case OpLDF:
		return fmt.Sprintf("F, V%X", i.X)
	case OpLDB:
		return fmt.Sprintf("B, V%X", i.X)
	case OpLDIVx:
		return fmt.Sprintf("[I], V%X", i.X)
	case OpLDVxI:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}
