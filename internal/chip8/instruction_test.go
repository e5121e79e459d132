package chip8

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode_Fields(t *testing.T) {
	ins := Decode(0xD12F)

	assert.Equal(t, uint16(0xD12F), ins.Word)
	assert.Equal(t, uint8(0xD), ins.Family)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0x2), ins.Y)
	assert.Equal(t, uint8(0xF), ins.N)
	assert.Equal(t, uint8(0x2F), ins.NN)
	assert.Equal(t, uint16(0x12F), ins.NNN)
	assert.Equal(t, OpDRW, ins.Op)
}

func TestDecode_Deterministic(t *testing.T) {
	for word := 0; word <= 0xFFFF; word += 0x0101 {
		first := Decode(uint16(word))
		second := Decode(uint16(word))
		assert.Equal(t, first, second)
	}
}

//nolint:funlen // opcode tables are long
func TestDecode_Ops(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		op   Op
	}{
		{"clear screen", 0x00E0, OpCLS},
		{"return", 0x00EE, OpRET},
		{"jump", 0x1234, OpJP},
		{"call", 0x2345, OpCALL},
		{"skip equal immediate", 0x3142, OpSEImm},
		{"skip not equal immediate", 0x4142, OpSNEImm},
		{"skip equal register", 0x5120, OpSEReg},
		{"load immediate", 0x6A0F, OpLDImm},
		{"add immediate", 0x7A01, OpADDImm},
		{"load register", 0x8120, OpLDReg},
		{"or", 0x8121, OpOR},
		{"and", 0x8122, OpAND},
		{"xor", 0x8123, OpXOR},
		{"add register", 0x8124, OpADDReg},
		{"subtract", 0x8125, OpSUB},
		{"shift right", 0x8126, OpSHR},
		{"reverse subtract", 0x8127, OpSUBN},
		{"shift left", 0x812E, OpSHL},
		{"skip not equal register", 0x9120, OpSNEReg},
		{"load index", 0xA123, OpLDI},
		{"jump offset", 0xB123, OpJPV0},
		{"random", 0xC1FF, OpRND},
		{"draw", 0xD125, OpDRW},
		{"skip key pressed", 0xE19E, OpSKP},
		{"skip key not pressed", 0xE1A1, OpSKNP},
		{"read delay timer", 0xF107, OpLDVxDT},
		{"wait for key", 0xF10A, OpLDVxK},
		{"set delay timer", 0xF115, OpLDDTVx},
		{"set sound timer", 0xF118, OpLDSTVx},
		{"add index", 0xF11E, OpADDI},
		{"font glyph", 0xF129, OpLDF},
		{"bcd", 0xF133, OpLDB},
		{"store registers", 0xF155, OpLDIVx},
		{"load registers", 0xF165, OpLDVxI},
		{"machine call", 0x0123, OpUnknown},
		{"zero word", 0x0000, OpUnknown},
		{"skip equal register with bad discriminator", 0x5121, OpUnknown},
		{"skip not equal register with bad discriminator", 0x912F, OpUnknown},
		{"alu with bad discriminator", 0x8128, OpUnknown},
		{"key family with bad discriminator", 0xE100, OpUnknown},
		{"misc family with bad discriminator", 0xF1FF, OpUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.op, Decode(tt.word).Op)
		})
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected string
	}{
		{"jump", 0x1234, chip8cpu.JpInst.Name + " $234"},
		{"call", 0x2ABC, chip8cpu.CallInst.Name + " $ABC"},
		{"clear screen", 0x00E0, chip8cpu.ClsInst.Name},
		{"return", 0x00EE, chip8cpu.RetInst.Name},
		{"draw", 0xD125, chip8cpu.DrwInst.Name + " V1, V2, $5"},
		{"unknown", 0xF1FF, ".word $F1FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).String())
		})
	}
}

func TestInstruction_Name(t *testing.T) {
	assert.Equal(t, "", Decode(0x0123).Name())
	assert.Equal(t, chip8cpu.SkpInst.Name, Decode(0xE39E).Name())
	assert.Equal(t, chip8cpu.SknpInst.Name, Decode(0xE3A1).Name())
}
