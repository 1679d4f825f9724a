package insts

// Fields holds the raw sub-fields of a 64-bit instruction word.
type Fields struct {
	Opcode uint8
	Dst    uint8
	Src    uint8
	Mod    uint8
	Imm    int32
}

// Extract splits an instruction word into its sub-fields.
// Format: imm32 | mod | src | dst | opcode
func Extract(word int64) Fields {
	w := uint64(word)

	return Fields{
		Opcode: uint8(w & 0xFF),         // bits [7:0]
		Dst:    uint8((w >> 8) & 0xFF),  // bits [15:8]
		Src:    uint8((w >> 16) & 0xFF), // bits [23:16]
		Mod:    uint8((w >> 24) & 0xFF), // bits [31:24]
		Imm:    int32(uint32(w >> 32)),  // bits [63:32]
	}
}

// ModMem returns the memory-bank selector of a modifier byte. Zero selects
// L2, anything else L1.
func ModMem(mod uint8) uint8 {
	return mod % 4 // bits [1:0]
}

// ModShift returns the register displacement shift of a modifier byte.
func ModShift(mod uint8) uint8 {
	return (mod >> 2) % 4 // bits [3:2]
}

// ModCond returns the condition field of a modifier byte.
func ModCond(mod uint8) uint8 {
	return mod >> 4 // bits [7:4]
}
