package insts

// Decoding constants.
const (
	// RegNeedsDisplacement is the integer register for which IADD_RS always
	// carries an immediate displacement.
	RegNeedsDisplacement uint8 = 5

	// StoreL3Condition is the condition field value at and above which
	// ISTORE targets L3.
	StoreL3Condition uint8 = 14

	// ScratchpadL3Mask masks the immediate of an L3 immediate-only address.
	ScratchpadL3Mask int32 = 0x1FFFF8

	// shiftImmMask masks rotate counts and rounding-mode shifts.
	shiftImmMask int32 = 63
)

// Instruction represents a decoded RandomX instruction.
//
// Which fields are populated depends only on Op. Instructions are plain
// values; execution handlers are bound separately (see package emu).
type Instruction struct {
	Op  Op    // Instruction kind
	Dst Store // Destination operand
	Src Store // Source operand

	Imm         int32 // Immediate value, valid when HasImm is set
	HasImm      bool  // true if the instruction carries an immediate
	UnsignedImm bool  // true if Imm is rendered as unsigned

	Mode Mode // Condition or shift mode
}

// Decoder decodes RandomX instruction words into instructions.
type Decoder struct{}

// NewDecoder creates a new instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 64-bit instruction word. Every word decodes.
func (d *Decoder) Decode(word int64) Instruction {
	f := Extract(word)
	op := Classify(f.Opcode)

	switch op {
	case OpIAddRS:
		return d.decodeIAddRS(f)

	case OpIAddM, OpISubM, OpIMulM, OpIMulHM, OpISMulHM, OpIXorM:
		return d.decodeMem(op, RegR(f.Dst), f)

	case OpISubR, OpIMulR, OpISMulHR, OpIXorR, OpISwapR:
		return d.decodeReg(op, RegR(f.Dst), RegR(f.Src), f.Imm)

	case OpIMulHR:
		return Instruction{Op: op, Dst: RegR(f.Dst), Src: RegR(f.Src)}

	case OpIMulRCP:
		return Instruction{Op: op, Dst: RegR(f.Dst), Imm: f.Imm, HasImm: true, UnsignedImm: true}

	case OpINegR:
		return d.decodeReg(op, RegR(f.Dst), None, f.Imm)

	case OpIRorR, OpIRolR:
		return d.decodeReg(op, RegR(f.Dst), RegR(f.Src), f.Imm&shiftImmMask)

	case OpFSwapR:
		return d.decodeFSwap(f)

	case OpFAddR, OpFSubR:
		return d.decodeReg(op, RegF(f.Dst), RegA(f.Src), f.Imm)

	case OpFAddM, OpFSubM:
		return d.decodeMem(op, RegF(f.Dst), f)

	case OpFScalR:
		return Instruction{Op: op, Dst: RegF(f.Dst)}

	case OpFMulR:
		return d.decodeReg(op, RegE(f.Dst), RegA(f.Src), f.Imm)

	case OpFDivM:
		return d.decodeMem(op, RegE(f.Dst), f)

	case OpFSqrtR:
		return Instruction{Op: op, Dst: RegE(f.Dst)}

	case OpCBranch:
		return Instruction{Op: op, Dst: RegR(f.Dst), Imm: f.Imm, HasImm: true, Mode: Cond(ModCond(f.Mod))}

	case OpCFRound:
		return Instruction{Op: op, Src: RegR(f.Src), Imm: f.Imm & shiftImmMask, HasImm: true}

	case OpIStore:
		return Instruction{Op: op, Dst: memL123(f.Dst, f.Mod), Src: RegR(f.Src), Imm: f.Imm, HasImm: true}

	default:
		return Instruction{Op: OpNOP}
	}
}

// decodeIAddRS decodes the register-displacement add. The source is never
// collapsed; only the designated register gets an immediate.
func (d *Decoder) decodeIAddRS(f Fields) Instruction {
	inst := Instruction{
		Op:   OpIAddRS,
		Dst:  RegR(f.Dst),
		Src:  RegR(f.Src),
		Mode: Shift(ModShift(f.Mod)),
	}

	if inst.Dst.Index == RegNeedsDisplacement {
		inst.Imm = f.Imm
		inst.HasImm = true
	}

	return inst
}

// decodeReg builds a register-register instruction. When both operands are
// the same register the source is dropped and the immediate takes its place.
func (d *Decoder) decodeReg(op Op, dst, src Store, imm int32) Instruction {
	if src == dst {
		return Instruction{Op: op, Dst: dst, Imm: imm, HasImm: true}
	}
	return Instruction{Op: op, Dst: dst, Src: src}
}

// decodeMem builds a register-memory instruction. A source register equal to
// the destination turns the operand into an immediate-only L3 address.
func (d *Decoder) decodeMem(op Op, dst Store, f Fields) Instruction {
	if RegR(f.Src) == dst {
		return Instruction{
			Op:     op,
			Dst:    dst,
			Src:    Mem(TierL3, Imm()),
			Imm:    f.Imm & ScratchpadL3Mask,
			HasImm: true,
		}
	}

	return Instruction{Op: op, Dst: dst, Src: memL12(f.Src, f.Mod), Imm: f.Imm, HasImm: true}
}

// decodeFSwap picks the f or e bank from bit 2 of the dst byte.
func (d *Decoder) decodeFSwap(f Fields) Instruction {
	ix := f.Dst % NumRegisters
	if ix >= NumFloatRegisters {
		return Instruction{Op: OpFSwapR, Dst: RegE(ix)}
	}
	return Instruction{Op: OpFSwapR, Dst: RegF(ix)}
}

// memL12 resolves a two-tier scratchpad reference over an integer register.
func memL12(b, mod uint8) Store {
	if ModMem(mod) == 0 {
		return Mem(TierL2, RegR(b))
	}
	return Mem(TierL1, RegR(b))
}

// memL123 resolves a store target, which may also address L3.
func memL123(b, mod uint8) Store {
	if ModCond(mod) < StoreL3Condition {
		return memL12(b, mod)
	}
	return Mem(TierL3, RegR(b))
}
