package insts

import (
	"fmt"
	"strings"
)

// String renders the instruction in canonical disassembly form, e.g.
// "IADD_M r0, L1[r1+5]", "ISTORE L3[r2-16], r7" or "CBRANCH r4, 1024, COND 3".
//
// The immediate of an instruction with a memory operand is printed inside
// the brackets instead of as a trailing operand.
func (inst Instruction) String() string {
	var sb strings.Builder

	sb.WriteString(inst.Op.String())

	switch {
	case inst.Dst.IsNone():
	case inst.Dst.IsMem():
		sb.WriteByte(' ')
		inst.writeMem(&sb, inst.Dst)
	default:
		sb.WriteByte(' ')
		sb.WriteString(inst.Dst.String())
	}

	switch {
	case inst.Src.IsNone():
	case inst.Src.IsMem():
		sb.WriteString(", ")
		inst.writeMem(&sb, inst.Src)
	case inst.Dst.IsNone():
		sb.WriteByte(' ')
		sb.WriteString(inst.Src.String())
	default:
		sb.WriteString(", ")
		sb.WriteString(inst.Src.String())
	}

	if inst.HasImm && !inst.Dst.IsMem() && !inst.Src.IsMem() {
		if inst.UnsignedImm {
			fmt.Fprintf(&sb, ", %d", uint32(inst.Imm))
		} else {
			fmt.Fprintf(&sb, ", %d", inst.Imm)
		}
	}

	if inst.Mode.Kind != ModeNone {
		sb.WriteString(", ")
		sb.WriteString(inst.Mode.String())
	}

	return sb.String()
}

// writeMem renders a scratchpad reference with the instruction's
// displacement folded in.
func (inst Instruction) writeMem(sb *strings.Builder, s Store) {
	if s.Bank == BankImm {
		fmt.Fprintf(sb, "%v[%d]", s.Tier, inst.Imm)
		return
	}
	fmt.Fprintf(sb, "%v[%v%+d]", s.Tier, s.Base(), inst.Imm)
}
