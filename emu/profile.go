package emu

import (
	"log/slog"

	"github.com/sarchlab/rxprog/insts"
)

// TierProfile counts executed instructions and the scratchpad traffic of
// their memory operands.
type TierProfile struct {
	Executed [insts.NumOps]uint64

	// Reads and Writes are indexed by insts.Tier.
	Reads  [4]uint64
	Writes [4]uint64

	// Errors counts scratchpad accesses that failed.
	Errors uint64
}

// Register installs profiling handlers for every instruction kind. Memory
// sources are read and ISTORE writes its source register to its target.
func (p *TierProfile) Register(t *DispatchTable) {
	for op := insts.Op(0); op < insts.NumOps; op++ {
		t.Register(op, p.handle)
	}
}

func (p *TierProfile) handle(m *Machine, inst *insts.Instruction) {
	p.Executed[inst.Op]++

	if inst.Src.IsMem() {
		addr := m.Scratchpad.Address(inst.Src, inst.Imm, &m.Regs)
		if _, err := m.Scratchpad.Read64(addr); err != nil {
			p.fail(inst, err)
			return
		}
		p.Reads[inst.Src.Tier]++
		Trace("scratchpad read", slog.String("inst", inst.String()), slog.Uint64("addr", addr))
	}

	if inst.Dst.IsMem() {
		addr := m.Scratchpad.Address(inst.Dst, inst.Imm, &m.Regs)
		if err := m.Scratchpad.Write64(addr, m.Regs.ReadReg(inst.Src)); err != nil {
			p.fail(inst, err)
			return
		}
		p.Writes[inst.Dst.Tier]++
		Trace("scratchpad write", slog.String("inst", inst.String()), slog.Uint64("addr", addr))
	}
}

func (p *TierProfile) fail(inst *insts.Instruction, err error) {
	p.Errors++
	slog.Warn("scratchpad access failed", slog.String("inst", inst.String()), slog.Any("err", err))
}
