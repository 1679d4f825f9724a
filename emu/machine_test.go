package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rxprog/emu"
	"github.com/sarchlab/rxprog/entropy"
	"github.com/sarchlab/rxprog/insts"
)

// program builds a program from (first, second) instruction word pairs.
func program(words ...uint64) *insts.Program {
	values := make([]entropy.Value, insts.WarmupValues, insts.WarmupValues+len(words)/2)
	for i := 0; i+1 < len(words); i += 2 {
		values = append(values, entropy.Value{Lo: words[i], Hi: words[i+1]})
	}
	return insts.NewProgram(values)
}

var _ = Describe("Machine", func() {
	It("should default to a RandomX-sized scratchpad", func() {
		m := emu.NewMachine()

		Expect(m.Scratchpad).ToNot(BeNil())
		Expect(m.Scratchpad.Config()).To(Equal(emu.DefaultScratchpadConfig()))
	})

	It("should accept options", func() {
		pad := emu.NewScratchpad(&emu.ScratchpadConfig{L1Size: 1024, L2Size: 2048, L3Size: 4096})
		regs := emu.RegFile{}
		regs.R[2] = 42

		m := emu.NewMachine(emu.WithScratchpad(pad), emu.WithRegFile(regs))

		Expect(m.Scratchpad).To(BeIdenticalTo(pad))
		Expect(m.Regs.R[2]).To(Equal(uint64(42)))
	})
})

var _ = Describe("DispatchTable", func() {
	var (
		table   *emu.DispatchTable
		machine *emu.Machine
	)

	BeforeEach(func() {
		table = emu.NewDispatchTable()
		machine = emu.NewMachine()
	})

	// INEG_R r7 -> 0x0000000000000754
	// FSQRT_R e1 -> 0x00000000000001d0
	It("should run handlers in program order", func() {
		var seen []insts.Op
		record := func(_ *emu.Machine, inst *insts.Instruction) {
			seen = append(seen, inst.Op)
		}
		table.Register(insts.OpINegR, record)
		table.Register(insts.OpFSqrtR, record)

		bound := table.Bind(program(0x754, 0x1d0, 0x1d0, 0x754))
		bound.Run(machine)

		Expect(seen).To(Equal([]insts.Op{
			insts.OpINegR, insts.OpFSqrtR, insts.OpFSqrtR, insts.OpINegR,
		}))
		Expect(machine.InstructionCount()).To(Equal(uint64(4)))
	})

	It("should bind unregistered kinds to a no-op", func() {
		bound := table.Bind(program(0x754, 0x1d0))

		Expect(bound.Len()).To(Equal(2))
		Expect(func() { bound.Run(machine) }).ToNot(Panic())
		Expect(machine.InstructionCount()).To(Equal(uint64(2)))
	})

	It("should resolve handlers once at bind time", func() {
		calls := 0
		table.Register(insts.OpINegR, func(*emu.Machine, *insts.Instruction) { calls++ })

		bound := table.Bind(program(0x754, 0x754))
		table.Register(insts.OpINegR, nil)
		bound.Run(machine)

		Expect(calls).To(Equal(2))
		Expect(table.Lookup(insts.OpINegR)).To(BeNil())
	})

	It("should let handlers change machine state", func() {
		table.Register(insts.OpINegR, func(m *emu.Machine, inst *insts.Instruction) {
			m.Regs.WriteReg(inst.Dst, -m.Regs.ReadReg(inst.Dst))
		})
		machine.Regs.R[7] = 1

		table.Bind(program(0x754, 0x1d0)).Run(machine)

		Expect(machine.Regs.R[7]).To(Equal(^uint64(0)))
	})

	It("should keep the decoded instructions intact", func() {
		bound := table.Bind(program(0xfffffff0010503f0, 0x754))

		Expect(bound.Instruction(0).String()).To(Equal("ISTORE L1[r3-16], r5"))
		Expect(bound.Instruction(1).String()).To(Equal("INEG_R r7"))
	})

	It("should return nil for kinds past the table", func() {
		Expect(table.Lookup(insts.NumOps)).To(BeNil())
	})
})

var _ = Describe("TierProfile", func() {
	var (
		table   *emu.DispatchTable
		profile *emu.TierProfile
		machine *emu.Machine
	)

	BeforeEach(func() {
		table = emu.NewDispatchTable()
		profile = &emu.TierProfile{}
		profile.Register(table)
		machine = emu.NewMachine()
	})

	// ISTORE L1[r3-16], r5 -> 0xfffffff0010503f0
	// FADD_M f1, L2[r6+100] -> 0x000000640006018c
	It("should store and load through the scratchpad", func() {
		machine.Regs.R[3] = 0x100
		machine.Regs.R[5] = 0xCAFE
		machine.Regs.R[6] = 0xF0 - 100

		table.Bind(program(0xfffffff0010503f0, 0x000000640006018c)).Run(machine)

		Expect(profile.Writes[insts.TierL1]).To(Equal(uint64(1)))
		Expect(profile.Reads[insts.TierL2]).To(Equal(uint64(1)))
		Expect(profile.Executed[insts.OpIStore]).To(Equal(uint64(1)))
		Expect(profile.Executed[insts.OpFAddM]).To(Equal(uint64(1)))
		Expect(profile.Errors).To(BeZero())

		v, err := machine.Scratchpad.Read64(0xF0)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint64(0xCAFE)))
	})

	// IADD_M r4, L3[1332856] -> 0x1234567800040410
	It("should count L3 immediate reads", func() {
		table.Bind(program(0x1234567800040410, 0x754)).Run(machine)

		Expect(profile.Reads[insts.TierL3]).To(Equal(uint64(1)))
		Expect(profile.Executed[insts.OpINegR]).To(Equal(uint64(1)))
	})
})
