package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rxprog/emu"
	"github.com/sarchlab/rxprog/insts"
)

var _ = Describe("Scratchpad", func() {
	var (
		pad     *emu.Scratchpad
		regFile *emu.RegFile
	)

	BeforeEach(func() {
		pad = emu.NewScratchpad(emu.DefaultScratchpadConfig())
		regFile = &emu.RegFile{}
	})

	It("should use size minus 8 as the tier mask", func() {
		Expect(pad.Mask(insts.TierL1)).To(Equal(uint64(0x3FF8)))
		Expect(pad.Mask(insts.TierL2)).To(Equal(uint64(0x3FFF8)))
		Expect(pad.Mask(insts.TierL3)).To(Equal(uint64(0x1FFFF8)))
	})

	It("should agree with the decoder's L3 immediate mask", func() {
		Expect(pad.Mask(insts.TierL3)).To(Equal(uint64(insts.ScratchpadL3Mask)))
	})

	It("should add the sign-extended displacement to the base register", func() {
		regFile.R[3] = 0x1000
		op := insts.Mem(insts.TierL1, insts.RegR(3))

		Expect(pad.Address(op, -16, regFile)).To(Equal(uint64(0x0FF0)))
		Expect(pad.Address(op, 0x10, regFile)).To(Equal(uint64(0x1010)))
	})

	It("should wrap addresses into the tier", func() {
		regFile.R[1] = 0xFFFFFFFFFFFFFFFF
		op := insts.Mem(insts.TierL2, insts.RegR(1))

		Expect(pad.Address(op, 1, regFile)).To(BeZero())
		Expect(pad.Address(op, 0, regFile)).To(Equal(uint64(0x3FFF8)))
	})

	It("should use the displacement alone for immediate addresses", func() {
		regFile.R[0] = 0x12345
		op := insts.Mem(insts.TierL3, insts.Imm())

		Expect(pad.Address(op, 0x145678, regFile)).To(Equal(uint64(0x145678)))
	})

	It("should read back what was written", func() {
		Expect(pad.Write64(0x1FFFF8, 0x0102030405060708)).To(Succeed())

		v, err := pad.Read64(0x1FFFF8)

		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint64(0x0102030405060708)))
	})

	It("should start zeroed", func() {
		v, err := pad.Read64(0x40)

		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(BeZero())
	})

	It("should follow a custom geometry", func() {
		config := &emu.ScratchpadConfig{L1Size: 1024, L2Size: 4096, L3Size: 8192}
		small := emu.NewScratchpad(config)

		Expect(small.Config()).To(Equal(config))
		Expect(small.Mask(insts.TierL1)).To(Equal(uint64(1016)))
		Expect(small.Mask(insts.TierL3)).To(Equal(uint64(8184)))
	})

	It("should not share its geometry with the caller", func() {
		config := &emu.ScratchpadConfig{L1Size: 1024, L2Size: 4096, L3Size: 8192}
		small := emu.NewScratchpad(config)

		config.L1Size = 2048
		small.Config().L2Size = 16384

		Expect(small.Mask(insts.TierL1)).To(Equal(uint64(1016)))
		Expect(small.Mask(insts.TierL2)).To(Equal(uint64(4088)))
		Expect(small.Config().L1Size).To(Equal(uint64(1024)))
	})
})
