package emu

import (
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/akita/v4/mem/mem"

	"github.com/sarchlab/rxprog/insts"
)

// Scratchpad is the three-tier memory addressed by decoded memory operands.
// Addresses are always masked into the selected tier and aligned to 8 bytes.
type Scratchpad struct {
	config  *ScratchpadConfig
	storage *mem.Storage
}

// NewScratchpad creates a zeroed scratchpad. The config must be valid.
func NewScratchpad(config *ScratchpadConfig) *Scratchpad {
	return &Scratchpad{
		config:  config.Clone(),
		storage: mem.NewStorage(config.L3Size),
	}
}

// Config returns a copy of the scratchpad geometry.
func (s *Scratchpad) Config() *ScratchpadConfig {
	return s.config.Clone()
}

// Mask returns the address mask of a tier. TierNone maps to the L3 mask.
func (s *Scratchpad) Mask(t insts.Tier) uint64 {
	switch t {
	case insts.TierL1:
		return s.config.L1Size - 8
	case insts.TierL2:
		return s.config.L2Size - 8
	default:
		return s.config.L3Size - 8
	}
}

// Address computes the scratchpad address of a memory operand. A register
// base adds the sign-extended displacement to the register; the immediate
// marker uses the displacement alone.
func (s *Scratchpad) Address(op insts.Store, imm int32, regs *RegFile) uint64 {
	disp := uint64(int64(imm))

	if op.Bank == insts.BankImm {
		return disp & s.Mask(op.Tier)
	}

	return (regs.ReadReg(op.Base()) + disp) & s.Mask(op.Tier)
}

// Read64 reads a little-endian 64-bit word.
func (s *Scratchpad) Read64(addr uint64) (uint64, error) {
	data, err := s.storage.Read(addr, 8)
	if err != nil {
		return 0, fmt.Errorf("failed to read scratchpad at 0x%x: %w", addr, err)
	}

	return binary.LittleEndian.Uint64(data), nil
}

// Write64 writes a little-endian 64-bit word.
func (s *Scratchpad) Write64(addr, value uint64) error {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, value)

	if err := s.storage.Write(addr, data); err != nil {
		return fmt.Errorf("failed to write scratchpad at 0x%x: %w", addr, err)
	}

	return nil
}
