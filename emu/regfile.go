// Package emu provides the machine side of decoded programs: handler
// dispatch, the register file and the three-tier scratchpad.
package emu

import "github.com/sarchlab/rxprog/insts"

// RegFile represents the RandomX register file.
// It contains 8 integer registers (r0-r7) and three banks of four
// two-lane float registers: f (additive), e (multiplicative) and a
// (read-only constants).
type RegFile struct {
	// R holds integer registers r0-r7.
	R [insts.NumRegisters]uint64

	// F, E and A hold the float register banks. Each register holds two
	// lanes.
	F [insts.NumFloatRegisters][2]float64
	E [insts.NumFloatRegisters][2]float64
	A [insts.NumFloatRegisters][2]float64
}

// ReadReg reads an integer register operand. Operands outside the integer
// bank, including the immediate marker, read as 0.
func (r *RegFile) ReadReg(s insts.Store) uint64 {
	if s.IsMem() || s.Bank != insts.BankR {
		return 0
	}
	return r.R[s.Index]
}

// WriteReg writes an integer register operand. Writes to anything else are
// ignored.
func (r *RegFile) WriteReg(s insts.Store, value uint64) {
	if s.IsMem() || s.Bank != insts.BankR {
		return
	}
	r.R[s.Index] = value
}
