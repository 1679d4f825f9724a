// Package insts provides RandomX-style virtual machine instruction
// definitions, decoding and disassembly.
//
// This package turns 64-bit instruction words drawn from an entropy stream
// into structured instructions. It supports:
//   - Field extraction: opcode, dst, src, modifier and immediate sub-fields
//   - Opcode classification: a weighted threshold table over the opcode byte
//   - Operand resolution: integer registers, three float register banks and
//     three tiers of scratchpad memory
//   - Disassembly into the canonical text form used for conformance tests
//
// Decoding is total: every 64-bit word is a legal encoding.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x0000000000000201) // IADD_RS r2, r0, SHFT 0
//	fmt.Println(inst)
//
//	prog := insts.NewProgram(values) // values []entropy.Value
//	fmt.Print(prog)
package insts
