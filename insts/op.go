package insts

// Op represents a RandomX instruction kind.
type Op uint8

// Instruction kinds, in opcode-table order.
const (
	OpNOP Op = iota
	OpIAddRS
	OpIAddM
	OpISubR
	OpISubM
	OpIMulR
	OpIMulM
	OpIMulHR
	OpIMulHM
	OpISMulHR
	OpISMulHM
	OpIMulRCP
	OpINegR
	OpIXorR
	OpIXorM
	OpIRorR
	OpIRolR
	OpISwapR
	OpFSwapR
	OpFAddR
	OpFAddM
	OpFSubR
	OpFSubM
	OpFScalR
	OpFMulR
	OpFDivM
	OpFSqrtR
	OpCBranch
	OpCFRound
	OpIStore

	// NumOps is the number of instruction kinds.
	NumOps
)

var opNames = [NumOps]string{
	OpNOP:     "NOP",
	OpIAddRS:  "IADD_RS",
	OpIAddM:   "IADD_M",
	OpISubR:   "ISUB_R",
	OpISubM:   "ISUB_M",
	OpIMulR:   "IMUL_R",
	OpIMulM:   "IMUL_M",
	OpIMulHR:  "IMULH_R",
	OpIMulHM:  "IMULH_M",
	OpISMulHR: "ISMULH_R",
	OpISMulHM: "ISMULH_M",
	OpIMulRCP: "IMUL_RCP",
	OpINegR:   "INEG_R",
	OpIXorR:   "IXOR_R",
	OpIXorM:   "IXOR_M",
	OpIRorR:   "IROR_R",
	OpIRolR:   "IROL_R",
	OpISwapR:  "ISWAP_R",
	OpFSwapR:  "FSWAP_R",
	OpFAddR:   "FADD_R",
	OpFAddM:   "FADD_M",
	OpFSubR:   "FSUB_R",
	OpFSubM:   "FSUB_M",
	OpFScalR:  "FSCAL_R",
	OpFMulR:   "FMUL_R",
	OpFDivM:   "FDIV_M",
	OpFSqrtR:  "FSQRT_R",
	OpCBranch: "CBRANCH",
	OpCFRound: "CFROUND",
	OpIStore:  "ISTORE",
}

// String returns the instruction mnemonic.
func (op Op) String() string {
	if op >= NumOps {
		return "UNKNOWN"
	}
	return opNames[op]
}

// opcodeTable maps opcode bytes to instruction kinds. An opcode belongs to
// the first entry whose exclusive upper bound exceeds it, so the gap between
// consecutive bounds is the kind's frequency out of 256.
var opcodeTable = [...]struct {
	bound int
	op    Op
}{
	{0x10, OpIAddRS},
	{0x17, OpIAddM},
	{0x27, OpISubR},
	{0x2e, OpISubM},
	{0x3e, OpIMulR},
	{0x42, OpIMulM},
	{0x46, OpIMulHR},
	{0x47, OpIMulHM},
	{0x4b, OpISMulHR},
	{0x4c, OpISMulHM},
	{0x54, OpIMulRCP},
	{0x56, OpINegR},
	{0x65, OpIXorR},
	{0x6a, OpIXorM},
	{0x72, OpIRorR},
	{0x74, OpIRolR},
	{0x78, OpISwapR},
	{0x7c, OpFSwapR},
	{0x8c, OpFAddR},
	{0x91, OpFAddM},
	{0xa1, OpFSubR},
	{0xa6, OpFSubM},
	{0xac, OpFScalR},
	{0xcc, OpFMulR},
	{0xd0, OpFDivM},
	{0xd6, OpFSqrtR},
	{0xef, OpCBranch},
	{0xf0, OpCFRound},
	{0x100, OpIStore},
}

var opcodeLookup [256]Op

func init() {
	for i := range opcodeLookup {
		opcodeLookup[i] = classify(i)
	}
}

// classify scans the opcode table. Opcodes past the last bound fall through
// to NOP, which a single byte can never reach.
func classify(opcode int) Op {
	for _, e := range opcodeTable {
		if opcode < e.bound {
			return e.op
		}
	}
	return OpNOP
}

// Classify returns the instruction kind selected by an opcode byte.
func Classify(opcode uint8) Op {
	return opcodeLookup[opcode]
}

// UpperBound returns the exclusive upper opcode bound of op, or 0 for kinds
// that are not in the opcode table.
func (op Op) UpperBound() int {
	for _, e := range opcodeTable {
		if e.op == op {
			return e.bound
		}
	}
	return 0
}

// Frequency returns how many of the 256 opcode values select op.
func (op Op) Frequency() int {
	prev := 0
	for _, e := range opcodeTable {
		if e.op == op {
			return e.bound - prev
		}
		prev = e.bound
	}
	return 0
}

// ExpectedShare returns the fraction of uniformly random words that decode
// to op.
func (op Op) ExpectedShare() float64 {
	return float64(op.Frequency()) / 256
}
