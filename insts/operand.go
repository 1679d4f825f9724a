package insts

import "fmt"

// Register file geometry.
const (
	NumRegisters      = 8 // r0-r7
	NumFloatRegisters = 4 // f0-f3, e0-e3, a0-a3
)

// Bank identifies the register bank (or the immediate marker) an operand
// refers to.
type Bank uint8

// Operand banks.
const (
	BankNone Bank = iota
	BankR         // Integer registers r0-r7
	BankF         // Additive float registers f0-f3
	BankE         // Multiplicative float registers e0-e3
	BankA         // Read-only float registers a0-a3
	BankImm       // Immediate-only scratchpad address
)

// Tier identifies the scratchpad tier of a memory operand.
type Tier uint8

// Scratchpad tiers.
const (
	TierNone Tier = iota
	TierL1
	TierL2
	TierL3
)

func (t Tier) String() string {
	switch t {
	case TierL1:
		return "L1"
	case TierL2:
		return "L2"
	case TierL3:
		return "L3"
	default:
		return ""
	}
}

// Store is a decoded operand. The zero value is the empty operand.
//
// A plain register has Tier == TierNone. A memory operand has a tier and
// wraps either an integer register or the immediate marker; memory operands
// never nest.
type Store struct {
	Tier  Tier
	Bank  Bank
	Index uint8
}

// None is the empty operand.
var None = Store{}

// RegR resolves an operand byte to one of the integer registers.
func RegR(b uint8) Store {
	return Store{Bank: BankR, Index: b % NumRegisters}
}

// RegF resolves an operand byte to one of the f registers.
func RegF(b uint8) Store {
	return Store{Bank: BankF, Index: b % NumFloatRegisters}
}

// RegE resolves an operand byte to one of the e registers.
func RegE(b uint8) Store {
	return Store{Bank: BankE, Index: b % NumFloatRegisters}
}

// RegA resolves an operand byte to one of the a registers.
func RegA(b uint8) Store {
	return Store{Bank: BankA, Index: b % NumFloatRegisters}
}

// Imm returns the immediate-only address marker.
func Imm() Store {
	return Store{Bank: BankImm}
}

// Mem wraps an integer register or the immediate marker in a scratchpad
// reference. It panics if base is anything else.
func Mem(tier Tier, base Store) Store {
	if base.IsMem() || (base.Bank != BankR && base.Bank != BankImm) || tier == TierNone {
		panic(fmt.Sprintf("insts: cannot wrap %v in %v", base, tier))
	}
	base.Tier = tier
	return base
}

// IsNone reports whether s is the empty operand.
func (s Store) IsNone() bool {
	return s == None
}

// IsMem reports whether s is a scratchpad reference.
func (s Store) IsMem() bool {
	return s.Tier != TierNone
}

// Base returns the operand wrapped by a scratchpad reference, or s itself.
func (s Store) Base() Store {
	s.Tier = TierNone
	return s
}

// String renders the operand without any displacement, e.g. "r3", "a1",
// "L2[r0]" or "L3[i]".
func (s Store) String() string {
	if s.IsMem() {
		return fmt.Sprintf("%v[%v]", s.Tier, s.Base())
	}

	switch s.Bank {
	case BankR:
		return fmt.Sprintf("r%d", s.Index)
	case BankF:
		return fmt.Sprintf("f%d", s.Index)
	case BankE:
		return fmt.Sprintf("e%d", s.Index)
	case BankA:
		return fmt.Sprintf("a%d", s.Index)
	case BankImm:
		return "i"
	default:
		return ""
	}
}

// ModeKind tells how Mode.Value is interpreted.
type ModeKind uint8

// Addressing modes.
const (
	ModeNone  ModeKind = iota
	ModeCond           // Branch condition selector
	ModeShift          // Register displacement shift
)

// Mode is the addressing mode attached to an instruction.
type Mode struct {
	Kind  ModeKind
	Value uint8
}

// Cond returns a condition mode.
func Cond(c uint8) Mode {
	return Mode{Kind: ModeCond, Value: c}
}

// Shift returns a shift mode.
func Shift(s uint8) Mode {
	return Mode{Kind: ModeShift, Value: s}
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeCond:
		return fmt.Sprintf("COND %d", m.Value)
	case ModeShift:
		return fmt.Sprintf("SHFT %d", m.Value)
	default:
		return "NONE"
	}
}
