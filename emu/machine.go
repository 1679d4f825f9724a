package emu

import (
	"log/slog"

	"github.com/sarchlab/rxprog/insts"
)

// Machine holds the state handlers operate on.
type Machine struct {
	Regs       RegFile
	Scratchpad *Scratchpad

	instructionCount uint64
}

// MachineOption is a functional option for configuring the Machine.
type MachineOption func(*Machine)

// WithScratchpad sets the scratchpad the machine addresses.
func WithScratchpad(s *Scratchpad) MachineOption {
	return func(m *Machine) {
		m.Scratchpad = s
	}
}

// WithRegFile sets the initial register file.
func WithRegFile(r RegFile) MachineOption {
	return func(m *Machine) {
		m.Regs = r
	}
}

// NewMachine creates a machine with zeroed registers and a default-sized
// scratchpad.
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{}

	for _, opt := range opts {
		opt(m)
	}

	if m.Scratchpad == nil {
		m.Scratchpad = NewScratchpad(DefaultScratchpadConfig())
	}

	return m
}

// InstructionCount returns the number of handlers run so far.
func (m *Machine) InstructionCount() uint64 {
	return m.instructionCount
}

// Handler executes one decoded instruction against a machine.
type Handler func(m *Machine, inst *insts.Instruction)

func nopHandler(*Machine, *insts.Instruction) {}

// DispatchTable maps instruction kinds to handlers.
type DispatchTable struct {
	handlers [insts.NumOps]Handler
}

// NewDispatchTable creates a table with no handlers registered.
func NewDispatchTable() *DispatchTable {
	return &DispatchTable{}
}

// Register sets the handler for op, replacing any earlier one.
func (t *DispatchTable) Register(op insts.Op, h Handler) {
	t.handlers[op] = h
}

// Lookup returns the handler registered for op, or nil.
func (t *DispatchTable) Lookup(op insts.Op) Handler {
	if op >= insts.NumOps {
		return nil
	}
	return t.handlers[op]
}

// Bind resolves a handler for every instruction of p. Kinds without a
// handler bind to a no-op.
func (t *DispatchTable) Bind(p *insts.Program) *BoundProgram {
	b := &BoundProgram{
		insts: p.Instructions(),
		hooks: make([]Handler, p.Len()),
	}

	var unbound [insts.NumOps]bool
	for i := range b.insts {
		op := b.insts[i].Op
		h := t.Lookup(op)
		if h == nil {
			if !unbound[op] {
				Trace("no handler bound", slog.String("op", op.String()))
				unbound[op] = true
			}
			h = nopHandler
		}
		b.hooks[i] = h
	}

	return b
}

// BoundProgram is a program whose instructions each carry a resolved
// handler.
type BoundProgram struct {
	insts []insts.Instruction
	hooks []Handler
}

// Len returns the number of instructions.
func (b *BoundProgram) Len() int {
	return len(b.insts)
}

// Instruction returns the i-th instruction.
func (b *BoundProgram) Instruction(i int) insts.Instruction {
	return b.insts[i]
}

// Run executes every handler once, in program order.
func (b *BoundProgram) Run(m *Machine) {
	for i := range b.insts {
		b.hooks[i](m, &b.insts[i])
		m.instructionCount++
	}
}
