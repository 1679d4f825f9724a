package insts

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/rxprog/entropy"
)

// WarmupValues is the number of leading entropy values that seed registers
// and are not decoded as instructions.
const WarmupValues = 8

// Program is an ordered, immutable sequence of decoded instructions.
type Program struct {
	insts []Instruction
}

// NewProgram decodes entropy values into a program. The first WarmupValues
// values are skipped; each remaining value yields two instructions, first
// word before second word.
func NewProgram(values []entropy.Value) *Program {
	body := programBody(values)
	p := &Program{insts: make([]Instruction, 2*len(body))}

	decodeRange(NewDecoder(), body, p.insts, 0, len(body))

	return p
}

// NewProgramParallel decodes the same program as NewProgram, splitting the
// entropy values across up to workers goroutines. A non-positive workers
// uses GOMAXPROCS. The only error is ctx's.
func NewProgramParallel(
	ctx context.Context,
	values []entropy.Value,
	workers int,
) (*Program, error) {
	body := programBody(values)
	p := &Program{insts: make([]Instruction, 2*len(body))}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(body) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(body); start += chunk {
		end := min(start+chunk, len(body))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			decodeRange(NewDecoder(), body, p.insts, start, end)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return p, nil
}

func programBody(values []entropy.Value) []entropy.Value {
	if len(values) <= WarmupValues {
		return nil
	}
	return values[WarmupValues:]
}

// decodeRange decodes body[start:end] into out[2*start:2*end].
func decodeRange(d *Decoder, body []entropy.Value, out []Instruction, start, end int) {
	for i := start; i < end; i++ {
		first, second := body[i].Words()
		out[2*i] = d.Decode(first)
		out[2*i+1] = d.Decode(second)
	}
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.insts)
}

// At returns the i-th instruction.
func (p *Program) At(i int) Instruction {
	return p.insts[i]
}

// Instructions returns a copy of the instruction sequence.
func (p *Program) Instructions() []Instruction {
	out := make([]Instruction, len(p.insts))
	copy(out, p.insts)
	return out
}

// String renders one instruction per line.
func (p *Program) String() string {
	var sb strings.Builder
	for _, inst := range p.insts {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
