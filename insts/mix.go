package insts

// MixStats counts how often each instruction kind occurs in a program.
type MixStats struct {
	counts [NumOps]int
	total  int
}

// Mix computes the instruction mix of p.
func Mix(p *Program) MixStats {
	var m MixStats
	for _, inst := range p.insts {
		m.counts[inst.Op]++
	}
	m.total = len(p.insts)
	return m
}

// Count returns the number of instructions of kind op.
func (m MixStats) Count(op Op) int {
	if op >= NumOps {
		return 0
	}
	return m.counts[op]
}

// Total returns the number of instructions counted.
func (m MixStats) Total() int {
	return m.total
}

// Share returns the observed fraction of instructions of kind op.
func (m MixStats) Share(op Op) float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.Count(op)) / float64(m.total)
}
