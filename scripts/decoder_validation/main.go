// Validate decoder allocations - measures decode throughput and heap use
package main

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/sarchlab/rxprog/entropy"
	"github.com/sarchlab/rxprog/insts"
)

func main() {
	decoder := insts.NewDecoder()

	// Fixed words covering register, memory and control shapes
	words := []int64{
		0,                         // IADD_RS r0, r0, SHFT 0
		int64(0x1234567800040410), // IADD_M r4, L3[1332856]
		int64(0x000000640006018c), // FADD_M f1, L2[r6+100]
		int64(0x00000400300004d6), // CBRANCH r4, 1024, COND 3
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		decoder.Decode(words[i%len(words)])
	}

	// Measure allocations of the single-word path
	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000

	var sink insts.Instruction
	for i := 0; i < iterations; i++ {
		for _, w := range words {
			sink = decoder.Decode(w)
		}
	}
	_ = sink

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := iterations * len(words)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))

	// Whole-program path: one slice per program
	rng := rand.New(rand.NewPCG(1, 2))
	values := make([]entropy.Value, insts.WarmupValues+128)
	for i := range values {
		values[i] = entropy.Value{Hi: rng.Uint64(), Lo: rng.Uint64()}
	}

	runtime.ReadMemStats(&m1)
	start = time.Now()
	programs := 10000
	for i := 0; i < programs; i++ {
		insts.NewProgram(values)
	}
	elapsed = time.Since(start)
	runtime.ReadMemStats(&m2)

	fmt.Printf("\nPrograms decoded: %d (%d instructions each)\n", programs, 2*(len(values)-insts.WarmupValues))
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Allocations per program: %.1f\n", float64(m2.Mallocs-m1.Mallocs)/float64(programs))

	if allocations == 0 {
		fmt.Printf("\nSUCCESS: Zero allocations per decoded word.\n")
	} else {
		fmt.Printf("\nWARNING: Decode allocates on the heap\n")
	}
}
