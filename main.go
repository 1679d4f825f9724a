// Package main provides the entry point for rxprog.
// rxprog decodes RandomX-style entropy into VM programs.
//
// For the full CLI, use: go run ./cmd/rxprog
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("rxprog - RandomX program decoder")
	fmt.Println("")
	fmt.Println("Usage: rxprog <command> [options] <entropy-file>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  disasm     Print the disassembly of the program")
	fmt.Println("  mix        Compare the instruction mix with the opcode table")
	fmt.Println("  bind       Report scratchpad traffic of the program")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -f, --format     Entropy file format: auto, hex or bin")
	fmt.Println("  -p, --parallel   Decode with this many workers")
	fmt.Println("  -v, --verbose    Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rxprog' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rxprog' instead.")
	}
}
