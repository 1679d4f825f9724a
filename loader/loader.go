// Package loader reads entropy files for the program decoder.
//
// Two encodings are supported:
//   - Hex text: one 32-digit value per field, most significant digit first,
//     with blank lines and '#' comments ignored
//   - Binary: consecutive 16-byte little-endian values
package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/rxprog/entropy"
)

// Format selects how an entropy file is decoded.
type Format uint8

// Entropy file formats.
const (
	FormatAuto Format = iota // Hex if the file is plain text, binary otherwise
	FormatHex
	FormatBinary
)

// maxLineSize bounds a single line of a hex entropy file.
const maxLineSize = 64 << 20

// ErrTruncated is returned when a binary file ends in the middle of a value.
var ErrTruncated = errors.New("entropy file is truncated")

// ParseFormat maps a format name ("auto", "hex", "bin") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return FormatAuto, nil
	case "hex":
		return FormatHex, nil
	case "bin", "binary":
		return FormatBinary, nil
	default:
		return FormatAuto, fmt.Errorf("unknown entropy format %q", name)
	}
}

// Load reads every entropy value in the file at path.
func Load(path string, format Format) ([]entropy.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entropy file: %w", err)
	}

	if format == FormatAuto {
		format = detect(data)
	}

	if format == FormatHex {
		return LoadHex(bytes.NewReader(data))
	}
	return LoadBinary(bytes.NewReader(data))
}

// LoadHex reads hex-encoded entropy values.
func LoadHex(r io.Reader) ([]entropy.Value, error) {
	var values []entropy.Value

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++

		text, _, _ := strings.Cut(scanner.Text(), "#")
		for _, field := range strings.Fields(text) {
			v, err := entropy.ParseHex(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan entropy file: %w", err)
	}

	return values, nil
}

// LoadBinary reads raw 16-byte entropy values.
func LoadBinary(r io.Reader) ([]entropy.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read entropy data: %w", err)
	}

	if len(data)%entropy.Size != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(data)%entropy.Size)
	}

	return entropy.FromBytes(data)
}

// detect treats data as hex text when it holds only printable ASCII and
// whitespace.
func detect(data []byte) Format {
	for _, b := range data {
		if b == '\n' || b == '\r' || b == '\t' {
			continue
		}
		if b < 0x20 || b > 0x7E {
			return FormatBinary
		}
	}
	return FormatHex
}
