package emu

import (
	"encoding/json"
	"fmt"
	"os"
)

// ScratchpadConfig holds the sizes of the three scratchpad tiers. The tiers
// are nested: L1 is a prefix of L2, which is a prefix of L3.
type ScratchpadConfig struct {
	// L1Size is the size of the L1 tier in bytes. Default: 16 KiB.
	L1Size uint64 `json:"l1_size"`

	// L2Size is the size of the L2 tier in bytes. Default: 256 KiB.
	L2Size uint64 `json:"l2_size"`

	// L3Size is the size of the L3 tier, and of the whole scratchpad, in
	// bytes. Default: 2 MiB.
	L3Size uint64 `json:"l3_size"`
}

// minTierSize is the smallest tier that holds more than one 8-byte word.
const minTierSize = 64

// DefaultScratchpadConfig returns the RandomX scratchpad geometry.
func DefaultScratchpadConfig() *ScratchpadConfig {
	return &ScratchpadConfig{
		L1Size: 16 * 1024,
		L2Size: 256 * 1024,
		L3Size: 2 * 1024 * 1024,
	}
}

// LoadConfig loads a ScratchpadConfig from a JSON file. Fields missing from
// the file keep their default values.
func LoadConfig(path string) (*ScratchpadConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scratchpad config file: %w", err)
	}

	config := DefaultScratchpadConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse scratchpad config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a ScratchpadConfig to a JSON file.
func (c *ScratchpadConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize scratchpad config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scratchpad config file: %w", err)
	}

	return nil
}

// Validate checks that every tier is a power of two of at least 64 bytes
// and that the tiers grow strictly.
func (c *ScratchpadConfig) Validate() error {
	sizes := []struct {
		name string
		size uint64
	}{
		{"l1_size", c.L1Size},
		{"l2_size", c.L2Size},
		{"l3_size", c.L3Size},
	}

	for _, s := range sizes {
		if s.size < minTierSize {
			return fmt.Errorf("%s must be >= %d", s.name, minTierSize)
		}
		if s.size&(s.size-1) != 0 {
			return fmt.Errorf("%s must be a power of two", s.name)
		}
	}

	if c.L1Size >= c.L2Size {
		return fmt.Errorf("l1_size must be < l2_size")
	}
	if c.L2Size >= c.L3Size {
		return fmt.Errorf("l2_size must be < l3_size")
	}

	return nil
}

// Clone returns a copy of the ScratchpadConfig.
func (c *ScratchpadConfig) Clone() *ScratchpadConfig {
	clone := *c
	return &clone
}
