package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/history"
)

// Fallbacks are the "as of" values substituted when a live source fails.
type Fallbacks struct {
	BlockHeight int64          `yaml:"block_height"`
	PriceEUR    float64        `yaml:"price_eur"`
	HashRateTHs float64        `yaml:"hash_rate_ths"`
	History     []domain.Point `yaml:"history"`
}

// DefaultFallbacks returns the values observed on 2025-09-29.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		BlockHeight: 916944,
		PriceEUR:    97304,
		HashRateTHs: 6e8, // ~600 EH/s
		History:     history.FallbackSeries(),
	}
}

// LoadFallbacks reads a YAML file and overrides the fields it sets on base.
func LoadFallbacks(path string, base Fallbacks) (Fallbacks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading fallbacks file '%s': %w", path, err)
	}
	var fb Fallbacks
	if err := yaml.Unmarshal(data, &fb); err != nil {
		return base, fmt.Errorf("parsing fallbacks file '%s': %w", path, err)
	}

	if fb.BlockHeight > 0 {
		base.BlockHeight = fb.BlockHeight
	}
	if fb.PriceEUR > 0 {
		base.PriceEUR = fb.PriceEUR
	}
	if fb.HashRateTHs > 0 {
		base.HashRateTHs = fb.HashRateTHs
	}
	if len(fb.History) > 0 {
		base.History = fb.History
	}
	return base, nil
}
