package config

import (
	_ "embed"
)

//go:embed defaults/niwa.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/niwa.yaml.
func Default() Config {
	return Config{
		Keys: KeysConfig{
			North: "w",
			East:  "d",
			South: "s",
			West:  "a",
			Cast:  "c",
			Quit:  "q",
		},
		Room: RoomConfig{
			Width:        40,
			Height:       16,
			RockDensity:  0.06,
			WaterLevel:   0.30,
			SandBand:     0.05,
			StoneLevel:   0.78,
			NoiseAlpha:   2.0,
			NoiseBeta:    2.0,
			NoiseOctaves: 3,
			NoiseScale:   0.13,
		},
		Puzzle: PuzzleConfig{
			Regions:     6,
			MinSize:     2,
			MaxSize:     4,
			PlantChance: 0.2,
		},
		Storage: StorageConfig{
			Path: "~/.niwa/scores.db",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Address: ":9090",
		},
	}
}

// DefaultYAML returns the embedded default file, e.g. for "niwa config".
func DefaultYAML() []byte {
	return defaultYAML
}
