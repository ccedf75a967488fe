// Package config provides YAML-based configuration loading for niwa.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/niwa/internal/game"
	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/world"
)

// Config contains all configuration for niwa.
type Config struct {
	Keys    KeysConfig    `yaml:"keys"`
	Room    RoomConfig    `yaml:"room"`
	Puzzle  PuzzleConfig  `yaml:"puzzle"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// KeysConfig binds one character to each command.
type KeysConfig struct {
	North string `yaml:"north"`
	East  string `yaml:"east"`
	South string `yaml:"south"`
	West  string `yaml:"west"`
	Cast  string `yaml:"cast"`
	Quit  string `yaml:"quit"`
}

// RoomConfig defines generated room parameters for the garden mode.
type RoomConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	RockDensity  float64 `yaml:"rock_density"`
	WaterLevel   float64 `yaml:"water_level"`
	SandBand     float64 `yaml:"sand_band"`
	StoneLevel   float64 `yaml:"stone_level"`
	NoiseAlpha   float64 `yaml:"noise_alpha"`
	NoiseBeta    float64 `yaml:"noise_beta"`
	NoiseOctaves int     `yaml:"noise_octaves"`
	NoiseScale   float64 `yaml:"noise_scale"`
}

// PuzzleConfig defines generated region parameters for the garden mode.
type PuzzleConfig struct {
	Regions     int     `yaml:"regions"`
	MinSize     int     `yaml:"min_size"`
	MaxSize     int     `yaml:"max_size"`
	PlantChance float64 `yaml:"plant_chance"`
}

// LevelsConfig points at an optional directory of extra level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // text, json or logfmt
	File       string `yaml:"file"`   // empty means stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// MetricsConfig defines the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// Validate checks values the rest of the program relies on.
func (c Config) Validate() error {
	if _, err := c.Keys.GameKeys(); err != nil {
		return err
	}
	if err := checkSide("room.width", c.Room.Width); err != nil {
		return err
	}
	if err := checkSide("room.height", c.Room.Height); err != nil {
		return err
	}
	if c.Puzzle.MinSize < 1 || c.Puzzle.MaxSize < c.Puzzle.MinSize {
		return fmt.Errorf("config: puzzle sizes %d..%d are invalid", c.Puzzle.MinSize, c.Puzzle.MaxSize)
	}
	if c.Puzzle.Regions < 0 {
		return fmt.Errorf("config: puzzle.regions must not be negative")
	}
	switch c.Log.Format {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

func checkSide(name string, v int) error {
	if v < 1 || v > 255 {
		return fmt.Errorf("config: %s must be within 1..255, got %d", name, v)
	}
	return nil
}

// GameKeys converts the bindings into game.Keys.
func (k KeysConfig) GameKeys() (game.Keys, error) {
	var out game.Keys
	for _, b := range []struct {
		name string
		s    string
		dst  *rune
	}{
		{"north", k.North, &out.North},
		{"east", k.East, &out.East},
		{"south", k.South, &out.South},
		{"west", k.West, &out.West},
		{"cast", k.Cast, &out.Cast},
		{"quit", k.Quit, &out.Quit},
	} {
		if utf8.RuneCountInString(b.s) != 1 {
			return game.Keys{}, fmt.Errorf("config: keys.%s must be a single character, got %q", b.name, b.s)
		}
		*b.dst, _ = utf8.DecodeRuneInString(b.s)
	}
	if err := out.Validate(); err != nil {
		return game.Keys{}, fmt.Errorf("config: %w", err)
	}
	return out, nil
}

// Size returns the generated room size. Call Validate first.
func (r RoomConfig) Size() grid.Position {
	return grid.Pos(uint8(r.Width), uint8(r.Height))
}

// GenParams converts the room section for world.Generate.
func (r RoomConfig) GenParams() world.GenParams {
	return world.GenParams{
		RockDensity:  r.RockDensity,
		WaterLevel:   r.WaterLevel,
		SandBand:     r.SandBand,
		StoneLevel:   r.StoneLevel,
		NoiseAlpha:   r.NoiseAlpha,
		NoiseBeta:    r.NoiseBeta,
		NoiseOctaves: int32(r.NoiseOctaves),
		NoiseScale:   r.NoiseScale,
	}
}

// RegionParams converts the puzzle section for game.GenerateRegions.
func (p PuzzleConfig) RegionParams() game.RegionParams {
	rp := game.DefaultRegionParams()
	rp.Count = p.Regions
	rp.MinSize = p.MinSize
	rp.MaxSize = p.MaxSize
	rp.PlantChance = p.PlantChance
	return rp
}
