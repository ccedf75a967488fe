// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Actor    YAMLPoint         `yaml:"actor"`
	Room     YAMLRoom          `yaml:"room"`
	Puzzle   YAMLPuzzle        `yaml:"puzzle"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPoint is a single coordinate.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLRoom holds the terrain as one string per row.
type YAMLRoom struct {
	Rows    []string `yaml:"rows"`
	Heights []string `yaml:"heights,omitempty"`
}

// YAMLPuzzle holds the overlay. Regions are inserted first, row by row,
// then Cells in list order, then Plants are added to existing cells.
type YAMLPuzzle struct {
	Regions []string    `yaml:"regions,omitempty"`
	Cells   []YAMLCell  `yaml:"cells,omitempty"`
	Plants  []YAMLPoint `yaml:"plants,omitempty"`
}

// YAMLCell is one explicit SetCell call.
type YAMLCell struct {
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
	Region int  `yaml:"region"`
	Plant  bool `yaml:"plant,omitempty"`
}

// Level represents a parsed level ready for use. Nothing beyond the YAML
// shape is checked here.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	ActorX   int
	ActorY   int
	Rows     []string
	Heights  []string
	Regions  []string
	Cells    []YAMLCell
	Plants   []YAMLPoint
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("yaml: level has no id")
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		ActorX:   yl.Actor.X,
		ActorY:   yl.Actor.Y,
		Rows:     yl.Room.Rows,
		Heights:  yl.Room.Heights,
		Regions:  yl.Puzzle.Regions,
		Cells:    yl.Puzzle.Cells,
		Plants:   yl.Puzzle.Plants,
		Metadata: yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
