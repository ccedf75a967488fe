package world

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/niwa/internal/grid"
)

// GenParams configures procedural room generation.
type GenParams struct {
	RockDensity float64 // Chance of a rock on grass or dirt (0-1)
	WaterLevel  float64 // Height below which tiles are water
	SandBand    float64 // Height band above the water line that is sand
	StoneLevel  float64 // Height above which tiles are stone

	NoiseAlpha   float64 // Perlin weight falloff between octaves
	NoiseBeta    float64 // Perlin frequency harmonic
	NoiseOctaves int32   // Number of Perlin octaves
	NoiseScale   float64 // Noise units per tile
}

// DefaultGenParams returns a mostly green room with a pond and a few
// outcrops.
func DefaultGenParams() GenParams {
	return GenParams{
		RockDensity:  0.06,
		WaterLevel:   0.30,
		SandBand:     0.05,
		StoneLevel:   0.78,
		NoiseAlpha:   2.0,
		NoiseBeta:    2.0,
		NoiseOctaves: 3,
		NoiseScale:   0.13,
	}
}

// moistureOffset moves the second noise sample far away from the first so
// the two fields are uncorrelated.
const moistureOffset = 517.3

// Generate builds and freezes a fully populated room. The result depends
// only on size, params and seed.
func Generate(size grid.Position, p GenParams, seed int64) *Room {
	noise := perlin.NewPerlin(p.NoiseAlpha, p.NoiseBeta, p.NoiseOctaves, seed)
	rng := NewRNG(seed)
	room := NewRoom(size)

	for pos := range size.Rect(grid.East, grid.South).All() {
		x := float64(pos.X) * p.NoiseScale
		y := float64(pos.Y) * p.NoiseScale

		height := normalize(noise.Noise2D(x, y))
		moisture := normalize(noise.Noise2D(x+moistureOffset, y+moistureOffset))

		tile := Tile{
			Material:  materialFor(height, moisture, p),
			Elevation: uint8(math.Round(height * 9)),
		}
		if tile.Material.Passable() && rng.Float() < p.RockDensity {
			tile.Prop = Rock
		}
		room.SetTile(pos, tile)
	}

	room.Freeze()
	return room
}

func materialFor(height, moisture float64, p GenParams) Material {
	switch {
	case height < p.WaterLevel:
		return Water
	case height < p.WaterLevel+p.SandBand:
		return Sand
	case height > p.StoneLevel:
		return Stone
	case moisture < 0.4:
		return Dirt
	default:
		return Grass
	}
}

// normalize maps Perlin output (roughly -1..1) into 0..1.
func normalize(n float64) float64 {
	v := (n + 1) / 2
	return math.Max(0, math.Min(1, v))
}
