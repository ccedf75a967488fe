package core

// Color is a semantic foreground colour for a screen cell. Front-ends map
// each value to a concrete terminal colour.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGrass
	ColorDirt
	ColorSand
	ColorStone
	ColorWater
	ColorRock
	ColorActor
	ColorPlant
	ColorBloom
	ColorVirgin
	ColorExhausted
	ColorComplete
	ColorTrace
	ColorHUD
	ColorDim
)
