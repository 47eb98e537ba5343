package world

// Dimension is immutable metadata about a world's vertical extent and
// identity, set once at world construction and never mutated after,
// matching the registry's dimension_type usage during Config.
type Dimension struct {
	Name         string
	TypeID       int32
	MinY         int32
	Height       int32
	SectionCount int
}

// StandardDimension returns the overworld-shaped dimension used when no
// other configuration is supplied: 24 sections, min_y -64, height 384.
func StandardDimension() Dimension {
	return Dimension{
		Name:         "minecraft:overworld",
		TypeID:       0,
		MinY:         -64,
		Height:       384,
		SectionCount: 24,
	}
}
