package chunk

import "github.com/basaltmc/basalt/protocol"

// Section is a fixed vertical 16x16x16 slice of a chunk column, holding
// one block palette (dim=16) and one biome palette (dim=4).
type Section struct {
	Blocks *Palette
	Biomes *Palette
}

// NewSection returns an all-air, all-plains section.
func NewSection() *Section {
	return &Section{Blocks: NewBlockPalette(), Biomes: NewBiomePalette()}
}

// NonAirCount is the wire's block-count field: dim³ minus the count at
// the air id (0).
func (s *Section) NonAirCount() int16 {
	return int16(s.Blocks.Count())
}

// WriteTo encodes the section as (block_count:i16, blocks palette,
// biomes palette), the per-section wire layout §4.7 describes.
func (s *Section) WriteTo(buf *protocol.Buffer) error {
	buf.WriteInt16(s.NonAirCount())
	if err := s.Blocks.WriteTo(buf); err != nil {
		return err
	}
	return s.Biomes.WriteTo(buf)
}

// ReadSection decodes a section written by WriteTo.
func ReadSection(buf *protocol.Buffer) (*Section, error) {
	if _, err := buf.ReadInt16(); err != nil { // block_count is redundant with the palette; skip.
		return nil, err
	}
	blocks, err := ReadInto(buf, NewBlockPalette())
	if err != nil {
		return nil, err
	}
	biomes, err := ReadInto(buf, NewBiomePalette())
	if err != nil {
		return nil, err
	}
	return &Section{Blocks: blocks, Biomes: biomes}, nil
}
