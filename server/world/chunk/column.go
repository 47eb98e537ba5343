package chunk

import (
	"github.com/basaltmc/basalt/nbt"
	"github.com/basaltmc/basalt/protocol"
)

// BlockEntity is a sidecar payload attached to one block in a column:
// its packed in-chunk xz, absolute y, a VarInt type id and a
// tagged-tree payload.
type BlockEntity struct {
	PackedXZ uint8
	Y        int16
	TypeID   int32
	Data     *nbt.Compound
}

// PackBlockEntityXZ packs local (x,z) as ((x&0xF)<<4) | (z&0xF), per
// §4.7.
func PackBlockEntityXZ(x, z int) uint8 {
	return uint8((x&0x0F)<<4) | uint8(z&0x0F)
}

// WriteTo encodes the block entity as (xz:u8, y:i16, type:VarInt, nbt).
func (be *BlockEntity) WriteTo(buf *protocol.Buffer) error {
	buf.WriteUint8(be.PackedXZ)
	buf.WriteInt16(be.Y)
	if err := buf.WriteVarInt(be.TypeID); err != nil {
		return err
	}
	return nbt.EncodeUnnamed(buf, be.Data)
}

// ReadBlockEntity decodes a block entity written by WriteTo.
func ReadBlockEntity(buf *protocol.Buffer) (*BlockEntity, error) {
	xz, err := buf.ReadUint8()
	if err != nil {
		return nil, err
	}
	y, err := buf.ReadInt16()
	if err != nil {
		return nil, err
	}
	typeID, err := buf.ReadVarInt()
	if err != nil {
		return nil, err
	}
	data, err := nbt.DecodeUnnamed(buf)
	if err != nil {
		return nil, err
	}
	return &BlockEntity{PackedXZ: xz, Y: y, TypeID: typeID, Data: data}, nil
}

// Column is a chunk column identified by (cx,cz): a fixed vertical stack
// of sections plus an ordered list of block entities.
type Column struct {
	CX, CZ        int32
	Sections      []*Section
	BlockEntities []*BlockEntity
}

// NewColumn allocates a column of sectionCount all-air sections.
func NewColumn(cx, cz int32, sectionCount int) *Column {
	sections := make([]*Section, sectionCount)
	for i := range sections {
		sections[i] = NewSection()
	}
	return &Column{CX: cx, CZ: cz, Sections: sections}
}

// SectionIndex converts a world y and dimension min_y into the section
// slice index holding it.
func SectionIndex(y, minY int32) int {
	return int((y - minY) / 16)
}

// LocalIndex converts world coordinates into (lx, ly, lz) local to
// their section, per §8's "relative coords use &0x0F".
func LocalIndex(x, y, z, minY int32) (lx, ly, lz int) {
	lx = int(x) & 0x0F
	lz = int(z) & 0x0F
	ly = int((y - minY) % 16)
	if ly < 0 {
		ly += 16
	}
	return
}

// WriteTo encodes the column as (cx, cz, one section per slot, VarInt
// block-entity count, each block entity).
func (c *Column) WriteTo(buf *protocol.Buffer) error {
	buf.WriteInt32(c.CX)
	buf.WriteInt32(c.CZ)
	for _, s := range c.Sections {
		if err := s.WriteTo(buf); err != nil {
			return err
		}
	}
	return protocol.WriteArray(buf, c.BlockEntities, func(b *protocol.Buffer, be *BlockEntity) error {
		return be.WriteTo(b)
	})
}

// ReadColumn decodes a column written by WriteTo, given the fixed
// section count for the owning dimension.
func ReadColumn(buf *protocol.Buffer, sectionCount int) (*Column, error) {
	cx, err := buf.ReadInt32()
	if err != nil {
		return nil, err
	}
	cz, err := buf.ReadInt32()
	if err != nil {
		return nil, err
	}
	sections := make([]*Section, sectionCount)
	for i := range sections {
		s, err := ReadSection(buf)
		if err != nil {
			return nil, err
		}
		sections[i] = s
	}
	blockEntities, err := protocol.ReadArray(buf, ReadBlockEntity)
	if err != nil {
		return nil, err
	}
	return &Column{CX: cx, CZ: cz, Sections: sections, BlockEntities: blockEntities}, nil
}
