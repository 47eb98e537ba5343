package chunk

import "github.com/basaltmc/basalt/protocol"

// Dense returns a copy of the palette's current dim*dim*dim index array,
// used by decode paths and tests to confirm an encode/decode cycle
// reproduces it exactly.
func (p *Palette) Dense() []uint16 {
	out := make([]uint16, len(p.data))
	copy(out, p.data)
	return out
}

// ReadInto decodes a wire-format palette written by WriteTo into a
// palette shaped like shape (used only to borrow dim/min/max/direct
// bpe), returning a fresh Palette with the decoded dense array.
func ReadInto(buf *protocol.Buffer, shape *Palette) (*Palette, error) {
	bpe, err := buf.ReadUint8()
	if err != nil {
		return nil, err
	}

	dst := newPalette(shape.dim, shape.minBPE, shape.maxBPE, shape.directBPE)
	n := shape.dim * shape.dim * shape.dim

	switch {
	case bpe == 0:
		v, err := buf.ReadVarInt()
		if err != nil {
			return nil, err
		}
		dst.fill(uint16(v))
		return dst, nil
	case uint(bpe) <= shape.maxBPE:
		table, err := protocol.ReadArray(buf, func(b *protocol.Buffer) (int32, error) { return b.ReadVarInt() })
		if err != nil {
			return nil, err
		}
		words, err := readWords(buf, n, uint(bpe))
		if err != nil {
			return nil, err
		}
		unpackIndirect(dst, words, uint(bpe), table)
		return dst, nil
	default:
		words, err := readWords(buf, n, uint(bpe))
		if err != nil {
			return nil, err
		}
		unpackDirect(dst, words, uint(bpe))
		return dst, nil
	}
}

func (p *Palette) fill(value uint16) {
	for i := range p.data {
		p.data[i] = value
	}
	p.count = map[uint16]int32{value: int32(len(p.data))}
}

func readWords(buf *protocol.Buffer, n int, bpe uint) ([]int64, error) {
	perWord := 64 / int(bpe)
	if perWord == 0 {
		perWord = 1
	}
	wordCount := (n + perWord - 1) / perWord
	words := make([]int64, wordCount)
	for i := range words {
		v, err := buf.ReadInt64()
		if err != nil {
			return nil, err
		}
		words[i] = v
	}
	return words, nil
}

func unpackIndirect(dst *Palette, words []int64, bpe uint, table []int32) {
	perWord := 64 / int(bpe)
	mask := uint64(1)<<bpe - 1
	dst.count = map[uint16]int32{}
	idx := 0
	for _, w := range words {
		uw := uint64(w)
		for i := 0; i < perWord && idx < len(dst.data); i++ {
			paletteIndex := (uw >> (uint(i) * bpe)) & mask
			value := uint16(table[paletteIndex])
			dst.data[idx] = value
			dst.count[value]++
			idx++
		}
	}
}

func unpackDirect(dst *Palette, words []int64, bpe uint) {
	perWord := 64 / int(bpe)
	mask := uint64(1)<<bpe - 1
	dst.count = map[uint16]int32{}
	idx := 0
	for _, w := range words {
		uw := uint64(w)
		for i := 0; i < perWord && idx < len(dst.data); i++ {
			value := uint16((uw >> (uint(i) * bpe)) & mask)
			dst.data[idx] = value
			dst.count[value]++
			idx++
		}
	}
}
