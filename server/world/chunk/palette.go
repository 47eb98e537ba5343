// Package chunk implements the palette and chunk-section/column storage
// engine: a 3D dense array of cell indices backed by an adaptive
// single/indirect/direct encoding, and the section/column/block-entity
// model built on top of it.
package chunk

import "github.com/basaltmc/basalt/protocol"

// Format names which of the three wire encodings a Palette currently
// derives to.
type Format int

const (
	Single Format = iota
	Indirect
	Direct
)

// Palette is a 3D dense array of dim³ unsigned cell indices plus a
// multiset of distinct values present, matching §3/§4.7 exactly: get/set
// mutate the dense array and a running per-value count; encode derives
// the wire format fresh each call rather than incrementally.
type Palette struct {
	dim       int
	minBPE    uint
	maxBPE    uint
	directBPE uint

	data  []uint16
	count map[uint16]int32
}

// NewBlockPalette returns an all-air (value 0) block palette: dim=16,
// min_bpe=4, max_bpe=8, direct_bpe=15.
func NewBlockPalette() *Palette { return newPalette(16, 4, 8, 15) }

// NewBiomePalette returns an all-plains (value 0) biome palette: dim=4,
// min_bpe=1, max_bpe=3, direct_bpe=6.
func NewBiomePalette() *Palette { return newPalette(4, 1, 3, 6) }

func newPalette(dim int, minBPE, maxBPE, directBPE uint) *Palette {
	n := dim * dim * dim
	return &Palette{
		dim: dim, minBPE: minBPE, maxBPE: maxBPE, directBPE: directBPE,
		data:  make([]uint16, n),
		count: map[uint16]int32{0: int32(n)},
	}
}

func (p *Palette) index(x, y, z int) int {
	return y*p.dim*p.dim + z*p.dim + x
}

// Get returns the cell value at (x,y,z). Panics on out-of-bounds
// coordinates, matching the original's bounds-checked panic.
func (p *Palette) Get(x, y, z int) uint16 {
	if x < 0 || y < 0 || z < 0 || x >= p.dim || y >= p.dim || z >= p.dim {
		panic("chunk: palette index out of bounds")
	}
	return p.data[p.index(x, y, z)]
}

// Set replaces the cell at (x,y,z) with value, decrementing the
// replaced value's count (removing it at zero) and incrementing value's.
func (p *Palette) Set(x, y, z int, value uint16) {
	i := p.index(x, y, z)
	original := p.data[i]

	if c, ok := p.count[original]; ok {
		if c-1 <= 0 {
			delete(p.count, original)
		} else {
			p.count[original] = c - 1
		}
	}

	p.data[i] = value
	p.count[value]++
}

// Count returns the number of non-air (value != 0) cells.
func (p *Palette) Count() int32 {
	var n int32
	for k, v := range p.count {
		if k != 0 {
			n += v
		}
	}
	return n
}

// RequiredBPE computes 0 for n<=1, else 32 - clz(n-1); it is the
// foundational law governing encoding selection.
func RequiredBPE(n int32) uint {
	if n <= 1 {
		return 0
	}
	return uint(32 - clz32(uint32(n-1)))
}

func clz32(x uint32) int {
	if x == 0 {
		return 32
	}
	n := 0
	for x&0x80000000 == 0 {
		x <<= 1
		n++
	}
	return n
}

// Encoded is the (bpe, format, palette table, packed words) result of
// deriving a palette's current wire representation.
type Encoded struct {
	BPE    uint
	Format Format
	Table  []int32 // only meaningful for Indirect
	Single int32   // only meaningful for Single
	Packed []int64
}

// Encode derives (bpe, format, packed_words) from the palette's current
// multiset, re-deriving from scratch rather than incrementally, per
// §4.7's "re-derivation happens at encode time, not per set."
func (p *Palette) Encode() Encoded {
	bpe := RequiredBPE(int32(len(p.count)))
	if bpe == 0 {
		var only uint16
		for k := range p.count {
			only = k
			break
		}
		return Encoded{BPE: 0, Format: Single, Single: int32(only)}
	}

	if bpe <= p.maxBPE {
		useBPE := bpe
		if useBPE < p.minBPE {
			useBPE = p.minBPE
		}
		table := make([]int32, 0, len(p.count))
		index := make(map[uint16]int, len(p.count))
		for k := range p.count {
			index[k] = len(table)
			table = append(table, int32(k))
		}
		packed := packWords(p.data, useBPE, func(v uint16) uint64 {
			return uint64(index[v])
		})
		return Encoded{BPE: useBPE, Format: Indirect, Table: table, Packed: packed}
	}

	useBPE := p.directBPE
	packed := packWords(p.data, useBPE, func(v uint16) uint64 { return uint64(v) })
	return Encoded{BPE: useBPE, Format: Direct, Packed: packed}
}

// packWords bit-packs each mapped entry into i64 words, never splitting
// an entry across two words: each word holds floor(64/bpe) entries, and
// the final word may be partially filled.
func packWords(data []uint16, bpe uint, mapValue func(uint16) uint64) []int64 {
	perWord := 64 / int(bpe)
	if perWord == 0 {
		perWord = 1
	}
	words := make([]int64, 0, (len(data)+perWord-1)/perWord)
	for start := 0; start < len(data); start += perWord {
		end := start + perWord
		if end > len(data) {
			end = len(data)
		}
		var word uint64
		for i, v := range data[start:end] {
			word |= mapValue(v) << (uint(i) * bpe)
		}
		words = append(words, int64(word))
	}
	return words
}

// WriteTo encodes the palette onto buf as (bpe:u8, format body, packed
// words), matching the wire layout exactly.
func (p *Palette) WriteTo(buf *protocol.Buffer) error {
	enc := p.Encode()
	buf.WriteUint8(uint8(enc.BPE))
	switch enc.Format {
	case Single:
		if err := buf.WriteVarInt(enc.Single); err != nil {
			return err
		}
	case Indirect:
		if err := protocol.WriteArray(buf, enc.Table, func(b *protocol.Buffer, v int32) error {
			return b.WriteVarInt(v)
		}); err != nil {
			return err
		}
	case Direct:
		// No palette table.
	}
	for _, w := range enc.Packed {
		buf.WriteInt64(w)
	}
	return nil
}
