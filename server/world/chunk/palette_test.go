package chunk_test

import (
	"testing"

	"github.com/basaltmc/basalt/protocol"
	"github.com/basaltmc/basalt/server/world/chunk"
	"github.com/stretchr/testify/require"
)

func TestRequiredBPE(t *testing.T) {
	cases := map[int32]uint{
		1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 10: 4, 100: 7, 500: 9, 1000: 10,
	}
	for n, want := range cases {
		require.Equal(t, want, chunk.RequiredBPE(n), "n=%d", n)
	}
}

func TestPaletteLaw(t *testing.T) {
	p := chunk.NewBlockPalette()
	p.Set(0, 0, 0, 1)
	p.Set(0, 0, 1, 2)
	require.Equal(t, int32(2), p.Count())

	p.Set(0, 0, 0, 3)
	require.Equal(t, int32(2), p.Count())

	p.Set(0, 0, 0, 0)
	require.Equal(t, int32(1), p.Count())

	var sum int32
	dense := p.Dense()
	seen := map[uint16]int32{}
	for _, v := range dense {
		seen[v]++
	}
	for _, c := range seen {
		sum += c
	}
	require.Equal(t, int32(16*16*16), sum)
}

func TestPaletteEncodingSelection(t *testing.T) {
	p := chunk.NewBlockPalette()

	enc := p.Encode()
	require.Equal(t, chunk.Single, enc.Format)
	require.Equal(t, int32(0), enc.Single)

	p.Set(0, 0, 0, 1)
	enc = p.Encode()
	require.Equal(t, chunk.Indirect, enc.Format)
	require.Equal(t, uint(4), enc.BPE) // min_bpe for blocks
	require.ElementsMatch(t, []int32{0, 1}, enc.Table)

	// Push past max_bpe (8) by introducing > 2^8 distinct values.
	for v := uint16(2); v < 300; v++ {
		x := int(v) % 16
		y := int(v/16) % 16
		z := int(v/256) % 16
		p.Set(x, y, z, v)
	}
	enc = p.Encode()
	require.Equal(t, chunk.Direct, enc.Format)
	require.Equal(t, uint(15), enc.BPE)
	require.Nil(t, enc.Table)

	// Remove all non-air blocks: must re-emit Single.
	p.Set(0, 0, 0, 0)
	for v := uint16(2); v < 300; v++ {
		p.Set(int(v)%16, int(v/16)%16, int(v/256)%16, 0)
	}
	enc = p.Encode()
	require.Equal(t, chunk.Single, enc.Format)
	require.Equal(t, int32(0), enc.Single)
}

func TestPaletteEncodeDecodeRoundTrip(t *testing.T) {
	p := chunk.NewBlockPalette()
	p.Set(1, 2, 3, 5)
	p.Set(4, 5, 6, 9)
	p.Set(7, 8, 9, 200)

	buf := protocol.NewBuffer(nil)
	require.NoError(t, p.WriteTo(buf))

	got, err := chunk.ReadInto(protocol.NewBuffer(buf.Bytes()), chunk.NewBlockPalette())
	require.NoError(t, err)
	require.Equal(t, p.Dense(), got.Dense())
}

func TestSectionRoundTrip(t *testing.T) {
	s := chunk.NewSection()
	s.Blocks.Set(0, 0, 0, 7)
	s.Biomes.Set(1, 1, 1, 2)

	buf := protocol.NewBuffer(nil)
	require.NoError(t, s.WriteTo(buf))

	got, err := chunk.ReadSection(protocol.NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, s.Blocks.Dense(), got.Blocks.Dense())
	require.Equal(t, s.Biomes.Dense(), got.Biomes.Dense())
}

func TestBlockEntityPackedXZ(t *testing.T) {
	require.Equal(t, uint8(0x00), chunk.PackBlockEntityXZ(0, 0))
	require.Equal(t, uint8(0xF0), chunk.PackBlockEntityXZ(15, 0))
	require.Equal(t, uint8(0x0F), chunk.PackBlockEntityXZ(0, 15))
}
