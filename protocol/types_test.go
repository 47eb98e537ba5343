package protocol_test

import (
	"testing"

	"github.com/basaltmc/basalt/protocol"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBlockPosRoundTrip(t *testing.T) {
	cases := []protocol.BlockPos{
		{X: -33554432, Y: -2048, Z: -33554432},
		{X: 33554431, Y: 2047, Z: 33554431},
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 3},
	}
	for _, c := range cases {
		got := protocol.UnpackBlockPos(c.Pack())
		require.Equal(t, c, got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "localhost", string(make([]byte, 1000))} {
		buf := protocol.NewBuffer(nil)
		require.NoError(t, buf.WriteString(s))
		got, err := protocol.NewBuffer(buf.Bytes()).ReadString()
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	buf := protocol.NewBuffer(nil)
	require.NoError(t, buf.WriteVarInt(2))
	buf.WriteBytes([]byte{0xff, 0xfe})
	_, err := protocol.NewBuffer(buf.Bytes()).ReadString()
	require.Error(t, err)
}

func TestIdentifierDefaultNamespace(t *testing.T) {
	id := protocol.NewIdentifier("stone")
	require.Equal(t, "minecraft", id.Namespace)
	require.Equal(t, "minecraft:stone", id.String())

	id = protocol.NewIdentifier("custom:thing")
	require.Equal(t, "custom", id.Namespace)
	require.Equal(t, "thing", id.Path)
}

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()
	buf := protocol.NewBuffer(nil)
	buf.WriteUUID(id)
	got, err := protocol.NewBuffer(buf.Bytes()).ReadUUID()
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestOptionRoundTrip(t *testing.T) {
	buf := protocol.NewBuffer(nil)
	v := int32(42)
	require.NoError(t, protocol.WriteOption(buf, &v, func(b *protocol.Buffer, x int32) error {
		b.WriteInt32(x)
		return nil
	}))
	require.NoError(t, protocol.WriteOption[int32](buf, nil, func(b *protocol.Buffer, x int32) error {
		b.WriteInt32(x)
		return nil
	}))

	rb := protocol.NewBuffer(buf.Bytes())
	got, err := protocol.ReadOption(rb, func(b *protocol.Buffer) (int32, error) { return b.ReadInt32() })
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, int32(42), *got)

	got2, err := protocol.ReadOption(rb, func(b *protocol.Buffer) (int32, error) { return b.ReadInt32() })
	require.NoError(t, err)
	require.Nil(t, got2)
}

func TestArrayRoundTrip(t *testing.T) {
	buf := protocol.NewBuffer(nil)
	vs := []int32{1, 2, 3}
	require.NoError(t, protocol.WriteArray(buf, vs, func(b *protocol.Buffer, v int32) error {
		b.WriteInt32(v)
		return nil
	}))
	got, err := protocol.ReadArray(protocol.NewBuffer(buf.Bytes()), func(b *protocol.Buffer) (int32, error) {
		return b.ReadInt32()
	})
	require.NoError(t, err)
	require.Equal(t, vs, got)
}
