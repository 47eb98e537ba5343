package protocol_test

import (
	"testing"

	"github.com/basaltmc/basalt/protocol"
	"github.com/stretchr/testify/require"
)

func TestVarIntByteWidth(t *testing.T) {
	cases := []struct {
		v     int32
		width int
	}{
		{0, 1}, {127, 1}, {128, 2}, {16383, 2}, {16384, 3},
		{2097151, 3}, {2097152, 4}, {268435455, 4}, {268435456, 5}, {-1, 5},
	}
	for _, c := range cases {
		buf := protocol.NewBuffer(nil)
		require.NoError(t, buf.WriteVarInt(c.v))
		require.Equal(t, c.width, len(buf.Bytes()), "value %d", c.v)
		require.Equal(t, c.width, protocol.VarIntSize(c.v))
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 127, 128, 16383, 16384, 2147483647, -2147483648} {
		buf := protocol.NewBuffer(nil)
		require.NoError(t, buf.WriteVarInt(v))
		got, err := protocol.NewBuffer(buf.Bytes()).ReadVarInt()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarIntRejectsSixthByte(t *testing.T) {
	// Five continuation bytes followed by a sixth: never legal.
	raw := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, err := protocol.NewBuffer(raw).ReadVarInt()
	require.Error(t, err)
}
