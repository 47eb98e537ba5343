package netio_test

import (
	"bytes"
	"testing"

	"github.com/basaltmc/basalt/protocol/netio"
	"github.com/stretchr/testify/require"
)

func TestRoundTripUncompressed(t *testing.T) {
	var buf bytes.Buffer
	conn := netio.NewConn(&buf, &buf)

	require.NoError(t, conn.WritePacket(5, []byte("hello")))
	pk, err := conn.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, int32(5), pk.ID)
	require.Equal(t, []byte("hello"), pk.Payload)
}

func TestRoundTripCompressed(t *testing.T) {
	var buf bytes.Buffer
	conn := netio.NewConn(&buf, &buf)
	conn.SetCompression(4)

	small := []byte("ab")
	large := bytes.Repeat([]byte("x"), 100)

	require.NoError(t, conn.WritePacket(1, small))
	require.NoError(t, conn.WritePacket(2, large))

	pk, err := conn.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, int32(1), pk.ID)
	require.Equal(t, small, pk.Payload)

	pk, err = conn.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, int32(2), pk.ID)
	require.Equal(t, large, pk.Payload)
}

func TestRoundTripEncrypted(t *testing.T) {
	var buf bytes.Buffer
	secret := bytes.Repeat([]byte{0x42}, 16)

	writer := netio.NewConn(nil, &buf)
	require.NoError(t, writer.SetEncryption(secret))
	require.NoError(t, writer.WritePacket(9, []byte("secret payload")))

	reader := netio.NewConn(&buf, nil)
	require.NoError(t, reader.SetEncryption(secret))
	pk, err := reader.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, int32(9), pk.ID)
	require.Equal(t, []byte("secret payload"), pk.Payload)
}
