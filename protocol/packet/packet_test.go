package packet_test

import (
	"encoding/json"
	"testing"

	"github.com/basaltmc/basalt/protocol"
	"github.com/basaltmc/basalt/protocol/packet"
	"github.com/stretchr/testify/require"
)

func TestHandshakeScenario(t *testing.T) {
	in := protocol.NewBuffer(nil)
	require.NoError(t, in.WriteVarInt(773))
	require.NoError(t, in.WriteString("localhost"))
	in.WriteUint16(25565)
	require.NoError(t, in.WriteVarInt(packet.IntentStatus))

	decoded, err := packet.Decode(packet.Handshake, packet.IDHandshake, in)
	require.NoError(t, err)
	hs := decoded.(*packet.HandshakePacket)
	require.Equal(t, int32(773), hs.ProtocolVersion)
	require.Equal(t, "localhost", hs.ServerAddress)
	require.Equal(t, uint16(25565), hs.ServerPort)
	require.Equal(t, packet.IntentStatus, hs.Intent)

	statusBuf := protocol.NewBuffer(nil)
	decoded, err = packet.Decode(packet.Status, packet.IDStatusRequest, statusBuf)
	require.NoError(t, err)
	require.IsType(t, &packet.StatusRequestPacket{}, decoded)

	resp := &packet.StatusResponsePacket{
		JSONResponse: `{"version":{"name":"1.21.10","protocol":773}}`,
	}
	out := protocol.NewBuffer(nil)
	require.NoError(t, resp.Encode(out))

	outRead := protocol.NewBuffer(out.Bytes())
	jsonStr, err := outRead.ReadString()
	require.NoError(t, err)

	var parsed struct {
		Version struct {
			Protocol int `json:"protocol"`
		} `json:"version"`
	}
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &parsed))
	require.Equal(t, 773, parsed.Version.Protocol)
}

func TestPingPongRoundTrip(t *testing.T) {
	in := protocol.NewBuffer(nil)
	in.WriteInt64(123456789)

	decoded, err := packet.Decode(packet.Status, packet.IDPingRequest, in)
	require.NoError(t, err)
	ping := decoded.(*packet.PingRequestPacket)

	pong := &packet.PongResponsePacket{Timestamp: ping.Timestamp}
	out := protocol.NewBuffer(nil)
	require.NoError(t, pong.Encode(out))

	outRead := protocol.NewBuffer(out.Bytes())
	ts, err := outRead.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(123456789), ts)
}

func TestEncryptionResponseRoundTrip(t *testing.T) {
	secret := []byte{1, 2, 3, 4}
	token := []byte{9, 9, 9, 9}

	buf := protocol.NewBuffer(nil)
	require.NoError(t, buf.WriteByteArray(secret))
	require.NoError(t, buf.WriteByteArray(token))

	decoded, err := packet.Decode(packet.Login, packet.IDEncryptionResponse, buf)
	require.NoError(t, err)
	resp := decoded.(*packet.EncryptionResponsePacket)
	require.Equal(t, secret, resp.SharedSecret)
	require.Equal(t, token, resp.VerifyToken)
}

func TestUnknownPacketID(t *testing.T) {
	buf := protocol.NewBuffer(nil)
	_, err := packet.Decode(packet.Play, 0xFF, buf)
	require.Error(t, err)
	var unknown *packet.ErrUnknownPacket
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, int32(0xFF), unknown.ID)
}

func TestChunkBatchReceivedRoundTrip(t *testing.T) {
	buf := protocol.NewBuffer(nil)
	buf.WriteFloat32(4.0)

	decoded, err := packet.Decode(packet.Play, packet.IDChunkBatchReceived, buf)
	require.NoError(t, err)
	p := decoded.(*packet.ChunkBatchReceivedPacket)
	require.InDelta(t, 4.0, p.ChunksPerTick, 0.0001)
}
