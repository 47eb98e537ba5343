package packet

import "github.com/basaltmc/basalt/protocol"

// Intent values carried by HandshakePacket.Intent.
const (
	IntentStatus   int32 = 1
	IntentLogin    int32 = 2
	IntentTransfer int32 = 3
)

// HandshakePacket opens a connection and selects the next state.
type HandshakePacket struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	Intent          int32
}

func DecodeHandshake(b *protocol.Buffer) (*HandshakePacket, error) {
	version, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	addr, err := b.ReadString()
	if err != nil {
		return nil, err
	}
	port, err := b.ReadUint16()
	if err != nil {
		return nil, err
	}
	intent, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &HandshakePacket{
		ProtocolVersion: version,
		ServerAddress:   addr,
		ServerPort:      port,
		Intent:          intent,
	}, nil
}
