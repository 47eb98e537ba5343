package packet

import "github.com/basaltmc/basalt/protocol"

// StatusRequestPacket carries no fields; its arrival alone triggers a
// StatusResponsePacket.
type StatusRequestPacket struct{}

func DecodeStatusRequest(b *protocol.Buffer) (*StatusRequestPacket, error) {
	return &StatusRequestPacket{}, nil
}

// PingRequestPacket asks for the timestamp to be echoed back.
type PingRequestPacket struct {
	Timestamp int64
}

func DecodePingRequest(b *protocol.Buffer) (*PingRequestPacket, error) {
	ts, err := b.ReadInt64()
	if err != nil {
		return nil, err
	}
	return &PingRequestPacket{Timestamp: ts}, nil
}

// StatusResponsePacket carries the server list ping JSON body.
type StatusResponsePacket struct {
	JSONResponse string
}

func (p *StatusResponsePacket) Encode(b *protocol.Buffer) error {
	return b.WriteString(p.JSONResponse)
}

// PongResponsePacket echoes a PingRequestPacket's timestamp.
type PongResponsePacket struct {
	Timestamp int64
}

func (p *PongResponsePacket) Encode(b *protocol.Buffer) error {
	b.WriteInt64(p.Timestamp)
	return nil
}
