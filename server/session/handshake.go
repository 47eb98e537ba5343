package session

import (
	"github.com/basaltmc/basalt/protocol/packet"
)

type handshakeHandler struct{}

func init() {
	registerHandler[packet.HandshakePacket](packet.Handshake, handshakeHandler{})
}

// Handle transitions the session out of the handshake state per the
// client's declared intent. Transfer (intent 3) is not implemented;
// the connection is closed rather than left stuck.
func (handshakeHandler) Handle(p any, s *Session) error {
	hs := p.(*packet.HandshakePacket)
	switch hs.Intent {
	case packet.IntentStatus:
		s.setState(packet.Status)
	case packet.IntentLogin:
		s.setState(packet.Login)
	default:
		return s.Close("unsupported handshake intent")
	}
	return nil
}
