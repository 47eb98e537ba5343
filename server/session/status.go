package session

import (
	"fmt"

	"github.com/basaltmc/basalt/protocol/packet"
	"github.com/basaltmc/basalt/server/event"
)

type statusRequestHandler struct{}
type pingRequestHandler struct{}

func init() {
	registerHandler[packet.StatusRequestPacket](packet.Status, statusRequestHandler{})
	registerHandler[packet.PingRequestPacket](packet.Status, pingRequestHandler{})
}

const defaultStatusJSON = `{"version":{"name":"1.21.10","protocol":773},` +
	`"players":{"max":100,"online":0,"sample":[]},` +
	`"description":{"text":"A Basalt Server"},"enforcesSecureChat":false}`

// Handle fires a cancellable ServerListPingEvent so other components
// can rewrite the response JSON, then replies with whatever survives.
func (statusRequestHandler) Handle(_ any, s *Session) error {
	ev := &event.ServerListPingEvent{
		RemoteAddr:   fmt.Sprint(s.remote),
		ResponseJSON: defaultStatusJSON,
	}
	event.Fire(s.backend.Events(), ev)
	if ev.Cancelled() {
		return s.Close("server list ping cancelled")
	}
	return s.Send(packet.IDStatusResponse, &packet.StatusResponsePacket{JSONResponse: ev.ResponseJSON})
}

// Handle echoes the ping timestamp back unmodified.
func (pingRequestHandler) Handle(p any, s *Session) error {
	req := p.(*packet.PingRequestPacket)
	return s.Send(packet.IDPongResponse, &packet.PongResponsePacket{Timestamp: req.Timestamp})
}
