package event

import (
	"github.com/basaltmc/basalt/server/player"
	"github.com/basaltmc/basalt/server/world"
)

// SpawnPosition is the (x,y,z,yaw,pitch) a PlayerConfigEvent subscriber
// must assign before the Config state can transition to Play.
type SpawnPosition struct {
	X, Y, Z    float64
	Yaw, Pitch float32
}

// PlayerConfigEvent fires once a connection acknowledges FinishConfig;
// a subscriber must set World and Spawn, or the connection fails with a
// Protocol error per §4.5/§7.
type PlayerConfigEvent struct {
	Player *player.Player
	World  *world.World
	Spawn  *SpawnPosition
}

// Ready reports whether a subscriber has satisfied the event's
// invariant (non-nil world and spawn position).
func (e *PlayerConfigEvent) Ready() bool {
	return e.World != nil && e.Spawn != nil
}

// ServerListPingEvent fires before the Status phase answers
// StatusRequest, letting a subscriber rewrite the response JSON or
// cancel the response entirely.
type ServerListPingEvent struct {
	CancellableBase

	RemoteAddr   string
	ResponseJSON string
}
