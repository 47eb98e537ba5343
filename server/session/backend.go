package session

import (
	"github.com/basaltmc/basalt/server/auth"
	"github.com/basaltmc/basalt/server/event"
	"github.com/basaltmc/basalt/server/player"
	"github.com/basaltmc/basalt/server/registry"
	"github.com/basaltmc/basalt/server/world"
)

// Backend is the slice of the top-level server a Session needs. It
// exists so this package never imports the server package directly:
// server constructs Sessions, not the other way around.
type Backend interface {
	KeyStore() *auth.KeyStore
	Verifier() auth.SessionVerifier
	OnlineMode() bool
	DefaultWorld() *world.World
	RegistryTables() map[string]*registry.Table
	Events() *event.Bus
	ViewDistance() int32
	AddPlayer(p *player.Player)
	RemovePlayer(p *player.Player)
}
