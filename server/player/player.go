package player

import (
	"time"

	"github.com/basaltmc/basalt/server/auth"
	"github.com/basaltmc/basalt/server/entity"
	"github.com/basaltmc/basalt/server/stream"
	"github.com/basaltmc/basalt/server/world"
)

// TickRate is the fixed tick cadence the server loop runs at, per
// §4.8/§4.9's 50ms cadence.
const TickRate = 50 * time.Millisecond

// KeepAliveInterval is how long after the last KeepAlive sent the tick
// loop sends a fresh one.
const KeepAliveInterval = 20 * time.Second

// GameMode is the player's current game mode.
type GameMode int32

const (
	Survival GameMode = iota
	Creative
	Adventure
	Spectator
)

// Conn is the connection handle a Player is bound to: the minimal
// surface the player model needs from the session layer, kept as an
// interface so this package never imports server/session (the FSM
// layer depends on player, not the reverse).
type Conn interface {
	SendPacket(id int32, payload []byte) error
	Close(reason string) error

	// Tick runs this connection's per-tick obligations: a KeepAlive if
	// overdue, and draining its chunk-streaming queue.
	Tick(now time.Time) error
}

// Player is an entity plus a connection handle, profile, owning world,
// inventory, game mode, chunk-streaming queue and last-keep-alive
// timestamp, per §3.
type Player struct {
	*entity.Entity

	Conn    Conn
	Profile auth.GameProfile

	World     *world.World
	Inventory *Inventory
	GameMode  GameMode

	Chunks *stream.Queue

	lastKeepAlive time.Time
}

// New materializes a player bound to conn, with a fresh entity
// identity, view distance driving its chunk queue. lastKeepAlive
// starts at join time so the first post-join tick doesn't mistake the
// elapsed time since the zero value for an overdue KeepAlive.
func New(conn Conn, profile auth.GameProfile, viewDistance int32) *Player {
	return &Player{
		Entity:        entity.New("minecraft:player", entity.Position{}),
		Conn:          conn,
		Profile:       profile,
		Inventory:     &Inventory{},
		Chunks:        stream.NewQueue(viewDistance),
		lastKeepAlive: time.Now(),
	}
}

// ID satisfies entity.Viewer and world.Entity.
func (p *Player) ID() int32 { return p.Entity.ID() }

// LastKeepAlive returns the timestamp of the last KeepAlive sent.
func (p *Player) LastKeepAlive() time.Time { return p.lastKeepAlive }

// MarkKeepAlive records now as the last KeepAlive timestamp.
func (p *Player) MarkKeepAlive(now time.Time) { p.lastKeepAlive = now }
