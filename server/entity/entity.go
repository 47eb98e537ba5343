// Package entity implements entity identity and mutable position:
// a monotonically allocated id, a random UUID, a type tag, and a
// position with yaw normalized to (-180, 180].
package entity

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

var nextID atomic.Int32

// NextID allocates the next process-wide entity id, starting at 0.
func NextID() int32 {
	return nextID.Add(1) - 1
}

// Position is an entity's mutable transform: x/y/z plus yaw/pitch.
type Position struct {
	Vec   mgl64.Vec3
	Yaw   float32
	Pitch float32
}

// NormalizeYaw folds yaw into (-180, 180], as §3 requires.
func NormalizeYaw(yaw float32) float32 {
	for yaw <= -180 {
		yaw += 360
	}
	for yaw > 180 {
		yaw -= 360
	}
	return yaw
}

// Entity is the base identity and position shared by every simulated
// object in a world: players, mobs, and dropped items alike.
type Entity struct {
	id     int32
	uuid   uuid.UUID
	typeID string

	mu      sync.RWMutex
	pos     Position
	viewers map[int32]Viewer
}

// Viewer is a player (or other observer) watching an entity; it
// receives position and metadata updates. server/player.Player
// satisfies this.
type Viewer interface {
	ID() int32
}

// New allocates a new entity of typeID at pos, with a fresh UUID and
// the next process-wide id.
func New(typeID string, pos Position) *Entity {
	return &Entity{
		id:      NextID(),
		uuid:    uuid.New(),
		typeID:  typeID,
		pos:     pos,
		viewers: make(map[int32]Viewer),
	}
}

// ID returns the entity's allocated id.
func (e *Entity) ID() int32 { return e.id }

// UUID returns the entity's random UUID.
func (e *Entity) UUID() uuid.UUID { return e.uuid }

// TypeID returns the entity's type tag, e.g. "minecraft:player".
func (e *Entity) TypeID() string { return e.typeID }

// Position returns a copy of the entity's current transform.
func (e *Entity) Position() Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pos
}

// SetPosition replaces the entity's transform, normalizing yaw.
func (e *Entity) SetPosition(p Position) {
	p.Yaw = NormalizeYaw(p.Yaw)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pos = p
}

// Move translates the entity's position and updates yaw/pitch.
func (e *Entity) Move(delta mgl64.Vec3, yaw, pitch float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pos.Vec = e.pos.Vec.Add(delta)
	e.pos.Yaw = NormalizeYaw(yaw)
	e.pos.Pitch = pitch
}

// AddViewer registers v as a viewer of this entity.
func (e *Entity) AddViewer(v Viewer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.viewers[v.ID()] = v
}

// RemoveViewer unregisters a viewer by id.
func (e *Entity) RemoveViewer(id int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.viewers, id)
}

// Viewers returns a snapshot of the entity's current viewer set.
func (e *Entity) Viewers() []Viewer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Viewer, 0, len(e.viewers))
	for _, v := range e.viewers {
		out = append(out, v)
	}
	return out
}
