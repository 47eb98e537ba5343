// Package world implements the mapping from (cx,cz) to chunk column plus
// the per-world entity set. A short lock is held across the map access
// itself; columns carry no lock of their own, so GetBlock and SetBlock
// read and write a column's palettes without further locking.
package world

import (
	"fmt"
	"sync"

	"github.com/basaltmc/basalt/server/world/chunk"
	"github.com/brentp/intintmap"
)

// ChunkKey packs (cx,cz) into the canonical int64 index key, mirroring
// the packed chunk-key convention used across the pack's own chunk
// storage (e.g. oriumgames-pile's format.chunkKey).
func ChunkKey(cx, cz int32) int64 {
	return int64(cx)<<32 | int64(uint32(cz))
}

// World is a thread-safe container: a read-write mapping from (cx,cz) to
// chunk column, plus a list of entities. Dimension metadata is immutable
// after construction. Columns are stored in the `slots` slice; `index`
// maps a packed ChunkKey to its slot, so lookup is a single int64 probe
// rather than a map access keyed on the packed value.
type World struct {
	Dimension Dimension

	mu    sync.RWMutex
	index *intintmap.Map // ChunkKey -> slot in `slots`
	slots []*chunk.Column

	entitiesMu sync.RWMutex
	entities   map[int32]Entity
}

// Entity is the minimal shape World needs from an entity: its id, for
// the entity set. server/entity.Entity satisfies this.
type Entity interface {
	ID() int32
}

// New returns an empty world for the given dimension.
func New(dim Dimension) *World {
	return &World{
		Dimension: dim,
		index:     intintmap.New(1024, 0.75),
		entities:  make(map[int32]Entity),
	}
}

// Column returns the chunk column at (cx,cz), or nil if not loaded.
func (w *World) Column(cx, cz int32) *chunk.Column {
	w.mu.RLock()
	defer w.mu.RUnlock()
	slot, ok := w.index.Get(ChunkKey(cx, cz))
	if !ok {
		return nil
	}
	return w.slots[slot]
}

// LoadOrCreate returns the column at (cx,cz), creating an empty one (per
// the world's dimension section count) on first access.
func (w *World) LoadOrCreate(cx, cz int32) *chunk.Column {
	key := ChunkKey(cx, cz)

	w.mu.RLock()
	if slot, ok := w.index.Get(key); ok {
		c := w.slots[slot]
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if slot, ok := w.index.Get(key); ok {
		return w.slots[slot]
	}
	c := chunk.NewColumn(cx, cz, w.Dimension.SectionCount)
	w.slots = append(w.slots, c)
	w.index.Put(key, int64(len(w.slots)-1))
	return c
}

// GetBlock looks up the block at world coordinates (x,y,z). Callers
// must have loaded the owning chunk first; an unloaded chunk panics,
// matching §4.10's "get_block ... looks up or panics."
func (w *World) GetBlock(x, y, z int32) uint16 {
	cx, cz := x>>4, z>>4
	c := w.Column(cx, cz)
	if c == nil {
		panic(fmt.Sprintf("world: GetBlock on unloaded chunk (%d,%d)", cx, cz))
	}
	si := chunk.SectionIndex(y, w.Dimension.MinY)
	if si < 0 || si >= len(c.Sections) {
		panic(fmt.Sprintf("world: y=%d out of dimension bounds", y))
	}
	lx, ly, lz := chunk.LocalIndex(x, y, z, w.Dimension.MinY)
	return c.Sections[si].Blocks.Get(lx, ly, lz)
}

// SetBlock sets the block at world coordinates (x,y,z), auto-loading
// the owning chunk.
func (w *World) SetBlock(x, y, z int32, value uint16) {
	cx, cz := x>>4, z>>4
	c := w.LoadOrCreate(cx, cz)
	si := chunk.SectionIndex(y, w.Dimension.MinY)
	if si < 0 || si >= len(c.Sections) {
		panic(fmt.Sprintf("world: y=%d out of dimension bounds", y))
	}
	lx, ly, lz := chunk.LocalIndex(x, y, z, w.Dimension.MinY)
	c.Sections[si].Blocks.Set(lx, ly, lz, value)
}

// AddEntity registers e in the world's entity set.
func (w *World) AddEntity(e Entity) {
	w.entitiesMu.Lock()
	defer w.entitiesMu.Unlock()
	w.entities[e.ID()] = e
}

// RemoveEntity removes an entity by id.
func (w *World) RemoveEntity(id int32) {
	w.entitiesMu.Lock()
	defer w.entitiesMu.Unlock()
	delete(w.entities, id)
}

// Entities returns a snapshot of all entities currently in the world.
func (w *World) Entities() []Entity {
	w.entitiesMu.RLock()
	defer w.entitiesMu.RUnlock()
	out := make([]Entity, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, e)
	}
	return out
}
