// Package stream implements the windowed, rate-controlled chunk batch
// pipeline per §4.8: a FIFO queue of chunks to send, throttled by
// client-reported throughput, plus the view-diff enqueue/unload logic
// fired when a player crosses a chunk boundary.
package stream

import "math"

// ChunkPos is a chunk column coordinate.
type ChunkPos struct {
	X, Z int32
}

const (
	initialTargetCPT = 16
	minTargetCPT     = 0.01
	maxTargetCPT     = 64
	initialMaxLead   = 1
	steadyMaxLead    = 10
)

// Queue is per-player streaming state: the chunks still to send, the
// client's reported throughput, and how many batches are outstanding.
type Queue struct {
	ViewDistance int32
	Center       ChunkPos

	queue       []ChunkPos
	queued      map[ChunkPos]bool
	targetCPT   float64
	maxLead     int
	lead        int
	gotFirstAck bool
}

// NewQueue returns an empty queue with the spec's initial throughput
// and lead parameters.
func NewQueue(viewDistance int32) *Queue {
	return &Queue{
		ViewDistance: viewDistance,
		targetCPT:    initialTargetCPT,
		maxLead:      initialMaxLead,
		queued:       make(map[ChunkPos]bool),
	}
}

// Enqueue appends pos to the FIFO if it isn't already queued.
func (q *Queue) Enqueue(pos ChunkPos) {
	if q.queued[pos] {
		return
	}
	q.queued[pos] = true
	q.queue = append(q.queue, pos)
}

// Len reports the number of chunks still queued.
func (q *Queue) Len() int { return len(q.queue) }

// Batch is one tick's worth of chunk sends: drained positions, or none
// if throttled.
type Batch struct {
	Positions []ChunkPos
}

// Drain returns the next batch to send, or a nil Batch if lead >=
// max_lead (throttled). Draining increments lead.
func (q *Queue) Drain() *Batch {
	if q.lead >= q.maxLead {
		return nil
	}
	n := int(math.Floor(q.targetCPT))
	if n > len(q.queue) {
		n = len(q.queue)
	}
	if n == 0 {
		return nil
	}
	positions := make([]ChunkPos, n)
	copy(positions, q.queue[:n])
	q.queue = q.queue[n:]
	for _, p := range positions {
		delete(q.queued, p)
	}
	q.lead++
	return &Batch{Positions: positions}
}

// Ack processes a ChunkBatchReceived(chunks_per_tick) reply: clamps and
// stores the new target, decrements lead, and on the first ack ever
// bumps max_lead to its steady-state value.
func (q *Queue) Ack(chunksPerTick float32) {
	v := float64(chunksPerTick)
	if math.IsNaN(v) {
		v = minTargetCPT
	}
	q.targetCPT = clamp(v, minTargetCPT, maxTargetCPT)
	q.lead--
	if !q.gotFirstAck {
		q.gotFirstAck = true
		q.maxLead = steadyMaxLead
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TargetCPT exposes the current clamped target, mainly for tests.
func (q *Queue) TargetCPT() float64 { return q.targetCPT }

// MaxLead exposes the current max_lead, mainly for tests.
func (q *Queue) MaxLead() int { return q.maxLead }

// Lead exposes the current outstanding-batch count, mainly for tests.
func (q *Queue) Lead() int { return q.lead }

// ViewSet returns every chunk within L-infinity distance viewDistance
// of center.
func ViewSet(center ChunkPos, viewDistance int32) map[ChunkPos]bool {
	out := make(map[ChunkPos]bool)
	for dx := -viewDistance; dx <= viewDistance; dx++ {
		for dz := -viewDistance; dz <= viewDistance; dz++ {
			out[ChunkPos{X: center.X + dx, Z: center.Z + dz}] = true
		}
	}
	return out
}

// ViewDiff computes, for a move from oldCenter to newCenter, the chunks
// to load (new_view \ old_view) and unload (old_view \ new_view).
func ViewDiff(oldCenter, newCenter ChunkPos, viewDistance int32) (load, unload []ChunkPos) {
	oldView := ViewSet(oldCenter, viewDistance)
	newView := ViewSet(newCenter, viewDistance)
	for pos := range newView {
		if !oldView[pos] {
			load = append(load, pos)
		}
	}
	for pos := range oldView {
		if !newView[pos] {
			unload = append(unload, pos)
		}
	}
	return
}

// SetCenter updates the queue's center, enqueueing the view diff's load
// set and reporting its unload set for the caller to emit UnloadChunk
// packets for.
func (q *Queue) SetCenter(newCenter ChunkPos) (unload []ChunkPos) {
	old := q.Center
	q.Center = newCenter
	load, unload := ViewDiff(old, newCenter, q.ViewDistance)
	for _, pos := range load {
		q.Enqueue(pos)
	}
	return unload
}
