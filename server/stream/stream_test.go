package stream

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkBatchingScenario(t *testing.T) {
	q := NewQueue(10)
	for i := 1; i <= 6; i++ {
		q.Enqueue(ChunkPos{X: int32(i), Z: 0})
	}
	// Scenario's exact starting state: target_cpt=2.7, lead=0, max_lead=1.
	q.targetCPT = 2.7

	batch := q.Drain()
	require.NotNil(t, batch)
	require.Len(t, batch.Positions, 2)
	require.Equal(t, 1, q.Lead())

	require.Nil(t, q.Drain())

	q.Ack(4.0)
	require.Equal(t, float64(4), q.TargetCPT())
	require.Equal(t, 10, q.MaxLead())
	require.Equal(t, 0, q.Lead())

	batch = q.Drain()
	require.NotNil(t, batch)
	require.Len(t, batch.Positions, 4)
}

func TestAckClampsAndHandlesNaN(t *testing.T) {
	q := NewQueue(10)
	q.Ack(1000)
	require.Equal(t, float64(64), q.TargetCPT())

	q2 := NewQueue(10)
	q2.Ack(float32(math.NaN()))
	require.Equal(t, 0.01, q2.TargetCPT())
}

func TestViewDiffScenario(t *testing.T) {
	load, unload := ViewDiff(ChunkPos{X: 0, Z: 0}, ChunkPos{X: 1, Z: 0}, 2)

	wantLoad := map[ChunkPos]bool{}
	for z := int32(-2); z <= 2; z++ {
		wantLoad[ChunkPos{X: 3, Z: z}] = true
	}
	require.Equal(t, len(wantLoad), len(load))
	for _, p := range load {
		require.True(t, wantLoad[p], "unexpected load %v", p)
	}

	wantUnload := map[ChunkPos]bool{}
	for z := int32(-2); z <= 2; z++ {
		wantUnload[ChunkPos{X: -2, Z: z}] = true
	}
	require.Equal(t, len(wantUnload), len(unload))
	for _, p := range unload {
		require.True(t, wantUnload[p], "unexpected unload %v", p)
	}
}
