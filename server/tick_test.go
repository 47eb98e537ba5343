package server

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/basaltmc/basalt/server/auth"
	"github.com/basaltmc/basalt/server/player"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"
)

type countingConn struct {
	ticks  atomic.Int64
	fail   bool
	closed atomic.Bool
}

func (c *countingConn) SendPacket(int32, []byte) error { return nil }
func (c *countingConn) Close(string) error             { c.closed.Store(true); return nil }
func (c *countingConn) Tick(time.Time) error {
	c.ticks.Add(1)
	if c.fail {
		return require.AnError
	}
	return nil
}

func TestTickOnceTicksEveryPlayer(t *testing.T) {
	s := &Server{log: logrus.StandardLogger(), players: map[int32]*player.Player{}}

	conns := make([]*countingConn, 5)
	for i := range conns {
		conns[i] = &countingConn{}
		p := player.New(conns[i], auth.GameProfile{Name: "p"}, 8)
		s.players[p.ID()] = p
	}

	sem := semaphore.NewWeighted(maxConcurrentTicks)
	s.tickOnce(sem, time.Now())

	for _, c := range conns {
		require.EqualValues(t, 1, c.ticks.Load())
		require.False(t, c.closed.Load())
	}
}

func TestTickOnceClosesConnectionOnTickFailure(t *testing.T) {
	s := &Server{log: logrus.StandardLogger(), players: map[int32]*player.Player{}}

	conn := &countingConn{fail: true}
	p := player.New(conn, auth.GameProfile{Name: "p"}, 8)
	s.players[p.ID()] = p

	sem := semaphore.NewWeighted(maxConcurrentTicks)
	s.tickOnce(sem, time.Now())

	require.True(t, conn.closed.Load())
}

func TestSnapshotPlayersIsConcurrencySafe(t *testing.T) {
	s := &Server{players: map[int32]*player.Player{}}
	conn := &countingConn{}
	p := player.New(conn, auth.GameProfile{Name: "p"}, 8)
	s.players[p.ID()] = p

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); s.snapshotPlayers() }()
	go func() {
		defer wg.Done()
		s.playersMu.Lock()
		s.players[p.ID()+1] = p
		s.playersMu.Unlock()
	}()
	wg.Wait()

	require.Len(t, s.snapshotPlayers(), 2)
}
