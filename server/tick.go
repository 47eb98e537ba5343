package server

import (
	"context"
	"sync"
	"time"

	"github.com/basaltmc/basalt/server/player"
	"golang.org/x/sync/semaphore"
)

// maxConcurrentTicks bounds how many players' Tick methods run at
// once, keeping the fixed-cadence loop from serializing all of them
// behind a single goroutine the way the original's sequential
// per-tick loop would.
const maxConcurrentTicks = 64

// runTickLoop drives the server's fixed 50ms cadence until stop is
// closed: every tick, every connected player's Tick runs (bounded
// fan-out), each in its own goroutine so one slow connection can't
// stall the rest.
func (s *Server) runTickLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(player.TickRate)
	defer ticker.Stop()

	sem := semaphore.NewWeighted(maxConcurrentTicks)

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			s.tickOnce(sem, now)
		}
	}
}

func (s *Server) tickOnce(sem *semaphore.Weighted, now time.Time) {
	players := s.snapshotPlayers()

	var wg sync.WaitGroup
	ctx := context.Background()
	for _, p := range players {
		if err := sem.Acquire(ctx, 1); err != nil {
			continue
		}
		wg.Add(1)
		go func(p *player.Player) {
			defer wg.Done()
			defer sem.Release(1)
			if err := p.Conn.Tick(now); err != nil {
				s.log.Debugf("player %s: tick failed: %v", p.Profile.Name, err)
				_ = p.Conn.Close("tick failed")
			}
		}(p)
	}
	wg.Wait()
}

func (s *Server) snapshotPlayers() []*player.Player {
	s.playersMu.RLock()
	defer s.playersMu.RUnlock()
	out := make([]*player.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	return out
}
