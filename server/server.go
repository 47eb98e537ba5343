// Package server wires the protocol, auth, world, registry, event and
// streaming packages into a listening Minecraft-protocol server: one
// Session per accepted connection, plus the fixed-cadence tick loop
// that keeps every joined player's KeepAlive and chunk stream moving.
package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/basaltmc/basalt/server/auth"
	"github.com/basaltmc/basalt/server/event"
	"github.com/basaltmc/basalt/server/player"
	"github.com/basaltmc/basalt/server/registry"
	"github.com/basaltmc/basalt/server/session"
	"github.com/basaltmc/basalt/server/world"
	"github.com/sirupsen/logrus"
)

// Server owns the listener, the login-phase keypair, the default
// world, the loaded registry tables, the event bus and the set of
// joined players. It implements session.Backend so the session
// package never imports this one.
type Server struct {
	config Config
	log    logrus.FieldLogger

	listener net.Listener

	keyStore *auth.KeyStore
	verifier auth.SessionVerifier

	defaultWorld *world.World
	registries   map[string]*registry.Table
	events       *event.Bus

	playersMu sync.RWMutex
	players   map[int32]*player.Player

	stop chan struct{}
}

// New builds a Server from cfg: generates the Login-phase RSA
// keypair, loads the embedded registry tables, and creates an empty
// default world. It does not yet listen.
func New(cfg Config, log logrus.FieldLogger) (*Server, error) {
	ks, err := auth.NewKeyStore()
	if err != nil {
		return nil, fmt.Errorf("server: new keystore: %w", err)
	}
	tables, err := registry.Load()
	if err != nil {
		return nil, fmt.Errorf("server: load registries: %w", err)
	}
	if err := registry.Verify(tables); err != nil {
		return nil, fmt.Errorf("server: verify registries: %w", err)
	}

	srv := &Server{
		config:       cfg,
		log:          log,
		keyStore:     ks,
		verifier:     auth.NewHTTPSessionVerifier(),
		defaultWorld: world.New(world.StandardDimension()),
		registries:   tables,
		events:       event.NewBus(),
		players:      make(map[int32]*player.Player),
		stop:         make(chan struct{}),
	}

	// Baseline PlayerConfigEvent subscriber: joins land in the default
	// world at its spawn point unless a later subscriber (registered by
	// the embedder before ListenAndServe) overrides World/Spawn itself.
	// Subscribers fire in registration order, so this one always runs
	// first and only fills in what's still unset.
	event.Subscribe(srv.events, func(ev *event.PlayerConfigEvent) {
		if ev.World == nil {
			ev.World = srv.defaultWorld
		}
		if ev.Spawn == nil {
			ev.Spawn = &event.SpawnPosition{Y: float64(ev.World.Dimension.MinY) + 1}
		}
	})

	return srv, nil
}

// Events exposes the server's event bus for subscribers registered
// before ListenAndServe runs.
func (s *Server) Events() *event.Bus { return s.events }

// KeyStore satisfies session.Backend.
func (s *Server) KeyStore() *auth.KeyStore { return s.keyStore }

// Verifier satisfies session.Backend.
func (s *Server) Verifier() auth.SessionVerifier { return s.verifier }

// OnlineMode satisfies session.Backend.
func (s *Server) OnlineMode() bool { return s.config.OnlineMode }

// DefaultWorld satisfies session.Backend.
func (s *Server) DefaultWorld() *world.World { return s.defaultWorld }

// RegistryTables satisfies session.Backend.
func (s *Server) RegistryTables() map[string]*registry.Table { return s.registries }

// ViewDistance satisfies session.Backend.
func (s *Server) ViewDistance() int32 { return s.config.ViewDistance }

// AddPlayer satisfies session.Backend: registers p in the join set.
func (s *Server) AddPlayer(p *player.Player) {
	s.playersMu.Lock()
	defer s.playersMu.Unlock()
	s.players[p.ID()] = p
}

// RemovePlayer satisfies session.Backend: removes p from the join
// set and its owning world's entity set, if it had one.
func (s *Server) RemovePlayer(p *player.Player) {
	s.playersMu.Lock()
	delete(s.players, p.ID())
	s.playersMu.Unlock()

	if p.World != nil {
		p.World.RemoveEntity(p.ID())
	}
}

// ListenAndServe opens the configured TCP listener, starts the tick
// loop, and accepts connections until the listener closes or Close is
// called.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.config.Listen.Address)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.config.Listen.Address, err)
	}
	s.listener = ln
	s.log.Infof("listening on %s", s.config.Listen.Address)

	go s.runTickLoop(s.stop)

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.stop:
				return nil
			default:
				return err
			}
		}
		go session.New(conn, s, s.log).Loop()
	}
}

// Close stops the tick loop and closes the listener, interrupting any
// in-flight Accept.
func (s *Server) Close() error {
	close(s.stop)
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}
