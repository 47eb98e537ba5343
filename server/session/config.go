package session

import (
	"github.com/basaltmc/basalt/nbt"
	"github.com/basaltmc/basalt/protocol"
	"github.com/basaltmc/basalt/protocol/packet"
	"github.com/basaltmc/basalt/server/entity"
	"github.com/basaltmc/basalt/server/event"
	"github.com/basaltmc/basalt/server/stream"
	"github.com/go-gl/mathgl/mgl64"
)

type clientInfoHandler struct{}
type clientKnownPacksHandler struct{}
type pluginMessageConfigHandler struct{}
type acknowledgeFinishConfigHandler struct{}

func init() {
	registerHandler[packet.ClientInfoPacket](packet.Config, clientInfoHandler{})
	registerHandler[packet.ClientKnownPacksPacket](packet.Config, clientKnownPacksHandler{})
	registerHandler[packet.PluginMessagePacket](packet.Config, pluginMessageConfigHandler{})
	registerHandler[packet.AcknowledgeFinishConfigPacket](packet.Config, acknowledgeFinishConfigHandler{})
}

// Handle replies with an empty known-packs claim, then every dynamic
// registry table, then FinishConfig, per §4.5.
func (clientInfoHandler) Handle(_ any, s *Session) error {
	if err := s.Send(packet.IDKnownPacksConfig, &packet.KnownPacksPacket{}); err != nil {
		return err
	}
	for _, table := range s.backend.RegistryTables() {
		entries := make([]packet.RegistryEntry, 0, len(table.Entries))
		for _, e := range table.Entries {
			var data *nbt.Compound
			if len(e.Element) > 0 {
				var err error
				data, err = nbt.FromJSON(e.Element)
				if err != nil {
					return err
				}
			}
			entries = append(entries, packet.RegistryEntry{
				EntryID: protocol.NewIdentifier(e.ID),
				Data:    data,
			})
		}
		if err := s.Send(packet.IDRegistryData, &packet.RegistryDataPacket{
			RegistryID: protocol.NewIdentifier(table.RegistryID),
			Entries:    entries,
		}); err != nil {
			return err
		}
	}
	return s.Send(packet.IDFinishConfig, &packet.FinishConfigPacket{})
}

func (clientKnownPacksHandler) Handle(_ any, s *Session) error { return nil }

func (pluginMessageConfigHandler) Handle(_ any, s *Session) error { return nil }

// Handle finalizes the config phase: the session moves into play, a
// PlayerConfigEvent picks the joining world and spawn point, and the
// standard join sequence (Login, teleport, tab-list entry, game-event,
// center chunk) goes out before chunk streaming begins. Per §4.5/§7, a
// subscriber must leave the event Ready (world and spawn both set) or
// the connection fails with a Protocol error instead of joining with a
// guessed world.
func (acknowledgeFinishConfigHandler) Handle(_ any, s *Session) error {
	s.setState(packet.Play)

	p := s.player
	ev := &event.PlayerConfigEvent{Player: p}
	event.Fire(s.backend.Events(), ev)
	if !ev.Ready() {
		return newProtocolErr("PlayerConfigEvent subscriber left world/spawn unset for %s", p.Profile.Name)
	}

	w := ev.World
	spawn := *ev.Spawn

	p.World = w
	p.SetPosition(spawnPosition(spawn))
	s.backend.AddPlayer(p)
	w.AddEntity(p)

	dimName := protocol.NewIdentifier(w.Dimension.Name)
	if err := s.Send(packet.IDLoginPlay, &packet.LoginPlayPacket{
		EntityID:            p.ID(),
		IsHardcore:          false,
		DimensionNames:      []protocol.Identifier{dimName},
		MaxPlayers:          20,
		ViewDistance:        s.backend.ViewDistance(),
		SimulationDistance:  8,
		ReducedDebugInfo:    false,
		EnableRespawnScreen: true,
		DoLimitedCrafting:   false,
		DimensionType:       w.Dimension.TypeID,
		DimensionName:       dimName,
		HashedSeed:          0,
		GameMode:            uint8(p.GameMode),
		PreviousGameMode:    -1,
		IsDebug:             false,
		IsFlat:              false,
		PortalCooldown:      4,
		SeaLevel:            64,
		EnforcesSecureChat:  false,
	}); err != nil {
		return err
	}

	pos := p.Position()
	if err := s.Send(packet.IDSyncPlayerPosition, &packet.SyncPlayerPositionPacket{
		TeleportID: 0,
		X:          pos.Vec.X(), Y: pos.Vec.Y(), Z: pos.Vec.Z(),
		Yaw: pos.Yaw, Pitch: pos.Pitch,
	}); err != nil {
		return err
	}

	if err := s.Send(packet.IDPlayerInfoUpdate, &packet.PlayerInfoUpdatePacket{
		Players: []packet.PlayerEntry{{
			UUID:   p.Profile.UUID,
			Name:   p.Profile.Name,
			Listed: true,
		}},
	}); err != nil {
		return err
	}

	if err := s.Send(packet.IDGameEvent, &packet.GameEventPacket{Event: 13, Value: 0}); err != nil {
		return err
	}

	center := chunkPosOf(pos.Vec.X(), pos.Vec.Z())
	if err := s.Send(packet.IDSetCenterChunk, &packet.SetCenterChunkPacket{ChunkX: center.X, ChunkZ: center.Z}); err != nil {
		return err
	}

	p.Chunks.Center = center
	for cp := range stream.ViewSet(center, p.Chunks.ViewDistance) {
		p.Chunks.Enqueue(cp)
	}
	return nil
}

func spawnPosition(sp event.SpawnPosition) entity.Position {
	return entity.Position{
		Vec:   mgl64.Vec3{sp.X, sp.Y, sp.Z},
		Yaw:   sp.Yaw,
		Pitch: sp.Pitch,
	}
}
