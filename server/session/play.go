package session

import (
	"math"
	"time"

	"github.com/basaltmc/basalt/protocol/packet"
	"github.com/basaltmc/basalt/server/entity"
	"github.com/basaltmc/basalt/server/player"
	"github.com/basaltmc/basalt/server/stream"
	"github.com/go-gl/mathgl/mgl64"
)

func init() {
	registerHandler[packet.ConfirmTeleportationPacket](packet.Play, noopHandler{})
	registerHandler[packet.ChatCommandPacket](packet.Play, noopHandler{})
	registerHandler[packet.PlayerSessionPacket](packet.Play, noopHandler{})
	registerHandler[packet.ClientTickEndPacket](packet.Play, noopHandler{})
	registerHandler[packet.ClickContainerPacket](packet.Play, noopHandler{})
	registerHandler[packet.CloseContainerPacket](packet.Play, noopHandler{})
	registerHandler[packet.PlayerActionPacket](packet.Play, noopHandler{})
	registerHandler[packet.PlayerCommandPacket](packet.Play, noopHandler{})
	registerHandler[packet.PlayerInputPacket](packet.Play, noopHandler{})
	registerHandler[packet.PlayerLoadedPacket](packet.Play, noopHandler{})
	registerHandler[packet.ChangeRecipeBookSettingsPacket](packet.Play, noopHandler{})
	registerHandler[packet.SetHeldItemPacket](packet.Play, noopHandler{})
	registerHandler[packet.SetCreativeModeSlotPacket](packet.Play, noopHandler{})
	registerHandler[packet.SwingArmPacket](packet.Play, noopHandler{})
	registerHandler[packet.UseItemOnPacket](packet.Play, noopHandler{})
	registerHandler[packet.InteractPacket](packet.Play, noopHandler{})
	registerHandler[packet.PickItemFromBlockPacket](packet.Play, noopHandler{})
	registerHandler[packet.PlayerAbilitiesPacket](packet.Play, noopHandler{})

	// ClientInfoPacket and PluginMessagePacket are also decoded in the
	// config state (config.go), where they carry join-sequence meaning;
	// in play they're just client settings / channel traffic. Dispatch is
	// keyed by state, so the config-phase handlers never see them here;
	// these play-state entries are explicit no-ops.
	registerHandler[packet.ClientInfoPacket](packet.Play, noopHandler{})
	registerHandler[packet.PluginMessagePacket](packet.Play, noopHandler{})
	registerHandler[packet.PingRequestPacket](packet.Play, noopHandler{})

	registerHandler[packet.ChunkBatchReceivedPacket](packet.Play, chunkBatchReceivedHandler{})
	registerHandler[packet.KeepAlivePacket](packet.Play, keepAliveHandler{})
	registerHandler[packet.PlayerPositionPacket](packet.Play, playerPositionHandler{})
	registerHandler[packet.PlayerPositionAndRotationPacket](packet.Play, playerPositionAndRotationHandler{})
	registerHandler[packet.PlayerRotationPacket](packet.Play, playerRotationHandler{})
	registerHandler[packet.PlayerMovementFlagsPacket](packet.Play, noopHandler{})
}

// noopHandler accepts a packet and does nothing: game-logic simulation
// (digging, crafting, combat, recipe state) is out of scope. Registering
// it only documents that the packet type is accepted on purpose: dispatch
// ignores an unregistered type the same way.
type noopHandler struct{}

func (noopHandler) Handle(_ any, _ *Session) error { return nil }

// Handle feeds the client's reported throughput back into its chunk
// queue, per §4.8's Ack step.
type chunkBatchReceivedHandler struct{}

func (chunkBatchReceivedHandler) Handle(p any, s *Session) error {
	pkt := p.(*packet.ChunkBatchReceivedPacket)
	if pl := s.player; pl != nil {
		pl.Chunks.Ack(pkt.ChunksPerTick)
	}
	return nil
}

// Handle accepts the reply to a server-initiated KeepAlive and does
// nothing with it; the tick loop (server/tick.go) decides when the next
// one is due from the time the last one was sent.
type keepAliveHandler struct{}

func (keepAliveHandler) Handle(_ any, s *Session) error {
	return nil
}

func chunkPosOf(x, z float64) stream.ChunkPos {
	return stream.ChunkPos{
		X: int32(math.Floor(x / 16)),
		Z: int32(math.Floor(z / 16)),
	}
}

// moveTo applies a new position to the session's player and, if the
// move crosses a chunk boundary, enqueues the newly visible chunks and
// sends UnloadChunk for the ones that fell out of view, per §4.8.
func (s *Session) moveTo(pos entity.Position) error {
	p := s.player
	if p == nil {
		return nil
	}
	p.SetPosition(pos)

	center := chunkPosOf(pos.Vec.X(), pos.Vec.Z())
	if center == p.Chunks.Center {
		return nil
	}
	unload := p.Chunks.SetCenter(center)
	if err := s.Send(packet.IDSetCenterChunk, &packet.SetCenterChunkPacket{ChunkX: center.X, ChunkZ: center.Z}); err != nil {
		return err
	}
	for _, c := range unload {
		if err := s.Send(packet.IDUnloadChunk, &packet.UnloadChunkPacket{ChunkX: c.X, ChunkZ: c.Z}); err != nil {
			return err
		}
	}
	return nil
}

type playerPositionHandler struct{}

func (playerPositionHandler) Handle(raw any, s *Session) error {
	p := raw.(*packet.PlayerPositionPacket)
	if s.player == nil {
		return nil
	}
	cur := s.player.Position()
	return s.moveTo(entity.Position{
		Vec:   mgl64.Vec3{p.X, p.Y, p.Z},
		Yaw:   cur.Yaw,
		Pitch: cur.Pitch,
	})
}

type playerPositionAndRotationHandler struct{}

func (playerPositionAndRotationHandler) Handle(raw any, s *Session) error {
	p := raw.(*packet.PlayerPositionAndRotationPacket)
	return s.moveTo(entity.Position{
		Vec:   mgl64.Vec3{p.X, p.Y, p.Z},
		Yaw:   p.Yaw,
		Pitch: p.Pitch,
	})
}

type playerRotationHandler struct{}

func (playerRotationHandler) Handle(raw any, s *Session) error {
	p := raw.(*packet.PlayerRotationPacket)
	if s.player == nil {
		return nil
	}
	cur := s.player.Position()
	s.player.SetPosition(entity.Position{Vec: cur.Vec, Yaw: p.Yaw, Pitch: p.Pitch})
	return nil
}

// DrainChunks sends one tick's worth of the player's queued chunks, per
// §4.8: nothing if throttled, otherwise a ChunkBatchStart, one
// ChunkDataAndUpdateLight per drained column, then
// ChunkBatchFinished(n). Called from the server tick loop.
func (s *Session) DrainChunks() error {
	p := s.player
	if p == nil {
		return nil
	}
	batch := p.Chunks.Drain()
	if batch == nil {
		return nil
	}
	if err := s.Send(packet.IDChunkBatchStart, &packet.ChunkBatchStartPacket{}); err != nil {
		return err
	}
	for _, pos := range batch.Positions {
		col := p.World.LoadOrCreate(pos.X, pos.Z)
		if err := s.Send(packet.IDChunkDataAndUpdateLight, &packet.ChunkDataAndUpdateLightPacket{Column: col}); err != nil {
			return err
		}
	}
	return s.Send(packet.IDChunkBatchFinished, &packet.ChunkBatchFinishedPacket{BatchSize: int32(len(batch.Positions))})
}

// SendKeepAlive sends a KeepAlive carrying id. It does not record the
// send time; Tick does that with player.MarkKeepAlive.
func (s *Session) SendKeepAlive(id int64) error {
	p := s.player
	if p == nil {
		return nil
	}
	return s.Send(packet.IDKeepAlivePlayOut, &packet.KeepAlivePacket{KeepAliveID: id})
}

// Tick satisfies player.Conn: it sends a KeepAlive if more than
// player.KeepAliveInterval has passed since the last one, then drains
// one tick's worth of the chunk-streaming queue, per §4.9.
func (s *Session) Tick(now time.Time) error {
	p := s.player
	if p == nil || s.State() != packet.Play {
		return nil
	}

	if now.Sub(p.LastKeepAlive()) > player.KeepAliveInterval {
		if err := s.SendKeepAlive(now.UnixMilli()); err != nil {
			return err
		}
		p.MarkKeepAlive(now)
	}

	return s.DrainChunks()
}
