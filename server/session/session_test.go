package session

import (
	"bytes"
	"testing"
	"time"

	"github.com/basaltmc/basalt/protocol/netio"
	"github.com/basaltmc/basalt/protocol/packet"
	"github.com/basaltmc/basalt/server/auth"
	"github.com/basaltmc/basalt/server/entity"
	"github.com/basaltmc/basalt/server/event"
	"github.com/basaltmc/basalt/server/player"
	"github.com/basaltmc/basalt/server/registry"
	"github.com/basaltmc/basalt/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	w            *world.World
	events       *event.Bus
	viewDistance int32
	added        []*player.Player
	removed      []*player.Player
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		w:            world.New(world.StandardDimension()),
		events:       event.NewBus(),
		viewDistance: 4,
	}
	event.Subscribe(b.events, func(ev *event.PlayerConfigEvent) {
		ev.World = b.w
		ev.Spawn = &event.SpawnPosition{Y: float64(b.w.Dimension.MinY) + 1}
	})
	return b
}

func (b *fakeBackend) KeyStore() *auth.KeyStore                    { return nil }
func (b *fakeBackend) Verifier() auth.SessionVerifier               { return nil }
func (b *fakeBackend) OnlineMode() bool                             { return false }
func (b *fakeBackend) DefaultWorld() *world.World                   { return b.w }
func (b *fakeBackend) RegistryTables() map[string]*registry.Table   { return nil }
func (b *fakeBackend) Events() *event.Bus                           { return b.events }
func (b *fakeBackend) ViewDistance() int32                          { return b.viewDistance }
func (b *fakeBackend) AddPlayer(p *player.Player)                   { b.added = append(b.added, p) }
func (b *fakeBackend) RemovePlayer(p *player.Player)                { b.removed = append(b.removed, p) }

// newTestSession builds a Session with a buffer-backed connection so
// Send calls can be inspected without a real socket.
func newTestSession(backend Backend) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	s := &Session{
		conn:    netio.NewConn(nil, &out),
		log:     logrus.StandardLogger(),
		backend: backend,
	}
	s.state.Store(int32(packet.Handshake))
	return s, &out
}

func readPackets(t *testing.T, buf *bytes.Buffer) []int32 {
	t.Helper()
	reader := netio.NewConn(bytes.NewReader(buf.Bytes()), nil)
	var ids []int32
	for {
		pk, err := reader.ReadPacket()
		if err != nil {
			break
		}
		ids = append(ids, pk.ID)
	}
	return ids
}

func TestDispatchIsScopedByState(t *testing.T) {
	backend := newFakeBackend()

	// ClientInfoPacket decodes the same way in Config and Play but
	// means different things in each: in Config it drives the
	// known-packs/registry-data/finish-config reply, in Play it's just
	// a settings update and must be a no-op.
	s, out := newTestSession(backend)
	s.setState(packet.Config)
	require.NoError(t, s.dispatch(&packet.ClientInfoPacket{}))
	require.NotEqual(t, 0, out.Len(), "config-phase ClientInfo must reply")

	s2, out2 := newTestSession(backend)
	s2.setState(packet.Play)
	require.NoError(t, s2.dispatch(&packet.ClientInfoPacket{}))
	require.Equal(t, 0, out2.Len(), "play-phase ClientInfo must be a no-op")
}

func TestAcknowledgeFinishConfigSendsJoinSequence(t *testing.T) {
	backend := newFakeBackend()
	s, out := newTestSession(backend)
	s.player = player.New(s, auth.GameProfile{Name: "tester"}, backend.ViewDistance())

	require.NoError(t, (acknowledgeFinishConfigHandler{}).Handle(nil, s))

	require.Equal(t, packet.Play, s.State())
	require.Len(t, backend.added, 1)

	ids := readPackets(t, out)
	require.Equal(t, []int32{
		packet.IDLoginPlay,
		packet.IDSyncPlayerPosition,
		packet.IDPlayerInfoUpdate,
		packet.IDGameEvent,
		packet.IDSetCenterChunk,
	}, ids)

	require.NotZero(t, s.player.Chunks.Len())
}

func TestAcknowledgeFinishConfigFailsWhenNoSubscriberSetsWorld(t *testing.T) {
	backend := &fakeBackend{
		w:            world.New(world.StandardDimension()),
		events:       event.NewBus(),
		viewDistance: 4,
	}
	s, _ := newTestSession(backend)
	s.player = player.New(s, auth.GameProfile{Name: "tester"}, backend.ViewDistance())

	err := (acknowledgeFinishConfigHandler{}).Handle(nil, s)
	require.Error(t, err)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Empty(t, backend.added, "player must not join without a world")
}

func TestMoveToCrossesChunkBoundary(t *testing.T) {
	backend := newFakeBackend()
	s, out := newTestSession(backend)
	s.player = player.New(s, auth.GameProfile{Name: "tester"}, backend.ViewDistance())
	s.player.Chunks.Center = chunkPosOf(0, 0)

	require.NoError(t, s.moveTo(entity.Position{Vec: mgl64.Vec3{20, 64, 0}}))

	ids := readPackets(t, out)
	require.Contains(t, ids, packet.IDSetCenterChunk)
}

func TestMoveToWithinSameChunkSendsNothing(t *testing.T) {
	backend := newFakeBackend()
	s, out := newTestSession(backend)
	s.player = player.New(s, auth.GameProfile{Name: "tester"}, backend.ViewDistance())
	s.player.Chunks.Center = chunkPosOf(0, 0)

	require.NoError(t, s.moveTo(entity.Position{Vec: mgl64.Vec3{1, 64, 1}}))
	require.Equal(t, 0, out.Len())
}

func TestTickSendsKeepAliveWhenOverdue(t *testing.T) {
	backend := newFakeBackend()
	s, out := newTestSession(backend)
	s.setState(packet.Play)
	s.player = player.New(s, auth.GameProfile{Name: "tester"}, backend.ViewDistance())
	s.player.MarkKeepAlive(time.Now().Add(-player.KeepAliveInterval - time.Second))

	now := time.Now()
	require.NoError(t, s.Tick(now))
	require.Equal(t, now, s.player.LastKeepAlive())

	ids := readPackets(t, out)
	require.Contains(t, ids, packet.IDKeepAlivePlayOut)
}

func TestTickSkipsKeepAliveWhenRecent(t *testing.T) {
	backend := newFakeBackend()
	s, out := newTestSession(backend)
	s.setState(packet.Play)
	s.player = player.New(s, auth.GameProfile{Name: "tester"}, backend.ViewDistance())
	s.player.MarkKeepAlive(time.Now())

	require.NoError(t, s.Tick(time.Now()))

	ids := readPackets(t, out)
	require.NotContains(t, ids, packet.IDKeepAlivePlayOut)
}

func TestDrainChunksSendsBatchWhenQueued(t *testing.T) {
	backend := newFakeBackend()
	s, out := newTestSession(backend)
	s.player = player.New(s, auth.GameProfile{Name: "tester"}, backend.ViewDistance())
	s.player.World = backend.DefaultWorld()
	s.player.Chunks.Enqueue(chunkPosOf(0, 0))

	require.NoError(t, s.DrainChunks())

	ids := readPackets(t, out)
	require.Equal(t, []int32{
		packet.IDChunkBatchStart,
		packet.IDChunkDataAndUpdateLight,
		packet.IDChunkBatchFinished,
	}, ids)
}
