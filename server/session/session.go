// Package session implements the per-connection protocol state
// machine: one Session per TCP client, moving through handshake,
// status/login, config and play, dispatching each decoded packet to
// its Handler.
package session

import (
	"crypto/rand"
	"fmt"
	"net"
	"reflect"
	"sync"

	"github.com/basaltmc/basalt/protocol"
	"github.com/basaltmc/basalt/protocol/netio"
	"github.com/basaltmc/basalt/protocol/packet"
	"github.com/basaltmc/basalt/server/player"
	"github.com/df-mc/atomic"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// compressionThreshold is the payload size, in bytes, above which
// packets are zlib-framed. Below it, packets go out uncompressed even
// after SetCompression has been negotiated.
const compressionThreshold = 256

// Encodable is any outbound packet body.
type Encodable interface {
	Encode(b *protocol.Buffer) error
}

// Handler reacts to one decoded inbound packet.
type Handler interface {
	Handle(p any, s *Session) error
}

// Session is one client connection, carried through the protocol
// state machine described in §4.2.
type Session struct {
	remote  net.Addr
	netConn net.Conn
	conn    *netio.Conn

	writeMu sync.Mutex
	closed  atomic.Bool

	log     logrus.FieldLogger
	backend Backend

	state       atomic.Int32
	verifyToken [4]byte
	profile     profileState

	player *player.Player
}

type profileState struct {
	mu      sync.Mutex
	name    string
	uuid    uuid.UUID
	hasUUID bool
}

// dispatchKey distinguishes packets by state as well as Go type: a few
// wire types (ClientInfoPacket, PluginMessagePacket, PingRequestPacket)
// are shared between Config/Status and Play, and each phase handles
// them differently.
type dispatchKey struct {
	state packet.State
	typ   reflect.Type
}

var handlers = map[dispatchKey]Handler{}

// registerHandler is called from each state's init to populate the
// (state, type)-keyed dispatch table, mirroring the one-handler-per-packet-type
// shape the teacher's ItemStackRequestHandler follows.
func registerHandler[T any](state packet.State, h Handler) {
	handlers[dispatchKey{state: state, typ: reflect.TypeOf((*T)(nil))}] = h
}

// New wraps an accepted TCP connection in a fresh Session, starting in
// the handshake state.
func New(conn net.Conn, backend Backend, log logrus.FieldLogger) *Session {
	s := &Session{
		remote:  conn.RemoteAddr(),
		netConn: conn,
		conn:    netio.NewConn(conn, conn),
		log:     log,
		backend: backend,
	}
	s.state.Store(int32(packet.Handshake))
	return s
}

// State returns the session's current protocol state.
func (s *Session) State() packet.State { return packet.State(s.state.Load()) }

// setState transitions the session; per §4.2 state only ever advances
// forward.
func (s *Session) setState(next packet.State) { s.state.Store(int32(next)) }

// RemoteAddr returns the underlying connection's remote address.
func (s *Session) RemoteAddr() net.Addr { return s.remote }

// Player returns the player bound to this session, or nil before
// config has finished.
func (s *Session) Player() *player.Player { return s.player }

// Send encodes p and writes it as one framed packet under id.
func (s *Session) Send(id int32, p Encodable) error {
	buf := protocol.NewBuffer(nil)
	if err := p.Encode(buf); err != nil {
		return fmt.Errorf("session: encode 0x%02X: %w", id, err)
	}
	return s.write(id, buf.Bytes())
}

// SendPacket satisfies player.Conn: it writes a pre-encoded payload
// under id with no further framing logic beyond compression/crypto.
func (s *Session) SendPacket(id int32, payload []byte) error {
	return s.write(id, payload)
}

func (s *Session) write(id int32, payload []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed.Load() {
		return net.ErrClosed
	}
	if err := s.conn.WritePacket(id, payload); err != nil {
		s.log.Debugf("session %v: write 0x%02X failed: %v", s.remote, id, err)
		return err
	}
	return nil
}

// Close marks the session closed and disconnects the underlying
// connection; reason is logged but not sent, since the play-state
// DisconnectPacket requires a live encode path the caller should use
// instead when a graceful kick is possible.
func (s *Session) Close(reason string) error {
	if !s.closed.CAS(false, true) {
		return nil
	}
	s.log.Debugf("session %v closed: %s", s.remote, reason)
	_ = s.netConn.Close()
	if p := s.player; p != nil {
		s.backend.RemovePlayer(p)
	}
	return nil
}

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool { return s.closed.Load() }

// newVerifyToken fills a random 4-byte verify token, per §6.
func newVerifyToken() ([4]byte, error) {
	var tok [4]byte
	_, err := rand.Read(tok[:])
	return tok, err
}

// Loop reads packets until the connection closes or a handler errors.
// It runs on its own goroutine per connection, matching the teacher's
// one-reader/one-writer-mutex-per-session shape.
func (s *Session) Loop() {
	for !s.closed.Load() {
		raw, err := s.conn.ReadPacket()
		if err != nil {
			s.log.Debugf("session %v: read failed: %v", s.remote, err)
			break
		}
		buf := protocol.NewBuffer(raw.Payload)
		decoded, err := packet.Decode(s.State(), raw.ID, buf)
		if err != nil {
			s.log.Debugf("session %v: decode 0x%02X in state %d failed: %v", s.remote, raw.ID, s.State(), err)
			break
		}
		if err := s.dispatch(decoded); err != nil {
			s.log.Debugf("session %v: handle %T failed: %v", s.remote, decoded, err)
			break
		}
	}
	_ = s.Close("read loop ended")
}

func (s *Session) dispatch(p any) error {
	h, ok := handlers[dispatchKey{state: s.State(), typ: reflect.TypeOf(p)}]
	if !ok {
		return nil
	}
	return h.Handle(p, s)
}
