package session

import (
	"bytes"

	"github.com/basaltmc/basalt/protocol/packet"
	"github.com/basaltmc/basalt/server/auth"
	"github.com/basaltmc/basalt/server/player"
	"github.com/google/uuid"
)

type loginStartHandler struct{}
type encryptionResponseHandler struct{}
type loginAcknowledgeHandler struct{}

func init() {
	registerHandler[packet.LoginStartPacket](packet.Login, loginStartHandler{})
	registerHandler[packet.EncryptionResponsePacket](packet.Login, encryptionResponseHandler{})
	registerHandler[packet.LoginAcknowledgePacket](packet.Login, loginAcknowledgeHandler{})
}

// Handle records the client-declared name/uuid, then either starts
// the RSA handshake (online mode) or finishes the login immediately
// (offline mode), as chosen by the backend's OnlineMode setting.
func (loginStartHandler) Handle(p any, s *Session) error {
	start := p.(*packet.LoginStartPacket)

	s.profile.mu.Lock()
	s.profile.name = start.Name
	s.profile.uuid = start.UUID
	s.profile.hasUUID = true
	s.profile.mu.Unlock()

	if err := s.Send(packet.IDSetCompression, &packet.SetCompressionPacket{Threshold: compressionThreshold}); err != nil {
		return err
	}
	s.conn.SetCompression(compressionThreshold)

	if !s.backend.OnlineMode() {
		return s.finishLogin(start.Name, start.UUID, nil)
	}

	tok, err := newVerifyToken()
	if err != nil {
		return err
	}
	s.verifyToken = tok

	ks := s.backend.KeyStore()
	return s.Send(packet.IDEncryptionRequest, &packet.EncryptionRequestPacket{
		ServerID:           "",
		PublicKey:          ks.PublicKeyDER,
		VerifyToken:        tok[:],
		ShouldAuthenticate: true,
	})
}

// Handle decrypts the shared secret and verify token, enables AES-128
// CFB8 framing, then exchanges the session hash for a signed profile.
func (encryptionResponseHandler) Handle(p any, s *Session) error {
	resp := p.(*packet.EncryptionResponsePacket)
	ks := s.backend.KeyStore()

	secret, err := ks.Decrypt(resp.SharedSecret)
	if err != nil {
		return err
	}
	token, err := ks.Decrypt(resp.VerifyToken)
	if err != nil {
		return err
	}
	if !bytes.Equal(token, s.verifyToken[:]) {
		return s.Close("verify token mismatch")
	}

	if err := s.conn.SetEncryption(secret); err != nil {
		return err
	}

	s.profile.mu.Lock()
	name := s.profile.name
	s.profile.mu.Unlock()

	hash := ks.DigestSecret(secret)
	profile, err := s.backend.Verifier().Verify(name, hash)
	if err != nil {
		return s.Close("session verify failed")
	}
	return s.finishLogin(profile.Name, profile.UUID, profile.Properties)
}

func (s *Session) finishLogin(name string, id uuid.UUID, props []auth.Property) error {
	var packetProps []packet.Property
	for _, prop := range props {
		packetProps = append(packetProps, packet.Property{
			Name: prop.Name, Value: prop.Value, Signature: prop.Signature,
		})
	}
	if err := s.Send(packet.IDLoginSuccess, &packet.LoginSuccessPacket{
		UUID: id, Username: name, Properties: packetProps,
	}); err != nil {
		return err
	}

	s.profile.mu.Lock()
	s.profile.name = name
	s.profile.uuid = id
	s.profile.hasUUID = true
	s.profile.mu.Unlock()
	return nil
}

// Handle moves the session into the config state and materializes the
// player entity now that the profile is final.
func (loginAcknowledgeHandler) Handle(_ any, s *Session) error {
	s.setState(packet.Config)

	s.profile.mu.Lock()
	profile := auth.GameProfile{UUID: s.profile.uuid, Name: s.profile.name}
	s.profile.mu.Unlock()

	s.player = player.New(s, profile, s.backend.ViewDistance())
	return nil
}
