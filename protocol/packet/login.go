package packet

import (
	"github.com/basaltmc/basalt/protocol"
	"github.com/google/uuid"
)

// LoginStartPacket begins authentication with the client-declared
// username and its offline-mode UUID.
type LoginStartPacket struct {
	Name string
	UUID uuid.UUID
}

func DecodeLoginStart(b *protocol.Buffer) (*LoginStartPacket, error) {
	name, err := b.ReadString()
	if err != nil {
		return nil, err
	}
	id, err := b.ReadUUID()
	if err != nil {
		return nil, err
	}
	return &LoginStartPacket{Name: name, UUID: id}, nil
}

// EncryptionResponsePacket carries the RSA-wrapped shared secret and
// verify token.
type EncryptionResponsePacket struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func DecodeEncryptionResponse(b *protocol.Buffer) (*EncryptionResponsePacket, error) {
	secret, err := b.ReadByteArray()
	if err != nil {
		return nil, err
	}
	token, err := b.ReadByteArray()
	if err != nil {
		return nil, err
	}
	return &EncryptionResponsePacket{SharedSecret: secret, VerifyToken: token}, nil
}

// LoginAcknowledgePacket carries no fields; it moves the connection to
// the config state.
type LoginAcknowledgePacket struct{}

func DecodeLoginAcknowledge(b *protocol.Buffer) (*LoginAcknowledgePacket, error) {
	return &LoginAcknowledgePacket{}, nil
}

// SetCompressionPacket enables zlib framing above threshold bytes.
type SetCompressionPacket struct {
	Threshold int32
}

func (p *SetCompressionPacket) Encode(b *protocol.Buffer) error {
	return b.WriteVarInt(p.Threshold)
}

// EncryptionRequestPacket carries the server's RSA public key and a
// random verify token the client must echo back encrypted.
type EncryptionRequestPacket struct {
	ServerID           string
	PublicKey          []byte
	VerifyToken        []byte
	ShouldAuthenticate bool
}

func (p *EncryptionRequestPacket) Encode(b *protocol.Buffer) error {
	if err := b.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := b.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	if err := b.WriteByteArray(p.VerifyToken); err != nil {
		return err
	}
	b.WriteBool(p.ShouldAuthenticate)
	return nil
}

// Property is a signed profile property (e.g. "textures").
type Property struct {
	Name      string
	Value     string
	Signature *string
}

func (p Property) encode(b *protocol.Buffer) error {
	if err := b.WriteString(p.Name); err != nil {
		return err
	}
	if err := b.WriteString(p.Value); err != nil {
		return err
	}
	return protocol.WriteOption(b, p.Signature, func(b *protocol.Buffer, s string) error {
		return b.WriteString(s)
	})
}

// LoginSuccessPacket finalizes authentication with the game profile
// the client should adopt.
type LoginSuccessPacket struct {
	UUID       uuid.UUID
	Username   string
	Properties []Property
}

func (p *LoginSuccessPacket) Encode(b *protocol.Buffer) error {
	b.WriteUUID(p.UUID)
	if err := b.WriteString(p.Username); err != nil {
		return err
	}
	return protocol.WriteArray(b, p.Properties, func(b *protocol.Buffer, prop Property) error {
		return prop.encode(b)
	})
}

// LoginDisconnectPacket ends the connection during the login phase
// with a human-readable reason.
type LoginDisconnectPacket struct {
	Reason string
}

func (p *LoginDisconnectPacket) Encode(b *protocol.Buffer) error {
	return b.WriteString(p.Reason)
}
