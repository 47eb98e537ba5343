package packet

import (
	"github.com/basaltmc/basalt/nbt"
	"github.com/basaltmc/basalt/protocol"
)

// ClientInfoPacket carries client-side display settings. The server
// mostly ignores these, acknowledging with registry data.
type ClientInfoPacket struct {
	Locale              string
	ViewDistance        uint8
	ChatMode            int32
	DisplayedSkinParts  uint8
	MainHand            int32
	EnableTextFiltering bool
	AllowServerListings bool
	ParticleStatus      int32
}

func DecodeClientInfo(b *protocol.Buffer) (*ClientInfoPacket, error) {
	locale, err := b.ReadString()
	if err != nil {
		return nil, err
	}
	viewDist, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	chatMode, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	skinParts, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	mainHand, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	textFiltering, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	serverListings, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	particleStatus, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &ClientInfoPacket{
		Locale:              locale,
		ViewDistance:        viewDist,
		ChatMode:            chatMode,
		DisplayedSkinParts:  skinParts,
		MainHand:            mainHand,
		EnableTextFiltering: textFiltering,
		AllowServerListings: serverListings,
		ParticleStatus:      particleStatus,
	}, nil
}

// KnownPack names a resource pack version triple negotiated during
// config.
type KnownPack struct {
	Namespace string
	ID        string
	Version   string
}

func decodeKnownPack(b *protocol.Buffer) (KnownPack, error) {
	ns, err := b.ReadString()
	if err != nil {
		return KnownPack{}, err
	}
	id, err := b.ReadString()
	if err != nil {
		return KnownPack{}, err
	}
	ver, err := b.ReadString()
	if err != nil {
		return KnownPack{}, err
	}
	return KnownPack{Namespace: ns, ID: id, Version: ver}, nil
}

func encodeKnownPack(b *protocol.Buffer, p KnownPack) error {
	if err := b.WriteString(p.Namespace); err != nil {
		return err
	}
	if err := b.WriteString(p.ID); err != nil {
		return err
	}
	return b.WriteString(p.Version)
}

// ClientKnownPacksPacket lists resource packs the client already has.
type ClientKnownPacksPacket struct {
	KnownPacks []KnownPack
}

func DecodeClientKnownPacks(b *protocol.Buffer) (*ClientKnownPacksPacket, error) {
	packs, err := protocol.ReadArray(b, decodeKnownPack)
	if err != nil {
		return nil, err
	}
	return &ClientKnownPacksPacket{KnownPacks: packs}, nil
}

// KnownPacksPacket is the server's reply, always empty: the server
// never claims ownership of the vanilla pack.
type KnownPacksPacket struct {
	KnownPacks []KnownPack
}

func (p *KnownPacksPacket) Encode(b *protocol.Buffer) error {
	return protocol.WriteArray(b, p.KnownPacks, encodeKnownPack)
}

// PluginMessagePacket carries an arbitrary channel-addressed payload.
type PluginMessagePacket struct {
	Channel protocol.Identifier
	Data    []byte
}

func DecodePluginMessageConfig(b *protocol.Buffer) (*PluginMessagePacket, error) {
	id, err := b.ReadIdentifier()
	if err != nil {
		return nil, err
	}
	return &PluginMessagePacket{Channel: id, Data: b.ReadRemaining()}, nil
}

// AcknowledgeFinishConfigPacket carries no fields; it transitions the
// connection into the play state.
type AcknowledgeFinishConfigPacket struct{}

func DecodeAcknowledgeFinishConfig(b *protocol.Buffer) (*AcknowledgeFinishConfigPacket, error) {
	return &AcknowledgeFinishConfigPacket{}, nil
}

// RegistryEntry is one element of a RegistryDataPacket, optionally
// carrying tagged-tree data describing the element.
type RegistryEntry struct {
	EntryID protocol.Identifier
	Data    *nbt.Compound
}

func encodeRegistryEntry(b *protocol.Buffer, e RegistryEntry) error {
	if err := b.WriteIdentifier(e.EntryID); err != nil {
		return err
	}
	b.WriteBool(e.Data != nil)
	if e.Data == nil {
		return nil
	}
	return nbt.EncodeUnnamed(b, e.Data)
}

// RegistryDataPacket syncs one synced registry's full entry table.
type RegistryDataPacket struct {
	RegistryID protocol.Identifier
	Entries    []RegistryEntry
}

func (p *RegistryDataPacket) Encode(b *protocol.Buffer) error {
	if err := b.WriteIdentifier(p.RegistryID); err != nil {
		return err
	}
	return protocol.WriteArray(b, p.Entries, encodeRegistryEntry)
}

// FinishConfigPacket carries no fields; it signals the client to
// acknowledge and move to play.
type FinishConfigPacket struct{}

func (p *FinishConfigPacket) Encode(b *protocol.Buffer) error {
	return nil
}
