package packet

import (
	"github.com/basaltmc/basalt/nbt"
	"github.com/basaltmc/basalt/protocol"
	"github.com/basaltmc/basalt/server/world/chunk"
	"github.com/google/uuid"
)

// ConfirmTeleportationPacket acknowledges a SyncPlayerPositionPacket by
// its teleport id.
type ConfirmTeleportationPacket struct {
	TeleportID int32
}

func DecodeConfirmTeleportation(b *protocol.Buffer) (*ConfirmTeleportationPacket, error) {
	id, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &ConfirmTeleportationPacket{TeleportID: id}, nil
}

// ChatCommandPacket carries a command line without its leading slash.
type ChatCommandPacket struct {
	Command string
}

func DecodeChatCommand(b *protocol.Buffer) (*ChatCommandPacket, error) {
	cmd, err := b.ReadString()
	if err != nil {
		return nil, err
	}
	return &ChatCommandPacket{Command: cmd}, nil
}

// PlayerSessionPacket establishes the client's chat-signing session
// key. The server does not enforce chat signatures; the packet is
// decoded and then ignored, so the key is not stored.
type PlayerSessionPacket struct {
	SessionID    uuid.UUID
	ExpiresAt    int64
	PublicKey    []byte
	KeySignature []byte
}

func DecodePlayerSession(b *protocol.Buffer) (*PlayerSessionPacket, error) {
	id, err := b.ReadUUID()
	if err != nil {
		return nil, err
	}
	expires, err := b.ReadInt64()
	if err != nil {
		return nil, err
	}
	key, err := protocol.ReadArray(b, (*protocol.Buffer).ReadUint8)
	if err != nil {
		return nil, err
	}
	sig, err := protocol.ReadArray(b, (*protocol.Buffer).ReadUint8)
	if err != nil {
		return nil, err
	}
	return &PlayerSessionPacket{
		SessionID:    id,
		ExpiresAt:    expires,
		PublicKey:    key,
		KeySignature: sig,
	}, nil
}

// ChunkBatchReceivedPacket is the client's feedback on how many chunks
// per tick it can comfortably absorb, driving the streaming queue's
// throttle.
type ChunkBatchReceivedPacket struct {
	ChunksPerTick float32
}

func DecodeChunkBatchReceived(b *protocol.Buffer) (*ChunkBatchReceivedPacket, error) {
	cpt, err := b.ReadFloat32()
	if err != nil {
		return nil, err
	}
	return &ChunkBatchReceivedPacket{ChunksPerTick: cpt}, nil
}

// ClientTickEndPacket carries no fields; it marks the end of the
// client's input processing for one tick.
type ClientTickEndPacket struct{}

func DecodeClientTickEnd(b *protocol.Buffer) (*ClientTickEndPacket, error) {
	return &ClientTickEndPacket{}, nil
}

// HashedSlot is the click-container wire shape for a single slot: a
// presence flag and, when present, only the item's numeric id (the
// components hash itself is not validated by this server).
type HashedSlot struct {
	HasItem bool
	ItemID  *int32
}

func decodeHashedSlot(b *protocol.Buffer) (HashedSlot, error) {
	has, err := b.ReadBool()
	if err != nil {
		return HashedSlot{}, err
	}
	if !has {
		return HashedSlot{}, nil
	}
	id, err := b.ReadVarInt()
	if err != nil {
		return HashedSlot{}, err
	}
	return HashedSlot{HasItem: true, ItemID: &id}, nil
}

// ChangedSlot pairs a container slot index with its new hashed
// contents.
type ChangedSlot struct {
	SlotNumber int16
	SlotData   HashedSlot
}

func decodeChangedSlot(b *protocol.Buffer) (ChangedSlot, error) {
	n, err := b.ReadInt16()
	if err != nil {
		return ChangedSlot{}, err
	}
	data, err := decodeHashedSlot(b)
	if err != nil {
		return ChangedSlot{}, err
	}
	return ChangedSlot{SlotNumber: n, SlotData: data}, nil
}

// ClickContainerPacket describes one inventory click, including every
// slot the client believes changed as a result.
type ClickContainerPacket struct {
	WindowID     int32
	StateID      int32
	Slot         int16
	Button       int8
	Mode         int32
	ChangedSlots []ChangedSlot
	CarriedItem  HashedSlot
}

func DecodeClickContainer(b *protocol.Buffer) (*ClickContainerPacket, error) {
	windowID, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	stateID, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	slot, err := b.ReadInt16()
	if err != nil {
		return nil, err
	}
	button, err := b.ReadInt8()
	if err != nil {
		return nil, err
	}
	mode, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	changed, err := protocol.ReadArray(b, decodeChangedSlot)
	if err != nil {
		return nil, err
	}
	carried, err := decodeHashedSlot(b)
	if err != nil {
		return nil, err
	}
	return &ClickContainerPacket{
		WindowID:     windowID,
		StateID:      stateID,
		Slot:         slot,
		Button:       button,
		Mode:         mode,
		ChangedSlots: changed,
		CarriedItem:  carried,
	}, nil
}

// CloseContainerPacket reports the client closing a window.
type CloseContainerPacket struct {
	WindowID int32
}

func DecodeCloseContainer(b *protocol.Buffer) (*CloseContainerPacket, error) {
	id, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &CloseContainerPacket{WindowID: id}, nil
}

func DecodePluginMessagePlay(b *protocol.Buffer) (*PluginMessagePacket, error) {
	return DecodePluginMessageConfig(b)
}

// KeepAlivePacket is used in both directions: clientbound it carries a
// fresh id to echo, serverbound it carries the id the client received.
type KeepAlivePacket struct {
	KeepAliveID int64
}

func DecodeKeepAlive(b *protocol.Buffer) (*KeepAlivePacket, error) {
	id, err := b.ReadInt64()
	if err != nil {
		return nil, err
	}
	return &KeepAlivePacket{KeepAliveID: id}, nil
}

func (p *KeepAlivePacket) Encode(b *protocol.Buffer) error {
	b.WriteInt64(p.KeepAliveID)
	return nil
}

// PlayerDiggingState enumerates PlayerActionPacket.Status.
type PlayerDiggingState int32

const (
	DiggingStart PlayerDiggingState = iota
	DiggingCancelled
	DiggingFinished
	DiggingDropItemStack
	DiggingDropItem
	DiggingItemUpdated
	DiggingSwapItemInHand
)

// PlayerActionPacket reports a digging-related action against a
// specific block face.
type PlayerActionPacket struct {
	Status   PlayerDiggingState
	Position protocol.BlockPos
	Face     uint8
	Sequence int32
}

func DecodePlayerAction(b *protocol.Buffer) (*PlayerActionPacket, error) {
	status, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	pos, err := b.ReadBlockPos()
	if err != nil {
		return nil, err
	}
	face, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	seq, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &PlayerActionPacket{
		Status:   PlayerDiggingState(status),
		Position: pos,
		Face:     face,
		Sequence: seq,
	}, nil
}

// PlayerCommandPacket reports an entity-action state change such as
// starting to sprint or sneak.
type PlayerCommandPacket struct {
	EntityID   int32
	ActionID   int32
	JumpBoost  int32
}

func DecodePlayerCommand(b *protocol.Buffer) (*PlayerCommandPacket, error) {
	entityID, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	actionID, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	jumpBoost, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &PlayerCommandPacket{EntityID: entityID, ActionID: actionID, JumpBoost: jumpBoost}, nil
}

// PlayerInputPacket carries the raw movement-input bitmask.
type PlayerInputPacket struct {
	Flags uint8
}

func DecodePlayerInput(b *protocol.Buffer) (*PlayerInputPacket, error) {
	flags, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	return &PlayerInputPacket{Flags: flags}, nil
}

// PlayerLoadedPacket carries no fields; the client sends it once its
// chunk-render queue has drained.
type PlayerLoadedPacket struct{}

func DecodePlayerLoaded(b *protocol.Buffer) (*PlayerLoadedPacket, error) {
	return &PlayerLoadedPacket{}, nil
}

// ChangeRecipeBookSettingsPacket toggles a recipe book's open/filter
// state.
type ChangeRecipeBookSettingsPacket struct {
	BookID        int32
	BookOpen      bool
	FilterActive  bool
}

func DecodeChangeRecipeBookSettings(b *protocol.Buffer) (*ChangeRecipeBookSettingsPacket, error) {
	bookID, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	open, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	filter, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	return &ChangeRecipeBookSettingsPacket{BookID: bookID, BookOpen: open, FilterActive: filter}, nil
}

// SetHeldItemPacket reports the client's new hotbar selection.
type SetHeldItemPacket struct {
	Slot int16
}

func DecodeSetHeldItem(b *protocol.Buffer) (*SetHeldItemPacket, error) {
	slot, err := b.ReadInt16()
	if err != nil {
		return nil, err
	}
	return &SetHeldItemPacket{Slot: slot}, nil
}

// SetCreativeModeSlotPacket sets one inventory slot directly; only
// valid in creative mode.
type SetCreativeModeSlotPacket struct {
	Slot        int16
	HasItem     bool
	ItemID      int32
	ItemCount   int32
}

func DecodeSetCreativeModeSlot(b *protocol.Buffer) (*SetCreativeModeSlotPacket, error) {
	slot, err := b.ReadInt16()
	if err != nil {
		return nil, err
	}
	hasItem, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	p := &SetCreativeModeSlotPacket{Slot: slot, HasItem: hasItem}
	if !hasItem {
		return p, nil
	}
	itemID, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	count, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	p.ItemID = itemID
	p.ItemCount = count
	return p, nil
}

// SwingArmPacket reports an arm-swing animation, main or off hand.
type SwingArmPacket struct {
	Hand int32
}

func DecodeSwingArm(b *protocol.Buffer) (*SwingArmPacket, error) {
	hand, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &SwingArmPacket{Hand: hand}, nil
}

// UseItemOnPacket reports a right-click against a specific block face.
type UseItemOnPacket struct {
	Hand            int32
	Position        protocol.BlockPos
	Face            int32
	CursorX         float32
	CursorY         float32
	CursorZ         float32
	InsideBlock     bool
	WorldBorderHit  bool
	Sequence        int32
}

func DecodeUseItemOn(b *protocol.Buffer) (*UseItemOnPacket, error) {
	hand, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	pos, err := b.ReadBlockPos()
	if err != nil {
		return nil, err
	}
	face, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	cx, err := b.ReadFloat32()
	if err != nil {
		return nil, err
	}
	cy, err := b.ReadFloat32()
	if err != nil {
		return nil, err
	}
	cz, err := b.ReadFloat32()
	if err != nil {
		return nil, err
	}
	inside, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	border, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	seq, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &UseItemOnPacket{
		Hand: hand, Position: pos, Face: face,
		CursorX: cx, CursorY: cy, CursorZ: cz,
		InsideBlock: inside, WorldBorderHit: border, Sequence: seq,
	}, nil
}

// InteractType enumerates InteractPacket.Type.
type InteractType int32

const (
	InteractWithEntity InteractType = iota
	InteractAttack
	InteractAt
)

// InteractPacket reports an interaction with another entity, with a
// precise hit location only when the type is InteractAt.
type InteractPacket struct {
	EntityID         int32
	Type             InteractType
	TargetX          *float32
	TargetY          *float32
	TargetZ          *float32
	Hand             *int32
	SneakKeyPressed  bool
}

func DecodeInteract(b *protocol.Buffer) (*InteractPacket, error) {
	entityID, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	kind, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	it := InteractType(kind)

	var tx, ty, tz *float32
	if it == InteractAt {
		x, err := b.ReadFloat32()
		if err != nil {
			return nil, err
		}
		y, err := b.ReadFloat32()
		if err != nil {
			return nil, err
		}
		z, err := b.ReadFloat32()
		if err != nil {
			return nil, err
		}
		tx, ty, tz = &x, &y, &z
	}

	var hand *int32
	if it == InteractAt || it == InteractAttack {
		h, err := b.ReadVarInt()
		if err != nil {
			return nil, err
		}
		hand = &h
	}

	sneak, err := b.ReadBool()
	if err != nil {
		return nil, err
	}

	return &InteractPacket{
		EntityID:        entityID,
		Type:            it,
		TargetX:         tx,
		TargetY:         ty,
		TargetZ:         tz,
		Hand:            hand,
		SneakKeyPressed: sneak,
	}, nil
}

// PickItemFromBlockPacket requests the held item be set to match the
// block at the given packed position.
type PickItemFromBlockPacket struct {
	Position    int64
	IncludeData bool
}

func DecodePickItemFromBlock(b *protocol.Buffer) (*PickItemFromBlockPacket, error) {
	pos, err := b.ReadInt64()
	if err != nil {
		return nil, err
	}
	include, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	return &PickItemFromBlockPacket{Position: pos, IncludeData: include}, nil
}

// PlayerAbilitiesPacket reports the client's flight-toggle request.
type PlayerAbilitiesPacket struct {
	Flags int8
}

func DecodePlayerAbilities(b *protocol.Buffer) (*PlayerAbilitiesPacket, error) {
	flags, err := b.ReadInt8()
	if err != nil {
		return nil, err
	}
	return &PlayerAbilitiesPacket{Flags: flags}, nil
}

// PlayerPositionPacket reports movement with no rotation change.
type PlayerPositionPacket struct {
	X, Y, Z  float64
	Flags    uint8
}

func DecodePlayerPosition(b *protocol.Buffer) (*PlayerPositionPacket, error) {
	x, err := b.ReadFloat64()
	if err != nil {
		return nil, err
	}
	y, err := b.ReadFloat64()
	if err != nil {
		return nil, err
	}
	z, err := b.ReadFloat64()
	if err != nil {
		return nil, err
	}
	flags, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	return &PlayerPositionPacket{X: x, Y: y, Z: z, Flags: flags}, nil
}

// PlayerPositionAndRotationPacket reports movement with a rotation
// change.
type PlayerPositionAndRotationPacket struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      uint8
}

func DecodePlayerPositionAndRotation(b *protocol.Buffer) (*PlayerPositionAndRotationPacket, error) {
	x, err := b.ReadFloat64()
	if err != nil {
		return nil, err
	}
	y, err := b.ReadFloat64()
	if err != nil {
		return nil, err
	}
	z, err := b.ReadFloat64()
	if err != nil {
		return nil, err
	}
	yaw, err := b.ReadFloat32()
	if err != nil {
		return nil, err
	}
	pitch, err := b.ReadFloat32()
	if err != nil {
		return nil, err
	}
	flags, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	return &PlayerPositionAndRotationPacket{X: x, Y: y, Z: z, Yaw: yaw, Pitch: pitch, Flags: flags}, nil
}

// PlayerRotationPacket reports a look-direction-only change.
type PlayerRotationPacket struct {
	Yaw, Pitch float32
	Flags      uint8
}

func DecodePlayerRotation(b *protocol.Buffer) (*PlayerRotationPacket, error) {
	yaw, err := b.ReadFloat32()
	if err != nil {
		return nil, err
	}
	pitch, err := b.ReadFloat32()
	if err != nil {
		return nil, err
	}
	flags, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	return &PlayerRotationPacket{Yaw: yaw, Pitch: pitch, Flags: flags}, nil
}

// PlayerMovementFlagsPacket reports on-ground/against-wall state with
// no position change.
type PlayerMovementFlagsPacket struct {
	Flags uint8
}

func DecodePlayerMovementFlags(b *protocol.Buffer) (*PlayerMovementFlagsPacket, error) {
	flags, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	return &PlayerMovementFlagsPacket{Flags: flags}, nil
}

// ---- clientbound play packets ----

// DeathLocation names where the SyncPlayerPositionPacket's death-point
// marker points, if any.
type DeathLocation struct {
	DimensionName string
	Location      protocol.BlockPos
}

func encodeDeathLocation(b *protocol.Buffer, d DeathLocation) error {
	if err := b.WriteString(d.DimensionName); err != nil {
		return err
	}
	b.WriteBlockPos(d.Location)
	return nil
}

// LoginPlayPacket is the first play-state packet, establishing the
// joining player's world and entity id.
type LoginPlayPacket struct {
	EntityID             int32
	IsHardcore           bool
	DimensionNames       []protocol.Identifier
	MaxPlayers           int32
	ViewDistance         int32
	SimulationDistance   int32
	ReducedDebugInfo     bool
	EnableRespawnScreen  bool
	DoLimitedCrafting    bool
	DimensionType        int32
	DimensionName        protocol.Identifier
	HashedSeed           int64
	GameMode             uint8
	PreviousGameMode     int8
	IsDebug              bool
	IsFlat               bool
	DeathLocation        *DeathLocation
	PortalCooldown       int32
	SeaLevel             int32
	EnforcesSecureChat   bool
}

func (p *LoginPlayPacket) Encode(b *protocol.Buffer) error {
	b.WriteInt32(p.EntityID)
	b.WriteBool(p.IsHardcore)
	if err := protocol.WriteArray(b, p.DimensionNames, func(b *protocol.Buffer, id protocol.Identifier) error {
		return b.WriteIdentifier(id)
	}); err != nil {
		return err
	}
	if err := b.WriteVarInt(p.MaxPlayers); err != nil {
		return err
	}
	if err := b.WriteVarInt(p.ViewDistance); err != nil {
		return err
	}
	if err := b.WriteVarInt(p.SimulationDistance); err != nil {
		return err
	}
	b.WriteBool(p.ReducedDebugInfo)
	b.WriteBool(p.EnableRespawnScreen)
	b.WriteBool(p.DoLimitedCrafting)
	if err := b.WriteVarInt(p.DimensionType); err != nil {
		return err
	}
	if err := b.WriteIdentifier(p.DimensionName); err != nil {
		return err
	}
	b.WriteInt64(p.HashedSeed)
	b.WriteUint8(p.GameMode)
	b.WriteInt8(p.PreviousGameMode)
	b.WriteBool(p.IsDebug)
	b.WriteBool(p.IsFlat)
	if err := protocol.WriteOption(b, p.DeathLocation, encodeDeathLocation); err != nil {
		return err
	}
	if err := b.WriteVarInt(p.PortalCooldown); err != nil {
		return err
	}
	if err := b.WriteVarInt(p.SeaLevel); err != nil {
		return err
	}
	b.WriteBool(p.EnforcesSecureChat)
	return nil
}

// SyncPlayerPositionPacket teleports the client to an authoritative
// position; the client must answer with
// ConfirmTeleportationPacket.TeleportID.
type SyncPlayerPositionPacket struct {
	TeleportID                     int32
	X, Y, Z                        float64
	VelocityX, VelocityY, VelocityZ float64
	Yaw, Pitch                     float32
	Flags                          int32
}

func (p *SyncPlayerPositionPacket) Encode(b *protocol.Buffer) error {
	if err := b.WriteVarInt(p.TeleportID); err != nil {
		return err
	}
	b.WriteFloat64(p.X)
	b.WriteFloat64(p.Y)
	b.WriteFloat64(p.Z)
	b.WriteFloat64(p.VelocityX)
	b.WriteFloat64(p.VelocityY)
	b.WriteFloat64(p.VelocityZ)
	b.WriteFloat32(p.Yaw)
	b.WriteFloat32(p.Pitch)
	b.WriteInt32(p.Flags)
	return nil
}

// PlayerInfoFlags are the action bits of a PlayerInfoUpdatePacket.
const (
	PlayerInfoAddPlayer    uint8 = 0x01
	PlayerInfoUpdateListed uint8 = 0x08
)

// PlayerEntry carries the add/update actions for one profile within a
// PlayerInfoUpdatePacket, limited to what a minimal join flow needs.
type PlayerEntry struct {
	UUID       uuid.UUID
	Name       string
	Properties []Property
	Listed     bool
}

func encodePlayerEntry(b *protocol.Buffer, e PlayerEntry) error {
	b.WriteUUID(e.UUID)
	if err := b.WriteString(e.Name); err != nil {
		return err
	}
	if err := protocol.WriteArray(b, e.Properties, func(b *protocol.Buffer, prop Property) error {
		return prop.encode(b)
	}); err != nil {
		return err
	}
	b.WriteBool(e.Listed)
	return nil
}

// PlayerInfoUpdatePacket adds or updates tab-list entries. This server
// only ever sends the add-player + update-listed actions together.
type PlayerInfoUpdatePacket struct {
	Players []PlayerEntry
}

func (p *PlayerInfoUpdatePacket) Encode(b *protocol.Buffer) error {
	b.WriteUint8(PlayerInfoAddPlayer | PlayerInfoUpdateListed)
	return protocol.WriteArray(b, p.Players, encodePlayerEntry)
}

// GameEventPacket signals a miscellaneous world-state change, such as
// "start waiting for level chunks" (event 13).
type GameEventPacket struct {
	Event uint8
	Value float32
}

func (p *GameEventPacket) Encode(b *protocol.Buffer) error {
	b.WriteUint8(p.Event)
	b.WriteFloat32(p.Value)
	return nil
}

// SetCenterChunkPacket recenters the client's view on a chunk column,
// driving which chunks it keeps loaded.
type SetCenterChunkPacket struct {
	ChunkX, ChunkZ int32
}

func (p *SetCenterChunkPacket) Encode(b *protocol.Buffer) error {
	if err := b.WriteVarInt(p.ChunkX); err != nil {
		return err
	}
	return b.WriteVarInt(p.ChunkZ)
}

// ChunkBatchStartPacket carries no fields; it opens a run of
// ChunkDataAndUpdateLightPacket the client should defer rendering
// until ChunkBatchFinishedPacket.
type ChunkBatchStartPacket struct{}

func (p *ChunkBatchStartPacket) Encode(b *protocol.Buffer) error { return nil }

// ChunkBatchFinishedPacket closes a chunk batch, reporting how many
// columns it contained so the client can compute its own throughput.
type ChunkBatchFinishedPacket struct {
	BatchSize int32
}

func (p *ChunkBatchFinishedPacket) Encode(b *protocol.Buffer) error {
	return b.WriteVarInt(p.BatchSize)
}

// ChunkDataAndUpdateLightPacket carries one fully-encoded chunk
// column. Lighting is not modeled; a fixed payload with full sky light
// and empty block light is emitted so clients render without lighting
// glitches.
type ChunkDataAndUpdateLightPacket struct {
	Column *chunk.Column
}

func (p *ChunkDataAndUpdateLightPacket) Encode(b *protocol.Buffer) error {
	if err := p.Column.WriteTo(b); err != nil {
		return err
	}
	return writeTrivialLightData(b, len(p.Column.Sections)+2)
}

// writeTrivialLightData emits a fixed light update: the sky-light mask
// and the empty-block-light mask both set for every section, empty
// block-light and empty-sky-light masks, sectionCount full-bright
// (0xFF) sky-light arrays, and no block-light arrays.
func writeTrivialLightData(b *protocol.Buffer, sectionCount int) error {
	if err := b.WriteVarInt(1); err != nil {
		return err
	}
	b.WriteUint64(0x3FFFFFF)

	if err := b.WriteVarInt(0); err != nil {
		return err
	}

	if err := b.WriteVarInt(0); err != nil {
		return err
	}
	if err := b.WriteVarInt(1); err != nil {
		return err
	}
	b.WriteUint64(0x3FFFFFF)

	lightArray := make([]byte, 2048)
	for i := range lightArray {
		lightArray[i] = 0xFF
	}
	if err := b.WriteVarInt(int32(sectionCount)); err != nil {
		return err
	}
	for i := 0; i < sectionCount; i++ {
		if err := protocol.WriteArray(b, lightArray, func(b *protocol.Buffer, v byte) error {
			b.WriteUint8(v)
			return nil
		}); err != nil {
			return err
		}
	}
	return b.WriteVarInt(0)
}

// UnloadChunkPacket tells the client to discard a loaded column.
// Unlike every other (x,z) pair on the wire, z precedes x here: the
// client reads this packet as one big-endian i64 with z in the high
// bits.
type UnloadChunkPacket struct {
	ChunkX, ChunkZ int32
}

func (p *UnloadChunkPacket) Encode(b *protocol.Buffer) error {
	b.WriteInt32(p.ChunkZ)
	b.WriteInt32(p.ChunkX)
	return nil
}

// DisconnectPacket ends a play-state connection with a text-component
// reason.
type DisconnectPacket struct {
	Reason *nbt.Compound
}

// NewDisconnectReason builds the {"text": msg} component NBT compound
// DisconnectPacket expects.
func NewDisconnectReason(msg string) *nbt.Compound {
	c := nbt.NewCompound()
	c.Put("text", nbt.String(msg))
	return c
}

func (p *DisconnectPacket) Encode(b *protocol.Buffer) error {
	return nbt.EncodeUnnamed(b, p.Reason)
}
