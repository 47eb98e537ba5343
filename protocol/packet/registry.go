package packet

import (
	"fmt"

	"github.com/basaltmc/basalt/protocol"
)

// Decoder parses one packet body, having already consumed its id.
type Decoder func(b *protocol.Buffer) (any, error)

// Table maps serverbound packet ids to their decoder, for one state.
type Table map[int32]Decoder

// ErrUnknownPacket is returned by Decode when no decoder is registered
// for (state, id).
type ErrUnknownPacket struct {
	State State
	ID    int32
}

func (e *ErrUnknownPacket) Error() string {
	return fmt.Sprintf("packet: unknown id 0x%02X in state %d", e.ID, e.State)
}

var tables = map[State]Table{
	Handshake: {
		IDHandshake: func(b *protocol.Buffer) (any, error) { return DecodeHandshake(b) },
	},
	Status: {
		IDStatusRequest: func(b *protocol.Buffer) (any, error) { return DecodeStatusRequest(b) },
		IDPingRequest:   func(b *protocol.Buffer) (any, error) { return DecodePingRequest(b) },
	},
	Login: {
		IDLoginStart:         func(b *protocol.Buffer) (any, error) { return DecodeLoginStart(b) },
		IDEncryptionResponse: func(b *protocol.Buffer) (any, error) { return DecodeEncryptionResponse(b) },
		IDLoginAcknowledge:   func(b *protocol.Buffer) (any, error) { return DecodeLoginAcknowledge(b) },
	},
	Config: {
		IDClientInfo:              func(b *protocol.Buffer) (any, error) { return DecodeClientInfo(b) },
		IDPluginMessageConfig:     func(b *protocol.Buffer) (any, error) { return DecodePluginMessageConfig(b) },
		IDAcknowledgeFinishConfig: func(b *protocol.Buffer) (any, error) { return DecodeAcknowledgeFinishConfig(b) },
		IDClientKnownPacks:        func(b *protocol.Buffer) (any, error) { return DecodeClientKnownPacks(b) },
	},
	Play: {
		IDConfirmTeleportation:     func(b *protocol.Buffer) (any, error) { return DecodeConfirmTeleportation(b) },
		IDChatCommand:              func(b *protocol.Buffer) (any, error) { return DecodeChatCommand(b) },
		IDPlayerSession:            func(b *protocol.Buffer) (any, error) { return DecodePlayerSession(b) },
		IDChunkBatchReceived:       func(b *protocol.Buffer) (any, error) { return DecodeChunkBatchReceived(b) },
		IDClientTickEnd:            func(b *protocol.Buffer) (any, error) { return DecodeClientTickEnd(b) },
		IDClientInfoPlay:           func(b *protocol.Buffer) (any, error) { return DecodeClientInfo(b) },
		IDClickContainer:           func(b *protocol.Buffer) (any, error) { return DecodeClickContainer(b) },
		IDCloseContainer:           func(b *protocol.Buffer) (any, error) { return DecodeCloseContainer(b) },
		IDPluginMessagePlay:        func(b *protocol.Buffer) (any, error) { return DecodePluginMessagePlay(b) },
		IDInteract:                 func(b *protocol.Buffer) (any, error) { return DecodeInteract(b) },
		IDKeepAlivePlay:            func(b *protocol.Buffer) (any, error) { return DecodeKeepAlive(b) },
		IDPlayerPosition:           func(b *protocol.Buffer) (any, error) { return DecodePlayerPosition(b) },
		IDPlayerPositionAndRotation: func(b *protocol.Buffer) (any, error) { return DecodePlayerPositionAndRotation(b) },
		IDPlayerRotation:           func(b *protocol.Buffer) (any, error) { return DecodePlayerRotation(b) },
		IDPlayerMovementFlags:      func(b *protocol.Buffer) (any, error) { return DecodePlayerMovementFlags(b) },
		IDPickItemFromBlock:        func(b *protocol.Buffer) (any, error) { return DecodePickItemFromBlock(b) },
		IDPingRequestPlay:          func(b *protocol.Buffer) (any, error) { return DecodePingRequest(b) },
		IDPlayerAbilities:          func(b *protocol.Buffer) (any, error) { return DecodePlayerAbilities(b) },
		IDPlayerAction:             func(b *protocol.Buffer) (any, error) { return DecodePlayerAction(b) },
		IDPlayerCommand:            func(b *protocol.Buffer) (any, error) { return DecodePlayerCommand(b) },
		IDPlayerInput:              func(b *protocol.Buffer) (any, error) { return DecodePlayerInput(b) },
		IDPlayerLoaded:             func(b *protocol.Buffer) (any, error) { return DecodePlayerLoaded(b) },
		IDChangeRecipeBookSettings: func(b *protocol.Buffer) (any, error) { return DecodeChangeRecipeBookSettings(b) },
		IDSetHeldItem:              func(b *protocol.Buffer) (any, error) { return DecodeSetHeldItem(b) },
		IDSetCreativeModeSlot:      func(b *protocol.Buffer) (any, error) { return DecodeSetCreativeModeSlot(b) },
		IDSwingArm:                 func(b *protocol.Buffer) (any, error) { return DecodeSwingArm(b) },
		IDUseItemOn:                func(b *protocol.Buffer) (any, error) { return DecodeUseItemOn(b) },
	},
}

// Decode looks up the decoder registered for (state, id) and invokes
// it against b. It never uses reflection: every state's table is a
// plain map built once at init.
func Decode(state State, id int32, b *protocol.Buffer) (any, error) {
	table, ok := tables[state]
	if !ok {
		return nil, &ErrUnknownPacket{State: state, ID: id}
	}
	decode, ok := table[id]
	if !ok {
		return nil, &ErrUnknownPacket{State: state, ID: id}
	}
	return decode(b)
}
