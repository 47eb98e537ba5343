// Package packet defines the wire packet types exchanged during each
// connection phase and the per-state decoder tables used to dispatch
// them without reflection.
package packet

// State identifies which phase of the connection a packet ID table
// belongs to.
type State uint8

const (
	Handshake State = iota
	Status
	Login
	Config
	Play
)

// Serverbound packet IDs, grouped by state. IDs are taken from the
// listener match arms for each state and are stable for protocol
// version 773 (1.21.10).
const (
	IDHandshake int32 = 0x00
)

const (
	IDStatusRequest int32 = 0x00
	IDPingRequest   int32 = 0x01
)

const (
	IDLoginStart          int32 = 0x00
	IDEncryptionResponse  int32 = 0x01
	IDLoginPluginResponse int32 = 0x02
	IDLoginAcknowledge    int32 = 0x03
	IDCookieResponseLogin int32 = 0x04
)

const (
	IDClientInfo              int32 = 0x00
	IDCookieResponseConfig    int32 = 0x01
	IDPluginMessageConfig     int32 = 0x02
	IDAcknowledgeFinishConfig int32 = 0x03
	IDKeepAliveConfig         int32 = 0x04
	IDPongConfig              int32 = 0x05
	IDResourcePackResponse    int32 = 0x06
	IDClientKnownPacks        int32 = 0x07
	IDCustomClickAction       int32 = 0x08
)

const (
	IDConfirmTeleportation     int32 = 0x00
	IDChatCommand              int32 = 0x06
	IDPlayerSession            int32 = 0x09
	IDChunkBatchReceived       int32 = 0x0A
	IDClientTickEnd            int32 = 0x0C
	IDClientInfoPlay           int32 = 0x0D
	IDClickContainer           int32 = 0x11
	IDCloseContainer           int32 = 0x12
	IDPluginMessagePlay        int32 = 0x15
	IDInteract                 int32 = 0x19
	IDKeepAlivePlay            int32 = 0x1B
	IDPlayerPosition           int32 = 0x1D
	IDPlayerPositionAndRotation int32 = 0x1E
	IDPlayerRotation           int32 = 0x1F
	IDPlayerMovementFlags      int32 = 0x20
	IDPickItemFromBlock        int32 = 0x23
	IDPingRequestPlay          int32 = 0x25
	IDPlayerAbilities          int32 = 0x27
	IDPlayerAction             int32 = 0x28
	IDPlayerCommand            int32 = 0x29
	IDPlayerInput              int32 = 0x2A
	IDPlayerLoaded             int32 = 0x2B
	IDChangeRecipeBookSettings int32 = 0x2D
	IDSetHeldItem              int32 = 0x34
	IDSetCreativeModeSlot      int32 = 0x37
	IDSwingArm                 int32 = 0x3C
	IDUseItemOn                int32 = 0x3F
)

// Clientbound packet IDs used by the packets this server actually
// sends. Unlike the serverbound tables, there is no dispatch need for
// these; they document the outbound wire shape each packet type
// constructs.
const (
	IDStatusResponse int32 = 0x00
	IDPongResponse   int32 = 0x01
)

const (
	IDLoginDisconnect   int32 = 0x00
	IDEncryptionRequest int32 = 0x01
	IDLoginSuccess      int32 = 0x02
	IDSetCompression    int32 = 0x03
)

const (
	IDRegistryData     int32 = 0x07
	IDFinishConfig     int32 = 0x03
	IDKnownPacksConfig int32 = 0x0E
)

const (
	IDLoginPlay               int32 = 0x2B
	IDChunkBatchStart         int32 = 0x0C
	IDChunkBatchFinished      int32 = 0x0D
	IDUnloadChunk             int32 = 0x21
	IDGameEvent               int32 = 0x22
	IDChunkDataAndUpdateLight int32 = 0x27
	IDKeepAlivePlayOut        int32 = 0x26
	IDDisconnectPlay          int32 = 0x1D
	IDPlayerInfoUpdate        int32 = 0x3F
	IDSyncPlayerPosition      int32 = 0x41
	IDSetCenterChunk          int32 = 0x57
)
