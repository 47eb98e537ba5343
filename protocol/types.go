package protocol

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxStringLen is the protocol-defined maximum string length in
// characters, per §3.
const MaxStringLen = 32767

// DefaultNamespace is the vendor namespace an identifier defaults to when
// no colon is present.
const DefaultNamespace = "minecraft"

// WriteString writes a VarInt length n (bytes) followed by n UTF-8 bytes.
func (b *Buffer) WriteString(s string) error {
	if len(s) > MaxStringLen*4 {
		return newEncodeErr("string length %d exceeds protocol maximum", len(s))
	}
	if err := b.WriteVarInt(int32(len(s))); err != nil {
		return err
	}
	b.WriteBytes([]byte(s))
	return nil
}

// ReadString reads a VarInt-prefixed UTF-8 string, bounded to
// MaxStringLen characters. Invalid UTF-8 is a decode failure.
func (b *Buffer) ReadString() (string, error) {
	n, err := b.ReadVarInt()
	if err != nil {
		return "", err
	}
	if n < 0 || n > MaxStringLen*4 {
		return "", newDecodeErr(b.off, "string length %d out of range", n)
	}
	raw, err := b.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", newDecodeErr(b.off, "invalid utf-8 in string")
	}
	if utf8.RuneCount(raw) > MaxStringLen {
		return "", newDecodeErr(b.off, "string exceeds %d characters", MaxStringLen)
	}
	return string(raw), nil
}

// WriteUUID writes a UUID as 16 big-endian bytes.
func (b *Buffer) WriteUUID(id uuid.UUID) {
	b.WriteBytes(id[:])
}

// ReadUUID reads 16 bytes as a UUID.
func (b *Buffer) ReadUUID() (uuid.UUID, error) {
	raw, err := b.ReadBytes(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	copy(id[:], raw)
	return id, nil
}

// Identifier is a namespaced key of the form "namespace:path".
type Identifier struct {
	Namespace string
	Path      string
}

// NewIdentifier parses s, defaulting the namespace when s carries none.
func NewIdentifier(s string) Identifier {
	if ns, path, ok := strings.Cut(s, ":"); ok {
		return Identifier{Namespace: ns, Path: path}
	}
	return Identifier{Namespace: DefaultNamespace, Path: s}
}

// String renders the identifier back to "namespace:path".
func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

// WriteIdentifier writes an identifier as its string form.
func (b *Buffer) WriteIdentifier(id Identifier) error {
	return b.WriteString(id.String())
}

// ReadIdentifier reads a string and parses it as an identifier.
func (b *Buffer) ReadIdentifier() (Identifier, error) {
	s, err := b.ReadString()
	if err != nil {
		return Identifier{}, err
	}
	return NewIdentifier(s), nil
}

// BlockPos packs (x:26, z:26, y:12) from the high end of a 64-bit value,
// all two's-complement signed.
type BlockPos struct {
	X, Y, Z int32
}

const (
	blockPosXBits = 26
	blockPosZBits = 26
	blockPosYBits = 12
)

// Pack encodes the position into the wire's single i64 representation.
func (p BlockPos) Pack() int64 {
	x := uint64(p.X) & (1<<blockPosXBits - 1)
	z := uint64(p.Z) & (1<<blockPosZBits - 1)
	y := uint64(p.Y) & (1<<blockPosYBits - 1)
	return int64(x<<(blockPosZBits+blockPosYBits) | z<<blockPosYBits | y)
}

// UnpackBlockPos reverses Pack, sign-extending each field.
func UnpackBlockPos(v int64) BlockPos {
	uv := uint64(v)
	x := signExtend(uv>>(blockPosZBits+blockPosYBits), blockPosXBits)
	z := signExtend(uv>>blockPosYBits, blockPosZBits)
	y := signExtend(uv, blockPosYBits)
	return BlockPos{X: x, Y: y, Z: z}
}

func signExtend(v uint64, bits uint) int32 {
	v &= 1<<bits - 1
	shift := 64 - bits
	return int32(int64(v<<shift) >> shift)
}

// WriteBlockPos writes the packed block position as a big-endian i64.
func (b *Buffer) WriteBlockPos(p BlockPos) {
	b.WriteInt64(p.Pack())
}

// ReadBlockPos reads a big-endian i64 and unpacks it.
func (b *Buffer) ReadBlockPos() (BlockPos, error) {
	v, err := b.ReadInt64()
	if err != nil {
		return BlockPos{}, err
	}
	return UnpackBlockPos(v), nil
}

// WriteByteArray writes a VarInt length n followed by n raw bytes.
func (b *Buffer) WriteByteArray(p []byte) error {
	if err := b.WriteVarInt(int32(len(p))); err != nil {
		return err
	}
	b.WriteBytes(p)
	return nil
}

// ReadByteArray reads a VarInt-prefixed raw byte slice.
func (b *Buffer) ReadByteArray() ([]byte, error) {
	n, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, newDecodeErr(b.off, "negative byte array length %d", n)
	}
	return b.ReadBytes(int(n))
}

// WriteOption writes a presence bool, then value() if present.
func WriteOption[T any](b *Buffer, v *T, write func(*Buffer, T) error) error {
	b.WriteBool(v != nil)
	if v == nil {
		return nil
	}
	return write(b, *v)
}

// ReadOption reads a presence bool, then the value if present.
func ReadOption[T any](b *Buffer, read func(*Buffer) (T, error)) (*T, error) {
	present, err := b.ReadBool()
	if err != nil || !present {
		return nil, err
	}
	v, err := read(b)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteArray writes a VarInt length, then each element via write.
func WriteArray[T any](b *Buffer, vs []T, write func(*Buffer, T) error) error {
	if len(vs) > int(^uint32(0)>>1) {
		return newEncodeErr("array length %d exceeds i32 range", len(vs))
	}
	if err := b.WriteVarInt(int32(len(vs))); err != nil {
		return err
	}
	for _, v := range vs {
		if err := write(b, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadArray reads a VarInt length, then that many elements via read.
func ReadArray[T any](b *Buffer, read func(*Buffer) (T, error)) ([]T, error) {
	n, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, newDecodeErr(b.off, "negative array length %d", n)
	}
	out := make([]T, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := read(b)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
