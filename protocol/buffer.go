package protocol

import (
	"math"
)

// Buffer is a growable mutable sequence of octets with a read cursor and
// a write tail, as described by the byte codec's data model. All
// primitive integers are big-endian; floats are IEEE-754 big-endian.
type Buffer struct {
	data []byte
	off  int
}

// NewBuffer wraps an existing slice for reading, or starts an empty
// buffer for writing when b is nil.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Bytes returns the buffer's full backing slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.data) - b.off }

// Reset discards written/read state and reuses the backing array.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.off = 0
}

func (b *Buffer) need(n int) error {
	if b.Remaining() < n {
		return newDecodeErr(b.off, "need %d bytes, have %d", n, b.Remaining())
	}
	return nil
}

func (b *Buffer) take(n int) []byte {
	p := b.data[b.off : b.off+n]
	b.off += n
	return p
}

// WriteUint8 appends a single byte.
func (b *Buffer) WriteUint8(v uint8) { b.data = append(b.data, v) }

// WriteInt8 appends a signed byte.
func (b *Buffer) WriteInt8(v int8) { b.WriteUint8(uint8(v)) }

// WriteBool appends a single byte, 0 or 1.
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.WriteUint8(1)
		return
	}
	b.WriteUint8(0)
}

// WriteUint16 appends a big-endian u16.
func (b *Buffer) WriteUint16(v uint16) {
	b.data = append(b.data, byte(v>>8), byte(v))
}

// WriteInt16 appends a big-endian i16.
func (b *Buffer) WriteInt16(v int16) { b.WriteUint16(uint16(v)) }

// WriteUint32 appends a big-endian u32.
func (b *Buffer) WriteUint32(v uint32) {
	b.data = append(b.data, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// WriteInt32 appends a big-endian i32.
func (b *Buffer) WriteInt32(v int32) { b.WriteUint32(uint32(v)) }

// WriteUint64 appends a big-endian u64.
func (b *Buffer) WriteUint64(v uint64) {
	b.data = append(b.data,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// WriteInt64 appends a big-endian i64.
func (b *Buffer) WriteInt64(v int64) { b.WriteUint64(uint64(v)) }

// WriteFloat32 appends a big-endian IEEE-754 f32.
func (b *Buffer) WriteFloat32(v float32) { b.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 appends a big-endian IEEE-754 f64.
func (b *Buffer) WriteFloat64(v float64) { b.WriteUint64(math.Float64bits(v)) }

// WriteBytes appends raw bytes with no length prefix.
func (b *Buffer) WriteBytes(p []byte) { b.data = append(b.data, p...) }

// ReadUint8 reads a single byte.
func (b *Buffer) ReadUint8() (uint8, error) {
	if err := b.need(1); err != nil {
		return 0, err
	}
	return b.take(1)[0], nil
}

// ReadInt8 reads a signed byte.
func (b *Buffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

// ReadBool reads a byte and reports it as != 0.
func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadUint8()
	return v != 0, err
}

// ReadUint16 reads a big-endian u16.
func (b *Buffer) ReadUint16() (uint16, error) {
	if err := b.need(2); err != nil {
		return 0, err
	}
	p := b.take(2)
	return uint16(p[0])<<8 | uint16(p[1]), nil
}

// ReadInt16 reads a big-endian i16.
func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a big-endian u32.
func (b *Buffer) ReadUint32() (uint32, error) {
	if err := b.need(4); err != nil {
		return 0, err
	}
	p := b.take(4)
	return uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3]), nil
}

// ReadInt32 reads a big-endian i32.
func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a big-endian u64.
func (b *Buffer) ReadUint64() (uint64, error) {
	if err := b.need(8); err != nil {
		return 0, err
	}
	p := b.take(8)
	return uint64(p[0])<<56 | uint64(p[1])<<48 | uint64(p[2])<<40 | uint64(p[3])<<32 |
		uint64(p[4])<<24 | uint64(p[5])<<16 | uint64(p[6])<<8 | uint64(p[7]), nil
}

// ReadInt64 reads a big-endian i64.
func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a big-endian IEEE-754 f32.
func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads a big-endian IEEE-754 f64.
func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBytes reads exactly n raw bytes.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, newDecodeErr(b.off, "negative length %d", n)
	}
	if err := b.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b.take(n))
	return out, nil
}

// ReadRemaining reads every unread byte.
func (b *Buffer) ReadRemaining() []byte {
	out := make([]byte, b.Remaining())
	copy(out, b.data[b.off:])
	b.off = len(b.data)
	return out
}
