package nbt

import "github.com/basaltmc/basalt/protocol"

func writeNBTString(b *protocol.Buffer, s string) error {
	if len(s) > 0xFFFF {
		return errf("string length %d exceeds u16 bound", len(s))
	}
	b.WriteUint16(uint16(len(s)))
	b.WriteBytes([]byte(s))
	return nil
}

// EncodeNamed writes name then root as a named (tag, name, value) root
// framing.
func EncodeNamed(b *protocol.Buffer, name string, root *Compound) error {
	b.WriteUint8(TagCompound)
	if err := writeNBTString(b, name); err != nil {
		return err
	}
	return encodeCompoundBody(b, root)
}

// EncodeUnnamed writes root as an unnamed (tag, value) root framing.
func EncodeUnnamed(b *protocol.Buffer, root *Compound) error {
	b.WriteUint8(TagCompound)
	return encodeCompoundBody(b, root)
}

func encodeCompoundBody(b *protocol.Buffer, c *Compound) error {
	var err error
	c.Range(func(name string, value Tag) {
		if err != nil {
			return
		}
		b.WriteUint8(TagID(value))
		if err = writeNBTString(b, name); err != nil {
			return
		}
		err = encodeValue(b, value)
	})
	if err != nil {
		return err
	}
	b.WriteUint8(TagEnd)
	return nil
}

func encodeValue(b *protocol.Buffer, t Tag) error {
	switch v := t.(type) {
	case Byte:
		b.WriteInt8(int8(v))
	case Short:
		b.WriteInt16(int16(v))
	case Int:
		b.WriteInt32(int32(v))
	case Long:
		b.WriteInt64(int64(v))
	case Float:
		b.WriteFloat32(float32(v))
	case Double:
		b.WriteFloat64(float64(v))
	case ByteArray:
		if len(v) > 0x7FFFFFFF {
			return errf("ByteArray length %d exceeds i32 bound", len(v))
		}
		b.WriteInt32(int32(len(v)))
		b.WriteBytes(v)
	case String:
		return writeNBTString(b, string(v))
	case *List:
		elemID := v.ElemID
		if len(v.Values) > 0 {
			elemID = TagID(v.Values[0])
		} else {
			elemID = TagEnd
		}
		b.WriteUint8(elemID)
		b.WriteInt32(int32(len(v.Values)))
		for i, child := range v.Values {
			if i > 0 && TagID(child) != elemID {
				return errf("heterogeneous List: element %d has tag %d, want %d", i, TagID(child), elemID)
			}
			if err := encodeValue(b, child); err != nil {
				return err
			}
		}
	case *Compound:
		return encodeCompoundBody(b, v)
	case IntArray:
		b.WriteInt32(int32(len(v)))
		for _, e := range v {
			b.WriteInt32(e)
		}
	case LongArray:
		b.WriteInt32(int32(len(v)))
		for _, e := range v {
			b.WriteInt64(e)
		}
	default:
		return errf("unknown tag type %T", t)
	}
	return nil
}
