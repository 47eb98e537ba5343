package nbt

import (
	"fmt"

	"github.com/basaltmc/basalt/protocol"
)

// DecodeError reports a malformed tagged-tree payload.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string { return fmt.Sprintf("nbt decode: %s", e.Reason) }

func errf(format string, args ...any) error {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}

func readNBTString(b *protocol.Buffer) (string, error) {
	n, err := b.ReadUint16()
	if err != nil {
		return "", err
	}
	raw, err := b.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeNamed reads a leading name then a Compound body, as a root
// tagged-tree value is framed when named.
func DecodeNamed(b *protocol.Buffer) (name string, root *Compound, err error) {
	tagID, err := b.ReadUint8()
	if err != nil {
		return "", nil, err
	}
	if tagID != TagCompound {
		return "", nil, errf("root tag must be Compound, got %d", tagID)
	}
	name, err = readNBTString(b)
	if err != nil {
		return "", nil, err
	}
	root, err = decodeCompoundBody(b)
	return name, root, err
}

// DecodeUnnamed reads a Compound body with no leading root name.
func DecodeUnnamed(b *protocol.Buffer) (*Compound, error) {
	tagID, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	if tagID != TagCompound {
		return nil, errf("root tag must be Compound, got %d", tagID)
	}
	return decodeCompoundBody(b)
}

func decodeCompoundBody(b *protocol.Buffer) (*Compound, error) {
	c := NewCompound()
	for {
		tagID, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		if tagID == TagEnd {
			return c, nil
		}
		name, err := readNBTString(b)
		if err != nil {
			return nil, err
		}
		value, err := decodeValue(b, tagID)
		if err != nil {
			return nil, err
		}
		c.Put(name, value)
	}
}

func decodeValue(b *protocol.Buffer, tagID uint8) (Tag, error) {
	switch tagID {
	case TagEnd:
		return nil, errf("unexpected End tag in value position")
	case TagByte:
		v, err := b.ReadInt8()
		return Byte(v), err
	case TagShort:
		v, err := b.ReadInt16()
		return Short(v), err
	case TagInt:
		v, err := b.ReadInt32()
		return Int(v), err
	case TagLong:
		v, err := b.ReadInt64()
		return Long(v), err
	case TagFloat:
		v, err := b.ReadFloat32()
		return Float(v), err
	case TagDouble:
		v, err := b.ReadFloat64()
		return Double(v), err
	case TagByteArray:
		n, err := b.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errf("negative ByteArray length %d", n)
		}
		raw, err := b.ReadBytes(int(n))
		return ByteArray(raw), err
	case TagString:
		s, err := readNBTString(b)
		return String(s), err
	case TagList:
		childID, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		n, err := b.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errf("negative List length %d", n)
		}
		values := make([]Tag, 0, n)
		for i := int32(0); i < n; i++ {
			v, err := decodeValue(b, childID)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return &List{ElemID: childID, Values: values}, nil
	case TagCompound:
		return decodeCompoundBody(b)
	case TagIntArray:
		n, err := b.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errf("negative IntArray length %d", n)
		}
		out := make(IntArray, n)
		for i := range out {
			v, err := b.ReadInt32()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TagLongArray:
		n, err := b.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errf("negative LongArray length %d", n)
		}
		out := make(LongArray, n)
		for i := range out {
			v, err := b.ReadInt64()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return nil, errf("unknown tag id %d", tagID)
	}
}
