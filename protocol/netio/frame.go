package netio

import (
	"bytes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/basaltmc/basalt/protocol"
	"github.com/klauspost/compress/zlib"
)

// NoCompression disables the compressed body layout entirely.
const NoCompression int32 = -1

// RawPacket is a decoded frame body: its VarInt id and remaining
// payload bytes, not yet interpreted by the packet registry.
type RawPacket struct {
	ID      int32
	Payload []byte
}

// Conn wraps a byte stream with the per-connection cipher and
// compression threshold state described in §4.4. The encrypt and
// decrypt directions are never shared, matching the read/write half
// split mandated by the connection FSM's concurrency model.
type Conn struct {
	r io.Reader
	w io.Writer

	threshold int32

	encStream cipher.Stream
	decStream cipher.Stream
}

// NewConn wraps rw for framed packet I/O with compression disabled and
// encryption off.
func NewConn(r io.Reader, w io.Writer) *Conn {
	return &Conn{r: r, w: w, threshold: NoCompression}
}

// SetCompression sets the compression threshold; negative disables it.
func (c *Conn) SetCompression(threshold int32) {
	c.threshold = threshold
}

// SetEncryption enables AES-128-CFB8 on both directions, keyed and IV'd
// by the 16-byte shared secret negotiated during Login.
func (c *Conn) SetEncryption(sharedSecret []byte) error {
	enc, err := NewCFB8Encrypter(sharedSecret, sharedSecret)
	if err != nil {
		return err
	}
	dec, err := NewCFB8Decrypter(sharedSecret, sharedSecret)
	if err != nil {
		return err
	}
	c.encStream = enc
	c.decStream = dec
	return nil
}

func (c *Conn) readByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(c.r, b[:]); err != nil {
		return 0, err
	}
	if c.decStream != nil {
		c.decStream.XORKeyStream(b[:], b[:])
	}
	return b[0], nil
}

func (c *Conn) readVarInt() (int32, error) {
	var value uint32
	for i := 0; i < protocol.MaxVarIntLen; i++ {
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}
		value |= uint32(b&0x7F) << (uint(i) * 7)
		if b&0x80 == 0 {
			return int32(value), nil
		}
	}
	return 0, fmt.Errorf("netio: varint exceeds %d bytes", protocol.MaxVarIntLen)
}

func (c *Conn) readFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		return nil, err
	}
	if c.decStream != nil {
		c.decStream.XORKeyStream(buf, buf)
	}
	return buf, nil
}

// ReadPacket blocks until a full frame has arrived, deframes,
// decompresses and decrypts it, and returns the packet id and payload.
func (c *Conn) ReadPacket() (*RawPacket, error) {
	packetLen, err := c.readVarInt()
	if err != nil {
		return nil, err
	}
	if packetLen < 0 {
		return nil, fmt.Errorf("netio: negative packet length %d", packetLen)
	}

	body, err := c.readFull(int(packetLen))
	if err != nil {
		return nil, err
	}
	buf := protocol.NewBuffer(body)

	if c.threshold < 0 {
		id, err := buf.ReadVarInt()
		if err != nil {
			return nil, err
		}
		return &RawPacket{ID: id, Payload: buf.ReadRemaining()}, nil
	}

	dataLen, err := buf.ReadVarInt()
	if err != nil {
		return nil, err
	}
	rest := buf.ReadRemaining()

	var data []byte
	if dataLen == 0 {
		data = rest
	} else {
		zr, err := zlib.NewReader(bytes.NewReader(rest))
		if err != nil {
			return nil, fmt.Errorf("netio: zlib: %w", err)
		}
		defer zr.Close()
		data = make([]byte, 0, dataLen)
		out := bytes.NewBuffer(data)
		if _, err := io.Copy(out, zr); err != nil {
			return nil, fmt.Errorf("netio: zlib: %w", err)
		}
		data = out.Bytes()
		if int32(len(data)) != dataLen {
			return nil, fmt.Errorf("netio: decompressed length %d != declared %d", len(data), dataLen)
		}
	}

	dbuf := protocol.NewBuffer(data)
	id, err := dbuf.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &RawPacket{ID: id, Payload: dbuf.ReadRemaining()}, nil
}

func (c *Conn) writeVarInt(v int32) error {
	buf := protocol.NewBuffer(nil)
	if err := buf.WriteVarInt(v); err != nil {
		return err
	}
	return c.writeRaw(buf.Bytes())
}

func (c *Conn) writeRaw(p []byte) error {
	if c.encStream != nil {
		enc := make([]byte, len(p))
		c.encStream.XORKeyStream(enc, p)
		p = enc
	}
	_, err := c.w.Write(p)
	return err
}

// WritePacket frames, compresses (above the threshold) and encrypts id
// and payload, then writes the resulting frame.
func (c *Conn) WritePacket(id int32, payload []byte) error {
	body := protocol.NewBuffer(nil)
	if err := body.WriteVarInt(id); err != nil {
		return err
	}
	body.WriteBytes(payload)
	data := body.Bytes()

	if c.threshold < 0 {
		if err := c.writeVarInt(int32(len(data))); err != nil {
			return err
		}
		return c.writeRaw(data)
	}

	if int32(len(data)) >= c.threshold {
		var compressed bytes.Buffer
		zw := zlib.NewWriter(&compressed)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		frame := protocol.NewBuffer(nil)
		if err := frame.WriteVarInt(int32(len(data))); err != nil {
			return err
		}
		frame.WriteBytes(compressed.Bytes())
		if err := c.writeVarInt(int32(len(frame.Bytes()))); err != nil {
			return err
		}
		return c.writeRaw(frame.Bytes())
	}

	frame := protocol.NewBuffer(nil)
	if err := frame.WriteVarInt(0); err != nil {
		return err
	}
	frame.WriteBytes(data)
	if err := c.writeVarInt(int32(len(frame.Bytes()))); err != nil {
		return err
	}
	return c.writeRaw(frame.Bytes())
}
