// Package netio implements the framing and crypto layer above the byte
// codec: VarInt length-prefixed frames, optional zlib compression above
// a threshold, and optional AES-128-CFB8 stream encryption.
package netio

import (
	"crypto/aes"
	"crypto/cipher"
)

// cfb8 implements cipher.Stream for AES-128-CFB8: the block cipher is
// re-run over a 16-byte shift register on every single output byte,
// taking only its first byte as keystream. No standard-library mode
// implements this segment size directly — crypto/cipher's CFB helpers
// are fixed at the block's full width (CFB128 for AES), so the shift
// register is maintained by hand here.
type cfb8 struct {
	block    cipher.Block
	register []byte
	decrypt  bool
}

// NewCFB8Encrypter returns a keystream cipher.Stream for AES-128-CFB8
// encryption, keyed by key with iv as the initial shift register.
func NewCFB8Encrypter(key, iv []byte) (cipher.Stream, error) {
	return newCFB8(key, iv, false)
}

// NewCFB8Decrypter returns the corresponding decryption stream.
func NewCFB8Decrypter(key, iv []byte) (cipher.Stream, error) {
	return newCFB8(key, iv, true)
}

func newCFB8(key, iv []byte, decrypt bool) (cipher.Stream, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	reg := make([]byte, len(iv))
	copy(reg, iv)
	return &cfb8{block: block, register: reg, decrypt: decrypt}, nil
}

// XORKeyStream implements cipher.Stream, processing one byte at a time
// as CFB8 requires: each output byte depends on the ciphertext byte
// that precedes it in the shift register.
func (c *cfb8) XORKeyStream(dst, src []byte) {
	blockSize := len(c.register)
	out := make([]byte, blockSize)
	for i, in := range src {
		c.block.Encrypt(out, c.register)
		var cipherByte byte
		if c.decrypt {
			cipherByte = in
			dst[i] = in ^ out[0]
		} else {
			dst[i] = in ^ out[0]
			cipherByte = dst[i]
		}
		copy(c.register, c.register[1:])
		c.register[blockSize-1] = cipherByte
	}
}
