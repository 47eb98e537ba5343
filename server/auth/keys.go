// Package auth implements the Login-phase RSA handshake and the
// external session-verify collaborator: keypair generation, PKCS1v1.5
// decryption, and the signed-hex session hash. The AES-CFB8 streams
// themselves live in protocol/netio.
package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"fmt"
	"math/big"
)

// Kind names the structured Auth error kinds from §7.
type Kind int

const (
	DecryptionError Kind = iota
	FailedRequest
	MalformedJson
)

func (k Kind) String() string {
	switch k {
	case DecryptionError:
		return "DecryptionError"
	case FailedRequest:
		return "FailedRequest"
	case MalformedJson:
		return "MalformedJson"
	default:
		return "Unknown"
	}
}

// Error is the structured Auth(kind) error of §7.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KeyStore holds the server's Login-phase RSA keypair.
type KeyStore struct {
	private      *rsa.PrivateKey
	PublicKeyDER []byte
}

// NewKeyStore generates a fresh 1024-bit RSA keypair and its
// PKIX-DER-encoded public key, as required to populate
// EncryptionRequest.
func NewKeyStore() (*KeyStore, error) {
	private, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		return nil, fmt.Errorf("auth: generate key: %w", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&private.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("auth: marshal public key: %w", err)
	}
	return &KeyStore{private: private, PublicKeyDER: der}, nil
}

// Decrypt reverses a PKCS1-v1.5 payload encrypted with the store's
// public key, as EncryptionResponse's shared secret and verify token
// are.
func (k *KeyStore) Decrypt(data []byte) ([]byte, error) {
	out, err := rsa.DecryptPKCS1v15(rand.Reader, k.private, data)
	if err != nil {
		return nil, &Error{Kind: DecryptionError, Err: err}
	}
	return out, nil
}

// DigestSecret computes the session hash
// base16_signed(SHA1(shared_secret || public_key_der)), reproducing
// Mojang's "signed hex" session-hash quirk: the SHA1 digest is
// interpreted as a signed big-endian integer, not an unsigned one, so
// a leading 0x80+ byte yields a "-" prefixed hex string.
func (k *KeyStore) DigestSecret(sharedSecret []byte) string {
	h := sha1.New()
	h.Write(sharedSecret)
	h.Write(k.PublicKeyDER)
	sum := h.Sum(nil)
	return signedHex(sum)
}

// signedHex mirrors num_bigint::BigInt::from_signed_bytes_be(sum).to_str_radix(16).
func signedHex(sum []byte) string {
	negative := sum[0]&0x80 != 0
	if !negative {
		return new(big.Int).SetBytes(sum).Text(16)
	}
	// Two's-complement negate: invert bits then add one, as
	// from_signed_bytes_be does for a negative big-endian input.
	inv := make([]byte, len(sum))
	for i, b := range sum {
		inv[i] = ^b
	}
	n := new(big.Int).SetBytes(inv)
	n.Add(n, big.NewInt(1))
	return "-" + n.Text(16)
}
