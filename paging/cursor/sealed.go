package cursor

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var sealedInfo = []byte("relaypage sealed cursor v1")

// Sealed implements Codec with XChaCha20-Poly1305.
// Positions are encrypted and authenticated, so cursors reveal nothing and
// any modification fails to decode. The same position encodes differently
// on every call.
type Sealed[P Position] struct {
	aead cipher.AEAD
}

// NewSealed creates a Sealed codec. The cipher key is derived from secret
// with HKDF-SHA256, so secrets of any length are accepted.
func NewSealed[P Position](secret []byte) (*Sealed[P], error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, sealedInfo), key); err != nil {
		return nil, fmt.Errorf("derive cursor key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cursor cipher: %w", err)
	}
	return &Sealed[P]{aead: aead}, nil
}

// Encode implements Codec
func (c *Sealed[P]) Encode(pos P) string {
	payload := marshalPosition(pos)
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(payload)+c.aead.Overhead())
	// crypto/rand.Read does not fail on supported platforms
	_, _ = rand.Read(nonce)
	sealed := c.aead.Seal(nonce, nonce, payload, nil)
	return base64.RawURLEncoding.EncodeToString(sealed)
}

// Decode implements Codec
func (c *Sealed[P]) Decode(cursor string) (P, error) {
	var zero P
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return zero, invalid("not base64url")
	}
	if len(raw) < c.aead.NonceSize()+c.aead.Overhead() {
		return zero, invalid("too short")
	}
	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	payload, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return zero, invalid("authentication failed")
	}
	return unmarshalPosition[P](payload)
}
