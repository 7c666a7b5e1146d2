package cursor

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"hash"
)

const macSize = sha256.Size

// Signed implements Codec using HMAC-SHA256 for integrity.
// The position is readable after base64 decoding but cannot be forged
// without the secret. Tokens are base64 URL without padding: payload||mac.
type Signed[P Position] struct {
	key []byte
	h   func() hash.Hash
}

// NewSigned creates a Signed codec with the provided secret.
func NewSigned[P Position](secret []byte) (*Signed[P], error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &Signed[P]{key: append([]byte(nil), secret...), h: sha256.New}, nil
}

// Encode implements Codec
func (c *Signed[P]) Encode(pos P) string {
	return c.seal(marshalPosition(pos))
}

// Decode implements Codec
func (c *Signed[P]) Decode(cursor string) (P, error) {
	payload, err := c.open(cursor)
	if err != nil {
		var zero P
		return zero, err
	}
	return unmarshalPosition[P](payload)
}

// seal signs the payload and returns a base64url token payload||sig.
func (c *Signed[P]) seal(payload []byte) string {
	mac := hmac.New(c.h, c.key)
	mac.Write(payload)
	buf := mac.Sum(payload[:len(payload):len(payload)])
	return base64.RawURLEncoding.EncodeToString(buf)
}

// open verifies the token and returns the payload bytes.
func (c *Signed[P]) open(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, invalid("not base64url")
	}
	if len(raw) <= macSize {
		return nil, invalid("too short")
	}
	payload := raw[:len(raw)-macSize]
	sig := raw[len(raw)-macSize:]
	mac := hmac.New(c.h, c.key)
	mac.Write(payload)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return nil, invalid("signature mismatch")
	}
	return payload, nil
}
