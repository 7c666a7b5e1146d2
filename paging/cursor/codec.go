package cursor

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/ncobase/relaypage/ecode"
)

// Position is what a cursor denotes: an index into a sequence or a key of a mapping.
type Position interface {
	int | string
}

// Codec converts positions to opaque cursor strings and back.
// Decode(Encode(p)) must equal p. Implementations must be safe for concurrent use.
type Codec[P Position] interface {
	Encode(pos P) string
	Decode(cursor string) (P, error)
}

var (
	// ErrInvalidCursor is returned for malformed or tampered cursors.
	ErrInvalidCursor = ecode.New(ecode.InvalidCursor)
	// ErrEmptySecret is returned when an opaque codec is built without secret material.
	ErrEmptySecret = ecode.New(ecode.ParamErr, "cursor secret is empty")
)

// SecretSize is the length of secrets produced by GenerateSecret.
const SecretSize = 32

// GenerateSecret returns fresh random secret material for Signed and Sealed codecs.
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate cursor secret: %w", err)
	}
	return secret, nil
}

// Func adapts a caller-supplied encode/decode pair to Codec.
type Func[P Position] struct {
	EncodeFunc func(P) string
	DecodeFunc func(string) (P, error)
}

// NewFunc creates a Func codec.
func NewFunc[P Position](encode func(P) string, decode func(string) (P, error)) *Func[P] {
	return &Func[P]{EncodeFunc: encode, DecodeFunc: decode}
}

// Encode implements Codec
func (f *Func[P]) Encode(pos P) string {
	return f.EncodeFunc(pos)
}

// Decode implements Codec. Errors not already classified are wrapped with ErrInvalidCursor.
func (f *Func[P]) Decode(cursor string) (P, error) {
	pos, err := f.DecodeFunc(cursor)
	if err != nil {
		var zero P
		if errors.Is(err, ErrInvalidCursor) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	return pos, nil
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidCursor, reason)
}
