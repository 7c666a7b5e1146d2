package paging

import (
	"fmt"

	"github.com/ncobase/relaypage/ecode"
	"github.com/ncobase/relaypage/paging/cursor"
)

// Options selects the cursor codec for a pagination call.
//
// Codec wins when set. Otherwise EncodeCursor=false uses the plain codec and
// EncodeCursor=true builds the default opaque codec from Secret.
type Options[P cursor.Position] struct {
	EncodeCursor bool
	Secret       []byte
	Codec        cursor.Codec[P]
}

// Paginate resolves the window selected by args and builds the connection.
// A nil codec means plain cursors. On error no connection is returned.
func Paginate[P cursor.Position, T any](c Collection[P, T], args Args, codec cursor.Codec[P]) (*Connection[T], error) {
	if codec == nil {
		codec = cursor.Plain[P]{}
	}
	w, err := ResolveWindow[P](c, codec, args)
	if err != nil {
		return nil, err
	}
	return BuildConnection(c, codec, w), nil
}

// PaginateSlice paginates a sequence; cursors denote indexes.
func PaginateSlice[T any](items []T, args Args, opts Options[int]) (*Connection[T], error) {
	codec, err := SliceCodec(opts)
	if err != nil {
		return nil, err
	}
	return Paginate[int, T](Slice[T](items), args, codec)
}

// PaginateMap paginates a mapping in key order; cursors denote keys and
// nodes are key/value entries.
func PaginateMap[V any](m *OrderedMap[V], args Args, opts Options[string]) (*Connection[Entry[V]], error) {
	codec, err := MapCodec(opts)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = NewOrderedMap[V]()
	}
	return Paginate[string, Entry[V]](m, args, codec)
}

// SliceCodec returns the codec opts select for sequences.
// The opaque default is HMAC-signed.
func SliceCodec(opts Options[int]) (cursor.Codec[int], error) {
	return resolveCodec(opts, func(secret []byte) (cursor.Codec[int], error) {
		c, err := cursor.NewSigned[int](secret)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

// MapCodec returns the codec opts select for mappings.
// The opaque default is encrypted.
func MapCodec(opts Options[string]) (cursor.Codec[string], error) {
	return resolveCodec(opts, func(secret []byte) (cursor.Codec[string], error) {
		c, err := cursor.NewSealed[string](secret)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

func resolveCodec[P cursor.Position](opts Options[P], opaque func([]byte) (cursor.Codec[P], error)) (cursor.Codec[P], error) {
	switch {
	case opts.Codec != nil:
		return opts.Codec, nil
	case !opts.EncodeCursor:
		return cursor.Plain[P]{}, nil
	case len(opts.Secret) == 0:
		return nil, fmt.Errorf("%w: %s", ErrValidation, ecode.FieldIsRequired("cursor secret"))
	}
	return opaque(opts.Secret)
}
