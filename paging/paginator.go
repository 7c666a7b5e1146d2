package paging

import (
	"context"
	"encoding/base64"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/logging"
	"github.com/ncobase/relaypage/paging/cursor"
	"github.com/ncobase/relaypage/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Paginator holds the codecs and limits configured for a process.
// It is safe for concurrent use.
type Paginator struct {
	sliceCodec   cursor.Codec[int]
	mapCodec     cursor.Codec[string]
	defaultFirst int
	maxFirst     int
	logger       *logging.Logger
}

// NewPaginator builds a Paginator from the paging config.
// EncodeCursor without a secret generates an ephemeral one: cursors then stop
// decoding when the process restarts.
func NewPaginator(ctx context.Context, c *config.Paging, logger *logging.Logger) (*Paginator, error) {
	if c == nil {
		c = &config.Paging{}
	}
	if logger == nil {
		logger = logging.StandardLogger()
	}

	var secret []byte
	if c.EncodeCursor {
		var err error
		if secret, err = DecodeSecret(c.Secret); err != nil {
			return nil, err
		}
		if len(secret) == 0 {
			if secret, err = cursor.GenerateSecret(); err != nil {
				return nil, err
			}
			logger.Warnf(ctx, "paging.secret is empty, cursors are signed with an ephemeral secret")
		}
	}

	sliceCodec, err := SliceCodec(Options[int]{EncodeCursor: c.EncodeCursor, Secret: secret})
	if err != nil {
		return nil, err
	}
	mapCodec, err := MapCodec(Options[string]{EncodeCursor: c.EncodeCursor, Secret: secret})
	if err != nil {
		return nil, err
	}

	return &Paginator{
		sliceCodec:   sliceCodec,
		mapCodec:     mapCodec,
		defaultFirst: c.DefaultFirst,
		maxFirst:     c.MaxFirst,
		logger:       logger,
	}, nil
}

// DecodeSecret accepts a base64 secret as printed by keygen, falling back to
// the raw bytes of s.
func DecodeSecret(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil && len(b) >= cursor.SecretSize {
		return b, nil
	}
	return []byte(s), nil
}

// SliceCodec returns the codec used for sequences
func (p *Paginator) SliceCodec() cursor.Codec[int] { return p.sliceCodec }

// MapCodec returns the codec used for mappings
func (p *Paginator) MapCodec() cursor.Codec[string] { return p.mapCodec }

// Normalize applies the configured default page size and cap.
func (p *Paginator) Normalize(args Args) Args {
	return NormalizeArgs(args, p.defaultFirst, p.maxFirst)
}

// PageSlice paginates items with p's sequence codec and limits.
func PageSlice[T any](ctx context.Context, p *Paginator, items []T, args Args) (*Connection[T], error) {
	return page[int, T](ctx, p, "paging.slice", Slice[T](items), p.sliceCodec, args)
}

// PageMap paginates m with p's mapping codec and limits.
func PageMap[V any](ctx context.Context, p *Paginator, m *OrderedMap[V], args Args) (*Connection[Entry[V]], error) {
	if m == nil {
		m = NewOrderedMap[V]()
	}
	return page[string, Entry[V]](ctx, p, "paging.map", m, p.mapCodec, args)
}

func page[P cursor.Position, T any](ctx context.Context, p *Paginator, name string, c Collection[P, T], codec cursor.Codec[P], args Args) (*Connection[T], error) {
	ctx, span := tracing.Start(ctx, name, attribute.Int("paging.total", c.Len()))
	defer span.End()

	args = p.Normalize(args)
	w, err := ResolveWindow[P](c, codec, args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.Debugf(ctx, "%s: %v", name, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("paging.start", w.Start), attribute.Int("paging.end", w.End))
	p.logger.Debugf(ctx, "%s: window [%d, %d) of %d", name, w.Start, w.End, c.Len())
	return BuildConnection(c, codec, w), nil
}
