// Package paging implements Relay-style cursor pagination over collections
// that are already in memory: index-ordered slices and key-ordered maps.
//
// Given the whole collection and the arguments first, last, after and
// before, ResolveWindow computes a half-open window [Start, End) and
// BuildConnection turns it into a Connection of edges, page info and the
// total count.
//
// # Basic Usage
//
//	conn, err := paging.PaginateSlice(items, paging.Args{First: types.ToPointer(10)}, paging.Options[int]{})
//	if err != nil {
//	    return err
//	}
//	next := paging.Args{First: types.ToPointer(10), After: conn.PageInfo.EndCursor}
//
// Mappings keep their insertion order through OrderedMap; their edges carry
// Entry nodes:
//
//	m := paging.NewOrderedMap(paging.Entry[int]{Key: "a", Value: 1})
//	conn, err := paging.PaginateMap(m, args, paging.Options[string]{})
//
// # Cursors
//
// Cursors are produced by a cursor.Codec. Without EncodeCursor they are the
// plain index or key. With EncodeCursor they are opaque: HMAC-signed for
// slices and encrypted for maps, both keyed by Options.Secret. A custom
// codec in Options.Codec always takes precedence.
//
// # Errors
//
// All failures are returned before any connection is built:
//
//   - ErrValidation: first together with last, or a negative limit
//   - ErrInvalidCursor: after/before cannot be decoded
//   - ErrPositionNotFound: a cursor decodes to a position not in the collection
//
// Match them with errors.Is; ecode.CodeOf maps them to response codes.
//
// # Service Use
//
// Paginator bundles codecs and page-size limits read from config.Paging and
// adds tracing spans and debug logging:
//
//	p, err := paging.NewPaginator(ctx, cfg.Paging, logging.StandardLogger())
//	conn, err := paging.PageSlice(ctx, p, items, args)
package paging
