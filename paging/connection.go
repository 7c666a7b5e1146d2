package paging

import (
	"github.com/ncobase/relaypage/paging/cursor"
)

// BuildConnection slices c to w and encodes a cursor for every edge.
// w must come from ResolveWindow over the same collection.
func BuildConnection[P cursor.Position, T any](c Collection[P, T], codec cursor.Codec[P], w Window) *Connection[T] {
	edges := make([]Edge[T], 0, w.Len())
	for i := w.Start; i < w.End; i++ {
		edges = append(edges, Edge[T]{
			Cursor: codec.Encode(c.PositionAt(i)),
			Node:   c.ItemAt(i),
		})
	}

	info := PageInfo{
		HasNextPage:     w.End < c.Len(),
		HasPreviousPage: w.Start > 0,
	}
	if len(edges) > 0 {
		startCursor, endCursor := edges[0].Cursor, edges[len(edges)-1].Cursor
		info.StartCursor = &startCursor
		info.EndCursor = &endCursor
	}

	return &Connection[T]{
		Edges:      edges,
		PageInfo:   info,
		TotalCount: c.Len(),
	}
}
