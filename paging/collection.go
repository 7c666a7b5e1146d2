package paging

import (
	"github.com/ncobase/relaypage/paging/cursor"
)

// Ordering is the position order of a collection.
type Ordering[P cursor.Position] interface {
	Len() int
	PositionAt(i int) P
	// IndexOf returns the index of p, or false if p is not in the collection.
	IndexOf(p P) (int, bool)
}

// Collection is an Ordering with an item at every index.
type Collection[P cursor.Position, T any] interface {
	Ordering[P]
	ItemAt(i int) T
}

// Slice adapts a slice to Collection; positions are indexes.
type Slice[T any] []T

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) PositionAt(i int) int { return i }

func (s Slice[T]) IndexOf(p int) (int, bool) {
	if p < 0 || p >= len(s) {
		return 0, false
	}
	return p, true
}

func (s Slice[T]) ItemAt(i int) T { return s[i] }

// Len, PositionAt, IndexOf and ItemAt let an OrderedMap be paginated
// directly; positions are keys and items are entries.

func (m *OrderedMap[V]) PositionAt(i int) string { return m.keys[i] }

func (m *OrderedMap[V]) IndexOf(key string) (int, bool) {
	i, ok := m.index[key]
	return i, ok
}

func (m *OrderedMap[V]) ItemAt(i int) Entry[V] {
	k := m.keys[i]
	return Entry[V]{Key: k, Value: m.values[k]}
}
