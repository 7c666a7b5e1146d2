package paging

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is the node of a mapping edge.
type Entry[V any] struct {
	Key   string `json:"key"`
	Value V      `json:"value"`
}

// OrderedMap is a string-keyed mapping that remembers insertion order.
// Setting an existing key replaces its value in place.
type OrderedMap[V any] struct {
	keys   []string
	index  map[string]int
	values map[string]V
}

// NewOrderedMap creates an OrderedMap from entries, in order.
func NewOrderedMap[V any](entries ...Entry[V]) *OrderedMap[V] {
	m := &OrderedMap[V]{
		keys:   make([]string, 0, len(entries)),
		index:  make(map[string]int, len(entries)),
		values: make(map[string]V, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set adds or replaces a value
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.index == nil {
		m.index = make(map[string]int)
		m.values = make(map[string]V)
	}
	if _, ok := m.index[key]; !ok {
		m.index[key] = len(m.keys)
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key and reports whether it was present
func (m *OrderedMap[V]) Delete(key string) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	delete(m.index, key)
	delete(m.values, key)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

// Len returns the number of keys
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in order
func (m *OrderedMap[V]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Entries returns the key/value pairs in order
func (m *OrderedMap[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], len(m.keys))
	for i, k := range m.keys {
		entries[i] = Entry[V]{Key: k, Value: m.values[k]}
	}
	return entries
}

// MarshalJSON encodes the map as a JSON object in key order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping document key order.
// Duplicate keys keep their first position and last value.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ordered map: expected JSON object, got %v", tok)
	}
	*m = OrderedMap[V]{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ordered map: expected string key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("ordered map: value of %q: %w", key, err)
		}
		m.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
