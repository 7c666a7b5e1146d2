package paging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)
	m.Set("a", 20)

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, 3, m.Len())

	assert.True(t, m.Delete("z"))
	assert.False(t, m.Delete("z"))
	assert.Equal(t, []string{"a", "m"}, m.Keys())
	i, ok := m.IndexOf("m")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, Entry[int]{Key: "m", Value: 3}, m.ItemAt(1))
}

func TestOrderedMapZeroValue(t *testing.T) {
	var m OrderedMap[string]
	assert.Equal(t, 0, m.Len())
	_, ok := m.IndexOf("x")
	assert.False(t, ok)
	m.Set("x", "y")
	assert.Equal(t, []Entry[string]{{Key: "x", Value: "y"}}, m.Entries())
}

func TestOrderedMapJSON(t *testing.T) {
	var m OrderedMap[any]
	require.NoError(t, json.Unmarshal([]byte(`{"d": 4, "b": {"n": true}, "a": [1], "c": null}`), &m))
	assert.Equal(t, []string{"d", "b", "a", "c"}, m.Keys())

	data, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, `{"d":4,"b":{"n":true},"a":[1],"c":null}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1`), &m))
}

func TestOrderedMapReturnedKeysAreCopies(t *testing.T) {
	m := letters()
	ks := m.Keys()
	ks[0] = "changed"
	assert.Equal(t, "a", m.PositionAt(0))
}
