package cursor

import (
	"encoding/binary"
)

// payload layout: kind(1) + index(8, big endian) | key bytes
const (
	kindIndex byte = 'i'
	kindKey   byte = 'k'
)

func marshalPosition[P Position](pos P) []byte {
	switch v := any(pos).(type) {
	case int:
		buf := make([]byte, 9)
		buf[0] = kindIndex
		binary.BigEndian.PutUint64(buf[1:], uint64(int64(v)))
		return buf
	case string:
		buf := make([]byte, 1+len(v))
		buf[0] = kindKey
		copy(buf[1:], v)
		return buf
	}
	return nil
}

func unmarshalPosition[P Position](payload []byte) (P, error) {
	var zero P
	if len(payload) == 0 {
		return zero, invalid("empty payload")
	}
	switch any(zero).(type) {
	case int:
		if payload[0] != kindIndex || len(payload) != 9 {
			return zero, invalid("not an index payload")
		}
		n := int(int64(binary.BigEndian.Uint64(payload[1:])))
		return any(n).(P), nil
	case string:
		if payload[0] != kindKey {
			return zero, invalid("not a key payload")
		}
		return any(string(payload[1:])).(P), nil
	}
	return zero, invalid("unsupported position type")
}
