package cursor

import (
	"strconv"
)

// Plain is the codec used when no encoding is requested.
// Indexes travel as canonical decimal strings and keys as themselves.
type Plain[P Position] struct{}

// Encode implements Codec
func (Plain[P]) Encode(pos P) string {
	switch v := any(pos).(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	}
	return ""
}

// Decode implements Codec
func (Plain[P]) Decode(cursor string) (P, error) {
	var zero P
	switch any(zero).(type) {
	case int:
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 || strconv.Itoa(n) != cursor {
			return zero, invalid("not a decimal index")
		}
		return any(n).(P), nil
	case string:
		return any(cursor).(P), nil
	}
	return zero, invalid("unsupported position type")
}
