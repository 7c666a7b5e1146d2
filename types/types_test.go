package types

import (
	"testing"
	"time"
)

func TestPointers(t *testing.T) {
	p := ToPointer(5)
	if *p != 5 {
		t.Errorf("ToPointer() = %v, want 5", *p)
	}
	if got := ToValue(p); got != 5 {
		t.Errorf("ToValue() = %v, want 5", got)
	}
	var nilPtr *string
	if got := ToValue(nilPtr); got != "" {
		t.Errorf("ToValue(nil) = %q, want empty", got)
	}
	if OptionalPointer(3, false) != nil {
		t.Error("OptionalPointer(unset) should be nil")
	}
	if got := OptionalPointer(0, true); got == nil || *got != 0 {
		t.Errorf("OptionalPointer(0, true) = %v", got)
	}
}

func TestToString(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "a", "a"},
		{"bytes", []byte("key"), "key"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int32", int32(-7), "-7"},
		{"int64", int64(9000000000), "9000000000"},
		{"float", 1.5, "1.5"},
		{"time", ts, "2024-01-02T03:04:05Z"},
		{"slice", []any{1.0, "x"}, `[1,"x"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.in); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize([]byte("v")); got != "v" {
		t.Errorf("Normalize([]byte) = %v", got)
	}
	if got := Normalize(int64(3)); got != int64(3) {
		t.Errorf("Normalize(int64) = %v", got)
	}
}
