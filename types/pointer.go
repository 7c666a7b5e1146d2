package types

// ToPointer is a helper function that returns a pointer to a value of any type.
func ToPointer[T any](v T) *T {
	return &v
}

// ToValue returns the value pointed to by v, or the zero value when v is nil.
func ToValue[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// OptionalPointer returns nil when set is false, otherwise a pointer to v.
// Useful for flags where "not supplied" differs from the zero value.
func OptionalPointer[T any](v T, set bool) *T {
	if !set {
		return nil
	}
	return &v
}
