// Package optional models partially-updated JSON fields where a missing key,
// an explicit null and a value all mean different things.
package optional

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state JSON value: omitted (the zero Field), explicit null,
// or a value. The decoder only calls UnmarshalJSON when the key is present,
// which is how omission is detected.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the field was present, null or not.
func (f Field[T]) IsSet() bool { return f.set }

// IsNull reports whether the field was present and null.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// HasValue reports whether the field carries a non-null value.
func (f Field[T]) HasValue() bool { return f.set && !f.null }

// Get returns the value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.HasValue()
}

// Apply overwrites *dst when the field carries a value.
func (f Field[T]) Apply(dst *T) {
	if f.HasValue() {
		*dst = f.value
	}
}

// ApplyNullable overwrites a nullable destination: null clears it, a value
// replaces it, omission leaves it alone.
func (f Field[T]) ApplyNullable(dst **T) {
	if !f.set {
		return
	}
	if f.null {
		*dst = nil
		return
	}
	v := f.value
	*dst = &v
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON writes null for both omitted and null fields. Use omitempty
// semantics at the struct level if omission must survive a round trip.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
