// Package dto holds the JSON shapes exchanged at the API boundary.
package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field the caller left out from one sent as null
// and from one sent with a value. Tag Optional fields with `omitzero` so an
// absent field is also left out when marshalling.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Of returns a present, non-null Optional.
func Of[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// HasValue reports whether the field was sent with a non-null value.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
