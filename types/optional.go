package types

import "encoding/json"

// Optional is a tri-state JSON field for partial update payloads.
// A field that is absent from the payload has Present == false and must not be
// touched. A field sent as explicit null has Present == true and Value == nil.
// Anything else has both set.
type Optional[T any] struct {
	Present bool
	Value   *T
}

// UnmarshalJSON is only invoked by encoding/json when the key exists in the
// payload, which is exactly what Present captures.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Get returns the value and whether a non-null value was provided.
func (o Optional[T]) Get() (T, bool) {
	if !o.Present || o.Value == nil {
		var zero T
		return zero, false
	}
	return *o.Value, true
}
