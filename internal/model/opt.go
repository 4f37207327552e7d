package model

import (
	"bytes"
	"encoding/json"
)

// Opt is an explicitly present or absent value. The zero value is absent.
type Opt[T any] struct {
	v  T
	ok bool
}

// Some wraps a present value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

// None returns an absent value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.ok
}

func (o Opt[T]) IsSome() bool { return o.ok }

// OrElse returns the value when present, def otherwise.
func (o Opt[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.v
}

// MarshalJSON encodes an absent value as null.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes null as absent. Missing keys never reach here and
// stay at the zero value, which is also absent.
func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = Opt[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalYAML lets yaml.v3 render absent values as null.
func (o Opt[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	return o.v, nil
}
