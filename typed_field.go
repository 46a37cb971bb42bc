// typed_field.go — optional, type-safe key/value context helpers.
//
// Overview
//   TypedKey provides an *optional* ergonomic layer for attaching and reading
//   strongly-typed Field entries. It complements AttachKV; both produce the
//   same Field values, so the two can be mixed freely.
//
// Usage
//   var (
//       KUserID    = exn.Key[int64]("user_id")
//       KRequestID = exn.Key[string]("request_id")
//   )
//
//   x := exn.New(ErrLookup).Attach(KUserID.Field(42))
//   id, ok := KUserID.Get(x.Frame()) // id=42, ok=true
//
// Caveats
//   • The dynamic type stored in the Field MUST match T exactly; no implicit
//     conversions are made.
//   • Get reads one frame; Lookup searches the whole tree pre-order.
package exn

import "fmt"

// TypedKey is a small, zero-policy helper for type-safe context access.
type TypedKey[T any] struct {
	name string
}

// Key constructs a TypedKey[T] for a given key.
func Key[T any](name string) TypedKey[T] {
	return TypedKey[T]{name: name}
}

// Name returns the underlying string key.
func (k TypedKey[T]) Name() string { return k.name }

// Field builds the context entry for val.
func (k TypedKey[T]) Field(val T) Field {
	return Field{Key: k.name, Val: val}
}

// Get returns the value of the newest Field with this key on f
// (last-write-wins). It reports false if the key is absent or its newest
// value has a different dynamic type than T.
func (k TypedKey[T]) Get(f *Frame) (T, bool) {
	var (
		zero  T
		last  any
		found bool
	)
	if f == nil {
		return zero, false
	}
	for fld := range ContextsOf[Field](f) {
		if fld.Key == k.name {
			last, found = fld.Val, true
		}
	}
	if !found {
		return zero, false
	}
	v, ok := last.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Lookup returns the value from the first frame, in pre-order, that carries
// this key with a value of type T.
func (k TypedKey[T]) Lookup(err error) (T, bool) {
	var (
		out   T
		found bool
	)
	f, ok := AsFrame(err)
	if !ok {
		return out, false
	}
	Walk(f, func(fr *Frame) bool {
		out, found = k.Get(fr)
		return !found
	})
	return out, found
}

// MustGet retrieves the typed value or panics with a descriptive error if the
// key is missing or has a different dynamic type than T.
//
// Intended for test code or contexts where absence is a programming error
// rather than a runtime condition.
func (k TypedKey[T]) MustGet(f *Frame) T {
	var zero T
	if f == nil {
		panic(fmt.Errorf("exn.TypedKey[%T](%q): frame is nil", zero, k.name))
	}
	v, ok := k.Get(f)
	if !ok {
		panic(fmt.Errorf("exn.TypedKey[%T](%q): key missing or wrong type", zero, k.name))
	}
	return v
}
