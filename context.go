// context.go — context entries attached to frames.
//
// Design:
//   • A frame's context is an append-only []any in insertion order (oldest
//     first); any Go value may be attached.
//   • Field is the key/value entry built by AttachKV and TypedKey.
//   • Entries are retrieved by type assertion at query time.
package exn

import (
	"fmt"
	"iter"
)

// Field represents a single contextual key-value pair attached to a frame.
// Keys SHOULD be snake_case for consistency, but the core does not enforce it.
type Field struct {
	Key string
	Val any
}

// String renders the field as key=value.
func (f Field) String() string { return fmt.Sprintf("%s=%v", f.Key, f.Val) }

// fields is the parsed form of a variadic key/value list.
type fields []Field

// emptyFields is a canonical empty context.
var emptyFields = make(fields, 0)

// ctxFromKV parses a variadic list of key-value arguments into fields.
//
// Rules (normative):
//   • Pairs are read left-to-right as (key, value).
//   • Keys MUST be strings; a non-string “key” causes the ENTIRE PAIR to be
//     dropped (the key and its following value, if any). This avoids surprising
//     misalignment where a value becomes the next pair’s key.
//   • A trailing key with no value becomes (key, nil).
//
// Example:
//   ctxFromKV(123, "v1", "k2", "v2") → [{Key:"k2", Val:"v2"}]
func ctxFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			// Trailing key with no value → nil
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// ContextOf returns f's oldest context entry of type T.
func ContextOf[T any](f *Frame) (T, bool) {
	for c := range f.Contexts() {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// ContextsOf iterates f's context entries of type T, oldest first.
func ContextsOf[T any](f *Frame) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range f.Contexts() {
			if v, ok := c.(T); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Fields returns f's key/value entries as a map. Later duplicate keys
// overwrite earlier ones (last-write-wins). The map is a fresh copy.
func Fields(f *Frame) map[string]any {
	var m map[string]any
	for fld := range ContextsOf[Field](f) {
		if m == nil {
			m = make(map[string]any, f.ContextsLen())
		}
		m[fld.Key] = fld.Val
	}
	return m
}
