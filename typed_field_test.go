// typed_field_test.go — TypedKey helpers over frames and trees.
package exn

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	kUserID    = Key[int64]("user_id")
	kRequestID = Key[string]("request_id")
)

func TestTypedKey_NameAndField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_id", kUserID.Name())
	assert.Equal(t, Field{Key: "user_id", Val: int64(42)}, kUserID.Field(42))
}

func TestTypedKey_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		build  func() *Exn[textErr]
		want   int64
		wantOK bool
	}{
		{
			name:   "typed field",
			build:  func() *Exn[textErr] { return New(textErr("A")).Attach(kUserID.Field(42)) },
			want:   42,
			wantOK: true,
		},
		{
			name:   "mixes with AttachKV",
			build:  func() *Exn[textErr] { return New(textErr("A")).AttachKV("user_id", int64(7)) },
			want:   7,
			wantOK: true,
		},
		{
			name: "last write wins",
			build: func() *Exn[textErr] {
				return New(textErr("A")).Attach(kUserID.Field(1)).Attach(kUserID.Field(2))
			},
			want:   2,
			wantOK: true,
		},
		{
			name:  "absent",
			build: func() *Exn[textErr] { return New(textErr("A")).Attach(kRequestID.Field("r")) },
		},
		{
			name:  "wrong dynamic type",
			build: func() *Exn[textErr] { return New(textErr("A")).AttachKV("user_id", 42) },
		},
		{
			name: "newest value has wrong type",
			build: func() *Exn[textErr] {
				return New(textErr("A")).Attach(kUserID.Field(1)).AttachKV("user_id", "x")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := kUserID.Get(tt.build().Frame())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypedKey_GetNilFrame(t *testing.T) {
	t.Parallel()

	_, ok := kUserID.Get(nil)
	assert.False(t, ok)
}

func TestTypedKey_Lookup(t *testing.T) {
	t.Parallel()

	inner := New(textErr("inner")).Attach(kRequestID.Field("req-1"))
	other := New(textErr("other")).Attach(kRequestID.Field("req-2"))
	x := RaiseAll(textErr("top"), inner, other)

	got, ok := kRequestID.Lookup(fmt.Errorf("wrapped: %w", x))
	require.True(t, ok)
	assert.Equal(t, "req-1", got)

	_, ok = kUserID.Lookup(x)
	assert.False(t, ok)

	_, ok = kRequestID.Lookup(errors.New("foreign"))
	assert.False(t, ok)
}

func TestTypedKey_MustGet(t *testing.T) {
	t.Parallel()

	x := New(textErr("A")).Attach(kUserID.Field(9))
	assert.Equal(t, int64(9), kUserID.MustGet(x.Frame()))

	assert.Panics(t, func() { kRequestID.MustGet(x.Frame()) })
	assert.Panics(t, func() { kUserID.MustGet(nil) })
}
